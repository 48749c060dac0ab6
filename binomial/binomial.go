// Package binomial implements a mergeable binomial min-heap.
//
// Nodes live in an arena and refer to each other by handle. A heap holds the
// first root of a chain of binomial trees linked through their sibling
// handles, kept in strictly increasing order of degree. The minimum is not
// cached: Min scans the O(log n) roots.
package binomial

import (
	"cmp"

	"github.com/histdb/heaps/arena"
)


type node[K cmp.Ordered] struct {
	key     K
	degree  uint32
	parent  arena.P[node[K]] // non-owning
	child   arena.P[node[K]] // most recently linked child, the one of highest degree
	sibling arena.P[node[K]]
}

// T is a binomial min-heap. The zero value is an empty heap with its own
// arena.
type T[K cmp.Ordered] struct {
	_ [0]func() // no equality

	nodes *arena.T[node[K]]
	head  arena.P[node[K]]
	n     int
}

// Sibling returns an empty heap that shares the arena of h. Merging heaps
// that share an arena only touches their root chains.
func (h *T[K]) Sibling() *T[K] { return &T[K]{nodes: h.arena()} }

// Size returns the bytes held by the arena backing h. Heaps created with
// Sibling report the same shared arena.
func (h *T[K]) Size() uint64 {
	if h.nodes == nil {
		return 0
	}
	return h.nodes.Size()
}

func (h *T[K]) Len() int { return h.n }

func (h *T[K]) arena() *arena.T[node[K]] {
	if h.nodes == nil {
		h.nodes = new(arena.T[node[K]])
	}
	return h.nodes
}

func (h *T[K]) at(p arena.P[node[K]]) *node[K] { return h.nodes.Get(p) }

// Insert adds key to the heap by merging in a single node heap.
func (h *T[K]) Insert(key K) {
	nodes := h.arena()
	p := nodes.New()
	nodes.Get(p).key = key
	h.Merge(&T[K]{nodes: nodes, head: p, n: 1})
}

// Min returns the smallest key without removing it.
func (h *T[K]) Min() (key K, ok bool) {
	for x := h.head; !x.Nil(); {
		xn := h.at(x)
		if !ok || xn.key < key {
			key, ok = xn.key, true
		}
		x = xn.sibling
	}
	return key, ok
}

// Merge moves every key of o into h and returns h. The heap o is left empty.
func (h *T[K]) Merge(o *T[K]) *T[K] {
	if o == nil || o == h || o.head.Nil() {
		return h
	}

	other := o.head
	switch {
	case h.nodes == nil:
		h.nodes = o.nodes
	case h.nodes != o.nodes:
		other = h.transfer(o.nodes, o.head, arena.P[node[K]]{})
	}
	h.n += o.n
	o.head, o.n = arena.P[node[K]]{}, 0

	head := h.mergeRoots(h.head, other)

	var prev arena.P[node[K]]
	cur := head
	next := h.at(cur).sibling

	for !next.Nil() {
		cn, nn := h.at(cur), h.at(next)

		if cn.degree != nn.degree ||
			(!nn.sibling.Nil() && h.at(nn.sibling).degree == cn.degree) {
			prev, cur = cur, next
		} else {
			after := nn.sibling
			root := h.mergeTrees(cur, next)
			h.at(root).sibling = after

			if prev.Nil() {
				head = root
			} else {
				h.at(prev).sibling = root
			}
			cur = root
		}

		next = h.at(cur).sibling
	}

	h.head = head
	return h
}

// mergeTrees links two trees of equal degree. The root with the smaller key
// becomes the parent, t1 on ties, and the resulting root is returned. The
// sibling of the returned root is left for the caller to set.
func (h *T[K]) mergeTrees(t1, t2 arena.P[node[K]]) arena.P[node[K]] {
	n1, n2 := h.at(t1), h.at(t2)
	if n2.key < n1.key {
		t1, t2, n1, n2 = t2, t1, n2, n1
	}

	n2.parent = t1
	n2.sibling = n1.child
	n1.child = t2
	n1.degree++

	return t1
}

// mergeRoots splices two root chains sorted by increasing degree into a
// single chain sorted by non-decreasing degree. Equal degrees are not
// combined.
func (h *T[K]) mergeRoots(h1, h2 arena.P[node[K]]) arena.P[node[K]] {
	if h1.Nil() {
		return h2
	} else if h2.Nil() {
		return h1
	}

	var head, tail arena.P[node[K]]
	for !h1.Nil() && !h2.Nil() {
		var x arena.P[node[K]]
		if h.at(h1).degree <= h.at(h2).degree {
			x, h1 = h1, h.at(h1).sibling
		} else {
			x, h2 = h2, h.at(h2).sibling
		}

		if head.Nil() {
			head = x
		} else {
			h.at(tail).sibling = x
		}
		tail = x
	}

	if h1.Nil() {
		h.at(tail).sibling = h2
	} else {
		h.at(tail).sibling = h1
	}

	return head
}

// transfer copies the chain starting at p out of src into the arena of h,
// freeing the source nodes. It returns the handle of the copied chain.
func (h *T[K]) transfer(src *arena.T[node[K]], p, parent arena.P[node[K]]) (head arena.P[node[K]]) {
	var tail arena.P[node[K]]
	for !p.Nil() {
		sn := *src.Get(p)
		src.Free(p)

		q := h.nodes.New()
		*h.at(q) = node[K]{key: sn.key, degree: sn.degree, parent: parent}
		child := h.transfer(src, sn.child, q)
		h.at(q).child = child

		if head.Nil() {
			head = q
		} else {
			h.at(tail).sibling = q
		}
		tail, p = q, sn.sibling
	}
	return head
}
