// Package fibheap implements a Fibonacci min-heap.
//
// Nodes live in an arena and refer to each other by handle. Every root list
// and child list is a circular doubly linked ring; a lone node is a ring of
// one that links to itself. Insert and Merge only splice rings. The work of
// combining trees is deferred to ExtractMin, which consolidates the roots so
// that no two share a degree.
package fibheap

import (
	"cmp"

	"github.com/histdb/heaps/arena"
	"github.com/histdb/heaps/bitmap"
	"github.com/histdb/heaps/sizeof"
)


type node[K cmp.Ordered] struct {
	key    K
	degree uint32
	mark   bool             // lost a child since becoming a child. never set without decrease-key
	parent arena.P[node[K]] // non-owning
	child  arena.P[node[K]] // any node of the child ring
	left   arena.P[node[K]]
	right  arena.P[node[K]]
}

// T is a Fibonacci min-heap. The zero value is an empty heap with its own
// arena.
type T[K cmp.Ordered] struct {
	_ [0]func() // no equality

	nodes *arena.T[node[K]]
	min   arena.P[node[K]]
	n     int

	// scratch space reused across consolidations
	table []arena.P[node[K]]
	roots []arena.P[node[K]]
}

// Sibling returns an empty heap that shares the arena of h. Merging heaps
// that share an arena is O(1).
func (h *T[K]) Sibling() *T[K] { return &T[K]{nodes: h.arena()} }

// Size returns the bytes held by h and the arena backing it. Heaps created
// with Sibling report the same shared arena.
func (h *T[K]) Size() uint64 {
	size := sizeof.Slice(h.table) + sizeof.Slice(h.roots)
	if h.nodes != nil {
		size += h.nodes.Size()
	}
	return size
}

func (h *T[K]) Len() int { return h.n }

func (h *T[K]) arena() *arena.T[node[K]] {
	if h.nodes == nil {
		h.nodes = new(arena.T[node[K]])
	}
	return h.nodes
}

func (h *T[K]) at(p arena.P[node[K]]) *node[K] { return h.nodes.Get(p) }

// spliceRight inserts the lone node y into the ring of x, to the right of x.
func (h *T[K]) spliceRight(x, y arena.P[node[K]]) {
	xn, yn := h.at(x), h.at(y)
	yn.left, yn.right = x, xn.right
	h.at(xn.right).left = y
	xn.right = y
}

// unsplice removes x from its ring, leaving it a ring of one.
func (h *T[K]) unsplice(x arena.P[node[K]]) {
	xn := h.at(x)
	h.at(xn.left).right = xn.right
	h.at(xn.right).left = xn.left
	xn.left, xn.right = x, x
}

// concat joins the ring of b into the ring of a, right after a.
func (h *T[K]) concat(a, b arena.P[node[K]]) {
	an, bn := h.at(a), h.at(b)
	ar, bl := an.right, bn.left
	an.right, bn.left = b, a
	h.at(ar).left, h.at(bl).right = bl, ar
}

// Insert adds key as a new root next to the minimum.
func (h *T[K]) Insert(key K) {
	nodes := h.arena()
	p := nodes.New()
	*nodes.Get(p) = node[K]{key: key, left: p, right: p}

	if h.min.Nil() {
		h.min = p
	} else {
		h.spliceRight(h.min, p)
		if key < h.at(h.min).key {
			h.min = p
		}
	}
	h.n++
}

// Min returns the smallest key without removing it.
func (h *T[K]) Min() (key K, ok bool) {
	if h.min.Nil() {
		return key, false
	}
	return h.at(h.min).key, true
}

// ExtractMin removes and returns the smallest key. It returns false if the
// heap is empty.
func (h *T[K]) ExtractMin() (key K, ok bool) {
	z := h.min
	if z.Nil() {
		return key, false
	}
	zn := h.at(z)

	if c := zn.child; !c.Nil() {
		for x := c; ; {
			xn := h.at(x)
			xn.parent, xn.mark = arena.P[node[K]]{}, false
			if x = xn.right; x == c {
				break
			}
		}
		h.concat(z, c)
		zn.child, zn.degree = arena.P[node[K]]{}, 0
	}

	next := zn.right
	h.unsplice(z)
	h.n--

	if next == z {
		h.min = arena.P[node[K]]{}
	} else {
		h.min = next
		h.consolidate()
	}

	key = zn.key
	h.nodes.Free(z)
	return key, true
}

// link makes y a child of x. The caller ensures x.key <= y.key.
func (h *T[K]) link(y, x arena.P[node[K]]) {
	h.unsplice(y)

	xn, yn := h.at(x), h.at(y)
	yn.parent = x
	if xn.child.Nil() {
		xn.child = y
	} else {
		h.spliceRight(xn.child, y)
	}
	xn.degree++
	yn.mark = false
}

// maxDegree returns the largest degree a node can have in a heap of n nodes:
// a node of degree d roots at least F(d+2) nodes.
func maxDegree(n int) int {
	d := 0
	for a, b := 1, 2; b <= n; a, b = b, a+b {
		d++
	}
	return d
}

// consolidate links roots of equal degree until every degree is unique and
// recomputes the minimum. The table is sized from n so that indexing past
// its end is a bug, not a condition to handle.
func (h *T[K]) consolidate() {
	size := maxDegree(h.n) + 1
	if cap(h.table) < size {
		h.table = make([]arena.P[node[K]], size)
	}
	table := h.table[:size]

	roots := h.roots[:0]
	for x := h.min; ; {
		roots = append(roots, x)
		if x = h.at(x).right; x == h.min {
			break
		}
	}
	h.roots = roots

	var used bitmap.T64
	for _, x := range roots {
		d := uint(h.at(x).degree)
		for used.Has(d) {
			y := table[d]
			if h.at(y).key < h.at(x).key {
				x, y = y, x
			}
			h.link(y, x)
			used.Unset(d)
			d++
		}
		table[d] = x
		used.Set(d)
	}

	h.min = arena.P[node[K]]{}
	for ; !used.Empty(); used.ClearLowest() {
		x := table[used.Lowest()]
		if h.min.Nil() || h.at(x).key < h.at(h.min).key {
			h.min = x
		}
	}
}

// Merge moves every key of o into h and returns h. The heap o is left empty.
func (h *T[K]) Merge(o *T[K]) *T[K] {
	if o == nil || o == h || o.min.Nil() {
		return h
	}

	other := o.min
	switch {
	case h.nodes == nil:
		h.nodes = o.nodes
	case h.nodes != o.nodes:
		other = h.transfer(o.nodes, o.min, arena.P[node[K]]{})
	}
	h.n += o.n
	o.min, o.n = arena.P[node[K]]{}, 0

	if h.min.Nil() {
		h.min = other
	} else {
		h.concat(h.min, other)
		if h.at(other).key < h.at(h.min).key {
			h.min = other
		}
	}
	return h
}

// transfer copies the ring containing p out of src into the arena of h,
// freeing the source nodes. It returns the copy of p.
func (h *T[K]) transfer(src *arena.T[node[K]], p, parent arena.P[node[K]]) (first arena.P[node[K]]) {
	if p.Nil() {
		return first
	}

	for start := p; ; {
		sn := *src.Get(p)
		src.Free(p)

		q := h.nodes.New()
		*h.at(q) = node[K]{
			key:    sn.key,
			degree: sn.degree,
			mark:   sn.mark,
			parent: parent,
			left:   q,
			right:  q,
		}
		child := h.transfer(src, sn.child, q)
		h.at(q).child = child

		if first.Nil() {
			first = q
		} else {
			h.spliceRight(h.at(first).left, q)
		}

		if p = sn.right; p == start {
			return first
		}
	}
}
