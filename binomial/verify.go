package binomial

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/errs/v2"

	"github.com/histdb/heaps/arena"
	"github.com/histdb/heaps/bitmap"
)

// Verify checks the structural invariants of the heap: roots in strictly
// increasing degree, every tree of degree d a binomial tree of 2^d nodes in
// heap order, consistent parent handles, and a node count matching Len.
func (h *T[K]) Verify() error {
	if h.head.Nil() {
		if h.n != 0 {
			return errs.Errorf("empty root chain with %d nodes", h.n)
		}
		return nil
	}

	seen := roaring.New()
	var degrees bitmap.T64
	var total uint64
	var last uint32

	for x := h.head; !x.Nil(); x = h.at(x).sibling {
		xn := h.at(x)
		if !xn.parent.Nil() {
			return errs.Errorf("root %d has a parent", x.Raw())
		}
		if x != h.head && xn.degree <= last {
			return errs.Errorf("root degree %d follows degree %d", xn.degree, last)
		}
		last = xn.degree
		degrees.Set(uint(xn.degree))

		size, err := h.verifyTree(seen, x)
		if err != nil {
			return err
		}
		total += size
	}

	if total != uint64(h.n) {
		return errs.Errorf("reachable nodes %d != length %d", total, h.n)
	}
	if degrees.Uint64() != uint64(h.n) {
		return errs.Errorf("root degrees %s do not match length %d", degrees, h.n)
	}
	return nil
}

func (h *T[K]) verifyTree(seen *roaring.Bitmap, x arena.P[node[K]]) (uint64, error) {
	if !seen.CheckedAdd(x.Raw()) {
		return 0, errs.Errorf("node %d reached twice", x.Raw())
	}

	xn := h.at(x)
	size := uint64(1)
	want := xn.degree

	for c := xn.child; !c.Nil(); c = h.at(c).sibling {
		cn := h.at(c)
		if want == 0 {
			return 0, errs.Errorf("node %d has more than %d children", x.Raw(), xn.degree)
		}
		want--

		if cn.parent != x {
			return 0, errs.Errorf("node %d has parent %d, want %d", c.Raw(), cn.parent.Raw(), x.Raw())
		}
		if cn.degree != want {
			return 0, errs.Errorf("child %d of node %d has degree %d, want %d", c.Raw(), x.Raw(), cn.degree, want)
		}
		if cn.key < xn.key {
			return 0, errs.Errorf("child %d of node %d violates heap order", c.Raw(), x.Raw())
		}

		csize, err := h.verifyTree(seen, c)
		if err != nil {
			return 0, err
		}
		size += csize
	}

	if want != 0 {
		return 0, errs.Errorf("node %d has degree %d but fewer children", x.Raw(), xn.degree)
	}
	if size != 1<<xn.degree {
		return 0, errs.Errorf("tree at %d has %d nodes, want %d", x.Raw(), size, uint64(1)<<xn.degree)
	}
	return size, nil
}
