package fibheap

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/zeebo/errs/v2"

	"github.com/histdb/heaps/arena"
)

// Verify checks the structural invariants of the heap: well formed rings,
// consistent parent handles and degrees, heap order, unmarked roots, a
// minimum that is the smallest root, and a node count matching Len.
func (h *T[K]) Verify() error {
	if h.min.Nil() {
		if h.n != 0 {
			return errs.Errorf("no minimum with %d nodes", h.n)
		}
		return nil
	}

	seen := roaring.New()
	minKey := h.at(h.min).key

	count, err := h.verifyRing(seen, h.min, arena.P[node[K]]{}, func(x arena.P[node[K]]) error {
		xn := h.at(x)
		if xn.mark {
			return errs.Errorf("root %d is marked", x.Raw())
		}
		if xn.key < minKey {
			return errs.Errorf("root %d is smaller than the minimum", x.Raw())
		}
		return nil
	})
	if err != nil {
		return err
	}

	if count != uint64(h.n) || seen.GetCardinality() != uint64(h.n) {
		return errs.Errorf("reachable nodes %d != length %d", count, h.n)
	}
	return nil
}

// verifyRing checks the ring containing start, whose members must have the
// given parent, and every subtree below it. It returns the number of nodes
// found.
func (h *T[K]) verifyRing(seen *roaring.Bitmap, start, parent arena.P[node[K]], check func(arena.P[node[K]]) error) (n uint64, err error) {
	for x := start; ; {
		if !seen.CheckedAdd(x.Raw()) {
			return 0, errs.Errorf("node %d reached twice", x.Raw())
		}

		xn := h.at(x)
		if h.at(xn.right).left != x || h.at(xn.left).right != x {
			return 0, errs.Errorf("ring broken at node %d", x.Raw())
		}
		if xn.parent != parent {
			return 0, errs.Errorf("node %d has parent %d, want %d", x.Raw(), xn.parent.Raw(), parent.Raw())
		}
		if err := check(x); err != nil {
			return 0, err
		}

		n++

		var degree uint32
		if !xn.child.Nil() {
			cn, err := h.verifyRing(seen, xn.child, x, func(c arena.P[node[K]]) error {
				degree++
				if h.at(c).key < xn.key {
					return errs.Errorf("child %d of node %d violates heap order", c.Raw(), x.Raw())
				}
				return nil
			})
			if err != nil {
				return 0, err
			}
			n += cn
		}
		if degree != xn.degree {
			return 0, errs.Errorf("node %d has degree %d but %d children", x.Raw(), xn.degree, degree)
		}

		if x = xn.right; x == start {
			return n, nil
		}
	}
}
