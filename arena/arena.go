package arena

import "github.com/histdb/heaps/sizeof"

const lBatch = 1024

// T is a slab allocator handing out stable uint32 handles. It is not safe for
// concurrent use. The zero value is ready to use.
type T[V any] struct {
	_ [0]func() // no equality

	s    []*[lBatch]V
	p    uint32 // highest handle handed out
	live uint32
	free []P[V]
}

func (t *T[V]) Size() uint64 {
	return 0 +
		/* s    */ sizeof.Slice(t.s) + uint64(len(t.s))*lBatch*sizeof.Of[V]() +
		/* p    */ 4 +
		/* live */ 4 +
		/* free */ sizeof.Slice(t.free) +
		0
}

// Allocated returns the number of live slots.
func (t *T[V]) Allocated() uint32 { return t.live }

type tag[V any] struct{}

// P is a handle to a slot in an arena. The zero value is the nil handle.
type P[V any] struct {
	_ tag[V]
	v uint32
}

func (p P[V]) Raw() uint32 { return p.v }
func (p P[V]) Nil() bool   { return p.v == 0 }

func (t *T[V]) Get(p P[V]) *V {
	return &t.s[p.v/lBatch][p.v%lBatch]
}

// New returns a handle to a zeroed slot.
func (t *T[V]) New() (p P[V]) {
	t.live++
	if n := len(t.free); n > 0 {
		p, t.free = t.free[n-1], t.free[:n-1]
		return p
	}
	t.p++
	p.v = t.p
	t.grow(p.v)
	return p
}

// Free zeroes the slot and makes it available to New.
func (t *T[V]) Free(p P[V]) {
	if p.v == 0 {
		return
	}
	*t.Get(p) = *new(V)
	t.free = append(t.free, p)
	t.live--
}

func (t *T[V]) grow(v uint32) {
	for uint32(len(t.s))*lBatch <= v {
		t.s = append(t.s, new([lBatch]V))
	}
}
