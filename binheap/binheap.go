// Package binheap implements an array backed binary min-heap.
package binheap

import (
	"cmp"

	"github.com/histdb/heaps/sizeof"
)

// T is a binary min-heap. The zero value is an empty heap.
type T[K cmp.Ordered] struct {
	keys []K
}

func (h *T[K]) Size() uint64 { return sizeof.Slice(h.keys) }

func (h *T[K]) Len() int { return len(h.keys) }

// Reset removes every key while keeping the allocated storage.
func (h *T[K]) Reset() { h.keys = h.keys[:0] }

// Init replaces the contents of the heap with keys, taking ownership of the
// slice, and restores the heap property in linear time.
func (h *T[K]) Init(keys []K) {
	h.keys = keys
	for i := len(keys)/2 - 1; i >= 0; i-- {
		h.heapDown(uint(i))
	}
}

func (h *T[K]) Insert(key K) {
	h.keys = append(h.keys, key)
	h.heapUp(uint(len(h.keys) - 1))
}

// Min returns the smallest key without removing it.
func (h *T[K]) Min() (key K, ok bool) {
	if len(h.keys) > 0 {
		key, ok = h.keys[0], true
	}
	return key, ok
}

// ExtractMin removes and returns the smallest key. It returns false if the
// heap is empty.
func (h *T[K]) ExtractMin() (key K, ok bool) {
	kh := h.keys
	if len(kh) == 0 {
		return key, false
	}

	last := len(kh) - 1
	key, kh[0] = kh[0], kh[last]
	h.keys = kh[:last]
	h.heapDown(0)

	return key, true
}

func (h *T[K]) heapUp(i uint) {
	kh := h.keys

next:
	if j := (i - 1) / 2; i != 0 && i < uint(len(kh)) {
		if kh[i] < kh[j] {
			kh[i], kh[j], i = kh[j], kh[i], j
			goto next
		}
	}
}

func (h *T[K]) heapDown(i uint) {
	kh := h.keys

next:
	if j := 2*i + 1; j < uint(len(kh)) {
		if jn := j + 1; jn < uint(len(kh)) && kh[jn] < kh[j] {
			j = jn
		}

		if kh[j] < kh[i] {
			kh[i], kh[j], i = kh[j], kh[i], j
			goto next
		}
	}
}
