// Package heaps holds the contracts shared by the min-priority queues in the
// binheap, binomial and fibheap packages.
package heaps

import "cmp"

// Finder reports the smallest key of a collection.
type Finder[K cmp.Ordered] interface {
	Min() (K, bool)
	Len() int
}

// Queue is a min-priority queue.
type Queue[K cmp.Ordered] interface {
	Insert(key K)
	ExtractMin() (K, bool)
	Len() int
}

// Merger is implemented by heaps that can absorb another heap of the same
// kind. The argument is consumed and left empty.
type Merger[H any] interface {
	Merge(o H) H
}

// Drain extracts every key from q in ascending order.
func Drain[K cmp.Ordered](q Queue[K]) []K {
	out := make([]K, 0, q.Len())
	for {
		key, ok := q.ExtractMin()
		if !ok {
			return out
		}
		out = append(out, key)
	}
}
