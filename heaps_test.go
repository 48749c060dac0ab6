package heaps_test

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/heaps"
	"github.com/histdb/heaps/binheap"
	"github.com/histdb/heaps/binomial"
	"github.com/histdb/heaps/fibheap"
)

var (
	_ heaps.Queue[int]               = (*binheap.T[int])(nil)
	_ heaps.Queue[int]               = (*fibheap.T[int])(nil)
	_ heaps.Finder[int]              = (*binomial.T[int])(nil)
	_ heaps.Finder[int]              = (*fibheap.T[int])(nil)
	_ heaps.Merger[*binomial.T[int]] = (*binomial.T[int])(nil)
	_ heaps.Merger[*fibheap.T[int]]  = (*fibheap.T[int])(nil)
)

func TestHeaps(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var bh binheap.T[int]
		var bn binomial.T[int]
		var fh fibheap.T[int]

		for _, f := range []heaps.Finder[int]{&bh, &bn, &fh} {
			_, ok := f.Min()
			assert.That(t, !ok)
			assert.Equal(t, f.Len(), 0)
		}
		for _, q := range []heaps.Queue[int]{&bh, &fh} {
			_, ok := q.ExtractMin()
			assert.That(t, !ok)
			assert.Equal(t, len(heaps.Drain(q)), 0)
		}
	})

	t.Run("Merge", func(t *testing.T) {
		var a, b binomial.T[string]
		a.Insert("m")
		b.Insert("c")
		m, ok := a.Merge(&b).Min()
		assert.That(t, ok)
		assert.Equal(t, m, "c")
		assert.NoError(t, a.Verify())

		var x, y fibheap.T[float64]
		x.Insert(2.5)
		y.Insert(-1)
		assert.DeepEqual(t, heaps.Drain[float64](x.Merge(&y)), []float64{-1, 2.5})
	})
}
