package bitmap

import (
	"strings"
	"testing"

	"github.com/zeebo/assert"
)

func TestBitmap(t *testing.T) {
	var b T64

	for i := uint(0); i < 64; i++ {
		b.Set(i)
		assert.That(t, b.Has(i))
		assert.Equal(t, b.Lowest(), i)
		assert.Equal(t, b.Uint64(), uint64(1)<<i)

		b.ClearLowest()
		assert.That(t, b.Empty())
	}
}

func TestBitmapIterate(t *testing.T) {
	var b T64
	for _, idx := range []uint{0, 5, 63} {
		b.Set(idx)
	}

	b.Unset(5)
	assert.That(t, !b.Has(5))
	assert.Equal(t, b.String(), "1"+strings.Repeat("0", 62)+"1")

	var got []uint
	for ; !b.Empty(); b.ClearLowest() {
		got = append(got, b.Lowest())
	}
	assert.DeepEqual(t, got, []uint{0, 63})
}
