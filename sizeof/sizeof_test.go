package sizeof

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestSizeof(t *testing.T) {
	assert.Equal(t, Of[uint64](), uint64(8))
	assert.Equal(t, Slice([]uint32(nil)), uint64(24))
	assert.Equal(t, Slice(make([]uint32, 2, 10)), uint64(24+40))
}
