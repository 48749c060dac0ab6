package bitmap

import (
	"fmt"
	"math/bits"
)

// T64 is a set of indexes in [0, 64).
type T64 struct{ b uint64 }

func (b *T64) Set(idx uint)     { b.b |= 1 << (idx & 63) }
func (b *T64) Unset(idx uint)   { b.b &^= 1 << (idx & 63) }
func (b *T64) ClearLowest()     { b.b &= b.b - 1 }
func (b T64) Has(idx uint) bool { return b.b&(1<<(idx&63)) > 0 }
func (b T64) Uint64() uint64    { return b.b }
func (b T64) Empty() bool       { return b.b == 0 }
func (b T64) Lowest() uint      { return uint(bits.TrailingZeros64(b.b)) % 64 }
func (b T64) String() string    { return fmt.Sprintf("%064b", b.b) }
