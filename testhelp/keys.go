package testhelp

import (
	"github.com/zeebo/mwc"
)

var keyRng = mwc.Rand()

// Key returns a random key in [0, limit).
func Key(limit uint64) int64 {
	return int64(keyRng.Uint64n(limit))
}

// Keys returns n keys in [0, limit) from a stream seeded by seed, so that a
// failing run can be reproduced.
func Keys(seed uint64, n int, limit uint64) []int64 {
	rng := mwc.New(seed, seed)
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = int64(rng.Uint64n(limit))
	}
	return keys
}

// Ops returns a stream of n operations seeded by seed. A true entry means an
// insert should happen, false means an extraction. Inserts are weighted 2:1 so
// the structure under test grows over time.
func Ops(seed uint64, n int) []bool {
	rng := mwc.New(seed, seed+1)
	ops := make([]bool, n)
	for i := range ops {
		ops[i] = rng.Uint64n(3) > 0
	}
	return ops
}
