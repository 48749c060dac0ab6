package testhelp

import (
	"cmp"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Digest returns a fingerprint of the multiset of keys. It does not depend on
// the order of keys.
func Digest[K cmp.Ordered](keys []K) (d uint64) {
	var buf []byte
	for _, key := range keys {
		buf = fmt.Append(buf[:0], key)
		d += xxh3.Hash(buf)
	}
	return d
}

// Sorted reports the first index i where keys[i] < keys[i-1], or -1 if keys
// is non-decreasing.
func Sorted[K cmp.Ordered](keys []K) int {
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			return i
		}
	}
	return -1
}
