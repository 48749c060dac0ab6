package sizeof

import "unsafe"

// Slice returns the bytes held by the slice header and its backing array.
func Slice[T any](v []T) uint64 {
	return 24 + Of[T]()*uint64(cap(v))
}

// Of returns the size of a single T.
func Of[T any]() uint64 {
	return uint64(unsafe.Sizeof(*new(T)))
}
