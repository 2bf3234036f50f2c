package malloc

import "unsafe"

// Typed helpers place Go values inside arena memory. Arena blocks
// are invisible to the garbage collector, values stored in them must
// not hold pointers into the Go heap, no strings, slices, maps,
// channels or pointers to Go allocated objects. Pointers to other
// arena resident values are fine.

// New allocate a zeroed value of type T inside arena. Zero sized
// types yield a nil pointer.
func New[T any](arena *Arena) (*T, error) {
	var zero T
	size, align := int64(unsafe.Sizeof(zero)), int64(unsafe.Alignof(zero))
	ptr, err := arena.Allocalign(size, align)
	if err != nil || ptr == nil {
		return nil, err
	}
	obj := (*T)(ptr)
	*obj = zero
	return obj, nil
}

// NewWith allocate a value of type T inside arena and copy value
// into it.
func NewWith[T any](arena *Arena, value T) (*T, error) {
	size, align := int64(unsafe.Sizeof(value)), int64(unsafe.Alignof(value))
	ptr, err := arena.Allocalign(size, align)
	if err != nil || ptr == nil {
		return nil, err
	}
	obj := (*T)(ptr)
	*obj = value
	return obj, nil
}

// NewSlice allocate a zeroed []T of length n inside arena, len and
// cap of the returned slice are both n.
func NewSlice[T any](arena *Arena, n int64) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	var zero T
	size, align := int64(unsafe.Sizeof(zero)), int64(unsafe.Alignof(zero))
	if size == 0 { // zero sized T occupy no arena space
		return make([]T, n), nil
	}
	ptr, err := arena.Allocalign(size*n, align)
	if err != nil {
		return nil, err
	}
	sl := unsafe.Slice((*T)(ptr), n)
	clear(sl)
	return sl, nil
}

// NewBytes copy src into arena and return the arena backed copy.
func NewBytes(arena *Arena, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	ptr, err := arena.Allocalign(int64(len(src)), 1)
	if err != nil {
		return nil, err
	}
	dst := unsafe.Slice((*byte)(ptr), len(src))
	copy(dst, src)
	return dst, nil
}
