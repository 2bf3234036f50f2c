package malloc

import "unsafe"

import "github.com/bnclabs/goarena/api"

// Adapter binds element type T to an allocator, containers hold the
// adapter and stay unaware of arena details. Adapters of the same
// element type compare equal, with ==, when bound to the same
// allocator, use Same() across element types.
type Adapter[T any] struct {
	m api.Mallocer
}

// Adapt construct an adapter for element type T over mallocer.
func Adapt[T any](m api.Mallocer) Adapter[T] {
	if m == nil {
		panicerr("Adapt: nil mallocer")
	}
	return Adapter[T]{m: m}
}

// Allocate storage for n elements of T from the bound allocator,
// aligned for T. Contents are not initialized. Allocating zero
// elements returns a nil slice.
func (a Adapter[T]) Allocate(n int64) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	var zero T
	size, align := int64(unsafe.Sizeof(zero)), int64(unsafe.Alignof(zero))
	if size == 0 { // zero sized T occupy no arena space
		return make([]T, n), nil
	}
	ptr, err := a.m.Allocalign(size*n, align)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(ptr), n), nil
}

// Deallocate is a no-op, elements go back to the allocator only in
// bulk, with Reset or Release. The signature mirrors Allocate so
// containers can pair every Allocate with a Deallocate.
func (a Adapter[T]) Deallocate(elems []T, n int64) {
}

// Mallocer return the allocator this adapter is bound to.
func (a Adapter[T]) Mallocer() api.Mallocer {
	return a.m
}

// Rebind construct an adapter for element type U bound to the same
// allocator as a.
func Rebind[T, U any](a Adapter[T]) Adapter[U] {
	return Adapter[U]{m: a.m}
}

// Same check whether two adapters, possibly of different element
// types, are bound to the same allocator. Adapters bound to the
// same allocator are interchangeable, memory allocated through one
// can be deallocated through the other.
func Same[T, U any](a Adapter[T], b Adapter[U]) bool {
	return a.m == b.m
}
