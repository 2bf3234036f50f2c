// Package vector provide a growable sequence container backed by
// arena memory. Element types inherit the arena contract, they must
// not hold pointers into the Go heap.
package vector

import "fmt"

import "github.com/bnclabs/goarena/malloc"

const mincapacity = int64(8)

// Vector of T elements, storage is allocated through malloc.Adapter
// and grows by doubling. Growing never frees the previous storage,
// the backing arena reclaims it in bulk on Reset or Release.
type Vector[T any] struct {
	adapter malloc.Adapter[T]
	items   []T // arena backed storage, len(items) is the capacity
	n       int64
}

// New create an empty vector with initial capacity over adapter.
func New[T any](adapter malloc.Adapter[T], capacity int64) (*Vector[T], error) {
	items, err := adapter.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{adapter: adapter, items: items}, nil
}

// Append vals at the end of the vector, growing storage as needed.
func (v *Vector[T]) Append(vals ...T) error {
	need := v.n + int64(len(vals))
	if need > v.Cap() {
		if err := v.grow(need); err != nil {
			return err
		}
	}
	copy(v.items[v.n:], vals)
	v.n = need
	return nil
}

func (v *Vector[T]) grow(need int64) error {
	newcap := v.Cap() * 2
	if newcap < mincapacity {
		newcap = mincapacity
	}
	for newcap < need {
		newcap *= 2
	}
	items, err := v.adapter.Allocate(newcap)
	if err != nil {
		return err
	}
	copy(items, v.items[:v.n])
	v.adapter.Deallocate(v.items, v.Cap())
	v.items = items
	return nil
}

// At return the i-th element, panics when i is out of range.
func (v *Vector[T]) At(i int64) T {
	if i < 0 || i >= v.n {
		panic(fmt.Errorf("vector index %v out of range %v", i, v.n))
	}
	return v.items[i]
}

// Set overwrite the i-th element, panics when i is out of range.
func (v *Vector[T]) Set(i int64, val T) {
	if i < 0 || i >= v.n {
		panic(fmt.Errorf("vector index %v out of range %v", i, v.n))
	}
	v.items[i] = val
}

// Len return number of elements in the vector.
func (v *Vector[T]) Len() int64 {
	return v.n
}

// Cap return number of elements the vector can hold before growing.
func (v *Vector[T]) Cap() int64 {
	return int64(len(v.items))
}

// Slice return live elements as a Go slice, sharing arena storage
// with the vector. The slice stays in sync until the next growth
// and stays valid until the backing arena is Reset or Released.
func (v *Vector[T]) Slice() []T {
	return v.items[:v.n]
}
