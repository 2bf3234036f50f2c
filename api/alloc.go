// Package api define types and interfaces common to memory
// allocators implemented by this library.
package api

import "unsafe"

// Mallocer interface for custom memory management.
type Mallocer interface {
	// Alloc a chunk of `n` bytes from arena. Allocated memory
	// is always 64-bit aligned.
	Alloc(n int64) (unsafe.Pointer, error)

	// Allocalign a chunk of `n` bytes aligned to `align` boundary,
	// align should be a positive power of 2.
	Allocalign(n, align int64) (unsafe.Pointer, error)

	// Reset forget every allocation made so far, memory is retained
	// and reused by subsequent allocations.
	Reset()

	// Release arena and all its resources back to OS.
	Release()

	// Info of memory accounting for this arena.
	Info() (capacity, heap, alloc, overhead int64)

	// Allocated return bytes allocated out of heap memory.
	Allocated() int64

	// Available return free bytes within arena's capacity.
	Available() int64

	// Blocks return number of blocks reserved from OS.
	Blocks() int64

	// Utilization ratio between allocated bytes and heap memory.
	Utilization() float64
}
