package malloc

import "unsafe"

// osheap is the raw-memory backend behind an arena. allocraw and
// freeraw move whole blocks between the arena and the OS, outside
// the Go heap. basealign is the alignment the backend guarantees
// for block base pointers.
type osheap struct {
	allocraw  func(size int64) (unsafe.Pointer, error)
	freeraw   func(ptr unsafe.Pointer, size int64)
	basealign int64
}
