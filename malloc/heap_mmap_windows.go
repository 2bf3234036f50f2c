//go:build windows
// +build windows

package malloc

import "unsafe"

const mmapok = false

func mmapalloc(size int64) (unsafe.Pointer, error) {
	panicerr("mmap allocator unsupported on windows")
	return nil, nil
}

func mmapfree(ptr unsafe.Pointer, size int64) {
	panicerr("mmap allocator unsupported on windows")
}

func mmapalign() int64 {
	return 4096
}
