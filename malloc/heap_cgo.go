package malloc

//#include <stdlib.h>
import "C"

import "unsafe"

// Mallocalign alignment guaranteed by the "malloc" backend for
// block base pointers.
const Mallocalign = int64(16)

func osmalloc(size int64) (unsafe.Pointer, error) {
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil, ErrorOutofMemory
	}
	return ptr, nil
}

func osfree(ptr unsafe.Pointer, size int64) {
	C.free(ptr)
}
