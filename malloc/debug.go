//go:build debug
// +build debug

package malloc

import "unsafe"

// initblock poison fresh blocks with 0xff, stale reads after Reset
// stand out in debug builds.
func initblock(block uintptr, size int64) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(block)), size)
	for len(dst) >= len(blkpoison) {
		copy(dst, blkpoison)
		dst = dst[len(blkpoison):]
	}
	copy(dst, blkpoison[:len(dst)])
}
