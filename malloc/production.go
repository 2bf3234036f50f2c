//go:build !debug
// +build !debug

package malloc

// initblock leave fresh blocks raw, allocations carry garbage until
// written. New[T] and NewSlice[T] zero what they hand out.
func initblock(block uintptr, size int64) {
}
