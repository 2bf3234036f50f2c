package malloc

// Alignments are powers of 2 and expressed in bytes. Arithmetic
// is done with bitmasks, (align - 1) masks the offset within an
// alignment boundary.

// Ispowerof2 check whether align is a positive power of 2.
func Ispowerof2(align int64) bool {
	return align > 0 && (align&(align-1)) == 0
}

// Alignup return the smallest address >= ptr that falls on align
// boundary.
func Alignup(ptr uintptr, align int64) uintptr {
	mask := uintptr(align - 1)
	return (ptr + mask) &^ mask
}

// Adjustment return the padding needed at ptr to reach the next
// align boundary, zero if ptr is already aligned.
func Adjustment(ptr uintptr, align int64) int64 {
	return int64(Alignup(ptr, align) - ptr)
}

// Isaligned check whether ptr falls on align boundary.
func Isaligned(ptr uintptr, align int64) bool {
	return (ptr & uintptr(align-1)) == 0
}
