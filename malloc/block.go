package malloc

import "unsafe"

// memblock is one contiguous region obtained from arena's osheap.
// Allocation within a block only moves the used offset forward,
// individual allocations are never given back.
type memblock struct {
	base     unsafe.Pointer
	capacity int64
	used     int64 // 0 <= used <= capacity
}

func newmemblock(capacity int64, heap *osheap) (*memblock, error) {
	base, err := heap.allocraw(capacity)
	if err != nil {
		return nil, err
	}
	initblock(uintptr(base), capacity)
	return &memblock{base: base, capacity: capacity}, nil
}

// alloc bump the used offset past size bytes on align boundary.
// Returns false, without mutating the block, if the aligned request
// does not fit.
func (blk *memblock) alloc(size, align int64) (unsafe.Pointer, bool) {
	if size > blk.capacity-blk.used {
		return nil, false
	}
	cursor := uintptr(blk.base) + uintptr(blk.used)
	padding := Adjustment(cursor, align)
	if padding+size > blk.capacity-blk.used {
		return nil, false
	}
	blk.used += padding + size
	return unsafe.Pointer(cursor + uintptr(padding)), true
}

func (blk *memblock) available() int64 {
	return blk.capacity - blk.used
}

// reset forget allocations, keep the region.
func (blk *memblock) reset() {
	blk.used = 0
}

// release the region back to OS.
func (blk *memblock) release(heap *osheap) {
	heap.freeraw(blk.base, blk.capacity)
	blk.base, blk.capacity, blk.used = nil, 0, 0
}
