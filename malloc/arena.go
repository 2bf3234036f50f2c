// Functions and methods are not thread safe.

package malloc

import "fmt"
import "unsafe"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Arena defines a growing region of memory, allocations bump a
// cursor through a sequence of blocks reserved from OS. Individual
// allocations cannot be freed, memory is reclaimed in bulk with
// Reset or Release.
type Arena struct {
	blocks []*memblock // arena owns its blocks, ordered by age
	cursor int         // blocks[cursor] is receiving allocations

	// accounting
	nreserved  int64 // bytes reserved from OS across blocks
	nallocated int64 // bytes handed out, padding included

	// settings
	name      string
	blocksize int64  // default size for new blocks
	capacity  int64  // nreserved cannot exceed this limit
	allocator string // os backend, "malloc" or "mmap"
	heap      osheap
	setts     s.Settings
	logprefix string
}

// NewArena create a new arena with given settings. The arena starts
// without any block, the first allocation reserves one.
func NewArena(name string, setts s.Settings) *Arena {
	arena := &Arena{name: name}
	arena.logprefix = fmt.Sprintf("ARNA [%s]", name)
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	arena.readsettings(setts)
	arena.setts = setts
	switch arena.allocator {
	case "malloc":
		arena.heap = osheap{
			allocraw: osmalloc, freeraw: osfree, basealign: Mallocalign,
		}
	case "mmap":
		if mmapok == false {
			panicerr("%q allocator unsupported on this platform", "mmap")
		}
		arena.heap = osheap{
			allocraw: mmapalloc, freeraw: mmapfree, basealign: mmapalign(),
		}
	default:
		panicerr("invalid allocator setting %q", arena.allocator)
	}
	fmsg := "%v started blocksize:%v capacity:%v allocator:%v\n"
	infof(fmsg, arena.logprefix, arena.blocksize, arena.capacity,
		arena.allocator)
	return arena
}

func (arena *Arena) readsettings(setts s.Settings) *Arena {
	arena.blocksize = setts.Int64("blocksize")
	arena.capacity = setts.Int64("capacity")
	arena.allocator = setts.String("allocator")
	if arena.blocksize < Minblocksize {
		panicerr("blocksize %v less than %v", arena.blocksize, Minblocksize)
	} else if arena.capacity > Maxarenasize {
		panicerr("capacity %v exceeds %v", arena.capacity, Maxarenasize)
	} else if arena.blocksize > arena.capacity {
		fmsg := "blocksize %v exceeds capacity %v"
		panicerr(fmsg, arena.blocksize, arena.capacity)
	}
	return arena
}

//---- operations

// Alloc implement api.Mallocer{} interface. Allocated memory is
// Alignment byte aligned.
func (arena *Arena) Alloc(n int64) (unsafe.Pointer, error) {
	return arena.Allocalign(n, Alignment)
}

// Allocalign implement api.Mallocer{} interface. Allocate a chunk of
// `n` bytes aligned to `align` boundary, align should be a positive
// power of 2. Allocating zero bytes returns (nil, nil) and leaves
// the arena untouched.
func (arena *Arena) Allocalign(n, align int64) (unsafe.Pointer, error) {
	if n < 0 {
		panicerr("Allocalign size %v < 0", n)
	} else if n == 0 {
		return nil, nil
	}
	if Ispowerof2(align) == false {
		return nil, ErrorBadalignment
	}
	// bump the current block, else walk cursor over blocks retained
	// by Reset, their space is good to reuse.
	for arena.cursor < len(arena.blocks) {
		blk := arena.blocks[arena.cursor]
		used := blk.used
		if ptr, ok := blk.alloc(n, align); ok {
			arena.nallocated += blk.used - used
			return ptr, nil
		}
		arena.cursor++
	}
	if err := arena.grow(n, align); err != nil {
		return nil, err
	}
	blk := arena.blocks[arena.cursor]
	used := blk.used
	ptr, _ := blk.alloc(n, align) // cannot fail on a fresh block
	arena.nallocated += blk.used - used
	return ptr, nil
}

// grow reserve a new block from OS, sized for the pending request,
// and point cursor at it.
func (arena *Arena) grow(n, align int64) error {
	need := n
	if align > arena.heap.basealign {
		need += align - 1 // worst case padding inside the block
	}
	blockcap := need
	if blockcap < arena.blocksize {
		blockcap = arena.blocksize
	}
	if need < 0 || blockcap > arena.capacity-arena.nreserved {
		return ErrorOutofMemory
	}
	blk, err := newmemblock(blockcap, &arena.heap)
	if err != nil {
		return err
	}
	arena.blocks = append(arena.blocks, blk)
	arena.cursor = len(arena.blocks) - 1
	arena.nreserved += blockcap
	debugf("%v new block %v, %v reserved\n",
		arena.logprefix, blockcap, arena.nreserved)
	return nil
}

// Reset implement api.Mallocer{} interface. Forget every allocation
// made so far, blocks are retained and reused by subsequent
// allocations. Outstanding pointers become dangling.
func (arena *Arena) Reset() {
	for _, blk := range arena.blocks {
		blk.reset()
	}
	arena.cursor, arena.nallocated = 0, 0
}

// Release implement api.Mallocer{} interface. Return every block to
// OS. Release is idempotent, and the arena remains usable, a
// subsequent allocation starts a fresh chain of blocks.
func (arena *Arena) Release() {
	for _, blk := range arena.blocks {
		blk.release(&arena.heap)
	}
	arena.blocks = arena.blocks[:0]
	arena.cursor, arena.nreserved, arena.nallocated = 0, 0, 0
	infof("%v released\n", arena.logprefix)
}

// Adopt transfer ownership of donor's blocks, accounting,
// configuration and backend to this arena, releasing arena's own
// blocks first. Pointers allocated from donor stay valid and are now
// owned by this arena. Donor is left empty and remains usable.
func (arena *Arena) Adopt(donor *Arena) {
	if donor == nil || donor == arena {
		return
	}
	for _, blk := range arena.blocks {
		blk.release(&arena.heap)
	}
	arena.blocks, arena.cursor = donor.blocks, donor.cursor
	arena.nreserved, arena.nallocated = donor.nreserved, donor.nallocated
	arena.blocksize, arena.capacity = donor.blocksize, donor.capacity
	arena.allocator, arena.heap = donor.allocator, donor.heap
	arena.setts = donor.setts
	donor.blocks = nil
	donor.cursor, donor.nreserved, donor.nallocated = 0, 0, 0
}

//---- statistics and maintenance

// Info implement api.Mallocer{} interface.
func (arena *Arena) Info() (capacity, heap, alloc, overhead int64) {
	self := int64(unsafe.Sizeof(*arena))
	slicesz := int64(cap(arena.blocks)) * int64(unsafe.Sizeof(&memblock{}))
	blocksz := int64(len(arena.blocks)) * int64(unsafe.Sizeof(memblock{}))
	overhead = self + slicesz + blocksz
	return arena.capacity, arena.nreserved, arena.nallocated, overhead
}

// Allocated implement api.Mallocer{} interface.
func (arena *Arena) Allocated() int64 {
	return arena.nallocated
}

// Available implement api.Mallocer{} interface.
func (arena *Arena) Available() int64 {
	return arena.capacity - arena.nallocated
}

// Blocks implement api.Mallocer{} interface.
func (arena *Arena) Blocks() int64 {
	return int64(len(arena.blocks))
}

// Utilization implement api.Mallocer{} interface. Ratio between
// bytes handed out and bytes reserved from OS.
func (arena *Arena) Utilization() float64 {
	if arena.nreserved == 0 {
		return 0
	}
	return float64(arena.nallocated) / float64(arena.nreserved)
}

// Logstats log a one line summary of arena's memory footprint.
func (arena *Arena) Logstats() {
	capacity, heap, alloc, overhead := arena.Info()
	fmsg := "%v blocks:%v capacity:%v heap:%v alloc:%v overhead:%v " +
		"utilization:%.2f%%\n"
	infof(fmsg, arena.logprefix, arena.Blocks(),
		humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(heap)),
		humanize.Bytes(uint64(alloc)), humanize.Bytes(uint64(overhead)),
		arena.Utilization()*100)
}
