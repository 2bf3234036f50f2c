package malloc

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Alignment default alignment for Alloc and the typed helpers.
// Allocalign can be used for stricter alignments.
const Alignment = int64(8)

// Defaultblocksize default size of blocks reserved from OS. Can be
// configured via "blocksize" settings while creating a new arena.
const Defaultblocksize = int64(4096)

// Minblocksize minimum configurable block size.
const Minblocksize = int64(8)

// Maxarenasize maximum size of a memory arena. Can be used as default
// capacity for NewArena().
const Maxarenasize = int64(1024 * 1024 * 1024 * 1024)

// Defaultsettings for arena.
//
// "blocksize" (int64, default: Defaultblocksize)
//		Size of blocks reserved from OS. Allocations larger than
//		blocksize get a dedicated block.
//
// "capacity" (int64, default: free system memory)
//		Maximum memory, across all blocks, that arena can reserve
//		from OS.
//
// "allocator" (string, default: "malloc")
//		OS backend to reserve blocks with, can be "malloc" or "mmap".
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	capacity := int64(free)
	if capacity <= 0 || capacity > Maxarenasize {
		capacity = Maxarenasize
	}
	return s.Settings{
		"blocksize": Defaultblocksize,
		"capacity":  capacity,
		"allocator": "malloc",
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
