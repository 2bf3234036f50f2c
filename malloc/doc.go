// Package malloc supplies bump allocation over arenas of memory,
// with a limited scope:
//
//  * Types and Functions exported by this package are not thread safe.
//  * Individual allocations cannot be freed, memory is reclaimed in
//    bulk, arena-wide, with Reset or Release.
//  * Memory is reserved from OS in blocks, of several Kilobytes,
//    allocations bump a cursor through the current block and blocks
//    are chained as demand grows.
//  * Growing never moves memory, pointers stay valid until the
//    arena is Reset or Released.
//  * Arena memory is outside the Go heap, values stored in it must
//    not hold pointers into the Go heap.
//  * Allocations are 64-bit aligned by default, stricter alignments
//    with Allocalign.
//
// Arena starts empty and reserves blocks as allocations demand,
// every block is at least "blocksize" bytes and requests larger
// than that get a dedicated block. Reset keeps the blocks around
// and reuses them, the allocation pattern of a workload warms the
// arena once and later iterations allocate without OS calls.
//
// Two OS backends reserve block memory, "malloc" over the C
// allocator and "mmap" over anonymous memory maps, selected with
// the "allocator" settings while creating the arena. Arenas never
// install finalizers, call Release to return block memory to the OS.
package malloc
