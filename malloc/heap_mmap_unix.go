//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd
// +build darwin dragonfly freebsd linux netbsd openbsd

package malloc

import "os"
import "unsafe"

import "golang.org/x/sys/unix"

const mmapok = true

func mmapalloc(size int64) (unsafe.Pointer, error) {
	flags := unix.MAP_ANON | unix.MAP_PRIVATE
	prot := unix.PROT_READ | unix.PROT_WRITE
	data, err := unix.Mmap(-1, 0, int(size), prot, flags)
	if err != nil {
		return nil, ErrorOutofMemory
	}
	return unsafe.Pointer(&data[0]), nil
}

func mmapfree(ptr unsafe.Pointer, size int64) {
	data := unsafe.Slice((*byte)(ptr), size)
	if err := unix.Munmap(data); err != nil {
		panicerr("munmap %v bytes: %v", size, err)
	}
}

func mmapalign() int64 {
	return int64(os.Getpagesize())
}
