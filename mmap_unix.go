//go:build unix

package arena

import "golang.org/x/sys/unix"

// MmapAllocator backs arenas with anonymous private mappings. Unlike
// HeapAllocator, Free returns the memory to the operating system
// immediately, so releasing an arena has a visible effect on the
// process footprint. Allocation failure (ENOMEM) surfaces as an error.
type MmapAllocator struct{}

func (MmapAllocator) Allocate(size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
}

func (MmapAllocator) Free(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	return unix.Munmap(buf)
}
