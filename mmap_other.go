//go:build !unix

package arena

// MmapAllocator degrades to heap allocation on platforms without
// anonymous mappings.
type MmapAllocator struct{}

func (MmapAllocator) Allocate(size int) ([]byte, error) {
	return HeapAllocator{}.Allocate(size)
}

func (MmapAllocator) Free(buf []byte) error {
	return HeapAllocator{}.Free(buf)
}
