package arena

// Allocator provides the backing memory for arenas. Implementations hand
// out whole buffers; the arenas carve allocations out of them. Free is
// called at most once per buffer returned by Allocate, always with the
// exact slice Allocate returned.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Free(buf []byte) error
}

// HeapAllocator backs arenas with ordinary Go heap memory. Free is a
// no-op: the garbage collector reclaims a buffer once the arena drops it.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func (HeapAllocator) Free(buf []byte) error { return nil }

// Option configures an arena at construction time.
type Option func(*config)

type config struct {
	alloc Allocator
}

// WithAllocator sets the backing allocator for an arena. The default is
// HeapAllocator.
func WithAllocator(a Allocator) Option {
	return func(c *config) { c.alloc = a }
}

func newConfig(opts []Option) config {
	c := config{alloc: HeapAllocator{}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
