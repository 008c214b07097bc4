package arena

import "errors"

var (
	// ErrNoSpace is returned when a request does not fit in the arena's
	// remaining capacity.
	ErrNoSpace = errors.New("arena: not enough space")

	// ErrReleased is returned when allocating from a released or
	// uninitialized arena.
	ErrReleased = errors.New("arena: released")
)

// Fixed is a bump allocator over a single fixed-size buffer. Allocations
// advance an offset through the buffer and are never individually freed;
// Reset rewinds the offset and Release drops the buffer for good.
//
// The zero value is an uninitialized arena: AllocBytes fails with
// ErrReleased, and Reset, Release and Remaining are safe no-ops.
// Not goroutine-safe.
type Fixed struct {
	data  []byte
	off   int
	alloc Allocator
}

// NewFixed returns an arena over a freshly allocated capacity-byte buffer.
// It fails if the capacity is negative or the backing allocator cannot
// provide the buffer.
func NewFixed(capacity int, opts ...Option) (*Fixed, error) {
	if capacity < 0 {
		return nil, ErrNoSpace
	}
	cfg := newConfig(opts)
	buf, err := cfg.alloc.Allocate(capacity)
	if err != nil {
		return nil, err
	}
	return &Fixed{data: buf, alloc: cfg.alloc}, nil
}

// AllocBytes returns an n-byte slice carved out of the arena's buffer.
// The memory is not zeroed and never overlaps earlier allocations until
// the arena is reset. A failed call leaves the arena unchanged.
// n == 0 returns a valid empty slice.
func (f *Fixed) AllocBytes(n int) ([]byte, error) {
	if f == nil || f.data == nil {
		return nil, ErrReleased
	}
	// Compare against the free space rather than f.off+n, which can
	// overflow for huge n.
	if n < 0 || n > len(f.data)-f.off {
		return nil, ErrNoSpace
	}
	b := f.data[f.off : f.off+n : f.off+n]
	f.off += n
	return b, nil
}

// Reset rewinds the allocation offset to zero. Every slice previously
// returned by AllocBytes becomes invalid: later allocations will reuse
// its bytes. The buffer contents are not cleared.
func (f *Fixed) Reset() {
	if f == nil {
		return
	}
	f.off = 0
}

// Release returns the backing buffer to the allocator and leaves the
// arena in the uninitialized state. Calling it again is a no-op.
// Errors from the backing allocator are discarded; the arena is
// unusable either way.
func (f *Fixed) Release() {
	if f == nil || f.data == nil {
		return
	}
	buf := f.data
	f.data = nil
	f.off = 0
	if f.alloc != nil {
		_ = f.alloc.Free(buf)
	}
}

// Remaining returns the number of bytes still available for allocation.
// It is zero for an uninitialized or released arena.
func (f *Fixed) Remaining() int {
	if f == nil {
		return 0
	}
	return len(f.data) - f.off
}
