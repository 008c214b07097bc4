package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Growable for concurrent
// access. All operations are thread-safe but pay for mutex locking.
type SafeArena struct {
	mu sync.Mutex
	g  *Growable
}

// NewSafeArena creates a thread-safe arena with the given page size.
// If pageSize <= 0, DefaultPageSize is used.
func NewSafeArena(pageSize int, opts ...Option) (*SafeArena, error) {
	g, err := NewGrowable(pageSize, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeArena{g: g}, nil
}

// AllocBytes thread-safely allocates n bytes from the arena.
func (s *SafeArena) AllocBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.AllocBytes(n)
}

// Reserve thread-safely guarantees room for a following n-byte allocation.
func (s *SafeArena) Reserve(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Reserve(n)
}

// Reset thread-safely rewinds every page for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.Reset()
}

// Release thread-safely drops all pages and makes the arena unusable.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.Release()
}

// Remaining thread-safely returns the total bytes still available.
func (s *SafeArena) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Remaining()
}

// Generic allocation helpers for SafeArena.

// SafeNew thread-safely returns a pointer to a zeroed T inside the arena.
func SafeNew[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return New[T](s.g)
}

// SafeNewUninitialized thread-safely returns a *T without zeroing memory.
func SafeNewUninitialized[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewUninitialized[T](s.g)
}

// SafeMakeSlice thread-safely allocates a slice of n elements of type T.
func SafeMakeSlice[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MakeSlice[T](s.g, n)
}

// SafeMakeSliceZeroed thread-safely allocates a zeroed slice of n elements.
func SafeMakeSliceZeroed[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return MakeSliceZeroed[T](s.g, n)
}
