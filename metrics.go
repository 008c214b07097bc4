package arena

// Capacity returns the size of the backing buffer in bytes, or 0 for an
// uninitialized or released arena.
func (f *Fixed) Capacity() int {
	if f == nil {
		return 0
	}
	return len(f.data)
}

// SizeInUse returns the number of bytes allocated since the last reset.
func (f *Fixed) SizeInUse() int {
	if f == nil {
		return 0
	}
	return f.off
}

// SizeInUse returns the total number of bytes allocated across all pages
// since the last reset.
func (g *Growable) SizeInUse() int {
	if g == nil {
		return 0
	}
	sum := 0
	for i := range g.pages {
		sum += g.pages[i].SizeInUse()
	}
	return sum
}

// NumPages returns the number of pages currently owned by the arena.
func (g *Growable) NumPages() int {
	if g == nil {
		return 0
	}
	return len(g.pages)
}

// Capacity returns the total capacity in bytes of all pages.
func (g *Growable) Capacity() int {
	if g == nil {
		return 0
	}
	return len(g.pages) * g.pageSize
}

// PageSize returns the page size used by this arena.
func (g *Growable) PageSize() int {
	if g == nil {
		return 0
	}
	return g.pageSize
}

// Utilization returns the ratio of bytes in use to total capacity
// (0.0 to 1.0). Returns 0.0 if the arena has no capacity.
func (g *Growable) Utilization() float64 {
	capacity := g.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(g.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (g *Growable) Metrics() Metrics {
	return Metrics{
		SizeInUse:   g.SizeInUse(),
		Remaining:   g.Remaining(),
		Capacity:    g.Capacity(),
		NumPages:    g.NumPages(),
		PageSize:    g.PageSize(),
		Utilization: g.Utilization(),
	}
}

// Metrics contains statistical information about a Growable arena.
type Metrics struct {
	SizeInUse   int     // bytes currently allocated
	Remaining   int     // bytes still available across all pages
	Capacity    int     // total capacity in bytes
	NumPages    int     // number of pages
	PageSize    int     // page size in bytes
	Utilization float64 // ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena.

// SizeInUse thread-safely returns the total number of bytes allocated.
func (s *SafeArena) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.SizeInUse()
}

// NumPages thread-safely returns the number of pages.
func (s *SafeArena) NumPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.NumPages()
}

// Capacity thread-safely returns the total capacity of all pages.
func (s *SafeArena) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Capacity()
}

// PageSize thread-safely returns the page size.
func (s *SafeArena) PageSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.PageSize()
}

// Utilization thread-safely returns the ratio of used to total capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Metrics()
}
