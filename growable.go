package arena

import "errors"

// ErrOversize is returned for requests larger than a Growable arena's
// page size. No single page could ever hold such a request, so it is
// rejected upfront instead of growing the arena forever.
var ErrOversize = errors.New("arena: request exceeds page size")

// DefaultPageSize is the page size used when none is given (64 KiB).
const DefaultPageSize = 1 << 16

// Growable is a bump allocator over an ordered list of fixed-size pages.
// Requests are served from the first page with room; when no page has
// room, one page is appended. Pages are only ever reclaimed all at once
// by Release. Not goroutine-safe; see SafeArena.
type Growable struct {
	pageSize int
	pages    []Fixed
	alloc    Allocator
}

// NewGrowable returns an arena with a single freshly allocated page of
// pageSize bytes. If pageSize <= 0, DefaultPageSize is used. It fails
// only if the backing allocator cannot provide the first page.
func NewGrowable(pageSize int, opts ...Option) (*Growable, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	cfg := newConfig(opts)
	g := &Growable{pageSize: pageSize, alloc: cfg.alloc}
	if err := g.grow(); err != nil {
		return nil, err
	}
	return g, nil
}

// AllocBytes returns an n-byte slice carved out of the first page with
// room, scanning pages in creation order. Leftover space on early pages
// is reused by later small requests. If no page has room, exactly one
// page is appended and the request is served from it. A failed call
// leaves the arena unchanged, except that a page appended before a
// backing-allocation failure stays part of the arena.
func (g *Growable) AllocBytes(n int) ([]byte, error) {
	if g == nil || g.pages == nil {
		return nil, ErrReleased
	}
	if n > g.pageSize {
		return nil, ErrOversize
	}
	for i := range g.pages {
		if g.pages[i].Remaining() >= n {
			return g.pages[i].AllocBytes(n)
		}
	}
	if err := g.grow(); err != nil {
		return nil, err
	}
	// The new page is empty and n <= pageSize, so this cannot fail.
	return g.pages[len(g.pages)-1].AllocBytes(n)
}

// Reserve guarantees that a following AllocBytes(n) will succeed without
// growing the arena, appending at most one page to make it so.
func (g *Growable) Reserve(n int) error {
	if g == nil || g.pages == nil {
		return ErrReleased
	}
	if n > g.pageSize {
		return ErrOversize
	}
	for i := range g.pages {
		if g.pages[i].Remaining() >= n {
			return nil
		}
	}
	return g.grow()
}

// Reset rewinds every page's offset to zero. The page count is
// unchanged, so the arena keeps its capacity for reuse. Every slice
// previously returned by AllocBytes becomes invalid.
func (g *Growable) Reset() {
	if g == nil {
		return
	}
	for i := range g.pages {
		g.pages[i].Reset()
	}
}

// Release returns every page's buffer to the allocator and drops the
// page list, leaving the arena unusable. Calling it again is a no-op.
func (g *Growable) Release() {
	if g == nil || g.pages == nil {
		return
	}
	for i := range g.pages {
		g.pages[i].Release()
	}
	g.pages = nil
}

// Remaining returns the total bytes still available across all pages.
// It is zero for an uninitialized or released arena.
func (g *Growable) Remaining() int {
	if g == nil {
		return 0
	}
	sum := 0
	for i := range g.pages {
		sum += g.pages[i].Remaining()
	}
	return sum
}

// grow appends one empty page of pageSize bytes.
func (g *Growable) grow() error {
	buf, err := g.alloc.Allocate(g.pageSize)
	if err != nil {
		return err
	}
	g.pages = append(g.pages, Fixed{data: buf, alloc: g.alloc})
	return nil
}
