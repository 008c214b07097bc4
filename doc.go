// Package arena implements region-based memory allocation: bump
// allocators that serve requests by advancing an offset through
// pre-allocated buffers, with O(1) bulk cleanup instead of per-object
// frees.
//
// # Overview
//
// Two arena kinds are provided:
//
//   - Fixed owns one buffer of a fixed capacity. Allocation fails once
//     the buffer is exhausted.
//   - Growable owns an ordered list of fixed-size pages and appends a
//     page whenever no existing page can serve a request.
//
// Arenas suit workloads that allocate many short-lived objects and drop
// them together: request-scoped scratch space, parser/AST construction,
// batch processing. Individual allocations are never freed; Reset
// invalidates everything at once and keeps the memory for reuse, Release
// returns it to the backing allocator.
//
// # Basic usage
//
//	a, err := arena.NewGrowable(0) // default page size
//	if err != nil {
//		return err
//	}
//	defer a.Release()
//
//	buf, err := a.AllocBytes(1024)   // raw bytes
//	p, err := arena.New[MyStruct](a) // typed, zeroed
//	s, err := arena.MakeSlice[int](a, 100)
//
//	a.Reset() // invalidate everything, keep pages for reuse
//
// # Backing memory
//
// Pages come from a pluggable Allocator. The default HeapAllocator uses
// ordinary Go heap memory. MmapAllocator maps pages anonymously so that
// Release returns memory to the operating system immediately:
//
//	a, err := arena.NewGrowable(1<<20, arena.WithAllocator(arena.MmapAllocator{}))
//
// # Failure model
//
// Operations that can fail return an error and leave the arena
// unchanged: ErrNoSpace when a Fixed arena is out of room, ErrOversize
// when a request exceeds a Growable arena's page size, ErrReleased when
// allocating from a released arena, or the backing allocator's own error
// when page allocation fails. Reset, Release and Remaining never fail
// and are safe on released arenas.
//
// # Thread safety
//
// Fixed and Growable are not goroutine-safe. SafeArena wraps Growable
// with a mutex:
//
//	s, err := arena.NewSafeArena(0)
//	defer s.Release()
//	buf, err := s.AllocBytes(1024)
//
// # Notes
//
//   - Returned memory is valid only while the owning arena is neither
//     reset nor released.
//   - Memory is not zeroed unless allocated via New, MakeSliceZeroed or
//     their Safe variants.
//   - Offsets are not aligned; see the typed helpers for the caveat.
package arena
