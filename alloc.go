package arena

import (
	"runtime"
	"unsafe"
)

// ByteArena is the allocation surface shared by Fixed and Growable.
// The typed helpers below work against either.
type ByteArena interface {
	AllocBytes(n int) ([]byte, error)
}

// Offsets are not aligned: the helpers assume the platform tolerates
// unaligned access, which holds on amd64 and arm64. Callers on stricter
// platforms should size their allocations to keep T's alignment.

// New returns a pointer to a zeroed T stored inside the arena. The
// pointer is valid until the arena is reset or released.
func New[T any](a ByteArena) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	b, err := a.AllocBytes(size)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return new(T), nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// NewUninitialized is like New but skips zeroing. The contents of the
// returned T are undefined.
func NewUninitialized[T any](a ByteArena) (*T, error) {
	var zero T
	size := int(unsafe.Sizeof(zero))
	b, err := a.AllocBytes(size)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return new(T), nil
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// MakeSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Returns nil, nil if n <= 0.
func MakeSlice[T any](a ByteArena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	total := int(unsafe.Sizeof(zero)) * n
	b, err := a.AllocBytes(total)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return make([]T, n), nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// MakeSliceZeroed is like MakeSlice but zeroes the elements.
func MakeSliceZeroed[T any](a ByteArena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	total := int(unsafe.Sizeof(zero)) * n
	b, err := a.AllocBytes(total)
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return make([]T, n), nil
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// KeepAlive returns t and calls runtime.KeepAlive on the arena. Useful
// to prevent the arena from being collected while a pointer into it is
// still in use by unsafe code.
func KeepAlive[T any](a ByteArena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
