package arena

import "fmt"

// Example demonstrates basic growable arena usage.
func Example() {
	a, _ := NewGrowable(4096)
	defer a.Release()

	buf, _ := a.AllocBytes(1024)
	fmt.Printf("allocated %d bytes, %d remaining\n", len(buf), a.Remaining())

	p, _ := New[int64](a)
	*p = 42
	fmt.Println("typed value:", *p)

	s, _ := MakeSlice[int32](a, 4)
	for i := range s {
		s[i] = int32(i * i)
	}
	fmt.Println("slice:", s)

	fmt.Println("in use:", a.SizeInUse())
	a.Reset()
	fmt.Println("in use after reset:", a.SizeInUse())

	// Output:
	// allocated 1024 bytes, 3072 remaining
	// typed value: 42
	// slice: [0 1 4 9]
	// in use: 1048
	// in use after reset: 0
}

// ExampleFixed shows the fixed arena's exhaustion behavior.
func ExampleFixed() {
	f, _ := NewFixed(1024)
	defer f.Release()

	b, _ := f.AllocBytes(1000)
	fmt.Println("allocated:", len(b), "remaining:", f.Remaining())

	if _, err := f.AllocBytes(100); err != nil {
		fmt.Println("alloc failed:", err)
	}

	f.Reset()
	fmt.Println("remaining after reset:", f.Remaining())

	// Output:
	// allocated: 1000 remaining: 24
	// alloc failed: arena: not enough space
	// remaining after reset: 1024
}

// ExampleGrowable shows growth when the current pages are full.
func ExampleGrowable() {
	a, _ := NewGrowable(4096)
	defer a.Release()

	a.AllocBytes(4095)
	fmt.Println("pages:", a.NumPages(), "remaining:", a.Remaining())

	a.AllocBytes(2) // does not fit in the 1 byte left; a page is added
	fmt.Println("pages:", a.NumPages(), "remaining:", a.Remaining())

	// Output:
	// pages: 1 remaining: 1
	// pages: 2 remaining: 4095
}
