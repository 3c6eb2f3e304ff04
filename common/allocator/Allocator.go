package allocator

import "github.com/sirgallo/utils"


//============================================= Allocator


// Allocator
//	The backing allocator contract for the table pool (common/tablecache).
//	T is the trie node type; the allocator never looks inside it, so it is
//	parameterized the way github.com/sirgallo/utils parameterizes its
//	generic helpers rather than tied to a concrete node type, which would
//	force common/allocator to import the root hamt package.
//
//	A table pool never asks an Allocator to resize a block in place - table
//	widths are fixed once a table is allocated, and growth/shrink always
//	replaces one table with a freshly allocated one of the new width. This
//	means, unlike the C reference's malloc/realloc/free triple, an Allocator
//	only needs Alloc and Free.
type Allocator[T any] interface {
	// Alloc
	//	Returns a new slice of exactly width nodes, zero valued.
	Alloc(width int) ([]*T, error)

	// Free
	//	Returns a table to the allocator. The allocator may retain the
	//	backing array for reuse; callers must not touch table after Free.
	Free(table []*T) error
}


//============================================= HeapAllocator


// HeapAllocator
//	The default Allocator. Tables are ordinary Go-heap slices; Free clears
//	the slice and lets the garbage collector reclaim it once the table
//	pool's own freelist also drops its reference. This is the allocator
//	used when a Config leaves its Allocator field unset.
type HeapAllocator[T any] struct{}

// NewHeapAllocator
//	Constructs a HeapAllocator for node type T.
func NewHeapAllocator[T any]() *HeapAllocator[T] {
	return &HeapAllocator[T]{}
}

// Alloc
//	Allocates a zero-valued table of the given width on the Go heap.
func (a *HeapAllocator[T]) Alloc(width int) ([]*T, error) {
	if width <= 0 { return nil, nil }
	return make([]*T, width), nil
}

// Free
//	Clears every slot so the garbage collector can reclaim what they
//	pointed to even if the now-empty slice itself is retained by a freelist.
func (a *HeapAllocator[T]) Free(table []*T) error {
	for i := range table { table[i] = utils.GetZero[*T]() }
	return nil
}
