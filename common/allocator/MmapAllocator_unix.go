//go:build unix

package allocator

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)


//============================================= MmapAllocator


// MmapAllocator
//	An Allocator that keeps its own bookkeeping page - the net node count
//	AllocatedNodes reports - on an anonymous mmap(2) region instead of the Go heap,
//	the way the teacher's MMCMap keeps its meta page mmap'd separately from
//	the B+tree nodes themselves.
//
//	Table memory - the []*T slices actually handed back to callers - is
//	still ordinary Go-heap memory allocated with make(). A []*T slice holds
//	live pointers into the Go heap (children, keys, values), and the garbage
//	collector never scans raw mmap'd pages, so parking the slice headers
//	themselves off-heap would silently break collection of anything only
//	reachable through them. The bookkeeping page holds nothing but a single
//	counter, so it carries no such risk, and is the part of this allocator
//	that benefits from sitting outside the Go heap's scan set on very large
//	tries.
type MmapAllocator[T any] struct {
	heap *HeapAllocator[T]
	page []byte
}

const mmapBookkeepingPageSize = 4096

// NewMmapAllocator
//	Maps an anonymous, zero-filled bookkeeping page and returns an
//	MmapAllocator ready to serve Alloc/Free calls.
func NewMmapAllocator[T any]() (*MmapAllocator[T], error) {
	page, mmapErr := unix.Mmap(-1, 0, mmapBookkeepingPageSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if mmapErr != nil { return nil, fmt.Errorf("mmap bookkeeping page: %w", mmapErr) }

	return &MmapAllocator[T]{ heap: NewHeapAllocator[T](), page: page }, nil
}

// Alloc
//	Allocates a table on the Go heap and records the allocation in the
//	mmap'd bookkeeping page.
func (a *MmapAllocator[T]) Alloc(width int) ([]*T, error) {
	table, allocErr := a.heap.Alloc(width)
	if allocErr != nil { return nil, allocErr }

	a.bumpAllocated(int64(width))
	return table, nil
}

// Free
//	Returns table to the heap and records the release in the mmap'd
//	bookkeeping page.
func (a *MmapAllocator[T]) Free(table []*T) error {
	width := len(table)
	if freeErr := a.heap.Free(table); freeErr != nil { return freeErr }

	a.bumpAllocated(-int64(width))
	return nil
}

// AllocatedNodes
//	Returns the current net count of nodes outstanding, read directly off
//	the mmap'd page.
func (a *MmapAllocator[T]) AllocatedNodes() int64 {
	counter := (*int64)(unsafe.Pointer(&a.page[0]))
	return atomic.LoadInt64(counter)
}

func (a *MmapAllocator[T]) bumpAllocated(delta int64) {
	counter := (*int64)(unsafe.Pointer(&a.page[0]))
	atomic.AddInt64(counter, delta)
}

// Close
//	Unmaps the bookkeeping page. The MmapAllocator must not be used after
//	Close returns.
func (a *MmapAllocator[T]) Close() error {
	return unix.Munmap(a.page)
}
