package tablecache

import "github.com/sirgallo/hamt/common/allocator"


//============================================= Chunk


// chunk
//	One contiguous backing allocation carved into capacity separate tables
//	of width elements each, mirroring the reference C table_allocator_chunk
//	(hamt.c/cache.c): rather than asking the backing allocator for one
//	table at a time, a widthPool asks for capacity tables' worth of storage
//	in a single Alloc call and slices pieces off it as callers need them.
type chunk[T any] struct {
	flat     []*T
	width    int
	capacity int
	carved   int
}

func newChunk[T any](alloc allocator.Allocator[T], width, capacity int) (*chunk[T], error) {
	flat, err := alloc.Alloc(width * capacity)
	if err != nil { return nil, err }

	return &chunk[T]{ flat: flat, width: width, capacity: capacity }, nil
}

func (c *chunk[T]) exhausted() bool {
	return c.carved >= c.capacity
}

// carve
//	Slices the next un-carved table out of the chunk's flat backing array.
//	Reports false if the chunk has no tables left to give.
func (c *chunk[T]) carve() ([]*T, bool) {
	if c.exhausted() { return nil, false }

	start := c.carved * c.width
	end := start + c.width
	table := c.flat[start:end:end]
	c.carved++

	return table, true
}
