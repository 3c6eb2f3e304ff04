package tablecache

import (
	"github.com/sirgallo/utils"

	"github.com/sirgallo/hamt/common/allocator"
)


//============================================= WidthPool


// widthPool
//	The allocator for every table of one fixed width. A freed table is
//	pushed onto freelist and handed back out LIFO before a new chunk is ever
//	consulted, exactly as the reference table_allocator: freed blocks are
//	reused first, and only once the freelist is empty does the pool carve a
//	fresh table out of its current chunk (allocating a new, larger chunk
//	once the current one is exhausted).
type widthPool[T any] struct {
	width           int
	initialCapacity int
	allocator       allocator.Allocator[T]
	chunks          []*chunk[T]
	freelist        [][]*T
	stats           Stats
}

func newWidthPool[T any](width, initialCapacity int, alloc allocator.Allocator[T]) *widthPool[T] {
	return &widthPool[T]{ width: width, initialCapacity: initialCapacity, allocator: alloc }
}

func (p *widthPool[T]) alloc() ([]*T, error) {
	if n := len(p.freelist); n > 0 {
		table := p.freelist[n-1]
		p.freelist = p.freelist[:n-1]
		p.stats.FreelistHits++
		return table, nil
	}

	if len(p.chunks) == 0 || p.chunks[len(p.chunks)-1].exhausted() {
		capacity := p.initialCapacity
		if len(p.chunks) > 0 { capacity = p.chunks[len(p.chunks)-1].capacity * 2 }

		next, err := newChunk(p.allocator, p.width, capacity)
		if err != nil { return nil, err }

		p.chunks = append(p.chunks, next)
		p.stats.ChunksAllocated++
	}

	table, _ := p.chunks[len(p.chunks)-1].carve()
	p.stats.TablesCarved++

	return table, nil
}

func (p *widthPool[T]) free(table []*T) error {
	for i := range table { table[i] = utils.GetZero[*T]() }

	p.freelist = append(p.freelist, table)
	p.stats.TablesFreed++

	return nil
}
