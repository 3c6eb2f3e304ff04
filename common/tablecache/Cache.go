package tablecache

import (
	"fmt"
	"sync/atomic"

	"github.com/sirgallo/logger"
)

var cLog = logger.NewCustomLog("tablecache")


//============================================= Cache


// maxWidth
//	Tables range from width 1 (a single child) to width 32 (a full 5-bit
//	level), one widthPool per width.
const maxWidth = 32

// Cache
//	The table pool allocator (spec §4.7): 32 widthPools, one per table
//	width, each independently chunked and freelisted. A Cache is shared
//	across every Map descended from a common root via persistent operations
//	(spec §5) and is reference counted so the backing storage is only
//	released once the last descendant Map releases it.
type Cache[T any] struct {
	pools    [maxWidth]*widthPool[T]
	refcount int32
}

// New
//	Builds a Cache with a fresh refcount of 1.
func New[T any](cfg Config[T]) *Cache[T] {
	alloc := cfg.Allocator

	c := &Cache[T]{ refcount: 1 }
	for width := 1; width <= maxWidth; width++ {
		c.pools[width-1] = newWidthPool[T](width, cfg.bucketSize(width), alloc)
	}

	return c
}

// AllocTable
//	Returns a zero-valued table of the given width, reused from the
//	matching widthPool's freelist when possible.
func (c *Cache[T]) AllocTable(width int) ([]*T, error) {
	if width < 1 || width > maxWidth {
		return nil, fmt.Errorf("tablecache: width %d out of range [1,%d]", width, maxWidth)
	}

	table, err := c.pools[width-1].alloc()
	if err != nil {
		cLog.Error("failed to allocate table of width ", width, ":", err.Error())
		return nil, err
	}

	return table, nil
}

// FreeTable
//	Returns table to its widthPool's freelist. The width is taken from
//	len(table), since a table's width never changes between allocation and
//	release.
func (c *Cache[T]) FreeTable(table []*T) error {
	width := len(table)
	if width < 1 || width > maxWidth { return nil }

	if err := c.pools[width-1].free(table); err != nil {
		cLog.Error("failed to free table of width ", width, ":", err.Error())
		return err
	}

	return nil
}

// Stats
//	Returns a snapshot of the allocation counters for the given width.
func (c *Cache[T]) Stats(width int) Stats {
	if width < 1 || width > maxWidth { return Stats{} }
	return c.pools[width-1].stats
}

// Retain
//	Increments the reference count. Called whenever a persistent operation
//	hands back a new Map that shares this Cache with its predecessor.
func (c *Cache[T]) Retain() {
	atomic.AddInt32(&c.refcount, 1)
}

// Release
//	Decrements the reference count and reports whether it reached zero -
//	meaning the caller released the last Map handle sharing this Cache and
//	may discard it. Release never frees the widthPools' chunks itself; once
//	every handle is gone, the Cache (and the chunks its pools hold) simply
//	becomes unreachable and is reclaimed by the garbage collector, same as
//	the teacher's reference-counted caches.
func (c *Cache[T]) Release() bool {
	return atomic.AddInt32(&c.refcount, -1) == 0
}
