package tablecache

import "github.com/sirgallo/hamt/common/allocator"


//============================================= Config


// defaultBucketSizes
//	The initial chunk capacity (number of tables, not bytes) for each of the
//	32 width pools, ported verbatim from the reference C table cache's
//	default bucket sizing (cache.c, hamt_table_cache_default_bucket_sizes).
//	Index i is the starting capacity for tables of width i+1. Widths 2-7 get
//	the largest initial chunks (15000 to 338900 tables); width 1 starts at
//	10000, and widths 8-32 start between 4200 and 9900.
var defaultBucketSizes = [32]int{
	10000, 338900, 220200, 155800, 86700, 39500, 15000, 4900,
	4900, 5200, 5000, 4900, 4700, 4600, 4600, 4600,
	4200, 4600, 4700, 4300, 4600, 4800, 4500, 5100,
	5100, 5300, 5500, 5900, 7000, 8000, 9900, 6900,
}

// Config
//	Construction options for a Cache[T]. BucketSizes[i] is the initial chunk
//	capacity for width i+1; a Cache with a zero-valued BucketSizes entry
//	falls back to the matching entry of defaultBucketSizes for that width.
type Config[T any] struct {
	BucketSizes [32]int
	Allocator   allocator.Allocator[T]
}

// DefaultConfig
//	Returns a Config using the reference bucket sizes and a HeapAllocator.
func DefaultConfig[T any]() Config[T] {
	return Config[T]{
		BucketSizes: defaultBucketSizes,
		Allocator:   allocator.NewHeapAllocator[T](),
	}
}

func (cfg Config[T]) bucketSize(width int) int {
	if cfg.BucketSizes[width-1] <= 0 { return defaultBucketSizes[width-1] }
	return cfg.BucketSizes[width-1]
}
