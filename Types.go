package hamt

import (
	"reflect"

	"github.com/sirgallo/logger"

	"github.com/sirgallo/hamt/common/allocator"
	"github.com/sirgallo/hamt/common/murmur"
	"github.com/sirgallo/hamt/common/tablecache"
)

var cLog = logger.NewCustomLog("hamt")


//============================================= Types


// node
//	A single trie node. Unlike the reference C implementation, which packs a
//	type tag into the low bits of a pointer (hamt_node's is_leaf discipline
//	via tagged pointers), this port uses an explicit isLeaf field - the
//	design spec itself recommends this for languages with discriminated
//	unions, and Go's interface/struct model has no spare pointer bits to
//	steal in the first place.
//
//	Internal nodes use bitmap and children; leaves use key and value. A node
//	is never both.
type node struct {
	isLeaf   bool
	bitmap   uint32
	children []*node
	key      any
	value    any
}

// HashFn
//	Hashes key, salted by generation. generation increases by one every time
//	the trie exhausts a 32-bit hash's six 5-bit levels and needs a fresh,
//	independent-looking hash word for the same key - see hashState in
//	Hash.go. common/murmur.HashKey is a ready-to-use HashFn.
type HashFn func(key any, generation int) uint32

// CmpFn
//	Reports whether a and b are the same key: zero means equal, any nonzero
//	value means not equal. Ordering is never implied or relied upon -
//	iteration order is explicitly unspecified (spec Non-goal).
type CmpFn func(a, b any) int

// Options
//	Construction options for New. New fills in every unset field, so a
//	zero-valued Options is usable; DefaultOptions returns the same choices
//	spelled out, for overriding only the fields that matter.
type Options struct {
	HashFn      HashFn
	CmpFn       CmpFn
	Allocator   allocator.Allocator[node]
	BucketSizes [32]int
}

// DefaultOptions
//	Returns Options wired to common/murmur.HashKey, a reflect.DeepEqual-based
//	CmpFn, a HeapAllocator, and the reference table pool bucket sizing.
func DefaultOptions() Options {
	cfg := tablecache.DefaultConfig[node]()

	return Options{
		HashFn:      murmur.HashKey,
		CmpFn:       defaultCmpFn,
		Allocator:   cfg.Allocator,
		BucketSizes: cfg.BucketSizes,
	}
}

func defaultCmpFn(a, b any) int {
	if reflect.DeepEqual(a, b) { return 0 }
	return 1
}


//============================================= Map


// Map
//	A HAMT-backed associative map. The zero value is not ready to use;
//	construct one with New.
type Map struct {
	root   *node
	size   int
	hashFn HashFn
	cmpFn  CmpFn
	alloc  allocator.Allocator[node]
	cache  *tablecache.Cache[node]
}

// New
//	Constructs an empty Map. A zero-valued opts.HashFn or opts.CmpFn falls
//	back to DefaultOptions' choice; an unset opts.Allocator falls back to a
//	HeapAllocator.
func New(opts Options) *Map {
	if opts.HashFn == nil { opts.HashFn = murmur.HashKey }
	if opts.CmpFn == nil { opts.CmpFn = defaultCmpFn }
	if opts.Allocator == nil { opts.Allocator = allocator.NewHeapAllocator[node]() }

	cfg := tablecache.Config[node]{ BucketSizes: opts.BucketSizes, Allocator: opts.Allocator }

	return &Map{
		root:   &node{ isLeaf: false },
		hashFn: opts.HashFn,
		cmpFn:  opts.CmpFn,
		alloc:  opts.Allocator,
		cache:  tablecache.New(cfg),
	}
}

// Close
//	Releases this Map's hold on its shared table cache. Safe to call more
//	than once; only the last handle sharing a cache has any effect, and even
//	then Close only drops the Cache to the garbage collector - there is no
//	stable-storage handle to flush or release, by design (Non-goal).
func (m *Map) Close() error {
	m.cache.Release()
	m.root = nil
	return nil
}

// Size
//	Returns the number of key/value pairs currently in the map.
func (m *Map) Size() int {
	return m.size
}

func (m *Map) allocTable(width int) ([]*node, error) {
	if width <= 0 { return nil, nil }
	return m.cache.AllocTable(width)
}

func (m *Map) freeTable(table []*node) {
	if len(table) == 0 { return }
	if err := m.cache.FreeTable(table); err != nil { cLog.Error("error freeing table:", err.Error()) }
}
