package allocator

import "testing"

type testNode struct {
	key   string
	value int
}

func TestHeapAllocatorAlloc(t *testing.T) {
	heap := NewHeapAllocator[testNode]()

	table, err := heap.Alloc(4)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if len(table) != 4 { t.Fatalf("expected width 4, got %d", len(table)) }

	for i, entry := range table {
		if entry != nil { t.Fatalf("expected zero valued entry at %d, got %v", i, entry) }
	}
}

func TestHeapAllocatorAllocZeroWidth(t *testing.T) {
	heap := NewHeapAllocator[testNode]()

	table, err := heap.Alloc(0)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if table != nil { t.Fatalf("expected nil table for zero width, got %v", table) }
}

func TestHeapAllocatorFree(t *testing.T) {
	heap := NewHeapAllocator[testNode]()

	table, _ := heap.Alloc(2)
	table[0] = &testNode{ key: "a" }
	table[1] = &testNode{ key: "b" }

	if err := heap.Free(table); err != nil { t.Fatalf("unexpected error: %v", err) }

	for i, entry := range table {
		if entry != nil { t.Fatalf("expected entry %d cleared after Free, got %v", i, entry) }
	}
}
