//go:build unix

package allocator

import "testing"


func TestMmapAllocatorAllocFree(t *testing.T) {
	mmapAlloc, err := NewMmapAllocator[testNode]()
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	defer mmapAlloc.Close()

	table, allocErr := mmapAlloc.Alloc(8)
	if allocErr != nil { t.Fatalf("unexpected error: %v", allocErr) }
	if len(table) != 8 { t.Fatalf("expected width 8, got %d", len(table)) }

	if got := mmapAlloc.AllocatedNodes(); got != 8 { t.Fatalf("expected 8 allocated nodes, got %d", got) }

	if freeErr := mmapAlloc.Free(table); freeErr != nil { t.Fatalf("unexpected error: %v", freeErr) }
	if got := mmapAlloc.AllocatedNodes(); got != 0 { t.Fatalf("expected 0 allocated nodes after free, got %d", got) }
}

func TestMmapAllocatorBookkeepingAccumulates(t *testing.T) {
	mmapAlloc, err := NewMmapAllocator[testNode]()
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	defer mmapAlloc.Close()

	for i := 0; i < 10; i++ {
		if _, allocErr := mmapAlloc.Alloc(3); allocErr != nil { t.Fatalf("unexpected error: %v", allocErr) }
	}

	if got := mmapAlloc.AllocatedNodes(); got != 30 { t.Fatalf("expected 30 allocated nodes, got %d", got) }
}
