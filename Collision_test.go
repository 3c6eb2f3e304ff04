package hamt

import "testing"


// collisionHashFn forces "collideA" and "collideB" to share every 5-bit
// slice of generation 0 (all six levels resolve to index 0), so inserting
// both exercises buildSplitSpine's recursive descent through a full
// generation and the hash state's regeneration at generation 1, where the
// two keys finally diverge (index 1 vs index 2).
func collisionHashFn(key any, generation int) uint32 {
	switch key {
		case "collideA":
			if generation == 0 { return 0 }
			return 1
		case "collideB":
			if generation == 0 { return 0 }
			return 2
		default:
			return murmurFallbackHash(key, generation)
	}
}

func murmurFallbackHash(key any, generation int) uint32 {
	s, _ := key.(string)
	h := uint32(2166136261) ^ uint32(generation)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

func newCollisionTestMap() *Map {
	opts := DefaultOptions()
	opts.HashFn = collisionHashFn
	return New(opts)
}

// splitLevelHashFn gives "splitA" and "splitB" the same level-0 index (1)
// but different level-1 indices (1 and 2), so the two keys collide at the
// level where they're first inserted and must diverge on the very next
// level - unlike collisionHashFn, where every level-0 shift resolves to the
// same index (0) regardless of whether buildSplitSpine starts comparing
// before or after advancing past the level where the collision was found.
func splitLevelHashFn(key any, generation int) uint32 {
	switch key {
		case "splitA":
			if generation == 0 { return 0x21 }
			return murmurFallbackHash(key, generation)
		case "splitB":
			if generation == 0 { return 0x41 }
			return murmurFallbackHash(key, generation)
		default:
			return murmurFallbackHash(key, generation)
	}
}

func newSplitLevelTestMap() *Map {
	opts := DefaultOptions()
	opts.HashFn = splitLevelHashFn
	return New(opts)
}

func TestCollisionSplitsOnNextLevelNotCurrentLevel(t *testing.T) {
	m := newSplitLevelTestMap()

	if _, existed, err := m.Put("splitA", "A"); err != nil || existed { t.Fatalf("unexpected put: existed=%v err=%v", existed, err) }
	if _, existed, err := m.Put("splitB", "B"); err != nil || existed { t.Fatalf("unexpected put: existed=%v err=%v", existed, err) }

	if value, ok := m.Get("splitA"); !ok || value != "A" { t.Fatalf("expected splitA=A, got %v ok=%v", value, ok) }
	if value, ok := m.Get("splitB"); !ok || value != "B" { t.Fatalf("expected splitB=B, got %v ok=%v", value, ok) }
	if m.Size() != 2 { t.Fatalf("expected size 2, got %d", m.Size()) }

	if removed, existed, err := m.Delete("splitA"); err != nil || !existed || removed != "A" {
		t.Fatalf("unexpected delete: removed=%v existed=%v err=%v", removed, existed, err)
	}
	if value, ok := m.Get("splitB"); !ok || value != "B" { t.Fatalf("expected splitB to survive gather, got %v ok=%v", value, ok) }
}

// cascadeHashFn gives "cascadeA" and "cascadeB" the same level-0 and
// level-1 index (1 and 3), diverging only at level-2 (1 vs 2). Splitting
// them leaves a single-entry node (level-1) wrapping a two-entry node
// (level-2) - a chain two levels deep, so deleting one key should collapse
// both levels in sequence, not just the innermost one.
func cascadeHashFn(key any, generation int) uint32 {
	switch key {
		case "cascadeA":
			if generation == 0 { return 0x461 }
			return murmurFallbackHash(key, generation)
		case "cascadeB":
			if generation == 0 { return 0x861 }
			return murmurFallbackHash(key, generation)
		default:
			return murmurFallbackHash(key, generation)
	}
}

func newCascadeTestMap() *Map {
	opts := DefaultOptions()
	opts.HashFn = cascadeHashFn
	return New(opts)
}

func TestDeleteCollapsesChainOfGatheredNodes(t *testing.T) {
	m := newCascadeTestMap()

	m.Put("cascadeA", "A")
	m.Put("cascadeB", "B")

	rootIndex := cascadeHashFn("cascadeA", 0) & 0x1f
	pos := posFor(m.root.bitmap, rootIndex)
	if m.root.children[pos].isLeaf { t.Fatalf("expected a split spine under the root before delete") }

	if removed, existed, err := m.Delete("cascadeA"); err != nil || !existed || removed != "A" {
		t.Fatalf("unexpected delete: removed=%v existed=%v err=%v", removed, existed, err)
	}

	pos = posFor(m.root.bitmap, rootIndex)
	child := m.root.children[pos]
	if !child.isLeaf { t.Fatalf("expected the gather to collapse the entire spine up to the root, got an internal node") }
	if child.key != "cascadeB" || child.value != "B" { t.Fatalf("expected gathered leaf to be cascadeB=B, got %v=%v", child.key, child.value) }

	if value, ok := m.Get("cascadeB"); !ok || value != "B" { t.Fatalf("expected cascadeB=B, got %v ok=%v", value, ok) }
	if m.Size() != 1 { t.Fatalf("expected size 1, got %d", m.Size()) }
}

func TestCascadingCollisionAcrossGeneration(t *testing.T) {
	m := newCollisionTestMap()

	if _, existed, err := m.Put("collideA", "A"); err != nil || existed { t.Fatalf("unexpected put: existed=%v err=%v", existed, err) }
	if _, existed, err := m.Put("collideB", "B"); err != nil || existed { t.Fatalf("unexpected put: existed=%v err=%v", existed, err) }

	if value, ok := m.Get("collideA"); !ok || value != "A" { t.Fatalf("expected collideA=A, got %v ok=%v", value, ok) }
	if value, ok := m.Get("collideB"); !ok || value != "B" { t.Fatalf("expected collideB=B, got %v ok=%v", value, ok) }
	if m.Size() != 2 { t.Fatalf("expected size 2, got %d", m.Size()) }
}

func TestCascadingCollisionDeleteGather(t *testing.T) {
	m := newCollisionTestMap()

	m.Put("collideA", "A")
	m.Put("collideB", "B")

	removed, existed, err := m.Delete("collideA")
	if err != nil || !existed || removed != "A" { t.Fatalf("unexpected delete: removed=%v existed=%v err=%v", removed, existed, err) }

	if value, ok := m.Get("collideB"); !ok || value != "B" { t.Fatalf("expected collideB to survive gather, got %v ok=%v", value, ok) }
	if _, ok := m.Get("collideA"); ok { t.Fatalf("expected collideA to be gone") }
	if m.Size() != 1 { t.Fatalf("expected size 1, got %d", m.Size()) }

	// collideB must still be reachable and re-deletable, proving the gathered
	// leaf was spliced in at a valid, still-connected position.
	removed, existed, err = m.Delete("collideB")
	if err != nil || !existed || removed != "B" { t.Fatalf("unexpected second delete: removed=%v existed=%v err=%v", removed, existed, err) }
	if m.Size() != 0 { t.Fatalf("expected size 0, got %d", m.Size()) }
}
