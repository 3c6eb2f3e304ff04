package hamt


//============================================= Put


// Put
//	Destructively inserts or updates key's value. Returns the previous value
//	and true if key was already present, or nil and false if it was newly
//	inserted. Grounded on the reference insert_kv/hamt_set (hamt.c) and the
//	teacher's Put/putRecursive (Operation.go), minus the CAS retry loop -
//	this port has no concurrent writers to race against (spec Non-goal).
func (m *Map) Put(key, value any) (any, bool, error) {
	previous, isNew, err := m.putRecursive(m.root, newHashState(key, m.hashFn), key, value)
	if err != nil {
		cLog.Error("error putting key into map:", err.Error())
		return nil, false, err
	}

	if isNew { m.size++ }
	return previous, !isNew, nil
}

func (m *Map) putRecursive(anchor *node, hash hashState, key, value any) (any, bool, error) {
	index := hash.index()

	if !hasIndex(anchor.bitmap, index) {
		pos := posFor(anchor.bitmap, index)
		leaf := &node{ isLeaf: true, key: key, value: value }
		newBitmap := setBit(anchor.bitmap, index)

		newChildren, err := m.extendTable(anchor.children, newBitmap, pos, leaf)
		if err != nil { return nil, false, err }

		anchor.bitmap = newBitmap
		anchor.children = newChildren
		return nil, true, nil
	}

	pos := posFor(anchor.bitmap, index)
	child := anchor.children[pos]

	if child.isLeaf {
		if m.cmpFn(key, child.key) == 0 {
			previous := child.value
			child.value = value
			return previous, false, nil
		}

		spine, err := m.buildSplitSpine(child, key, value, hash)
		if err != nil { return nil, false, err }

		anchor.children[pos] = spine
		return nil, true, nil
	}

	return m.putRecursive(child, hash.next(), key, value)
}

// buildSplitSpine
//	Builds, without touching the live trie, the replacement subtree for a
//	leaf/key collision: a chain of single-entry internal nodes for as many
//	levels as the two keys' hashes keep colliding, terminated by a two-entry
//	internal node once they diverge. Because the chain is constructed
//	bottom-up through ordinary return values, nothing is spliced into the
//	trie until putRecursive assigns the finished root into the parent's
//	child slot - a partial failure partway through (an allocator error)
//	never leaves a half-built spine reachable from the trie, unlike the
//	reference insert_table (hamt.c), which mutates shared state as it goes.
//	See spec's design note on this as a known weakness of the reference
//	approach.
//
//	hash is positioned at the level where the collision was found - both
//	keys already share that level's index, or they wouldn't have landed in
//	the same slot, so the cascade has to branch on the next level, not the
//	current one. Matches the reference's hash_next(hash) before it builds
//	the replacement table (hamt.c).
func (m *Map) buildSplitSpine(existingLeaf *node, newKey, newValue any, hash hashState) (*node, error) {
	nextHash := hash.next()
	existingHash := rehashAt(existingLeaf.key, m.hashFn, nextHash)
	return m.buildSplitSpineRecursive(existingLeaf, existingHash, newKey, newValue, nextHash)
}

func (m *Map) buildSplitSpineRecursive(existingLeaf *node, existingHash hashState, newKey, newValue any, newHash hashState) (*node, error) {
	existingIndex := existingHash.index()
	newIndex := newHash.index()

	if existingIndex != newIndex {
		newLeaf := &node{ isLeaf: true, key: newKey, value: newValue }
		bitmap := setBit(setBit(0, existingIndex), newIndex)

		table, err := m.allocTable(2)
		if err != nil { return nil, err }

		if existingIndex < newIndex {
			table[0] = existingLeaf
			table[1] = newLeaf
		} else {
			table[0] = newLeaf
			table[1] = existingLeaf
		}

		return &node{ isLeaf: false, bitmap: bitmap, children: table }, nil
	}

	child, err := m.buildSplitSpineRecursive(existingLeaf, existingHash.next(), newKey, newValue, newHash.next())
	if err != nil { return nil, err }

	table, err := m.allocTable(1)
	if err != nil { return nil, err }
	table[0] = child

	return &node{ isLeaf: false, bitmap: setBit(0, existingIndex), children: table }, nil
}
