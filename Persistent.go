package hamt


//============================================= Persistent


// shallowCopy
//	Produces a new Map handle sharing this Map's table cache (via Retain,
//	spec §5) and configuration, but with its own independent root pointer
//	and size. Grounded on the reference hamt_copy_shallow (hamt.c).
func (m *Map) shallowCopy() *Map {
	if m.cache != nil { m.cache.Retain() }

	return &Map{
		root:   m.root,
		size:   m.size,
		hashFn: m.hashFn,
		cmpFn:  m.cmpFn,
		alloc:  m.alloc,
		cache:  m.cache,
	}
}

func (m *Map) cloneInternal(anchor *node) (*node, error) {
	children, err := m.dupTable(anchor.children)
	if err != nil { return nil, err }

	return &node{ isLeaf: false, bitmap: anchor.bitmap, children: children }, nil
}

// PersistentPut
//	Inserts or updates key's value without touching the receiver: every
//	internal node on the path to the insertion point is cloned (spec §4.5),
//	every node off that path is shared verbatim with the returned Map.
//	Grounded on the reference search()/hamt_pset (hamt.c).
func (m *Map) PersistentPut(key, value any) (*Map, bool, error) {
	newRoot, isNewKey, err := m.psetRecursive(m.root, newHashState(key, m.hashFn), key, value)
	if err != nil {
		cLog.Error("error in persistent put:", err.Error())
		return nil, false, err
	}

	newMap := m.shallowCopy()
	newMap.root = newRoot
	if isNewKey { newMap.size++ }

	return newMap, isNewKey, nil
}

func (m *Map) psetRecursive(anchor *node, hash hashState, key, value any) (*node, bool, error) {
	clone, err := m.cloneInternal(anchor)
	if err != nil { return nil, false, err }

	index := hash.index()

	if !hasIndex(clone.bitmap, index) {
		pos := posFor(clone.bitmap, index)
		leaf := &node{ isLeaf: true, key: key, value: value }
		newBitmap := setBit(clone.bitmap, index)

		newChildren, err := m.extendTable(clone.children, newBitmap, pos, leaf)
		if err != nil { return nil, false, err }

		clone.bitmap = newBitmap
		clone.children = newChildren
		return clone, true, nil
	}

	pos := posFor(clone.bitmap, index)
	existing := clone.children[pos]

	if existing.isLeaf {
		if m.cmpFn(key, existing.key) == 0 {
			clone.children[pos] = &node{ isLeaf: true, key: key, value: value }
			return clone, false, nil
		}

		spine, err := m.buildSplitSpine(existing, key, value, hash)
		if err != nil { return nil, false, err }

		clone.children[pos] = spine
		return clone, true, nil
	}

	newChild, isNewKey, err := m.psetRecursive(existing, hash.next(), key, value)
	if err != nil { return nil, false, err }

	clone.children[pos] = newChild
	return clone, isNewKey, nil
}

// PersistentDelete
//	Removes key without touching the receiver. If key is absent, the
//	receiver itself is returned unchanged (nothing to clone) rather than a
//	redundant structural copy. Grounded on the reference search()/
//	hamt_premove (hamt.c); the same gather rule as Delete applies, except
//	the sibling leaf that bubbles up on a gather is reused verbatim (it was
//	never modified) and the cloned ancestors above it are the only new
//	allocations on the path.
func (m *Map) PersistentDelete(key any) (*Map, any, bool, error) {
	newRoot, status, removedValue, err := m.premoveRecursive(m.root, newHashState(key, m.hashFn), key, 0)
	if err != nil {
		cLog.Error("error in persistent delete:", err.Error())
		return nil, nil, false, err
	}

	if status == removeNotFound { return m, nil, false, nil }

	newMap := m.shallowCopy()
	newMap.root = newRoot
	newMap.size--

	return newMap, removedValue, true, nil
}

func (m *Map) premoveRecursive(anchor *node, hash hashState, key any, depth int) (*node, removeStatus, any, error) {
	index := hash.index()
	if !hasIndex(anchor.bitmap, index) { return anchor, removeNotFound, nil, nil }

	pos := posFor(anchor.bitmap, index)
	child := anchor.children[pos]

	if child.isLeaf {
		if m.cmpFn(key, child.key) != 0 { return anchor, removeNotFound, nil, nil }

		removedValue := child.value
		n := popcount(anchor.bitmap)

		clonedChildren, err := m.dupTable(anchor.children)
		if err != nil { return nil, removeNotFound, nil, err }

		if n == 2 && depth > 0 {
			sibling := anchor.children[1-pos]
			if sibling.isLeaf {
				m.freeTable(clonedChildren)
				return sibling, removeGathered, removedValue, nil
			}
		}

		newBitmap := clearBit(anchor.bitmap, index)
		newChildren, err := m.shrinkTable(clonedChildren, newBitmap, pos)
		if err != nil { return nil, removeNotFound, nil, err }

		return &node{ isLeaf: false, bitmap: newBitmap, children: newChildren }, removeRemoved, removedValue, nil
	}

	newChild, status, removedValue, err := m.premoveRecursive(child, hash.next(), key, depth+1)
	if err != nil { return nil, removeNotFound, nil, err }
	if status == removeNotFound { return anchor, removeNotFound, nil, nil }

	clonedChildren, err := m.dupTable(anchor.children)
	if err != nil { return nil, removeNotFound, nil, err }
	clonedChildren[pos] = newChild

	if status == removeGathered && popcount(anchor.bitmap) == 1 && depth > 0 {
		m.freeTable(clonedChildren)
		return newChild, removeGathered, removedValue, nil
	}

	return &node{ isLeaf: false, bitmap: anchor.bitmap, children: clonedChildren }, removeRemoved, removedValue, nil
}
