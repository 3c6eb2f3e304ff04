package hamt


//============================================= Get


// Get
//	Looks up key. Returns the stored value and true if present, or nil and
//	false if not. Grounded on the reference search_recursive/hamt_get
//	(hamt.c) with the path-copy argument always nil - a plain lookup never
//	clones anything.
func (m *Map) Get(key any) (any, bool) {
	return m.getRecursive(m.root, newHashState(key, m.hashFn), key)
}

func (m *Map) getRecursive(anchor *node, hash hashState, key any) (any, bool) {
	index := hash.index()
	if !hasIndex(anchor.bitmap, index) { return nil, false }

	pos := posFor(anchor.bitmap, index)
	child := anchor.children[pos]

	if child.isLeaf {
		if m.cmpFn(key, child.key) == 0 { return child.value, true }
		return nil, false
	}

	return m.getRecursive(child, hash.next(), key)
}
