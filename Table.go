package hamt


//============================================= Table


// extendTable
//	Grows old (a node's children slice, currently missing a slot at pos) by
//	one, splicing child in at pos. Grounded on the teacher's ExtendTable
//	(Utils.go) and the reference table_extend (hamt.c): a fresh, wider table
//	is always allocated rather than resizing old in place, so the table pool
//	never has to support partial-width reuse.
func (m *Map) extendTable(old []*node, newBitmap uint32, pos int, child *node) ([]*node, error) {
	width := popcount(newBitmap)

	fresh, err := m.allocTable(width)
	if err != nil { return nil, err }

	copy(fresh[:pos], old[:pos])
	fresh[pos] = child
	copy(fresh[pos+1:], old[pos:])

	m.freeTable(old)
	return fresh, nil
}

// shrinkTable
//	Shrinks old by one, dropping the slot at pos. Grounded on the teacher's
//	ShrinkTable (Utils.go) and the reference table_shrink (hamt.c).
func (m *Map) shrinkTable(old []*node, newBitmap uint32, pos int) ([]*node, error) {
	width := popcount(newBitmap)
	if width == 0 {
		m.freeTable(old)
		return nil, nil
	}

	fresh, err := m.allocTable(width)
	if err != nil { return nil, err }

	copy(fresh[:pos], old[:pos])
	copy(fresh[pos:], old[pos+1:])

	m.freeTable(old)
	return fresh, nil
}

// dupTable
//	Returns a shallow copy of old: a freshly allocated table of the same
//	width holding the same child pointers. Used by the persistent operations
//	to clone every internal node visited on a descent (spec §4.5) without
//	touching the grandchildren those pointers reach - that sharing is the
//	entire point of a persistent update. Grounded on the reference
//	table_dup (hamt.c).
func (m *Map) dupTable(old []*node) ([]*node, error) {
	fresh, err := m.allocTable(len(old))
	if err != nil { return nil, err }

	copy(fresh, old)
	return fresh, nil
}
