package hamt


//============================================= Delete


// removeStatus
//	Mirrors the reference rem_recursive's tri-state result (hamt.c):
//	notFound, removed (structural change, if any, fully resolved at this
//	level), or gathered (this anchor collapsed to its one remaining leaf
//	child; the caller must splice that leaf into its own table in place of
//	this anchor).
type removeStatus int

const (
	removeNotFound removeStatus = iota
	removeRemoved
	removeGathered
)

type removeResult struct {
	status       removeStatus
	removedValue any
	gathered     *node
}

// Delete
//	Destructively removes key. Returns the removed value and true if key was
//	present, or nil and false if not. Grounded on the reference
//	rem_recursive/hamt_remove (hamt.c) and the teacher's
//	Delete/deleteRecursive (Operation.go).
//
//	Removing the last child of a two-child internal node below the root
//	replaces that node with its surviving sibling leaf directly (gather),
//	same as the reference. An internal sibling is left alone - the spec's
//	own resolution of the question of whether to also gather through an
//	internal-node sibling is "no": only a leaf sibling ever bubbles up. A
//	gather can then cascade: an ancestor that receives a bubbled leaf and is
//	itself left with exactly one child also gathers, collapsing the whole
//	chain of single-entry nodes a cascaded split can leave behind, same as
//	the reference's n_rows == 1 re-check in rem_recursive. The root itself
//	never gathers, since there is no parent slot to splice it into - a root
//	left with one child stays a one-child internal root instead.
func (m *Map) Delete(key any) (any, bool, error) {
	result, err := m.deleteRecursive(m.root, newHashState(key, m.hashFn), key, 0)
	if err != nil {
		cLog.Error("error deleting key from map:", err.Error())
		return nil, false, err
	}

	if result.status == removeNotFound { return nil, false, nil }

	m.size--
	return result.removedValue, true, nil
}

func (m *Map) deleteRecursive(anchor *node, hash hashState, key any, depth int) (removeResult, error) {
	index := hash.index()
	if !hasIndex(anchor.bitmap, index) { return removeResult{ status: removeNotFound }, nil }

	pos := posFor(anchor.bitmap, index)
	child := anchor.children[pos]

	if child.isLeaf {
		if m.cmpFn(key, child.key) != 0 { return removeResult{ status: removeNotFound }, nil }

		removedValue := child.value
		n := popcount(anchor.bitmap)

		if n == 2 && depth > 0 {
			sibling := anchor.children[1-pos]
			if sibling.isLeaf {
				m.freeTable(anchor.children)
				return removeResult{ status: removeGathered, removedValue: removedValue, gathered: sibling }, nil
			}
		}

		newBitmap := clearBit(anchor.bitmap, index)
		newChildren, err := m.shrinkTable(anchor.children, newBitmap, pos)
		if err != nil { return removeResult{}, err }

		anchor.bitmap = newBitmap
		anchor.children = newChildren
		return removeResult{ status: removeRemoved, removedValue: removedValue }, nil
	}

	result, err := m.deleteRecursive(child, hash.next(), key, depth+1)
	if err != nil { return removeResult{}, err }

	switch result.status {
		case removeGathered:
			anchor.children[pos] = result.gathered

			if popcount(anchor.bitmap) == 1 && depth > 0 {
				m.freeTable(anchor.children)
				return removeResult{ status: removeGathered, removedValue: result.removedValue, gathered: result.gathered }, nil
			}

			return removeResult{ status: removeRemoved, removedValue: result.removedValue }, nil
		case removeRemoved:
			return removeResult{ status: removeRemoved, removedValue: result.removedValue }, nil
		default:
			return removeResult{ status: removeNotFound }, nil
	}
}
