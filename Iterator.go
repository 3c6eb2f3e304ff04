package hamt


//============================================= Iterator


type iteratorFrame struct {
	anchor *node
	pos    int
}

// Iterator
//	A depth-first iterator over a Map's key/value pairs, in unspecified
//	order (spec Non-goal: no ordered iteration). Grounded on the reference
//	hamt_iterator (hamt.c): an explicit stack of (anchor, position) frames
//	rather than true call-stack recursion, so iteration can be paused and
//	resumed across Next calls. The reference pushes/pops raw hamt_node
//	pointers through a small fixed-capacity array it grows by hand; a plain
//	Go slice already grows itself and is reclaimed by the garbage collector
//	once the Iterator is dropped, so there is no separate allocator here.
//
//	An Iterator observes the Map as it stood when NewIterator was called
//	plus any in-place mutation made through the same Map afterward -
//	destructive Put/Delete calls on the underlying Map while an Iterator is
//	live produce undefined iteration results, the same caveat the reference
//	carries.
type Iterator struct {
	m       *Map
	stack   []iteratorFrame
	current *node
}

// NewIterator
//	Returns an Iterator positioned at the first key/value pair, or one for
//	which Valid reports false if the map is empty.
func (m *Map) NewIterator() *Iterator {
	it := &Iterator{ m: m }

	if m.root != nil {
		it.stack = append(it.stack, iteratorFrame{ anchor: m.root, pos: 0 })
		it.advance()
	}

	return it
}

func (it *Iterator) advance() {
	it.current = nil

	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		if top.pos >= len(top.anchor.children) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		child := top.anchor.children[top.pos]
		top.pos++

		if child.isLeaf {
			it.current = child
			return
		}

		it.stack = append(it.stack, iteratorFrame{ anchor: child, pos: 0 })
	}
}

// Valid
//	Reports whether the iterator is positioned at a key/value pair.
func (it *Iterator) Valid() bool {
	return it.current != nil
}

// Next
//	Advances to the next key/value pair.
func (it *Iterator) Next() {
	it.advance()
}

// Key
//	Returns the current pair's key, or nil if !Valid().
func (it *Iterator) Key() any {
	if it.current == nil { return nil }
	return it.current.key
}

// Value
//	Returns the current pair's value, or nil if !Valid().
func (it *Iterator) Value() any {
	if it.current == nil { return nil }
	return it.current.value
}

// Close
//	Releases the iterator's frame stack. Safe to call more than once.
func (it *Iterator) Close() {
	it.stack = nil
	it.current = nil
}
