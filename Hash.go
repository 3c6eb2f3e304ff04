package hamt


//============================================= Hash


// bitsPerLevel
//	Each trie level consumes a 5-bit slice of the current hash word, giving
//	a 32-way branching factor per level (spec §4.1).
const bitsPerLevel = 5

// levelsPerGeneration
//	A 32-bit hash word yields six 5-bit slices (30 bits; the top 2 bits go
//	unused) before a fresh hash word is needed.
const levelsPerGeneration = 32 / bitsPerLevel

// hashState
//	A roving, pass-by-value record of where a key's descent into the trie
//	currently stands: which hash word is in play, how far into it the
//	current level's 5-bit slice starts, and how many times the word has
//	already been regenerated. The reference C implementation mutates this
//	in place through a pointer; the spec's own design notes recommend the
//	Go idiom instead - next returns a new value rather than mutating the
//	receiver, so callers thread the updated state through return values the
//	way they already thread everything else.
type hashState struct {
	key        any
	hashFn     HashFn
	generation int
	shift      uint
	word       uint32
}

// newHashState
//	Computes the generation-0 hash word for key and returns the hashState
//	positioned at the trie's root level.
func newHashState(key any, hashFn HashFn) hashState {
	return hashState{ key: key, hashFn: hashFn, generation: 0, shift: 0, word: hashFn(key, 0) }
}

// rehashAt
//	Computes the hash word for a different key (typically a leaf found
//	colliding at the current level) at the same generation and shift as at,
//	so the two keys' descents can be compared level by level from that
//	point on. Grounded on the reference insert_table's reconstruction of a
//	colliding leaf's hash state during a cascading split (hamt.c).
func rehashAt(key any, hashFn HashFn, at hashState) hashState {
	return hashState{ key: key, hashFn: hashFn, generation: at.generation, shift: at.shift, word: hashFn(key, at.generation) }
}

// index
//	Returns the 5-bit slice of the current hash word selected by shift -
//	this key's child index at the current trie level.
func (h hashState) index() uint32 {
	return (h.word >> h.shift) & 0x1f
}

// next
//	Advances to the next trie level. Once shift has consumed all six 5-bit
//	slices of the current word, the word is regenerated with the next
//	generation and shift resets to zero.
func (h hashState) next() hashState {
	next := h
	next.shift += bitsPerLevel

	if next.shift > bitsPerLevel*(levelsPerGeneration-1) {
		next.generation++
		next.word = h.hashFn(h.key, next.generation)
		next.shift = 0
	}

	return next
}
