package murmur

import "fmt"


//============================================= Keys


// HashKey
//	Hashes an arbitrary key for use as a hamt.HashFn. generation salts the
//	seed so that repeated calls for the same key at increasing generations
//	produce independent-looking hash values, the way the trie's rehash step
//	expects.
//
//	[]byte and string keys are hashed directly; any other key is hashed by
//	its fmt.Sprintf("%v") representation, which is enough for the example/
//	test keys this package ships with but not a substitute for a
//	domain-specific HashFn on a real key type.
func HashKey(key any, generation int) uint32 {
	seed := uint32(generation)

	switch typed := key.(type) {
		case []byte:
			return Murmur32(typed, seed)
		case string:
			return Murmur32([]byte(typed), seed)
		default:
			return Murmur32([]byte(fmt.Sprintf("%v", typed)), seed)
	}
}
