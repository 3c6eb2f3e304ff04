// Package hamt implements an immutable-friendly associative map backed by a
// 32-ary Hash Array-Mapped Trie (HAMT).
//
// A Map supports the usual destructive operations (Put, Get, Delete) as well
// as persistent, structural-sharing variants (PersistentPut,
// PersistentDelete) that leave the receiver untouched and return a new Map
// handle sharing every unmodified subtree with it. Both families are backed
// by the same table pool allocator (common/tablecache), which a family of
// Map handles descended from one another share via reference counting.
//
// The trie never inspects keys or values beyond what the caller-supplied
// HashFn and CmpFn require of it; common/murmur.HashKey is provided as a
// ready-to-use default for string, []byte, and fmt.Stringer-able keys.
package hamt
