// Package shared collects the pieces common to every Hopscotch set
// variant: the hash function capability, the shared size/range defaults,
// and the error surfaced by a failed resize.
package shared

import "github.com/dolthub/maphash"

// HashFn is a function that reduces a key to a 64-bit hash. The set does
// not assume any structure on the returned value beyond determinism.
type HashFn[K comparable] func(key K) uint64

// DefaultHasher returns a generic hash function for any comparable key
// type, backed by a per-process seeded hash of the key's in-memory
// representation. Callers with a cheaper or domain-specific hash (e.g. a
// known-good hash for their key type) should supply it via WithHasher
// instead.
func DefaultHasher[K comparable]() HashFn[K] {
	h := maphash.NewHasher[K]()
	return h.Hash
}
