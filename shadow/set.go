// Package shadow implements the shadow variant of the Hopscotch hash set:
// neighborhoods are discovered by linear scan and occupancy is tracked by
// an auxiliary presence bitmap rather than a per-bucket bitmap.
package shadow

import "github.com/nkazantsev/hopscotchset/shared"

const notFound = -1

// Set is an open-addressed hash set guaranteeing that every resident key
// lies within H slots of its home bucket. It is not safe for concurrent
// use; callers must provide their own synchronization.
type Set[K comparable] struct {
	store          slotStore[K]
	hasher         shared.HashFn[K]
	capMinus1      uint64
	hopRange       int
	addRange       int
	maxResizeTries int
}

// New creates an empty set at the default capacity (64).
func New[K comparable](opts ...Option[K]) *Set[K] {
	cfg := resolveOptions(opts)

	s := &Set[K]{
		hasher:         cfg.hasher,
		hopRange:       cfg.hopRange,
		addRange:       cfg.addRange,
		maxResizeTries: cfg.maxResizeTries,
	}
	s.store = newSlotStore[K](shared.DefaultCapacity)
	s.capMinus1 = uint64(shared.DefaultCapacity - 1)

	return s
}

// home reduces a key's hash to its home bucket index.
func (s *Set[K]) home(key K) uint64 {
	return s.hasher(key) & s.capMinus1
}

// modDist computes (a - b) mod N, relying on the capacity being a power
// of two so the mask can stand in for the modulo operation.
func (s *Set[K]) modDist(a, b uint64) uint64 {
	return (a - b) & s.capMinus1
}

// Size returns the number of keys currently in the set, counted directly
// from the slot store's occupancy rather than a cached counter.
func (s *Set[K]) Size() int {
	return s.store.numOccupied()
}

// Capacity returns the number of slots in the table. Always a power of
// two, never smaller than 64.
func (s *Set[K]) Capacity() int {
	return s.store.capacity()
}

// LoadFactor returns Size()/Capacity().
func (s *Set[K]) LoadFactor() float64 {
	return float64(s.store.numOccupied()) / float64(s.store.capacity())
}

// Each calls fn on every key in the set in slot-index order, which is not
// part of the public contract. If fn returns true, iteration stops early.
func (s *Set[K]) Each(fn func(key K) bool) {
	for i := 0; i < s.store.capacity(); i++ {
		if s.store.test(i) {
			if fn(s.store.read(i)) {
				return
			}
		}
	}
}
