package bitmap

import "math/bits"

// findIndex reads key's home bucket's neighborhood bitmap and checks only
// the slots with a set bit, extracting the lowest set bit at each step for
// cache-friendly iteration instead of scanning every offset.
func (s *Set[K]) findIndex(key K) int {
	home := s.home(key)
	nb := s.store.neighborhoodBits(int(home))

	for nb != 0 {
		offset := bits.TrailingZeros64(nb)
		idx := (home + uint64(offset)) & s.capMinus1

		if s.store.read(int(idx)) == key {
			return int(idx)
		}

		nb &= nb - 1 // clear the lowest set bit
	}

	return notFound
}

// Contains reports whether key is present in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.findIndex(key) != notFound
}
