package bitmap

// Erase removes key from the set, returning 1 if it was present and 0
// otherwise. No compaction happens; the displacement invariant holds
// because erase never moves keys.
func (s *Set[K]) Erase(key K) int {
	idx := s.findIndex(key)
	if idx == notFound {
		return 0
	}

	home := s.home(key)
	s.store.setNeighborBit(int(home), int(s.modDist(uint64(idx), home)), false)
	s.store.clear(idx)

	return 1
}
