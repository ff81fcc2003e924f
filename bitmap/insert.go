package bitmap

import "github.com/nkazantsev/hopscotchset/shared"

// Insert adds key to the set. It returns the slot index the key ended up
// in (not stable across later inserts or resizes), whether the key was
// newly inserted (false means it was already present), and an error if R
// growth rounds were not enough to make room. On error the set keeps the
// table (and capacity) it had before the call.
func (s *Set[K]) Insert(key K) (int, bool, error) {
	if idx, inserted, ok := s.tryInsert(key); ok {
		return idx, inserted, nil
	}

	origStore, origMask := s.store, s.capMinus1
	for round := 0; round < s.maxResizeTries; round++ {
		if err := s.resize(); err != nil {
			s.store, s.capMinus1 = origStore, origMask
			return notFound, false, err
		}
		if idx, inserted, ok := s.tryInsert(key); ok {
			return idx, inserted, nil
		}
	}

	s.store, s.capMinus1 = origStore, origMask
	return notFound, false, shared.ErrResizeFailed
}

// tryInsert attempts a single insert at the set's current capacity,
// without growing. ok is false if no placement could be found and the
// caller should resize and retry.
func (s *Set[K]) tryInsert(key K) (idx int, inserted bool, ok bool) {
	home := s.home(key)

	if i := s.findIndex(key); i != notFound {
		return i, false, true
	}

	// Free-slot probe: find the first empty slot within add_range.
	empty := home
	rightShift := -1
	for step := 0; step < s.addRange; step++ {
		candidate := (home + uint64(step)) & s.capMinus1
		if !s.store.test(int(candidate)) {
			empty = candidate
			rightShift = step
			break
		}
	}
	if rightShift == -1 {
		return notFound, false, false
	}

	// Hop cascade: while the empty slot lies outside the neighborhood,
	// swap a closer key into it that can tolerate the move, updating the
	// moved key's home bucket's bitmap as we go.
	for rightShift >= s.hopRange {
		moved := false

		for shiftToMove := rightShift - s.hopRange + 1; shiftToMove < rightShift; shiftToMove++ {
			j := (home + uint64(shiftToMove)) & s.capMinus1
			candidateKey := s.store.read(int(j))
			candidateHome := s.home(candidateKey)

			if s.modDist(empty, candidateHome) < uint64(s.hopRange) {
				oldOffset := int(s.modDist(j, candidateHome))
				newOffset := int(s.modDist(empty, candidateHome))

				s.store.write(int(empty), candidateKey)
				s.store.clear(int(j))
				s.store.setNeighborBit(int(candidateHome), oldOffset, false)
				s.store.setNeighborBit(int(candidateHome), newOffset, true)

				empty = j
				rightShift = shiftToMove
				moved = true
				break
			}
		}

		if !moved {
			return notFound, false, false
		}
	}

	s.store.write(int(empty), key)
	s.store.setNeighborBit(int(home), int(s.modDist(empty, home)), true)

	return int(empty), true, true
}
