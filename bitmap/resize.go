package bitmap

import "github.com/nkazantsev/hopscotchset/shared"

// resize attempts, for up to R iterations, to build a table at double
// (then quadruple, ...) the current capacity and re-insert every live key
// using tryInsert directly so growth never recurses. On success the old
// store is replaced atomically; on failure after R iterations the
// original table is left untouched and ErrResizeFailed is returned.
func (s *Set[K]) resize() error {
	capacity := s.store.capacity()

	for try := 0; try < s.maxResizeTries; try++ {
		capacity *= 2

		candidate := &Set[K]{
			hasher:         s.hasher,
			hopRange:       s.hopRange,
			addRange:       s.addRange,
			maxResizeTries: s.maxResizeTries,
		}
		candidate.store = newSlotStore[K](capacity)
		candidate.capMinus1 = uint64(capacity - 1)

		succeeded := true
		s.Each(func(key K) bool {
			if _, _, ok := candidate.tryInsert(key); !ok {
				succeeded = false
				return true // stop iterating
			}
			return false
		})

		if !succeeded {
			continue
		}

		s.store = candidate.store
		s.capMinus1 = candidate.capMinus1

		return nil
	}

	return shared.ErrResizeFailed
}
