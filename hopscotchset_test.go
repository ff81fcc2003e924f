package hopscotchset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkazantsev/hopscotchset"
)

// TestCrossCheck drives both variants through the same randomized
// operation sequence as a reference Go map, the way EinfachAndy/hashmaps'
// own TestCrossCheck compares its implementations against a stdlib map.
func TestCrossCheck(t *testing.T) {
	variants := []hopscotchset.Variant{hopscotchset.Shadow, hopscotchset.Bitmap}

	for _, v := range variants {
		s := hopscotchset.New[int](hopscotchset.Config[int]{Variant: v})
		reference := make(map[int]struct{})

		const nops = 20_000
		for i := 0; i < nops; i++ {
			key := rand.Intn(2000)
			switch rand.Intn(3) {
			case 0, 1:
				_, wasPresent := reference[key]
				reference[key] = struct{}{}

				_, inserted, err := s.Insert(key)
				require.NoError(t, err)
				assert.Equal(t, !wasPresent, inserted)
			case 2:
				_, wasPresent := reference[key]
				delete(reference, key)

				removed := s.Erase(key)
				if wasPresent {
					assert.Equal(t, 1, removed)
				} else {
					assert.Equal(t, 0, removed)
				}
			}

			assert.Equal(t, len(reference), s.Size())
		}

		for key := range reference {
			assert.True(t, s.Contains(key))
		}

		seen := 0
		s.Each(func(key int) bool {
			_, ok := reference[key]
			assert.True(t, ok)
			seen++
			return false
		})
		assert.Equal(t, len(reference), seen)
	}
}

func TestFactoryDefaultsToShadow(t *testing.T) {
	s := hopscotchset.New[string](hopscotchset.Config[string]{})
	_, inserted, err := s.Insert("hello")
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, 64, s.Capacity())
}
