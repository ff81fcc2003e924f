package shadow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkazantsev/hopscotchset/shadow"
	"github.com/nkazantsev/hopscotchset/shared"
)

func TestInsertOrderedRun(t *testing.T) {
	s := shadow.New[int]()

	for i := 0; i < 10; i++ {
		_, inserted, err := s.Insert(i)
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	assert.Equal(t, 10, s.Size())
}

func TestInsertIsIdempotent(t *testing.T) {
	s := shadow.New[int]()

	_, inserted, err := s.Insert(0)
	require.NoError(t, err)
	assert.True(t, inserted)

	for i := 0; i < 1000; i++ {
		_, inserted, err := s.Insert(0)
		require.NoError(t, err)
		assert.False(t, inserted)
	}

	assert.Equal(t, 1, s.Size())
	assert.Equal(t, 64, s.Capacity())
}

func TestEraseRoundTrip(t *testing.T) {
	s := shadow.New[int]()
	for i := 0; i < 10; i++ {
		_, _, err := s.Insert(i)
		require.NoError(t, err)
	}

	for i := 0; i < 10; i++ {
		assert.Equal(t, 1, s.Erase(i))
		assert.Equal(t, 0, s.Erase(i))
		assert.Equal(t, 0, s.Erase(i+10))
	}
}

func TestFloatKeys(t *testing.T) {
	s := shadow.New[float64]()

	_, _, err := s.Insert(0.5)
	require.NoError(t, err)
	assert.True(t, s.Contains(0.5))
	assert.Equal(t, 1, s.Erase(0.5))
	assert.False(t, s.Contains(0.5))
}

func TestStringKeys(t *testing.T) {
	s := shadow.New[string]()

	for _, k := range []string{"Apple", "Banana", "Peach"} {
		_, _, err := s.Insert(k)
		require.NoError(t, err)
	}

	assert.True(t, s.Contains("Banana"))
	assert.False(t, s.Contains("Burger"))

	s.Erase("Banana")
	assert.False(t, s.Contains("Banana"))
	assert.Equal(t, 0, s.Erase("Banana"))
}

func TestLargeInsertAndShuffleErase(t *testing.T) {
	const n = 100_000

	s := shadow.New[int]()
	order := rand.Perm(n)
	for _, k := range order {
		_, _, err := s.Insert(k)
		require.NoError(t, err)
	}
	assert.Equal(t, n, s.Size())

	order = rand.Perm(n)
	for i, k := range order {
		if i%10 == 0 {
			s.Erase(k)
		}
	}
	assert.Equal(t, n-n/10, s.Size())

	for i, k := range order {
		if i%10 == 0 {
			assert.False(t, s.Contains(k))
		} else {
			assert.True(t, s.Contains(k))
		}
	}
}

func TestEnumeratedKeysAreContained(t *testing.T) {
	s := shadow.New[int]()
	for i := 0; i < 5000; i++ {
		_, _, err := s.Insert(i)
		require.NoError(t, err)
	}

	seen := 0
	s.Each(func(key int) bool {
		assert.True(t, s.Contains(key))
		seen++
		return false
	})
	assert.Equal(t, s.Size(), seen)
}

func TestResizeFailedIsRecoverable(t *testing.T) {
	// A constant hasher pins every key to the same home bucket regardless
	// of capacity, so A bounds the achievable neighborhood no matter how
	// many times the table doubles: once A keys share a home, the A+1th
	// can never find a reachable empty slot.
	s := shadow.New[int](
		shadow.WithHasher[int](func(int) uint64 { return 0 }),
		shadow.WithHopRange[int](4),
		shadow.WithAddRange[int](4),
		shadow.WithMaxResizeTries[int](2),
	)

	for i := 0; i < 4; i++ {
		_, inserted, err := s.Insert(i)
		require.NoError(t, err)
		assert.True(t, inserted)
	}
	sizeBefore := s.Size()
	capBefore := s.Capacity()

	_, _, err := s.Insert(4)
	require.ErrorIs(t, err, shared.ErrResizeFailed)

	// the failing key was never inserted, and the tables grown by the
	// intermediate resize rounds are discarded, so size and capacity are
	// both what they were before the failing call.
	assert.Equal(t, sizeBefore, s.Size())
	assert.Equal(t, capBefore, s.Capacity())
	assert.False(t, s.Contains(4))
}
