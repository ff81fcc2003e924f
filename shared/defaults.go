package shared

const (
	// DefaultCapacity is the number of slots a freshly constructed set
	// starts with. Must be a power of two.
	DefaultCapacity = 64

	// DefaultHopRange is H, the maximum displacement between a key's home
	// bucket and its resident slot.
	DefaultHopRange = 32

	// DefaultAddRange is A, how far the insert engine probes from a home
	// bucket for any empty slot before giving up and growing the table.
	DefaultAddRange = 128

	// DefaultMaxResizeTries is R, the bounded number of retries given to
	// both a single resize attempt and an outer insert-then-resize round.
	DefaultMaxResizeTries = 2

	// MaxHopRange is the largest H a bitmap-variant set can use: one bit
	// of the neighborhood word is reserved to track occupancy, the way
	// EinfachAndy/hashmaps' hopscotch bucket reserves its low bit.
	MaxHopRange = 63
)
