package bitmap

import "github.com/nkazantsev/hopscotchset/shared"

// Option configures a Set at construction time.
type Option[K comparable] interface {
	apply(*config[K])
}

type optFn[K comparable] func(*config[K])

func (f optFn[K]) apply(c *config[K]) { f(c) }

type config[K comparable] struct {
	hopRange       int
	addRange       int
	maxResizeTries int
	hasher         shared.HashFn[K]
}

// WithHopRange sets H, the maximum displacement between a key's home
// bucket and its resident slot. Clamped to shared.MaxHopRange: one bit of
// the neighborhood word is reserved to track occupancy, so a bucket can
// describe at most that many offsets.
func WithHopRange[K comparable](h int) Option[K] {
	return optFn[K](func(c *config[K]) { c.hopRange = h })
}

// WithAddRange sets A, how far the insert engine probes for a free slot
// before giving up and growing. Must be >= H; defaults to
// shared.DefaultAddRange.
func WithAddRange[K comparable](a int) Option[K] {
	return optFn[K](func(c *config[K]) { c.addRange = a })
}

// WithMaxResizeTries sets R, the bounded retries for growth. Defaults to
// shared.DefaultMaxResizeTries.
func WithMaxResizeTries[K comparable](r int) Option[K] {
	return optFn[K](func(c *config[K]) { c.maxResizeTries = r })
}

// WithHasher overrides the default generic hasher.
func WithHasher[K comparable](h shared.HashFn[K]) Option[K] {
	return optFn[K](func(c *config[K]) { c.hasher = h })
}

func resolveOptions[K comparable](opts []Option[K]) config[K] {
	var c config[K]
	for _, opt := range opts {
		opt.apply(&c)
	}

	if c.hopRange <= 0 {
		c.hopRange = shared.DefaultHopRange
	}
	if c.hopRange > shared.MaxHopRange {
		c.hopRange = shared.MaxHopRange
	}
	if c.addRange <= 0 {
		c.addRange = shared.DefaultAddRange
	}
	if c.addRange < c.hopRange {
		c.addRange = c.hopRange
	}
	if c.maxResizeTries <= 0 {
		c.maxResizeTries = shared.DefaultMaxResizeTries
	}
	if c.hasher == nil {
		c.hasher = shared.DefaultHasher[K]()
	}

	return c
}
