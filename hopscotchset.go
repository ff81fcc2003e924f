// Package hopscotchset collects the two Hopscotch hash set variants —
// shadow and bitmap — behind one factory, so benchmark and test
// collaborators can compare representations without depending on either
// variant's concrete type.
package hopscotchset

import (
	"github.com/nkazantsev/hopscotchset/bitmap"
	"github.com/nkazantsev/hopscotchset/shadow"
	"github.com/nkazantsev/hopscotchset/shared"
)

// Variant selects which Hopscotch hashing representation backs a HashSet.
type Variant int

const (
	// Shadow discovers neighborhoods by linear scan over a presence
	// bitmap; see package shadow.
	Shadow Variant = iota
	// Bitmap tracks each home bucket's neighborhood with a fixed-width
	// occupancy bitmap; see package bitmap.
	Bitmap
)

// HashSet is the basic set interface as a set of function pointers, the
// way EinfachAndy/hashmaps' root HashMap type assembles an implementation
// chosen at runtime.
type HashSet[K comparable] struct {
	Insert     func(key K) (int, bool, error)
	Contains   func(key K) bool
	Erase      func(key K) int
	Size       func() int
	Capacity   func() int
	LoadFactor func() float64
	Each       func(fn func(key K) bool)
}

// Config configures the factory. Zero values for HopRange, AddRange, and
// MaxResizeTries mean "use the variant's default".
type Config[K comparable] struct {
	Variant        Variant
	HopRange       int
	AddRange       int
	MaxResizeTries int
	Hasher         shared.HashFn[K]
}

// New constructs a HashSet backed by the configured Variant.
func New[K comparable](cfg Config[K]) *HashSet[K] {
	res := &HashSet[K]{}

	switch cfg.Variant {
	case Bitmap:
		opts := bitmapOptions(cfg)
		m := bitmap.New[K](opts...)
		res.Insert = m.Insert
		res.Contains = m.Contains
		res.Erase = m.Erase
		res.Size = m.Size
		res.Capacity = m.Capacity
		res.LoadFactor = m.LoadFactor
		res.Each = m.Each
	default:
		opts := shadowOptions(cfg)
		m := shadow.New[K](opts...)
		res.Insert = m.Insert
		res.Contains = m.Contains
		res.Erase = m.Erase
		res.Size = m.Size
		res.Capacity = m.Capacity
		res.LoadFactor = m.LoadFactor
		res.Each = m.Each
	}

	return res
}

func shadowOptions[K comparable](cfg Config[K]) []shadow.Option[K] {
	var opts []shadow.Option[K]
	if cfg.HopRange > 0 {
		opts = append(opts, shadow.WithHopRange[K](cfg.HopRange))
	}
	if cfg.AddRange > 0 {
		opts = append(opts, shadow.WithAddRange[K](cfg.AddRange))
	}
	if cfg.MaxResizeTries > 0 {
		opts = append(opts, shadow.WithMaxResizeTries[K](cfg.MaxResizeTries))
	}
	if cfg.Hasher != nil {
		opts = append(opts, shadow.WithHasher[K](cfg.Hasher))
	}
	return opts
}

func bitmapOptions[K comparable](cfg Config[K]) []bitmap.Option[K] {
	var opts []bitmap.Option[K]
	if cfg.HopRange > 0 {
		opts = append(opts, bitmap.WithHopRange[K](cfg.HopRange))
	}
	if cfg.AddRange > 0 {
		opts = append(opts, bitmap.WithAddRange[K](cfg.AddRange))
	}
	if cfg.MaxResizeTries > 0 {
		opts = append(opts, bitmap.WithMaxResizeTries[K](cfg.MaxResizeTries))
	}
	if cfg.Hasher != nil {
		opts = append(opts, bitmap.WithHasher[K](cfg.Hasher))
	}
	return opts
}
