package skillfield

import (
	"github.com/google/uuid"
	"github.com/tanema/gween"
)

// Rand is the random source used for placement, item attributes, and
// palette picks. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Item is one visualized skill: its position plus animated transform state.
type Item struct {
	// Identity
	ID    string
	Index int
	Skill Skill

	// Position in viewport-local coordinates, assigned by placement.
	X, Y float64
	// PlacementExhausted is set when placement ran out of attempts and kept
	// its last (possibly overlapping or out-of-bounds) sample.
	PlacementExhausted bool

	// BaseSize is fixed at creation.
	BaseSize float64
	// Opacity is the resting alpha; focused items draw fully opaque.
	Opacity float64

	// Animated by Engine.Tick only.
	Size     float64
	Rotation float64 // degrees
	Glow     float64 // 0..1

	// Interaction targets.
	TargetRotation float64 // degrees
	HoverScale     float64
	Focused        bool
	// EffectColor is the transient play-mode color. Zero means none.
	EffectColor Color

	glow *gween.Tween
}

// HasEffectColor reports whether the item carries a transient color.
func (it *Item) HasEffectColor() bool {
	return !it.EffectColor.IsZero()
}

// HoverRadius returns the distance within which the pointer counts as near.
func (it *Item) HoverRadius(factor float64) float64 {
	return it.BaseSize * factor
}

// clearEffect returns the item's interaction targets to baseline.
func (it *Item) clearEffect() {
	it.EffectColor = Color{}
	it.HoverScale = 1
}

// NewItems creates one item per skill with randomized size, opacity, and
// rotation. Skills with an empty or repeated id get a generated one so item
// IDs stay unique.
func NewItems(skills []Skill, cfg ItemConfig, rng Rand) []*Item {
	items := make([]*Item, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for i, sk := range skills {
		id := sk.ID
		if id == "" || seen[id] {
			id = uuid.NewString()
		}
		seen[id] = true

		base := cfg.BaseSizeMin + rng.Float64()*cfg.BaseSizeRange
		rot := rng.Float64() * 360
		items = append(items, &Item{
			ID:             id,
			Index:          i,
			Skill:          sk,
			BaseSize:       base,
			Size:           base,
			Opacity:        cfg.OpacityMin + rng.Float64()*cfg.OpacityRange,
			Rotation:       rot,
			TargetRotation: rng.Float64() * 360,
			HoverScale:     1,
		})
	}
	return items
}
