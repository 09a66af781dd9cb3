package skillfield

import "math"

// PlacementResult summarizes one placement pass.
type PlacementResult struct {
	Placed    int // items that found a valid position
	Exhausted int // items that kept their last sample after MaxAttempts
	Attempts  int // total candidates sampled
}

// Placer assigns scattered, non-overlapping positions using bounded-retry
// rejection sampling. Candidates are spread around the viewport center at an
// angle derived from the item index, so consecutive items fan out instead of
// clustering.
type Placer struct {
	Config PlacementConfig
	Rand   Rand
}

// Place uses DefaultConfig's placement tuning with the viewport's padding and
// minimum distance.
func Place(items []*Item, vp Viewport, rng Rand) PlacementResult {
	p := Placer{Config: DefaultConfig().Placement, Rand: rng}
	return p.Place(items, vp)
}

// Place mutates every item's position in input order. Each item is checked
// against the items before it only, so calling Place again recomputes the
// whole layout from scratch. It always terminates: an item that exhausts
// MaxAttempts keeps its last candidate and is flagged PlacementExhausted.
func (p Placer) Place(items []*Item, vp Viewport) PlacementResult {
	var res PlacementResult
	n := len(items)
	if n == 0 {
		return res
	}

	center := vp.Center()
	bounds := vp.Bounds()

	if n == 1 {
		items[0].X, items[0].Y = center.X, center.Y
		items[0].PlacementExhausted = false
		res.Placed = 1
		res.Attempts = 1
		return res
	}

	maxAttempts := max(p.Config.MaxAttempts, 1)
	extent := math.Min(vp.Width, vp.Height) / p.Config.SpreadDivisor

	for i, it := range items {
		angle := float64(i) / float64(n) * 2 * math.Pi
		cos, sin := math.Cos(angle), math.Sin(angle)

		ok := false
		for attempt := 0; attempt < maxAttempts && !ok; attempt++ {
			radius := (p.Config.SpreadMin + p.Rand.Float64()*p.Config.SpreadRange) * extent
			it.X = center.X + cos*radius + (p.Rand.Float64()-0.5)*p.Config.Jitter
			it.Y = center.Y + sin*radius + (p.Rand.Float64()-0.5)*p.Config.Jitter
			res.Attempts++

			ok = bounds.Contains(it.X, it.Y) && clearOf(items[:i], it.X, it.Y, vp.MinDistance)
		}

		it.PlacementExhausted = !ok
		if ok {
			res.Placed++
		} else {
			res.Exhausted++
		}
	}
	return res
}

// clearOf reports whether (x, y) is at least minDist from every placed item.
func clearOf(placed []*Item, x, y, minDist float64) bool {
	for _, other := range placed {
		if Distance(x, y, other.X, other.Y) < minDist {
			return false
		}
	}
	return true
}
