package skillfield

// RenderState is the per-item record handed to renderers each frame.
type RenderState struct {
	ID      string
	Index   int
	Label   string
	IconRef string

	X, Y     float64
	Size     float64 // already includes the hover scale
	Rotation float64 // degrees
	Opacity  float64
	Glow     float64

	Focused     bool
	EffectColor Color // zero when the item has no transient color
}

// Snapshot appends the current render state of every item to buf and
// returns the extended slice. Pass buf[:0] to reuse a buffer across frames.
func (e *Engine) Snapshot(buf []RenderState) []RenderState {
	for _, it := range e.items {
		opacity := it.Opacity
		if it.Focused {
			opacity = 1
		}
		buf = append(buf, RenderState{
			ID:          it.ID,
			Index:       it.Index,
			Label:       it.Skill.Name,
			IconRef:     it.Skill.Icon,
			X:           it.X,
			Y:           it.Y,
			Size:        it.Size,
			Rotation:    it.Rotation,
			Opacity:     opacity,
			Glow:        it.Glow,
			Focused:     it.Focused,
			EffectColor: it.EffectColor,
		})
	}
	return buf
}
