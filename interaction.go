package skillfield

import "github.com/tanema/gween"

// PointerMove records the pointer position and updates focus. The item with
// the smallest distance among those whose hover radius contains the pointer
// becomes focused. Moving within the already focused item changes nothing.
func (e *Engine) PointerMove(x, y float64) {
	if e.closed {
		return
	}
	e.pointer = pointerState{X: x, Y: y, inside: true}
	e.refocus()
}

// refocus moves focus to the item under the recorded pointer, if it changed.
func (e *Engine) refocus() {
	target := e.nearest(e.pointer.X, e.pointer.Y)
	if target == e.focused {
		return
	}
	e.blur()
	if target != nil {
		e.focus(target)
	}
}

// PointerLeave returns the engine to idle: focus, colors, and scales are
// reset on every item at once, with no decay.
func (e *Engine) PointerLeave() {
	if e.closed {
		return
	}
	e.pointer.inside = false
	e.blur()
	e.resetEffects()
}

// PlayMode reports whether neighbor propagation is enabled.
func (e *Engine) PlayMode() bool {
	return e.playMode
}

// SetPlayMode toggles neighbor propagation. Disabling it clears focus and
// every transient color and scale immediately; the pointer re-acquires focus
// on its next move.
func (e *Engine) SetPlayMode(enabled bool) {
	if e.closed || e.playMode == enabled {
		return
	}
	e.playMode = enabled
	if !enabled {
		e.blur()
		e.resetEffects()
	}
	e.logger.Debug("play mode", "enabled", enabled)
}

// Focused returns the focused item, or nil when idle.
func (e *Engine) Focused() *Item {
	return e.focused
}

// Pointer returns the last pointer position and whether it is over the view.
func (e *Engine) Pointer() (x, y float64, inside bool) {
	return e.pointer.X, e.pointer.Y, e.pointer.inside
}

// Click reports the focused item and fires click callbacks for it.
func (e *Engine) Click() (*Item, bool) {
	if e.closed || e.focused == nil {
		return nil, false
	}
	it := e.focused
	e.logger.Debug("click", "id", it.ID, "name", it.Skill.Name)
	e.fire(EventClick, it)
	return it, true
}

// nearest returns the closest item whose hover radius contains (x, y).
func (e *Engine) nearest(x, y float64) *Item {
	var best *Item
	bestDist := 0.0
	factor := e.cfg.Interaction.HoverRadiusFactor
	for _, it := range e.items {
		d := Distance(x, y, it.X, it.Y)
		if d < it.HoverRadius(factor) && (best == nil || d < bestDist) {
			best, bestDist = it, d
		}
	}
	return best
}

func (e *Engine) focus(it *Item) {
	e.cancelDecay(it)
	it.Focused = true
	e.focused = it
	if e.playMode {
		it.EffectColor = FocusPalette[e.rng.IntN(len(FocusPalette))]
		it.HoverScale = e.cfg.Interaction.PlayFocusScale
	} else {
		it.HoverScale = e.cfg.Interaction.FocusScale
	}
	e.startGlow(it, 1)
	e.fire(EventFocus, it)

	if e.playMode {
		e.propagate(it)
	}
}

// blur clears the current focus, if any.
func (e *Engine) blur() {
	it := e.focused
	if it == nil {
		return
	}
	e.focused = nil
	it.Focused = false
	it.clearEffect()
	e.startGlow(it, 0)
	e.fire(EventBlur, it)
}

// propagate colors and swells every other item within the propagation
// radius of center, with a linear falloff, and schedules each one's decay.
func (e *Engine) propagate(center *Item) {
	radius := e.cfg.Interaction.PropagationRadius
	for _, it := range e.items {
		if it == center {
			continue
		}
		d := Distance(it.X, it.Y, center.X, center.Y)
		if d >= radius {
			continue
		}
		intensity := 1 - d/radius
		it.EffectColor = NeighborPalette[e.rng.IntN(len(NeighborPalette))]
		it.HoverScale = 1 + intensity*e.cfg.Interaction.PropagationScale
		e.scheduleDecay(it)
	}
}

// scheduleDecay replaces any pending decay for it, so the most recent
// propagation decides when the item settles.
func (e *Engine) scheduleDecay(it *Item) {
	e.cancelDecay(it)
	e.decays[it] = e.sched.Schedule(e.cfg.Interaction.DecayDelay.Duration, func() {
		delete(e.decays, it)
		if e.closed || it.Focused {
			return
		}
		it.clearEffect()
	})
}

func (e *Engine) cancelDecay(it *Item) {
	if h, ok := e.decays[it]; ok {
		e.sched.Cancel(h)
		delete(e.decays, it)
	}
}

func (e *Engine) cancelDecays() {
	for it, h := range e.decays {
		e.sched.Cancel(h)
		delete(e.decays, it)
	}
}

// resetEffects drops pending decays and returns every item to baseline.
func (e *Engine) resetEffects() {
	e.cancelDecays()
	for _, it := range e.items {
		it.clearEffect()
	}
}

// startGlow tweens the item's glow toward to over the configured duration.
func (e *Engine) startGlow(it *Item, to float64) {
	d := float32(e.cfg.Animation.GlowDuration.Seconds())
	if d <= 0 {
		it.Glow = to
		it.glow = nil
		return
	}
	it.glow = gween.New(float32(it.Glow), float32(to), d, glowEase)
}
