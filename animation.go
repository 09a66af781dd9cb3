package skillfield

import (
	"math"
	"time"

	"github.com/tanema/gween/ease"
)

var glowEase ease.TweenFunc = ease.OutCubic

// Tick advances the engine by dt seconds: due decay timers fire first, then
// every item's size and rotation move a fixed fraction of the way toward
// their targets. A focused item's target rotation keeps advancing, which
// makes it spin. Tick never blocks; a long frame just takes a larger step.
//
// There is no internal frame loop; the host calls Tick once per frame.
// A negative or non-finite dt is treated as zero.
func (e *Engine) Tick(dt float64) {
	if e.closed {
		return
	}
	if !(dt >= 0) || math.IsInf(dt, 1) {
		e.logger.Warn("ignoring invalid tick", "dt", dt)
		dt = 0
	}
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	if a, ok := e.sched.(advancer); ok {
		a.Advance(time.Duration(dt * float64(time.Second)))
	}

	k := e.smoothingStep(dt)
	spin := e.spinStep(dt)
	for _, it := range e.items {
		target := it.BaseSize * it.HoverScale
		it.Size += (target - it.Size) * k

		if it.Focused {
			it.TargetRotation += spin
		}
		it.Rotation += (it.TargetRotation - it.Rotation) * k

		if it.glow != nil {
			v, done := it.glow.Update(float32(dt))
			it.Glow = float64(v)
			if done {
				it.glow = nil
			}
		}
	}

	if e.debug {
		e.recordFrame(time.Since(t0))
	}
}

// smoothingStep returns the fraction of the remaining distance covered this
// tick. With a reference frame rate it is scaled so that two half-length
// ticks cover the same ground as one full one.
func (e *Engine) smoothingStep(dt float64) float64 {
	s := e.cfg.Animation.Smoothing
	fps := e.cfg.Animation.ReferenceFPS
	if fps <= 0 || dt <= 0 {
		return s
	}
	return 1 - math.Pow(1-s, dt*fps)
}

func (e *Engine) spinStep(dt float64) float64 {
	spin := e.cfg.Animation.SpinPerTick
	fps := e.cfg.Animation.ReferenceFPS
	if fps <= 0 || dt <= 0 {
		return spin
	}
	return spin * dt * fps
}
