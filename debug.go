package skillfield

import "time"

// frameStats accumulates tick timing between debug log lines.
// Only populated when the engine is in debug mode.
type frameStats struct {
	frames   int
	tickTime time.Duration
	maxTick  time.Duration
	since    time.Time
}

const debugLogInterval = time.Second

// SetDebugMode enables or disables debug mode. When enabled, tick timing,
// focus, and pending decay counts are logged at debug level once per second.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
	e.stats = frameStats{}
}

func (e *Engine) recordFrame(d time.Duration) {
	s := &e.stats
	if s.since.IsZero() {
		s.since = time.Now()
	}
	s.frames++
	s.tickTime += d
	s.maxTick = max(s.maxTick, d)

	if time.Since(s.since) < debugLogInterval {
		return
	}
	focused := ""
	if e.focused != nil {
		focused = e.focused.ID
	}
	e.logger.Debug("frames",
		"count", s.frames,
		"avg", s.tickTime/time.Duration(s.frames),
		"max", s.maxTick,
		"focused", focused,
		"decays", len(e.decays),
		"play", e.playMode)
	*s = frameStats{since: time.Now()}
}
