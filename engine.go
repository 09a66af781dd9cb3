package skillfield

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
)

// Options carries the engine's injectable collaborators. Nil fields get
// defaults: a PCG source seeded from Config.Seed, a TickScheduler, and the
// default charmbracelet logger.
type Options struct {
	Rand      Rand
	Scheduler Scheduler
	Logger    *log.Logger
}

// pointerState is overwritten in place on every move and leave.
type pointerState struct {
	X, Y   float64
	inside bool
}

// Engine owns the item set and runs placement, interaction, and animation
// for one view. All methods must be called from the same goroutine.
type Engine struct {
	cfg    Config
	items  []*Item
	rng    Rand
	sched  Scheduler
	logger *log.Logger

	viewport Viewport
	placed   bool
	lastPlan PlacementResult

	pointer  pointerState
	focused  *Item
	playMode bool
	decays   map[*Item]TimerHandle

	handlers handlerRegistry
	store    EntityStore

	closed bool

	debug bool
	stats frameStats
}

// NewEngine validates cfg and creates one item per skill. Items have no
// position until the first Resize.
func NewEngine(skills []Skill, cfg Config, opts Options) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, ErrNoSkills
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewTickScheduler()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default().WithPrefix("skillfield")
	}

	e := &Engine{
		cfg:      cfg,
		items:    NewItems(skills, cfg.Items, rng),
		rng:      rng,
		sched:    sched,
		logger:   logger,
		playMode: cfg.PlayMode,
		decays:   make(map[*Item]TimerHandle),
	}
	logger.Debug("engine created", "items", len(e.items), "play", e.playMode)
	return e, nil
}

// Items returns the engine's items in input order. The returned slice MUST
// NOT be mutated; item fields may be read freely.
func (e *Engine) Items() []*Item {
	return e.items
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Viewport returns the viewport of the last placement.
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// LastPlacement returns the summary of the most recent placement pass.
func (e *Engine) LastPlacement() PlacementResult {
	return e.lastPlan
}

// Scheduler returns the scheduler running decay timers.
func (e *Engine) Scheduler() Scheduler {
	return e.sched
}

// Resize lays the items out for a new drawable size. Positions are computed
// from scratch; calling it again with the same size is a no-op. The device
// scale is recorded for renderers and does not affect placement. If the
// pointer is over the view, focus is re-evaluated against the new positions.
func (e *Engine) Resize(width, height, deviceScale float64) PlacementResult {
	if e.closed {
		return PlacementResult{}
	}
	if e.placed && e.viewport.Width == width && e.viewport.Height == height {
		e.viewport.DeviceScale = deviceScale
		return e.lastPlan
	}
	e.viewport = Viewport{
		Width:       width,
		Height:      height,
		Padding:     e.cfg.Placement.Padding,
		MinDistance: e.cfg.Placement.MinDistance,
		DeviceScale: deviceScale,
	}
	e.lastPlan = Placer{Config: e.cfg.Placement, Rand: e.rng}.Place(e.items, e.viewport)
	e.placed = true

	e.logger.Debug("layout",
		"width", width, "height", height,
		"placed", e.lastPlan.Placed, "exhausted", e.lastPlan.Exhausted,
		"attempts", e.lastPlan.Attempts)
	if e.pointer.inside {
		e.refocus()
	}
	return e.lastPlan
}

// Close tears the engine down: pending decays are cancelled, callbacks are
// dropped, and every later call becomes a no-op.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.cancelDecays()
	e.handlers = handlerRegistry{}
	e.store = nil
	e.focused = nil
	e.closed = true
	e.logger.Debug("engine closed")
}

// Closed reports whether Close has been called.
func (e *Engine) Closed() bool {
	return e.closed
}
