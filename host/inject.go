package host

// syntheticPointerEvent is a single injected pointer sample. Coordinates are
// window pixels, the same space the real cursor reports in.
type syntheticPointerEvent struct {
	x, y  float64
	leave bool
	click bool
}

// InjectMove queues a pointer move to (x, y). The event is consumed on the
// next Update, and real cursor input is ignored for that frame.
func (g *Game) InjectMove(x, y float64) {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues the pointer leaving the window.
func (g *Game) InjectLeave() {
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{leave: true})
}

// InjectClick queues a move to (x, y) followed by a click at the same spot.
// Consumes two frames.
func (g *Game) InjectClick(x, y float64) {
	g.InjectMove(x, y)
	g.injectQueue = append(g.injectQueue, syntheticPointerEvent{x: x, y: y, click: true})
}

// InjectSweep queues a straight pointer path from (fromX, fromY) to
// (toX, toY) spread over frames moves, endpoints included. Minimum frames
// is 2.
func (g *Game) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		g.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// processInjectedInput pops one event from the queue and applies it.
// Returns true if an event was consumed.
func (g *Game) processInjectedInput() bool {
	if len(g.injectQueue) == 0 {
		return false
	}
	evt := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]

	g.applyPointer(evt.x, evt.y, !evt.leave, evt.click)
	return true
}

// applyPointer translates one pointer sample into engine calls. Moves are
// only forwarded when the position changed or the pointer re-entered.
func (g *Game) applyPointer(x, y float64, inside, click bool) {
	if !inside {
		if g.pointerInside {
			g.engine.PointerLeave()
		}
		g.pointerInside = false
		return
	}
	if !g.pointerInside || x != g.lastX || y != g.lastY {
		g.engine.PointerMove(x, y)
	}
	g.pointerInside = true
	g.lastX, g.lastY = x, y
	if click {
		g.engine.Click()
	}
}
