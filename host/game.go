// Package host runs a skillfield Engine inside an Ebitengine window. It
// forwards cursor input to the engine, ticks it once per frame, and draws
// its snapshots. Input can also be scripted for automated screenshots.
package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/skillfield"
)

// RunConfig configures the window and the host loop.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// ClearColor fills the window before items are drawn. Zero means white.
	ClearColor skillfield.Color

	// Icons maps item IDs to decoded icon images. See LoadIcons.
	Icons map[string]*ebiten.Image

	// ScreenshotDir receives PNGs queued by Screenshot. Defaults to
	// "screenshots".
	ScreenshotDir string

	// Script, when set, injects scripted input each frame. With
	// ExitWhenScriptDone the engine is closed once it finishes, ending Run.
	Script             *TestRunner
	ExitWhenScriptDone bool

	// Seed drives the background dot pattern.
	Seed uint64

	Logger *log.Logger

	// Context, when set, ends the loop once it is cancelled.
	Context context.Context
}

// Game adapts an Engine to the ebiten.Game interface.
type Game struct {
	engine   *skillfield.Engine
	cfg      RunConfig
	logger   *log.Logger
	renderer *Renderer
	fps      *fpsOverlay
	states   []skillfield.RenderState

	width, height int

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string

	pointerInside bool
	lastX, lastY  float64
}

// NewGame wires engine to a renderer. The window size is taken from the
// first Layout call.
func NewGame(engine *skillfield.Engine, cfg RunConfig) (*Game, error) {
	if engine == nil {
		return nil, errors.New("skillfield: nil engine")
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	if cfg.ClearColor.IsZero() {
		cfg.ClearColor = skillfield.Color{R: 1, G: 1, B: 1, A: 1}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default().WithPrefix("host")
	}
	renderer, err := NewRenderer(cfg.Icons, cfg.Seed)
	if err != nil {
		return nil, err
	}
	g := &Game{
		engine:   engine,
		cfg:      cfg,
		logger:   logger,
		renderer: renderer,
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	g.testRunner = cfg.Script
	return g, nil
}

// Engine returns the engine driven by this game.
func (g *Game) Engine() *skillfield.Engine {
	return g.engine
}

// Update forwards one frame of input and advances the engine. It returns
// ebiten.Termination once the engine is closed.
func (g *Game) Update() error {
	if g.cfg.Context != nil && g.cfg.Context.Err() != nil {
		g.engine.Close()
	}
	if g.engine.Closed() {
		return ebiten.Termination
	}
	dt := 1.0 / float64(ebiten.TPS())

	if g.testRunner != nil {
		g.testRunner.step(g)
		if g.testRunner.Done() && g.cfg.ExitWhenScriptDone && len(g.screenshotQueue) == 0 {
			g.logger.Info("test script finished")
			g.engine.Close()
			return ebiten.Termination
		}
	}

	if !g.processInjectedInput() {
		g.processCursor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.engine.SetPlayMode(!g.engine.PlayMode())
		g.logger.Info("play mode", "enabled", g.engine.PlayMode())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.engine.Close()
		return ebiten.Termination
	}

	g.engine.Tick(dt)
	if g.fps != nil {
		g.fps.update(dt, g.engine.PlayMode())
	}
	return nil
}

// processCursor reads the real mouse. An unfocused window or a cursor
// outside the window counts as the pointer leaving.
func (g *Game) processCursor() {
	mx, my := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && mx >= 0 && my >= 0 && mx < g.width && my < g.height
	click := inside && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	g.applyPointer(float64(mx), float64(my), inside, click)
}

// Draw renders the current engine state, the FPS overlay, and any queued
// screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toNRGBA(g.cfg.ClearColor))
	g.states = g.engine.Snapshot(g.states[:0])
	g.renderer.Draw(screen, g.states, g.engine.PlayMode())
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout keeps the logical screen equal to the window size and re-places
// items whenever it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(width, height int, deviceScale float64) {
	g.width, g.height = width, height
	res := g.engine.Resize(float64(width), float64(height), deviceScale)
	g.renderer.Resize(width, height)
	if res.Exhausted > 0 {
		g.logger.Warn("crowded layout", "width", width, "height", height, "exhausted", res.Exhausted)
	}
}

// Run opens a window and drives engine until the window closes, Escape is
// pressed, or the engine is closed. The engine is always closed on return.
func Run(engine *skillfield.Engine, cfg RunConfig) error {
	g, err := NewGame(engine, cfg)
	if err != nil {
		return err
	}
	defer engine.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("skillfield: run: %w", err)
	}
	return nil
}
