package host

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay shows FPS, TPS, and play mode in the top-left corner. The
// text is redrawn every ~0.5 seconds into a cached image.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
}

func newFPSOverlay() *fpsOverlay {
	// 120x48 fits three lines of DebugPrint text.
	return &fpsOverlay{img: ebiten.NewImage(120, 48), since: 0.5}
}

func (o *fpsOverlay) update(dt float64, play bool) {
	o.since += dt
	if o.since < 0.5 {
		return
	}
	o.since = 0

	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	mode := "off"
	if play {
		mode = "on"
	}
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nPlay: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(), mode))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
