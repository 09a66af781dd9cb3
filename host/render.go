package host

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/skillfield"
)

const (
	backgroundDots  = 200
	effectPadding   = 8
	effectAlpha     = 0.25
	glowSpread      = 14
	letterSizeRatio = 0.4
)

var (
	defaultGlowColor = color.NRGBA{0x4A, 0x90, 0xE2, 0xFF}
	letterColor      = color.NRGBA{0, 0, 0, 0xB3}
	dotColor         = color.NRGBA{0, 0, 0, 0x1F}
)

type dot struct {
	x, y, r float32
}

// Renderer draws engine snapshots onto an ebiten image: a static dotted
// background, a glow disc under focused items, a translucent effect square
// in play mode, and the icon (grayscale unless tinted) or a fallback letter.
type Renderer struct {
	icons  map[string]*ebiten.Image
	source *text.GoTextFaceSource
	white  *ebiten.Image
	rng    *rand.Rand
	dots   []dot
	order  []int
}

// NewRenderer parses the fallback font and prepares the renderer. icons is
// keyed by item ID and may be nil.
func NewRenderer(icons map[string]*ebiten.Image, seed uint64) (*Renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("skillfield: parse fallback font: %w", err)
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Renderer{
		icons:  icons,
		source: source,
		white:  white,
		rng:    rand.New(rand.NewPCG(seed, seed+1)),
	}, nil
}

// Resize regenerates the background dots for a new window size.
func (r *Renderer) Resize(width, height int) {
	r.dots = generateDots(r.dots[:0], width, height, backgroundDots, r.rng)
}

func generateDots(buf []dot, width, height, n int, rng *rand.Rand) []dot {
	if width <= 0 || height <= 0 {
		return buf
	}
	for i := 0; i < n; i++ {
		buf = append(buf, dot{
			x: float32(rng.Float64() * float64(width)),
			y: float32(rng.Float64() * float64(height)),
			r: float32(0.5 + rng.Float64()*1.5),
		})
	}
	return buf
}

// Draw renders the background and every item state. Focused items are
// drawn last so they sit on top of their neighbors.
func (r *Renderer) Draw(dst *ebiten.Image, states []skillfield.RenderState, play bool) {
	for _, d := range r.dots {
		vector.DrawFilledCircle(dst, d.x, d.y, d.r, dotColor, true)
	}

	r.order = drawOrder(r.order[:0], states)
	for _, i := range r.order {
		r.drawItem(dst, &states[i], play)
	}
}

// drawOrder lists state indices with focused items moved to the end.
func drawOrder(buf []int, states []skillfield.RenderState) []int {
	for i := range states {
		if !states[i].Focused {
			buf = append(buf, i)
		}
	}
	for i := range states {
		if states[i].Focused {
			buf = append(buf, i)
		}
	}
	return buf
}

func (r *Renderer) drawItem(dst *ebiten.Image, s *skillfield.RenderState, play bool) {
	tinted := play && !s.EffectColor.IsZero()

	if s.Glow > 0 {
		glow := defaultGlowColor
		if tinted {
			glow = toNRGBA(s.EffectColor)
		}
		glow.A = uint8(float64(glow.A) * 0.35 * s.Glow)
		radius := s.Size/2 + glowSpread*s.Glow
		vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), float32(radius), glow, true)
	}

	if tinted {
		side := s.Size + 2*effectPadding
		op := &ebiten.DrawImageOptions{}
		op.GeoM = itemGeoM(1, 1, side, s)
		c := toNRGBA(s.EffectColor)
		c.A = uint8(float64(c.A) * effectAlpha)
		op.ColorScale.ScaleWithColor(c)
		dst.DrawImage(r.white, op)
	}

	if icon := r.icons[s.ID]; icon != nil {
		b := icon.Bounds()
		var cm colorm.ColorM
		if !tinted {
			cm.ChangeHSV(0, 0, 1)
		}
		cm.Scale(1, 1, 1, s.Opacity)
		op := &colorm.DrawImageOptions{Filter: ebiten.FilterLinear}
		op.GeoM = itemGeoM(float64(b.Dx()), float64(b.Dy()), s.Size, s)
		colorm.DrawImage(dst, icon, cm, op)
		return
	}

	r.drawLetter(dst, s, tinted)
}

func (r *Renderer) drawLetter(dst *ebiten.Image, s *skillfield.RenderState, tinted bool) {
	face := &text.GoTextFace{Source: r.source, Size: math.Max(s.Size*letterSizeRatio, 1)}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Rotate(s.Rotation * math.Pi / 180)
	op.GeoM.Translate(s.X, s.Y)
	clr := letterColor
	if tinted {
		clr = toNRGBA(s.EffectColor)
	}
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(s.Opacity))
	text.Draw(dst, fallbackLetter(s.Label, s.ID), face, op)
}

// itemGeoM maps a srcW x srcH image onto a side x side square centered on
// the item and rotated by its rotation.
func itemGeoM(srcW, srcH, side float64, s *skillfield.RenderState) ebiten.GeoM {
	var m ebiten.GeoM
	m.Translate(-srcW/2, -srcH/2)
	m.Scale(side/srcW, side/srcH)
	m.Rotate(s.Rotation * math.Pi / 180)
	m.Translate(s.X, s.Y)
	return m
}

// fallbackLetter is the upper-cased first letter of the label, or of the
// id when the label is blank.
func fallbackLetter(label, id string) string {
	for _, s := range []string{label, id} {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(s)
		return string(unicode.ToUpper(r))
	}
	return "?"
}

func toNRGBA(c skillfield.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
