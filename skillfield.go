package skillfield

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// The zero value means "no color".
type Color struct {
	R, G, B, A float64
}

// IsZero reports whether c is the zero color (fully transparent black).
func (c Color) IsZero() bool {
	return c == Color{}
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a Color.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("skillfield: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("skillfield: invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// mustHex is used for the built-in palettes only.
func mustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FocusPalette is the set of colors a focused item picks from in play mode.
var FocusPalette = []Color{
	mustHex("#FF6B6B"), mustHex("#4ECDC4"), mustHex("#45B7D1"), mustHex("#FFA07A"), mustHex("#98D8C8"),
	mustHex("#F7DC6F"), mustHex("#BB8FCE"), mustHex("#85C1E2"), mustHex("#F8B739"), mustHex("#52BE80"),
	mustHex("#EC7063"), mustHex("#5DADE2"), mustHex("#58D68D"), mustHex("#F4D03F"), mustHex("#AF7AC5"),
	mustHex("#E74C3C"), mustHex("#3498DB"), mustHex("#2ECC71"), mustHex("#F39C12"), mustHex("#9B59B6"),
}

// NeighborPalette is the set of colors propagated to neighbors in play mode.
var NeighborPalette = FocusPalette[:10]

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Distance returns the Euclidean distance between (ax, ay) and (bx, by).
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Viewport is the drawable region items are placed in.
type Viewport struct {
	Width, Height float64
	Padding       float64
	MinDistance   float64
	// DeviceScale is the host's pixel density. Placement works in logical
	// units and ignores it; renderers may use it.
	DeviceScale float64
}

// Center returns the midpoint of the viewport.
func (v Viewport) Center() Vec2 {
	return Vec2{X: v.Width / 2, Y: v.Height / 2}
}

// Bounds returns the padded region placed items must lie in. Padding larger
// than half a dimension is clamped to half of it, which collapses that axis
// to a line.
func (v Viewport) Bounds() Rect {
	px := math.Max(0, math.Min(v.Padding, v.Width/2))
	py := math.Max(0, math.Min(v.Padding, v.Height/2))
	return Rect{
		X:      px,
		Y:      py,
		Width:  math.Max(0, v.Width-2*px),
		Height: math.Max(0, v.Height-2*py),
	}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventFocus EventType = iota // fires when an item becomes the focused item
	EventBlur                   // fires when the focused item loses focus
	EventClick                  // fires on Click while an item is focused
)

// String returns the lowercase event name.
func (t EventType) String() string {
	switch t {
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventClick:
		return "click"
	default:
		return "unknown"
	}
}
