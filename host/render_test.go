package host

import (
	"math/rand/v2"
	"testing"

	"github.com/phanxgames/skillfield"
)

func TestFallbackLetter(t *testing.T) {
	tests := []struct {
		label, id, want string
	}{
		{"Go", "go", "G"},
		{"rust", "", "R"},
		{"  élan", "x", "É"},
		{"", "kotlin", "K"},
		{" ", "", "?"},
	}
	for _, tt := range tests {
		if got := fallbackLetter(tt.label, tt.id); got != tt.want {
			t.Errorf("fallbackLetter(%q, %q) = %q, want %q", tt.label, tt.id, got, tt.want)
		}
	}
}

func TestDrawOrderPutsFocusedLast(t *testing.T) {
	states := []skillfield.RenderState{
		{ID: "a"}, {ID: "b", Focused: true}, {ID: "c"},
	}
	got := drawOrder(nil, states)
	want := []int{0, 2, 1}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order = %v, want %v", got, want)
			break
		}
	}
}

func TestGenerateDots(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	dots := generateDots(nil, 300, 200, 50, rng)
	if len(dots) != 50 {
		t.Fatalf("len = %d, want 50", len(dots))
	}
	for _, d := range dots {
		if d.x < 0 || d.x > 300 || d.y < 0 || d.y > 200 || d.r < 0.5 || d.r > 2 {
			t.Errorf("dot out of range: %+v", d)
		}
	}
	if got := generateDots(nil, 0, 200, 50, rng); len(got) != 0 {
		t.Errorf("zero-width viewport produced %d dots", len(got))
	}
}

func TestToNRGBA(t *testing.T) {
	c := toNRGBA(skillfield.Color{R: 1, G: 0.5, B: -1, A: 2})
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("toNRGBA = %+v", c)
	}
}

func TestItemGeoMCentersAndScales(t *testing.T) {
	s := &skillfield.RenderState{X: 100, Y: 50, Size: 40}
	m := itemGeoM(20, 20, s.Size, s)

	x, y := m.Apply(10, 10) // source center
	if x != 100 || y != 50 {
		t.Errorf("center maps to (%v, %v), want (100, 50)", x, y)
	}
	x, y = m.Apply(0, 0)
	if x != 80 || y != 30 {
		t.Errorf("corner maps to (%v, %v), want (80, 30)", x, y)
	}
}
