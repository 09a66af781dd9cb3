package host

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-hover", "after-hover"},
		{"frame.01", "frame.01"},
		{"play mode", "play_mode"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
		{"élan", "_lan"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueueAppend(t *testing.T) {
	g := newTestGame(t)
	g.Screenshot("a")
	g.Screenshot("b")
	if len(g.screenshotQueue) != 2 || g.screenshotQueue[0] != "a" || g.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", g.screenshotQueue)
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		255, 0, 0, 255, // opaque red
		64, 32, 0, 128, // half-alpha, premultiplied
		0, 0, 0, 0, // transparent
	}
	img := unpremultiply(pixels, 3, 1)
	want := []byte{255, 0, 0, 255, 127, 63, 0, 128, 0, 0, 0, 0}
	for i, w := range want {
		if img.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], w)
		}
	}
}

func TestWritePNG(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(1, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	path := filepath.Join(dir, "frame.png")
	if err := writePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := got.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("bounds = %v, want 3x2", b)
	}
	if r, g, b, _ := got.At(1, 1).RGBA(); r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("pixel = %v", got.At(1, 1))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want only frame.png", len(entries))
	}
}

func TestWritePNGMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "frame.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}
