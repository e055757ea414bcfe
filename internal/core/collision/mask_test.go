package collision

import (
	"image"
	"image/color"
	"testing"
)

type body struct {
	x, y float64
	mask *Mask
}

func (b body) Origin() (float64, float64) { return b.x, b.y }
func (b body) Mask() *Mask                { return b.mask }

func filled(w, h int) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y)
		}
	}
	return m
}

func TestFromImageThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 127}) // not above threshold
	img.Set(1, 0, color.NRGBA{255, 0, 0, 128})
	img.Set(2, 0, color.NRGBA{0, 0, 0, 0})

	m := FromImage(img)
	if m.Get(0, 0) {
		t.Error("Expected alpha 127 to be transparent")
	}
	if !m.Get(1, 0) {
		t.Error("Expected alpha 128 to be opaque")
	}
	if m.Get(2, 0) {
		t.Error("Expected alpha 0 to be transparent")
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 opaque pixel, got %d", m.Count())
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 14, 22))
	img.Set(13, 21, color.RGBA{255, 255, 255, 255})

	m := FromImage(img)
	if m.Width() != 4 || m.Height() != 2 {
		t.Fatalf("Expected 4x2 mask, got %dx%d", m.Width(), m.Height())
	}
	if !m.Get(3, 1) {
		t.Error("Expected pixel (3,1) to be opaque")
	}
}

func TestOverlapSolidBoxes(t *testing.T) {
	a := filled(10, 10)
	b := filled(10, 10)

	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"same place", 0, 0, true},
		{"partial", 5, 5, true},
		{"last pixel", 9, 9, true},
		{"adjacent right", 10, 0, false},
		{"adjacent below", 0, 10, false},
		{"negative partial", -9, -9, true},
		{"negative adjacent", -10, 0, false},
		{"far away", 100, 100, false},
	}
	for _, tt := range tests {
		if _, got := a.Overlap(b, tt.dx, tt.dy); got != tt.want {
			t.Errorf("%s: Expected overlap %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestOverlapPixelAccurate(t *testing.T) {
	// Two diagonal shapes whose boxes overlap but whose pixels never meet.
	a := NewMask(4, 4)
	b := NewMask(4, 4)
	for i := 0; i < 4; i++ {
		a.Set(0, i) // left column
		b.Set(3, i) // right column
	}

	if _, ok := a.Overlap(b, 0, 0); ok {
		t.Error("Expected no collision for disjoint opaque pixels in overlapping boxes")
	}
	if _, ok := a.Overlap(b, -3, 0); !ok {
		t.Error("Expected collision when columns line up")
	}
}

func TestOverlapAcrossWordBoundary(t *testing.T) {
	a := NewMask(130, 2)
	a.Set(70, 1)
	b := NewMask(5, 5)
	b.Set(4, 0)

	pt, ok := a.Overlap(b, 66, 1)
	if !ok {
		t.Fatal("Expected overlap across word boundary")
	}
	if pt != image.Pt(70, 1) {
		t.Errorf("Expected overlap at (70,1), got %v", pt)
	}

	// Shifted by one column the single pixels miss each other.
	if _, ok := a.Overlap(b, 67, 1); ok {
		t.Error("Expected no overlap when shifted one column")
	}
}

func TestOverlapIgnoresBitsPastRowEnd(t *testing.T) {
	a := NewMask(3, 2)
	a.Set(0, 1)
	b := filled(3, 1)

	// b hangs off the right edge of a; only column 2 of a is shared and it is empty.
	if _, ok := a.Overlap(b, 2, 0); ok {
		t.Error("Expected no overlap with empty shared column")
	}
}

func TestCollide(t *testing.T) {
	a := body{x: 100, y: 100, mask: filled(20, 20)}
	b := body{x: 119.5, y: 110, mask: filled(20, 20)}
	if !Collide(a, b) {
		t.Error("Expected overlapping bodies to collide")
	}

	b.x = 120
	if Collide(a, b) {
		t.Error("Expected touching bodies not to collide")
	}

	if Collide(a, body{x: 100, y: 100}) {
		t.Error("Expected body without mask never to collide")
	}
}
