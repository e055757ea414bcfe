package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"testing"
	"testing/fstest"

	"chosenoffset.com/spaceshooter/internal/entity"
	"chosenoffset.com/spaceshooter/internal/placeholders"
	"chosenoffset.com/spaceshooter/internal/render/rendertest"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func source(t *testing.T, s *entity.Sprite) image.Image {
	t.Helper()
	img, ok := s.Image.(*rendertest.Image)
	if !ok {
		t.Fatalf("Expected *rendertest.Image, got %T", s.Image)
	}
	return img.Source
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"ship.png": {Data: encodePNG(t, placeholders.SolidSurface(placeholders.ColorPalette.Blue))},
		"junk.png": {Data: []byte("not an image")},
	}
	loader := NewFSLoader(fsys)

	img, err := loader.LoadImage("ship.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 50 {
		t.Errorf("Expected 50x50 image, got %dx%d", b.Dx(), b.Dy())
	}

	if _, err := loader.LoadImage("junk.png"); err == nil {
		t.Error("Expected decode error for junk.png")
	}
	if _, err := loader.LoadImage("missing.png"); err == nil {
		t.Error("Expected error for missing.png")
	}
}

func TestLoadUsesFiles(t *testing.T) {
	fsys := fstest.MapFS{}
	for name, img := range placeholders.Sprites() {
		fsys[name] = &fstest.MapFile{Data: encodePNG(t, img)}
	}
	fsys["background.png"] = &fstest.MapFile{Data: encodePNG(t, placeholders.SolidSurface(placeholders.ColorPalette.Space))}

	r := &rendertest.Renderer{}
	a := Load(r, NewFSLoader(fsys), "background.png", 750, 750, rand.New(rand.NewPCG(1, 2)))

	if w, h := a.Player.Ship.Width(), a.Player.Ship.Height(); w != placeholders.PlayerWidth || h != placeholders.PlayerHeight {
		t.Errorf("Expected %dx%d player ship, got %dx%d", placeholders.PlayerWidth, placeholders.PlayerHeight, w, h)
	}
	for _, c := range entity.Colors {
		kit, ok := a.Enemies[c]
		if !ok {
			t.Fatalf("Expected %s enemy kit", c)
		}
		// Loaded sprites keep their transparent corners out of the mask
		if kit.Ship.Mask.Count() == kit.Ship.Width()*kit.Ship.Height() {
			t.Errorf("Expected %s ship mask to exclude transparent pixels", c)
		}
	}

	bg := a.Background.(*rendertest.Image)
	if bg.W != 750 || bg.H != 750 {
		t.Errorf("Expected background scaled to 750x750, got %dx%d", bg.W, bg.H)
	}
	if len(a.ExplosionFrames) != placeholders.ExplosionFrames {
		t.Errorf("Expected %d explosion frames, got %d", placeholders.ExplosionFrames, len(a.ExplosionFrames))
	}
}

func TestLoadFallsBackToPlaceholders(t *testing.T) {
	r := &rendertest.Renderer{}
	a := Load(r, NewFSLoader(fstest.MapFS{}), "background.png", 750, 750, rand.New(rand.NewPCG(3, 4)))

	want := map[entity.Color]color.RGBA{
		entity.Red:   placeholders.ColorPalette.Red,
		entity.Green: placeholders.ColorPalette.Green,
		entity.Blue:  placeholders.ColorPalette.Blue,
	}
	for c, col := range want {
		kit := a.Enemies[c]
		for _, s := range []*entity.Sprite{kit.Ship, kit.Laser} {
			if s.Width() != 50 || s.Height() != 50 {
				t.Errorf("Expected 50x50 %s placeholder, got %dx%d", c, s.Width(), s.Height())
			}
			if got := color.RGBAModel.Convert(source(t, s).At(10, 10)); got != col {
				t.Errorf("Expected %s placeholder colour %v, got %v", c, col, got)
			}
			if s.Mask.Count() != 50*50 {
				t.Errorf("Expected fully opaque %s placeholder mask, got %d pixels", c, s.Mask.Count())
			}
		}
	}

	if got := color.RGBAModel.Convert(source(t, a.Player.Ship).At(0, 0)); got != placeholders.ColorPalette.Yellow {
		t.Errorf("Expected yellow player placeholder, got %v", got)
	}

	bg := a.Background.(*rendertest.Image)
	if bg.W != 750 || bg.H != 750 {
		t.Errorf("Expected generated 750x750 background, got %dx%d", bg.W, bg.H)
	}
	if _, ok := bg.Source.(*image.RGBA); !ok {
		t.Errorf("Expected generated star field, got %T", bg.Source)
	}
}

func TestScale(t *testing.T) {
	src := placeholders.SolidSurface(placeholders.ColorPalette.Green)
	if Scale(src, 50, 50) != image.Image(src) {
		t.Error("Expected image at target size to be returned unchanged")
	}

	dst := Scale(src, 750, 750)
	if b := dst.Bounds(); b.Dx() != 750 || b.Dy() != 750 {
		t.Fatalf("Expected 750x750, got %dx%d", b.Dx(), b.Dy())
	}
	want := placeholders.ColorPalette.Green
	got := color.RGBAModel.Convert(dst.At(375, 375)).(color.RGBA)
	if absDiff(got.R, want.R) > 2 || absDiff(got.G, want.G) > 2 || absDiff(got.B, want.B) > 2 {
		t.Errorf("Expected scaled colour near %v, got %v", want, got)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
