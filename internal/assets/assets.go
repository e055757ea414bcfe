// Package assets loads the sprites and backgrounds the game draws,
// substituting generated placeholders for anything missing.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"log"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"chosenoffset.com/spaceshooter/internal/entity"
	"chosenoffset.com/spaceshooter/internal/placeholders"
	"chosenoffset.com/spaceshooter/internal/render"
)

// Sprite file names
const (
	PlayerShip  = "pixel_ship_yellow.png"
	PlayerLaser = "pixel_laser_yellow.png"
)

var enemyFiles = map[entity.Color]struct{ ship, laser string }{
	entity.Red:   {"pixel_ship_red_small.png", "pixel_laser_red.png"},
	entity.Green: {"pixel_ship_green_small.png", "pixel_laser_green.png"},
	entity.Blue:  {"pixel_ship_blue_small.png", "pixel_laser_blue.png"},
}

var fallbackColors = map[entity.Color]color.RGBA{
	entity.Red:   placeholders.ColorPalette.Red,
	entity.Green: placeholders.ColorPalette.Green,
	entity.Blue:  placeholders.ColorPalette.Blue,
}

// FSLoader decodes images from a file system. PNG, BMP and WebP are
// supported.
type FSLoader struct {
	fsys fs.FS
}

var _ render.ResourceLoader = (*FSLoader)(nil)

// NewFSLoader creates a loader reading from fsys.
func NewFSLoader(fsys fs.FS) *FSLoader {
	return &FSLoader{fsys: fsys}
}

// LoadImage opens and decodes the named image.
func (l *FSLoader) LoadImage(name string) (image.Image, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	return img, nil
}

// Assets holds everything the game draws.
type Assets struct {
	Player          entity.Kit
	Enemies         entity.Palette
	Background      render.Image
	ExplosionFrames []render.Image
}

// Load builds the game's assets. Failures are never fatal: each missing
// sprite becomes a solid 50x50 block of its ship's colour and a missing
// background becomes a generated star field. The background is scaled to
// width x height.
func Load(r render.Renderer, loader render.ResourceLoader, background string, width, height int, rng placeholders.Rand) *Assets {
	a := &Assets{
		Player: entity.Kit{
			Ship:  loadSprite(r, loader, PlayerShip, placeholders.ColorPalette.Yellow),
			Laser: loadSprite(r, loader, PlayerLaser, placeholders.ColorPalette.Yellow),
		},
		Enemies: make(entity.Palette, len(enemyFiles)),
	}

	for c, files := range enemyFiles {
		a.Enemies[c] = entity.Kit{
			Ship:  loadSprite(r, loader, files.ship, fallbackColors[c]),
			Laser: loadSprite(r, loader, files.laser, fallbackColors[c]),
		}
	}

	a.Background = r.NewImageFromImage(loadBackground(loader, background, width, height, rng))

	for _, f := range placeholders.ExplosionSequence() {
		a.ExplosionFrames = append(a.ExplosionFrames, r.NewImageFromImage(f))
	}
	return a
}

func loadSprite(r render.Renderer, loader render.ResourceLoader, name string, fallback color.RGBA) *entity.Sprite {
	img, err := loader.LoadImage(name)
	if err != nil {
		log.Printf("Warning: Failed to load sprite %s, using placeholder: %v", name, err)
		img = placeholders.SolidSurface(fallback)
	}
	return entity.NewSprite(r, img)
}

func loadBackground(loader render.ResourceLoader, name string, width, height int, rng placeholders.Rand) image.Image {
	img, err := loader.LoadImage(name)
	if err != nil {
		log.Printf("Warning: Failed to load background %s, generating star field: %v", name, err)
		return placeholders.Starfield(width, height, placeholders.BackgroundStars, rng)
	}
	return Scale(img, width, height)
}

// Scale resizes img to exactly width x height. Images already at that
// size are returned unchanged.
func Scale(img image.Image, width, height int) image.Image {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
