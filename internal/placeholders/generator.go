package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// Placeholder dimensions
const (
	// SurfaceSize is the side of the solid stand-in used for missing sprites
	// and of every explosion frame.
	SurfaceSize = 50

	EnemyWidth   = 50
	EnemyHeight  = 50
	PlayerWidth  = 100
	PlayerHeight = 90
	LaserWidth   = 100
	LaserHeight  = 90

	// BackgroundStars is the number of stars on the generated background.
	BackgroundStars = 200

	// ExplosionFrames is the number of frames in the explosion animation.
	ExplosionFrames = 5
)

// ColorPalette defines the placeholder colors
var ColorPalette = struct {
	// Ships and their lasers
	Red    color.RGBA
	Green  color.RGBA
	Blue   color.RGBA
	Yellow color.RGBA

	// Background
	Space color.RGBA

	// Explosion core
	Flash color.RGBA
}{
	Red:    color.RGBA{230, 40, 40, 255},
	Green:  color.RGBA{40, 200, 60, 255},
	Blue:   color.RGBA{50, 110, 230, 255},
	Yellow: color.RGBA{240, 220, 40, 255},

	Space: color.RGBA{0, 0, 20, 255}, // Near-black navy

	Flash: color.RGBA{255, 255, 200, 255},
}

// Rand is the randomness the procedural generators draw from.
type Rand interface {
	IntN(n int) int
}

// SolidSurface creates a fully opaque 50x50 surface of one color
func SolidSurface(col color.RGBA) *image.RGBA {
	return solid(SurfaceSize, SurfaceSize, col)
}

func solid(w, h int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

func transparent(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	return img
}

func fillCircle(img *image.RGBA, cx, cy, radius int, col color.RGBA) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, col)
			}
		}
	}
}

func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r, &image.Uniform{col}, image.Point{}, draw.Src)
}

// Starfield creates a w x h space backdrop scattered with n stars
func Starfield(w, h, n int, rng Rand) *image.RGBA {
	img := solid(w, h, ColorPalette.Space)
	for i := 0; i < n; i++ {
		x := rng.IntN(w)
		y := rng.IntN(h)
		radius := 1 + rng.IntN(2)
		b := uint8(128 + rng.IntN(128))
		fillCircle(img, x, y, radius, color.RGBA{b, b, b, 255})
	}
	return img
}

// ExplosionFrame creates frame i of the explosion animation. Frames cool
// from yellow to red while the bright core shrinks.
func ExplosionFrame(i int) *image.RGBA {
	img := SolidSurface(color.RGBA{255, uint8(200 - 40*i), 0, 255})
	fillCircle(img, SurfaceSize/2, SurfaceSize/2, 25-5*i, ColorPalette.Flash)
	return img
}

// ExplosionSequence creates all explosion frames in order
func ExplosionSequence() []*image.RGBA {
	frames := make([]*image.RGBA, ExplosionFrames)
	for i := range frames {
		frames[i] = ExplosionFrame(i)
	}
	return frames
}

// ShipSprite draws a triangular hull on a transparent background. Player
// ships point up, enemies point down.
func ShipSprite(w, h int, hull color.RGBA, pointUp bool) *image.RGBA {
	img := transparent(w, h)
	outline := Darken(hull, 0.6)

	for y := 0; y < h; y++ {
		row := y
		if !pointUp {
			row = h - 1 - y
		}
		// Half width grows linearly from the nose to the tail
		half := (row + 1) * w / (2 * h)
		for x := w/2 - half; x < w/2+half; x++ {
			if x == w/2-half || x == w/2+half-1 {
				img.Set(x, y, outline)
			} else {
				img.Set(x, y, hull)
			}
		}
	}

	cockpitY := h * 2 / 3
	if !pointUp {
		cockpitY = h / 3
	}
	fillCircle(img, w/2, cockpitY, w/10, Lighten(hull, 0.6))
	return img
}

// LaserSprite draws a vertical beam centred on a transparent background
func LaserSprite(w, h int, beam color.RGBA) *image.RGBA {
	img := transparent(w, h)
	bw, bh := w/12, h/3
	x0, y0 := (w-bw)/2, (h-bh)/2
	fillRect(img, image.Rect(x0, y0, x0+bw, y0+bh), beam)
	core := image.Rect(x0+bw/3, y0+1, x0+bw-bw/3, y0+bh-1)
	fillRect(img, core, Lighten(beam, 0.7))
	return img
}

// Sprites returns every ship and laser placeholder keyed by its file name
func Sprites() map[string]*image.RGBA {
	return map[string]*image.RGBA{
		"pixel_ship_red_small.png":   ShipSprite(EnemyWidth, EnemyHeight, ColorPalette.Red, false),
		"pixel_ship_green_small.png": ShipSprite(EnemyWidth, EnemyHeight, ColorPalette.Green, false),
		"pixel_ship_blue_small.png":  ShipSprite(EnemyWidth, EnemyHeight, ColorPalette.Blue, false),
		"pixel_ship_yellow.png":      ShipSprite(PlayerWidth, PlayerHeight, ColorPalette.Yellow, true),
		"pixel_laser_red.png":        LaserSprite(LaserWidth, LaserHeight, ColorPalette.Red),
		"pixel_laser_green.png":      LaserSprite(LaserWidth, LaserHeight, ColorPalette.Green),
		"pixel_laser_blue.png":       LaserSprite(LaserWidth, LaserHeight, ColorPalette.Blue),
		"pixel_laser_yellow.png":     LaserSprite(LaserWidth, LaserHeight, ColorPalette.Yellow),
	}
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// GenerateAndSave writes every sprite placeholder into assetsDir
func GenerateAndSave(assetsDir string) error {
	fmt.Println("Generating placeholder sprites...")

	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return fmt.Errorf("failed to create assets directory: %w", err)
	}

	for name, img := range Sprites() {
		path := filepath.Join(assetsDir, name)
		if err := SavePNG(img, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", name, err)
		}
		b := img.Bounds()
		fmt.Printf("✓ Generated %s (%dx%d pixels)\n", path, b.Dx(), b.Dy())
	}

	fmt.Println("Placeholder sprites generated successfully!")
	return nil
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
