// Package rendertest provides in-memory implementations of the render
// interfaces for tests that exercise drawing and input without a window.
package rendertest

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/spaceshooter/internal/render"
)

// Image is a render.Image that only tracks its size and what was drawn on it.
type Image struct {
	W, H   int
	Source image.Image // set when created from a decoded image
	Draws  []Draw
	Filled color.Color
}

// Draw records one DrawImage call.
type Draw struct {
	Src  *Image
	Opts render.DrawImageOptions
}

// NewImage creates a fake image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }
func (i *Image) Size() (int, int)        { return i.W, i.H }
func (i *Image) Fill(clr color.Color)    { i.Filled = clr }
func (i *Image) Clear()                  { i.Filled = nil; i.Draws = nil }
func (i *Image) Dispose()                {}

// DrawImage records the call.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	d := Draw{Src: src.(*Image)}
	if opts != nil {
		d.Opts = *opts
	}
	i.Draws = append(i.Draws, d)
}

// Renderer records shape and text calls.
type Renderer struct {
	Rects     []Rect
	Circles   int
	Triangles int
	Texts     []string
}

// Rect records one FillRect call.
type Rect struct {
	X, Y, W, H float32
	Color      color.Color
}

var _ render.Renderer = (*Renderer)(nil)

func (r *Renderer) NewImage(w, h int) render.Image { return NewImage(w, h) }

// NewImageFromImage keeps a reference to src so tests can inspect it.
func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return &Image{W: b.Dx(), H: b.Dy(), Source: src}
}

func (r *Renderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	r.Rects = append(r.Rects, Rect{X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.Circles++
}

func (r *Renderer) FillTriangle(dst render.Image, points [3]render.Point, clr color.Color) {
	r.Triangles++
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y, size float64, clr color.Color) {
	r.Texts = append(r.Texts, text)
}

// MeasureText pretends every glyph is half as wide as the font size.
func (r *Renderer) MeasureText(text string, size float64) (float64, float64) {
	return float64(len(text)) * size / 2, size
}

// HasText reports whether text was drawn.
func (r *Renderer) HasText(text string) bool {
	for _, t := range r.Texts {
		if t == text {
			return true
		}
	}
	return false
}

// Input is a scripted render.InputManager.
type Input struct {
	Held    map[render.Key]bool
	Clicked bool
	Quit    bool
}

var _ render.InputManager = (*Input)(nil)

// NewInput creates an input with no keys held.
func NewInput() *Input {
	return &Input{Held: make(map[render.Key]bool)}
}

func (in *Input) IsKeyPressed(key render.Key) bool { return in.Held[key] }

// IsMouseButtonJustPressed reports Clicked for the left button and clears it,
// matching a press that lasts a single frame.
func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	if button != render.MouseButtonLeft || !in.Clicked {
		return false
	}
	in.Clicked = false
	return true
}

func (in *Input) IsQuitRequested() bool { return in.Quit }

// Loader serves decoded images from a map and fails for anything else.
type Loader map[string]image.Image

func (l Loader) LoadImage(path string) (image.Image, error) {
	img, ok := l[path]
	if !ok {
		return nil, fmt.Errorf("rendertest: no image %q", path)
	}
	return img, nil
}
