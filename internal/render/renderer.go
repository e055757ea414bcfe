package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminate is returned from Game.Update to end the run cleanly.
var ErrTerminate = errors.New("render: terminate")

// Renderer is the main rendering interface that abstracts the underlying
// graphics engine. Game logic only talks to this interface so it can run
// against a fake in tests.
type Renderer interface {
	// Image operations
	NewImage(width, height int) Image
	NewImageFromImage(src image.Image) Image

	// Vector operations (for drawing shapes)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	FillTriangle(dst Image, points [3]Point, clr color.Color)

	// Text operations. (x, y) is the top-left corner of the text box and
	// size is the font size in pixels.
	DrawText(dst Image, text string, x, y, size float64, clr color.Color)
	MeasureText(text string, size float64) (width, height float64)
}

// Point is a vertex in screen coordinates.
type Point struct {
	X, Y float32
}

// Image represents a renderable image surface that can be drawn to or drawn from.
type Image interface {
	// Properties
	Bounds() image.Rectangle
	Size() (width, height int)

	// Fill operations
	Fill(clr color.Color)
	Clear()

	// DrawImage draws src onto this image.
	DrawImage(src Image, opts *DrawImageOptions)

	// Resource management
	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	// X and Y translate the source's top-left corner.
	X, Y float64

	// Alpha scales the source opacity. Zero is treated as fully opaque so the
	// zero value draws the image unchanged.
	Alpha float32
}

// At returns options that draw an image unchanged at (x, y).
func At(x, y float64) *DrawImageOptions {
	return &DrawImageOptions{X: x, Y: y, Alpha: 1}
}

// InputManager handles input from the user (keyboard, mouse, window).
type InputManager interface {
	// IsKeyPressed reports whether key is held this frame.
	IsKeyPressed(key Key) bool

	// IsMouseButtonJustPressed reports a press that started this frame.
	IsMouseButtonJustPressed(button MouseButton) bool

	// IsQuitRequested reports that the user asked to close the window.
	IsQuitRequested() bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ResourceLoader handles loading decoded images by name.
type ResourceLoader interface {
	LoadImage(path string) (image.Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (60 times per second).
	// Returning ErrTerminate ends the run without error.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetTPS sets the fixed number of Update calls per second.
	SetTPS(tps int)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
