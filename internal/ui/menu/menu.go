package menu

import (
	"image/color"

	"chosenoffset.com/spaceshooter/internal/render"
)

// GameState represents the current state of the game.
type GameState int

const (
	StateMainMenu GameState = iota
	StatePlaying
)

func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Title screen layout
const (
	Prompt     = "Press to start..."
	PromptSize = 70
	PromptY    = 350
)

var promptColor = color.RGBA{255, 255, 255, 255}

// MainMenu is the title screen shown between sessions.
type MainMenu struct {
	renderer     render.Renderer
	input        render.InputManager
	background   render.Image
	screenWidth  int
	screenHeight int
}

// NewMainMenu creates a new main menu.
func NewMainMenu(r render.Renderer, input render.InputManager, background render.Image, width, height int) *MainMenu {
	return &MainMenu{
		renderer:     r,
		input:        input,
		background:   background,
		screenWidth:  width,
		screenHeight: height,
	}
}

// Update reports whether the player clicked to start a game.
func (m *MainMenu) Update() bool {
	return m.input.IsMouseButtonJustPressed(render.MouseButtonLeft)
}

// Draw renders the background with the start prompt centred on it.
func (m *MainMenu) Draw(screen render.Image) {
	if m.background != nil {
		screen.DrawImage(m.background, render.At(0, 0))
	}
	w, _ := m.renderer.MeasureText(Prompt, PromptSize)
	x := float64(m.screenWidth)/2 - w/2
	m.renderer.DrawText(screen, Prompt, x, PromptY, PromptSize, promptColor)
}
