// Package hud draws the in-game overlay: remaining lives, the current level
// and the defeat banner.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/spaceshooter/internal/render"
)

// Layout
const (
	Margin   = 10
	TextSize = 50

	LostText = "You Lost!!"
	LostSize = 60
	LostY    = 350
)

var textColor = color.RGBA{255, 255, 255, 255}

// HUD manages the heads-up display
type HUD struct {
	renderer    render.Renderer
	screenWidth int
}

// New creates a HUD for a screen of the given width
func New(r render.Renderer, screenWidth int) *HUD {
	return &HUD{renderer: r, screenWidth: screenWidth}
}

// Draw shows lives in the top-left corner and the level in the top-right
func (h *HUD) Draw(screen render.Image, lives, level int) {
	h.renderer.DrawText(screen, fmt.Sprintf("Lives: %d", lives), Margin, Margin, TextSize, textColor)

	levelText := fmt.Sprintf("Level: %d", level)
	w, _ := h.renderer.MeasureText(levelText, TextSize)
	h.renderer.DrawText(screen, levelText, float64(h.screenWidth)-w-Margin, Margin, TextSize, textColor)
}

// DrawLost shows the defeat banner centred horizontally
func (h *HUD) DrawLost(screen render.Image) {
	w, _ := h.renderer.MeasureText(LostText, LostSize)
	h.renderer.DrawText(screen, LostText, float64(h.screenWidth)/2-w/2, LostY, LostSize, textColor)
}
