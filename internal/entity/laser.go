package entity

import (
	"chosenoffset.com/spaceshooter/internal/core/collision"
	"chosenoffset.com/spaceshooter/internal/render"
)

// Trail rendering
const (
	TrailCopies  = 4
	TrailSpacing = 5  // pixels between trail copies
	TrailFade    = 50 // alpha lost per copy, out of 255
)

// Laser is a projectile travelling straight up or down.
type Laser struct {
	X, Y   float64
	Sprite *Sprite
}

// NewLaser creates a laser at (x, y).
func NewLaser(x, y float64, sprite *Sprite) *Laser {
	return &Laser{X: x, Y: y, Sprite: sprite}
}

// Move shifts the laser vertically; negative velocity moves up.
func (l *Laser) Move(vel float64) {
	l.Y += vel
}

// OffScreen reports whether the laser left the playfield [0, height].
func (l *Laser) OffScreen(height int) bool {
	return l.Y < 0 || l.Y > float64(height)
}

// Collision reports whether the laser overlaps other.
func (l *Laser) Collision(other collision.Body) bool {
	return collision.Collide(l, other)
}

// Origin implements collision.Body.
func (l *Laser) Origin() (float64, float64) { return l.X, l.Y }

// Mask implements collision.Body.
func (l *Laser) Mask() *collision.Mask { return l.Sprite.Mask }

// Draw renders the laser and a fading trail behind it.
func (l *Laser) Draw(dst render.Image) {
	if l.Sprite.Image == nil {
		return
	}
	dst.DrawImage(l.Sprite.Image, render.At(l.X, l.Y))
	for i := 1; i <= TrailCopies; i++ {
		dst.DrawImage(l.Sprite.Image, &render.DrawImageOptions{
			X:     l.X,
			Y:     l.Y + float64(i*TrailSpacing),
			Alpha: float32(255-i*TrailFade) / 255,
		})
	}
}
