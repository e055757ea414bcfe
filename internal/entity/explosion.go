package entity

import "chosenoffset.com/spaceshooter/internal/render"

// Explosion animation timing, in ticks.
const (
	ExplosionFrames     = 5
	ExplosionFrameTicks = 5
	ExplosionLifetime   = 25
)

// Explosion is a short looping animation left where an enemy died.
type Explosion struct {
	X, Y    float64
	frames  []render.Image
	index   int
	counter int
}

// NewExplosion creates an explosion at (x, y) cycling through frames.
func NewExplosion(x, y float64, frames []render.Image) *Explosion {
	return &Explosion{X: x, Y: y, frames: frames}
}

// Tick advances the animation by one frame.
func (e *Explosion) Tick() {
	if e.counter%ExplosionFrameTicks == 0 && len(e.frames) > 0 {
		e.index = (e.index + 1) % len(e.frames)
	}
	e.counter++
}

// Finished reports whether the explosion outlived its lifetime.
func (e *Explosion) Finished() bool {
	return e.counter > ExplosionLifetime
}

// Age returns the number of ticks the explosion has run.
func (e *Explosion) Age() int { return e.counter }

// Frame returns the index of the frame currently shown.
func (e *Explosion) Frame() int { return e.index }

// Draw renders the current frame.
func (e *Explosion) Draw(dst render.Image) {
	if len(e.frames) == 0 || e.frames[e.index] == nil {
		return
	}
	dst.DrawImage(e.frames[e.index], render.At(e.X, e.Y))
}
