package entity

import (
	"image/color"

	"chosenoffset.com/spaceshooter/internal/core/collision"
	"chosenoffset.com/spaceshooter/internal/render"
)

const (
	// Cooldown is the number of frames a ship charges after firing.
	Cooldown = 30

	// DefaultHealth is the starting health of every ship.
	DefaultHealth = 100

	// EnemyLaserOffsetX centres enemy lasers under their wider ship sprites.
	EnemyLaserOffsetX = -20
)

// Player decorations
const (
	HealthBarGap    = 10
	HealthBarHeight = 10
	ThrustMin       = 10
	ThrustMax       = 20
	ThrustHalfWidth = 10
)

var (
	healthBarBack = color.RGBA{255, 0, 0, 255}
	healthBarFill = color.RGBA{0, 255, 0, 255}
	thrustColor   = color.RGBA{255, 100, 0, 255}
)

// Cue is a fire-and-forget sound played when a ship fires.
type Cue interface {
	Play()
}

// Craft is the capability set shared by the player and enemy ships.
type Craft interface {
	collision.Body
	Draw(dst render.Image, r render.Renderer)
	Shoot() bool
	MoveLasers(vel float64, height int, policy HitPolicy)
	Width() int
	Height() int
}

var (
	_ Craft = (*Player)(nil)
	_ Craft = (*Enemy)(nil)
)

// Ship holds the state common to every craft: position, health, sprites
// and the lasers it has fired.
type Ship struct {
	X, Y        float64
	Health      int
	Sprite      *Sprite
	LaserSprite *Sprite
	Lasers      []*Laser

	// CoolDownCounter is 0 when ready to fire and 1..Cooldown while charging.
	CoolDownCounter int

	// LaserOffsetX shifts new lasers horizontally from the ship origin.
	LaserOffsetX float64

	// FireCue is played on every successful shot when set.
	FireCue Cue
}

// Origin implements collision.Body.
func (s *Ship) Origin() (float64, float64) { return s.X, s.Y }

// Mask implements collision.Body.
func (s *Ship) Mask() *collision.Mask { return s.Sprite.Mask }

// Width returns the sprite width.
func (s *Ship) Width() int { return s.Sprite.Width() }

// Height returns the sprite height.
func (s *Ship) Height() int { return s.Sprite.Height() }

// Ready reports whether the ship can fire this frame.
func (s *Ship) Ready() bool { return s.CoolDownCounter == 0 }

// Shoot fires a laser if the cooldown allows it and reports whether it did.
func (s *Ship) Shoot() bool {
	if s.CoolDownCounter != 0 {
		return false
	}
	s.Lasers = append(s.Lasers, NewLaser(s.X+s.LaserOffsetX, s.Y, s.LaserSprite))
	s.CoolDownCounter = 1
	if s.FireCue != nil {
		s.FireCue.Play()
	}
	return true
}

// Cooldown advances the fire-rate limiter by one frame.
func (s *Ship) Cooldown() {
	if s.CoolDownCounter >= Cooldown {
		s.CoolDownCounter = 0
	} else if s.CoolDownCounter > 0 {
		s.CoolDownCounter++
	}
}

// MoveLasers advances the cooldown and every laser, dropping lasers that
// leave the playfield or that policy reports as spent.
func (s *Ship) MoveLasers(vel float64, height int, policy HitPolicy) {
	s.Cooldown()

	kept := s.Lasers[:0]
	for _, l := range s.Lasers {
		l.Move(vel)
		if l.OffScreen(height) {
			continue
		}
		if policy != nil && policy.Strike(l) {
			continue
		}
		kept = append(kept, l)
	}
	clear(s.Lasers[len(kept):])
	s.Lasers = kept
}

// Draw renders the ship sprite and its lasers.
func (s *Ship) Draw(dst render.Image, r render.Renderer) {
	if s.Sprite.Image != nil {
		dst.DrawImage(s.Sprite.Image, render.At(s.X, s.Y))
	}
	for _, l := range s.Lasers {
		l.Draw(dst)
	}
}

// HitPolicy resolves what a laser does when it may strike something.
// Strike returns true when the laser hit and must be removed.
type HitPolicy interface {
	Strike(l *Laser) bool
}

// DamageTarget takes Amount health from a single target on contact.
type DamageTarget struct {
	Target *Ship
	Amount int
}

// Strike implements HitPolicy.
func (p DamageTarget) Strike(l *Laser) bool {
	if !l.Collision(p.Target) {
		return false
	}
	p.Target.Health -= p.Amount
	return true
}

// DestroyTargets removes every enemy the laser touches, whatever its health.
type DestroyTargets struct {
	Targets *[]*Enemy
}

// Strike implements HitPolicy.
func (p DestroyTargets) Strike(l *Laser) bool {
	targets := *p.Targets
	hit := false
	kept := targets[:0]
	for _, e := range targets {
		if l.Collision(e) {
			hit = true
			continue
		}
		kept = append(kept, e)
	}
	clear(targets[len(kept):])
	*p.Targets = kept
	return hit
}

// Player is the ship under keyboard control.
type Player struct {
	Ship
	MaxHealth int

	// Thrust drives the engine flame flicker. Nil draws no flame.
	Thrust Rand
}

// NewPlayer creates the player ship at (x, y).
func NewPlayer(x, y float64, health int, kit Kit) *Player {
	return &Player{
		Ship: Ship{
			X:           x,
			Y:           y,
			Health:      health,
			Sprite:      kit.Ship,
			LaserSprite: kit.Laser,
		},
		MaxHealth: health,
	}
}

// Steer moves the player one step per held direction. A step is only taken
// when the ship stays inside the playfield, keeping margin pixels free
// below it for the health bar.
func (p *Player) Steer(left, right, up, down bool, vel float64, width, height, margin int) {
	if left && p.X-vel > 0 {
		p.X -= vel
	}
	if right && p.X+vel+float64(p.Width()) < float64(width) {
		p.X += vel
	}
	if up && p.Y-vel > 0 {
		p.Y -= vel
	}
	if down && p.Y+vel+float64(p.Height()+margin) < float64(height) {
		p.Y += vel
	}
}

// Draw renders the ship, its lasers, the engine flame and the health bar.
func (p *Player) Draw(dst render.Image, r render.Renderer) {
	p.Ship.Draw(dst, r)
	p.drawThrust(dst, r)
	p.drawHealthBar(dst, r)
}

func (p *Player) drawThrust(dst render.Image, r render.Renderer) {
	if p.Thrust == nil {
		return
	}
	flame := float32(ThrustMin + p.Thrust.IntN(ThrustMax-ThrustMin+1))
	cx := float32(p.X) + float32(p.Width()/2)
	bottom := float32(p.Y) + float32(p.Height())
	r.FillTriangle(dst, [3]render.Point{
		{X: cx, Y: bottom},
		{X: cx - ThrustHalfWidth, Y: bottom + flame},
		{X: cx + ThrustHalfWidth, Y: bottom + flame},
	}, thrustColor)
}

func (p *Player) drawHealthBar(dst render.Image, r render.Renderer) {
	x := float32(p.X)
	y := float32(p.Y) + float32(p.Height()+HealthBarGap)
	w := float32(p.Width())
	r.FillRect(dst, x, y, w, HealthBarHeight, healthBarBack)

	ratio := float32(0)
	if p.MaxHealth > 0 && p.Health > 0 {
		ratio = float32(p.Health) / float32(p.MaxHealth)
	}
	if ratio > 0 {
		r.FillRect(dst, x, y, w*ratio, HealthBarHeight, healthBarFill)
	}
}

// Color names an enemy variant.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

// Colors lists the enemy variants a wave draws from.
var Colors = []Color{Red, Blue, Green}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Kit is the ship and laser sprite pair of one craft variant.
type Kit struct {
	Ship  *Sprite
	Laser *Sprite
}

// Palette maps enemy colors to their sprites.
type Palette map[Color]Kit

// Enemy is a descending hostile ship.
type Enemy struct {
	Ship
	Color Color
}

// NewEnemy creates an enemy of the given color using palette's sprites.
func NewEnemy(x, y float64, c Color, palette Palette) *Enemy {
	kit := palette[c]
	return &Enemy{
		Ship: Ship{
			X:            x,
			Y:            y,
			Health:       DefaultHealth,
			Sprite:       kit.Ship,
			LaserSprite:  kit.Laser,
			LaserOffsetX: EnemyLaserOffsetX,
		},
		Color: c,
	}
}

// Move descends the enemy by vel pixels.
func (e *Enemy) Move(vel float64) {
	e.Y += vel
}
