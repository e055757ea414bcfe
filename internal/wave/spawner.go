// Package wave generates the batches of enemies that descend on the player.
package wave

import "chosenoffset.com/spaceshooter/internal/entity"

// Spawn area. Enemies start above the screen so they trickle in.
const (
	MarginLeft  = 50
	MarginRight = 100
	MinY        = -1500
	MaxY        = -100
)

// Progress tracks the level and the size of the next wave.
type Progress struct {
	Level  int
	Length int
}

// Spawner creates enemy waves across a playfield of the given width.
type Spawner struct {
	rng       entity.Rand
	width     int
	increment int
	palette   entity.Palette
}

// NewSpawner creates a spawner. Every wave is increment enemies larger
// than the one before.
func NewSpawner(rng entity.Rand, width, increment int, palette entity.Palette) *Spawner {
	return &Spawner{
		rng:       rng,
		width:     width,
		increment: increment,
		palette:   palette,
	}
}

// NextWave advances p to the next level and returns its enemies, placed at
// random columns in [MarginLeft, width-MarginRight) and random heights in
// [MinY, MaxY).
func (s *Spawner) NextWave(p *Progress) []*entity.Enemy {
	p.Level++
	p.Length += s.increment

	enemies := make([]*entity.Enemy, 0, p.Length)
	for i := 0; i < p.Length; i++ {
		x := MarginLeft + s.rng.IntN(s.width-MarginRight-MarginLeft)
		y := MinY + s.rng.IntN(MaxY-MinY)
		c := entity.Colors[s.rng.IntN(len(entity.Colors))]
		enemies = append(enemies, entity.NewEnemy(float64(x), float64(y), c, s.palette))
	}
	return enemies
}
