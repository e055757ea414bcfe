package wave

import (
	"math/rand/v2"
	"testing"

	"chosenoffset.com/spaceshooter/internal/core/collision"
	"chosenoffset.com/spaceshooter/internal/entity"
)

func testPalette() entity.Palette {
	kit := entity.Kit{
		Ship:  &entity.Sprite{Mask: collision.NewMask(50, 50)},
		Laser: &entity.Sprite{Mask: collision.NewMask(10, 30)},
	}
	return entity.Palette{entity.Red: kit, entity.Green: kit, entity.Blue: kit}
}

func TestWaveLengthGrowth(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewPCG(1, 2)), 750, 5, testPalette())
	p := &Progress{Length: 5}

	for n := 1; n <= 6; n++ {
		enemies := s.NextWave(p)
		if p.Level != n {
			t.Errorf("Wave %d: expected level %d, got %d", n, n, p.Level)
		}
		if want := 5 + 5*n; p.Length != want {
			t.Errorf("Wave %d: expected wave length %d, got %d", n, want, p.Length)
		}
		if len(enemies) != p.Length {
			t.Errorf("Wave %d: expected %d enemies, got %d", n, p.Length, len(enemies))
		}
	}
}

func TestWaveSpawnArea(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewPCG(7, 11)), 750, 5, testPalette())
	p := &Progress{Length: 200}

	seen := make(map[entity.Color]bool)
	for _, e := range s.NextWave(p) {
		if e.X < MarginLeft || e.X >= 750-MarginRight {
			t.Errorf("Expected x in [50, 650), got %v", e.X)
		}
		if e.Y < MinY || e.Y >= MaxY {
			t.Errorf("Expected y in [-1500, -100), got %v", e.Y)
		}
		if e.Health != entity.DefaultHealth {
			t.Errorf("Expected enemy health %d, got %d", entity.DefaultHealth, e.Health)
		}
		if e.Sprite == nil || e.LaserSprite == nil {
			t.Fatal("Expected enemy sprites from the palette")
		}
		seen[e.Color] = true
	}

	for _, c := range entity.Colors {
		if !seen[c] {
			t.Errorf("Expected some %s enemies in a wave of 205", c)
		}
	}
}
