package game

import (
	"slices"

	"chosenoffset.com/spaceshooter/internal/assets"
	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/core/collision"
	"chosenoffset.com/spaceshooter/internal/entity"
	"chosenoffset.com/spaceshooter/internal/render"
	"chosenoffset.com/spaceshooter/internal/ui/hud"
	"chosenoffset.com/spaceshooter/internal/wave"
)

// Session is one run from the first wave until the grace period after a
// loss runs out.
type Session struct {
	wave.Progress
	Lives int

	// Lost is set once lives or health run out. LostTicks counts the ticks
	// spent in the grace period since.
	Lost      bool
	LostTicks int

	Player     *entity.Player
	Enemies    []*entity.Enemy
	Explosions []*entity.Explosion
	Stars      *entity.StarField

	Renderer render.Renderer
	Assets   *assets.Assets
	HUD      *hud.HUD

	rng     entity.Rand
	spawner *wave.Spawner
}

// NewSession creates a fresh run. cue is played on every player shot and
// may be nil.
func NewSession(r render.Renderer, a *assets.Assets, rng entity.Rand, cue entity.Cue) *Session {
	player := entity.NewPlayer(config.PlayerStartX, config.PlayerStartY, config.PlayerHealth, a.Player)
	player.Thrust = rng
	player.FireCue = cue

	return &Session{
		Progress: wave.Progress{Length: config.InitialWaveLength},
		Lives:    config.InitialLives,
		Player:   player,
		Stars:    entity.NewStarField(config.StarCount, config.ScreenWidth, config.ScreenHeight, rng),
		Renderer: r,
		Assets:   a,
		HUD:      hud.New(r, config.ScreenWidth),
		rng:      rng,
		spawner:  wave.NewSpawner(rng, config.ScreenWidth, config.WaveIncrement, a.Enemies),
	}
}

// Defeated reports whether the run has been lost.
func (s *Session) Defeated() bool {
	return s.Lives <= 0 || s.Player.Health <= 0
}

// Tick advances the session by one frame.
func (s *Session) Tick(c Controls) Status {
	s.Stars.Update()
	for _, e := range s.Explosions {
		e.Tick()
	}

	if s.Defeated() {
		s.Lost = true
	}
	if s.Lost {
		s.LostTicks++
		if s.LostTicks >= config.FPS*config.LostGraceSeconds {
			return StatusOver
		}
		return StatusLost
	}

	if len(s.Enemies) == 0 {
		s.Enemies = s.spawner.NextWave(&s.Progress)
	}

	if c.Quit {
		return StatusQuit
	}
	s.Player.Steer(c.Left, c.Right, c.Up, c.Down, config.PlayerVelocity,
		config.ScreenWidth, config.ScreenHeight, config.HealthBarMargin)
	if c.Fire {
		s.Player.Shoot()
	}

	s.updateEnemies()
	s.Player.MoveLasers(-config.LaserVelocity, config.ScreenHeight, entity.DestroyTargets{Targets: &s.Enemies})

	s.Explosions = slices.DeleteFunc(s.Explosions, (*entity.Explosion).Finished)

	if s.Defeated() {
		s.Lost = true
		return StatusLost
	}
	return StatusRunning
}

func (s *Session) updateEnemies() {
	hit := entity.DamageTarget{Target: &s.Player.Ship, Amount: config.LaserDamage}

	// Enemies are removed from s.Enemies as they die, so walk a copy.
	for _, e := range slices.Clone(s.Enemies) {
		e.Move(config.EnemyVelocity)
		e.MoveLasers(config.LaserVelocity, config.ScreenHeight, hit)

		if s.rng.IntN(config.EnemyFireChance) == 1 {
			e.Shoot()
		}

		switch {
		case collision.Collide(e, s.Player):
			s.Player.Health -= config.CollisionDamage
			s.destroy(e)
		case e.Y+float64(e.Height()) > config.ScreenHeight:
			s.Lives--
			s.destroy(e)
		}
	}
}

// destroy replaces e with an explosion.
func (s *Session) destroy(e *entity.Enemy) {
	s.Explosions = append(s.Explosions, entity.NewExplosion(e.X, e.Y, s.Assets.ExplosionFrames))
	s.Enemies = slices.DeleteFunc(s.Enemies, func(other *entity.Enemy) bool { return other == e })
}
