package game

import "chosenoffset.com/spaceshooter/internal/render"

// Draw renders the session to the screen.
func (s *Session) Draw(screen render.Image) {
	if s.Assets.Background != nil {
		screen.DrawImage(s.Assets.Background, render.At(0, 0))
	}
	s.Stars.Draw(screen, s.Renderer)
	s.HUD.Draw(screen, s.Lives, s.Level)

	s.drawEntities(screen)

	if s.Lost {
		s.HUD.DrawLost(screen)
	}
}

func (s *Session) drawEntities(screen render.Image) {
	for _, e := range s.Enemies {
		e.Draw(screen, s.Renderer)
	}

	s.Player.Draw(screen, s.Renderer)

	// Explosions go on top of the ships they replace
	for _, x := range s.Explosions {
		x.Draw(screen)
	}
}
