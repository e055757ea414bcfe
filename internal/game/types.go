package game

import "chosenoffset.com/spaceshooter/internal/render"

// Controls is the player input sampled for one tick.
type Controls struct {
	Left, Right, Up, Down bool
	Fire                  bool
	Quit                  bool
}

// ReadControls samples WASD plus the arrow keys and space.
func ReadControls(input render.InputManager) Controls {
	return Controls{
		Left:  input.IsKeyPressed(render.KeyA) || input.IsKeyPressed(render.KeyLeft),
		Right: input.IsKeyPressed(render.KeyD) || input.IsKeyPressed(render.KeyRight),
		Up:    input.IsKeyPressed(render.KeyW) || input.IsKeyPressed(render.KeyUp),
		Down:  input.IsKeyPressed(render.KeyS) || input.IsKeyPressed(render.KeyDown),
		Fire:  input.IsKeyPressed(render.KeySpace),
		Quit:  input.IsQuitRequested(),
	}
}

// Status is the outcome of a session tick.
type Status int

const (
	// StatusRunning means play continues.
	StatusRunning Status = iota
	// StatusLost means the run is lost and the grace period is counting down.
	StatusLost
	// StatusOver means the grace period elapsed and the session has ended.
	StatusOver
	// StatusQuit means the player asked to close the game.
	StatusQuit
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusLost:
		return "lost"
	case StatusOver:
		return "over"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}
