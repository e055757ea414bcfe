package game

import (
	"log"

	"chosenoffset.com/spaceshooter/internal/assets"
	"chosenoffset.com/spaceshooter/internal/entity"
	"chosenoffset.com/spaceshooter/internal/render"
	"chosenoffset.com/spaceshooter/internal/ui/menu"
)

// Manager handles the overall game state, switching between the title
// screen and play.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        menu.GameState
	MainMenu     *menu.MainMenu
	Session      *Session
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Assets       *assets.Assets

	rng      entity.Rand
	laserCue entity.Cue
}

// NewManager creates a new game manager showing the title screen.
func NewManager(r render.Renderer, input render.InputManager, a *assets.Assets, rng entity.Rand, width, height int) *Manager {
	return &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		State:        menu.StateMainMenu,
		MainMenu:     menu.NewMainMenu(r, input, a.Background, width, height),
		Renderer:     r,
		InputMgr:     input,
		Assets:       a,
		rng:          rng,
	}
}

// SetLaserCue sets the sound played when the player fires.
func (m *Manager) SetLaserCue(cue entity.Cue) {
	m.laserCue = cue
}

// Update updates the game state.
func (m *Manager) Update() error {
	if m.InputMgr.IsQuitRequested() {
		return render.ErrTerminate
	}

	switch m.State {
	case menu.StateMainMenu:
		if m.MainMenu.Update() {
			m.StartSession()
		}
	case menu.StatePlaying:
		switch m.Session.Tick(ReadControls(m.InputMgr)) {
		case StatusQuit:
			return render.ErrTerminate
		case StatusOver:
			log.Printf("Game over at level %d", m.Session.Level)
			m.Session = nil
			m.State = menu.StateMainMenu
		}
	}
	return nil
}

// StartSession begins a new run.
func (m *Manager) StartSession() {
	log.Println("Starting new session...")
	m.Session = NewSession(m.Renderer, m.Assets, m.rng, m.laserCue)
	m.State = menu.StatePlaying
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case menu.StateMainMenu:
		m.MainMenu.Draw(screen)
	case menu.StatePlaying:
		if m.Session != nil {
			m.Session.Draw(screen)
		}
	}
}

// Layout keeps the logical screen fixed; the engine scales it to the window.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
