// Package scene defines the Scene interface for game screens.
//
// Each screen (menu, playing, game over) implements Scene to handle its own
// update logic and rendering. Screens share their collaborators through Env.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/starship/internal/application/session"
	"github.com/younwookim/starship/internal/application/state"
	"github.com/younwookim/starship/internal/application/system"
	"github.com/younwookim/starship/internal/infrastructure/config"
)

// ErrQuit is returned from Update when the player asked to quit.
var ErrQuit = errors.New("quit requested")

// Scene represents a game screen (menu, playing, game over)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns ErrQuit to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()

	// State reports the state machine position of the scene.
	State() state.GameState
}

// Renderer draws the screens. Implementations must not mutate the snapshot.
type Renderer interface {
	DrawMenu(screen *ebiten.Image, highScore int)
	DrawPlaying(screen *ebiten.Image, snap *session.Snapshot, paused bool)
	DrawGameOver(screen *ebiten.Image, snap *session.Snapshot, highScore int)
}

// AudioSink receives discrete gameplay events. Play must not block.
type AudioSink interface {
	Play(ev system.Event)
}

// Env carries the collaborators shared by every scene of one process.
type Env struct {
	Config   *config.GameConfig
	Input    system.InputSource
	Renderer Renderer
	Audio    AudioSink

	// Seed returns the RNG seed of a new session.
	Seed func() int64

	// NewMenu builds the menu scene; set by the caller that wires the scenes.
	NewMenu func() Scene

	// HighScore is the best score of this process. It is never persisted.
	HighScore int
}

// RecordScore raises HighScore to score if it is higher.
func (e *Env) RecordScore(score int) bool {
	if score <= e.HighScore {
		return false
	}
	e.HighScore = score
	return true
}
