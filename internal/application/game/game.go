// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/starship/internal/application/scene"
	"github.com/younwookim/starship/internal/application/state"
)

// Game implements ebiten.Game, manages Scene transitions and tracks the
// state machine position of the current scene.
type Game struct {
	current scene.Scene
	state   state.GameState
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		state:   initialScene.State(),
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A quit request finishes the tick and returns ebiten.Termination.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.state == state.StateTerminated {
		return ebiten.Termination
	}

	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.terminate()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	if s := g.current.State(); s != g.state {
		if !g.state.CanTransition(s) {
			return fmt.Errorf("invalid state transition %s -> %s", g.state, s)
		}
		g.state = s
	}

	return nil
}

func (g *Game) terminate() {
	g.current.OnExit()
	log.Printf("Quit requested in %s", g.state)
	g.state = state.StateTerminated
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// State returns the state machine position of the current scene.
func (g *Game) State() state.GameState {
	return g.state
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
