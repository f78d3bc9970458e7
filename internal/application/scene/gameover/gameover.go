// Package gameover provides the screen shown after the starship is destroyed.
package gameover

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/starship/internal/application/scene"
	"github.com/younwookim/starship/internal/application/session"
	"github.com/younwookim/starship/internal/application/state"
)

// GameOver shows the final snapshot until restart or quit
type GameOver struct {
	env  *scene.Env
	snap session.Snapshot
}

// New creates the game over screen for the final snapshot of a session
func New(env *scene.Env, final session.Snapshot) *GameOver {
	return &GameOver{env: env, snap: final}
}

// Update implements scene.Scene. Restart returns to the menu.
func (g *GameOver) Update(_ float64) (scene.Scene, error) {
	in := g.env.Input.Poll()
	switch {
	case in.Quit:
		return nil, scene.ErrQuit
	case in.Restart:
		return g.env.NewMenu(), nil
	}
	return nil, nil
}

func (g *GameOver) Draw(screen *ebiten.Image) {
	g.env.Renderer.DrawGameOver(screen, &g.snap, g.env.HighScore)
}

func (g *GameOver) OnEnter() {
	if g.env.RecordScore(g.snap.Score) {
		log.Printf("New high score: %d", g.snap.Score)
	}
}

func (g *GameOver) OnExit() {}

func (g *GameOver) State() state.GameState {
	return state.StateGameOver
}

// Final returns the snapshot the screen was created with
func (g *GameOver) Final() session.Snapshot {
	return g.snap
}
