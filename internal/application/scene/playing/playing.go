// Package playing provides the main gameplay scene.
package playing

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/starship/internal/application/scene"
	"github.com/younwookim/starship/internal/application/scene/gameover"
	"github.com/younwookim/starship/internal/application/session"
	"github.com/younwookim/starship/internal/application/state"
)

// Playing is the main gameplay scene. It owns one session.
type Playing struct {
	env     *scene.Env
	session *session.Session
	state   state.GameState
}

// New starts a new session seeded from env.Seed
func New(env *scene.Env) *Playing {
	return &Playing{
		env:     env,
		session: session.New(env.Config, env.Seed()),
		state:   state.StatePlaying,
	}
}

// Update proceeds the game state (implements scene.Scene).
// The game over scene is returned on the same tick the starship is destroyed.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.env.Input.Poll()
	if in.Quit {
		return nil, scene.ErrQuit
	}

	if p.state == state.StatePaused {
		if in.Pause {
			p.state = state.StatePlaying
		}
		return nil, nil
	}
	if in.Pause {
		p.state = state.StatePaused
		return nil, nil
	}

	for _, ev := range p.session.Advance(in, dt) {
		p.env.Audio.Play(ev)
	}

	if p.session.Over() {
		return gameover.New(p.env, p.session.Snapshot()), nil
	}
	return nil, nil // nil = stay on this scene
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	snap := p.session.Snapshot()
	p.env.Renderer.DrawPlaying(screen, &snap, p.state == state.StatePaused)
}

func (p *Playing) OnEnter() {
	log.Printf("Session started (seed: %d)", p.session.Seed())
}

func (p *Playing) OnExit() {
	log.Printf("Session ended: score %d, tier %d, kills %d, %d ticks",
		p.session.Score(), p.session.Tier(), p.session.Kills(), p.session.Frame())
}

func (p *Playing) State() state.GameState {
	return p.state
}

// Session exposes the running session
func (p *Playing) Session() *session.Session {
	return p.session
}
