// Package menu provides the title screen.
package menu

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/starship/internal/application/scene"
	"github.com/younwookim/starship/internal/application/scene/playing"
	"github.com/younwookim/starship/internal/application/state"
)

// Menu waits for start or quit input
type Menu struct {
	env *scene.Env
}

func New(env *scene.Env) *Menu {
	return &Menu{env: env}
}

// Update implements scene.Scene
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	in := m.env.Input.Poll()
	switch {
	case in.Quit:
		return nil, scene.ErrQuit
	case in.Start:
		return playing.New(m.env), nil
	}
	return nil, nil
}

func (m *Menu) Draw(screen *ebiten.Image) {
	m.env.Renderer.DrawMenu(screen, m.env.HighScore)
}

func (m *Menu) OnEnter() {}

func (m *Menu) OnExit() {}

func (m *Menu) State() state.GameState {
	return state.StateMenu
}
