// Package scenetest provides scene collaborators for tests.
package scenetest

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starship/configs"
	"github.com/younwookim/starship/internal/application/replay"
	"github.com/younwookim/starship/internal/application/scene"
	"github.com/younwookim/starship/internal/application/session"
	"github.com/younwookim/starship/internal/application/system"
	"github.com/younwookim/starship/internal/infrastructure/config"
)

// Renderer counts draw calls and keeps the last snapshot it was given
type Renderer struct {
	Menus, Frames, GameOvers int
	Paused                   bool
	Last                     *session.Snapshot
}

func (r *Renderer) DrawMenu(_ *ebiten.Image, _ int) { r.Menus++ }

func (r *Renderer) DrawPlaying(_ *ebiten.Image, snap *session.Snapshot, paused bool) {
	r.Frames++
	r.Paused = paused
	r.Last = snap
}

func (r *Renderer) DrawGameOver(_ *ebiten.Image, snap *session.Snapshot, _ int) {
	r.GameOvers++
	r.Last = snap
}

// Audio records every event it is asked to play
type Audio struct {
	Events []system.Event
}

func (a *Audio) Play(ev system.Event) { a.Events = append(a.Events, ev) }

// Config loads the embedded tuning with random spawns disabled
func Config(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewFSLoader(configs.FS, "configs").LoadAll()
	require.NoError(t, err)
	cfg.Spawn.Spawner.BaseProbability = 0
	cfg.Spawn.Spawner.PerTier = 0
	cfg.Spawn.Spawner.MaxProbability = 0
	return cfg
}

// Env wires a scene environment around a scripted input source.
// NewMenu is left for the caller.
func Env(t *testing.T, script replay.Script) (*scene.Env, *Renderer, *Audio) {
	r := &Renderer{}
	a := &Audio{}
	env := &scene.Env{
		Config:   Config(t),
		Input:    replay.NewReplayer(script),
		Renderer: r,
		Audio:    a,
		Seed:     func() int64 { return script.Seed },
	}
	return env, r, a
}
