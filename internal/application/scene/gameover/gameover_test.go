package gameover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/starship/internal/application/replay"
	"github.com/younwookim/starship/internal/application/scene"
	"github.com/younwookim/starship/internal/application/scene/scenetest"
	"github.com/younwookim/starship/internal/application/session"
	"github.com/younwookim/starship/internal/application/state"
	"github.com/younwookim/starship/internal/application/system"
)

// menuStub stands in for the menu scene
type menuStub struct{ scene.Scene }

func TestGameOver_RestartReturnsToMenu(t *testing.T) {
	script := replay.NewBuilder(1).
		Idle(2).
		Tap(system.InputState{Restart: true}).
		Build()
	env, r, _ := scenetest.Env(t, script)
	stub := &menuStub{}
	env.NewMenu = func() scene.Scene { return stub }

	g := New(env, session.Snapshot{Score: 300})
	assert.Equal(t, state.StateGameOver, g.State())

	for i := 0; i < 2; i++ {
		next, err := g.Update(1.0 / 60)
		require.NoError(t, err)
		assert.Nil(t, next)
	}

	next, err := g.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Same(t, stub, next)

	g.Draw(nil)
	assert.Equal(t, 1, r.GameOvers)
	assert.Equal(t, 300, r.Last.Score)
}

func TestGameOver_Quit(t *testing.T) {
	env, _, _ := scenetest.Env(t, replay.NewBuilder(1).Tap(system.InputState{Quit: true}).Build())

	_, err := New(env, session.Snapshot{}).Update(1.0 / 60)
	assert.ErrorIs(t, err, scene.ErrQuit)
}

func TestGameOver_RecordsHighScore(t *testing.T) {
	env, _, _ := scenetest.Env(t, replay.NewBuilder(1).Build())
	env.HighScore = 500

	New(env, session.Snapshot{Score: 200}).OnEnter()
	assert.Equal(t, 500, env.HighScore)

	New(env, session.Snapshot{Score: 900}).OnEnter()
	assert.Equal(t, 900, env.HighScore)
}
