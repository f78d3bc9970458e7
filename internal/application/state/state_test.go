package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateMenu, "Menu"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateGameOver, "GameOver"},
		{StateTerminated, "Terminated"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateMenu)
	assert.Equal(t, GameState(1), StatePlaying)
	assert.Equal(t, GameState(2), StatePaused)
	assert.Equal(t, GameState(3), StateGameOver)
	assert.Equal(t, GameState(4), StateTerminated)
}

func TestGameState_CanTransition(t *testing.T) {
	tests := []struct {
		from, to GameState
		allowed  bool
	}{
		{StateMenu, StatePlaying, true},
		{StateMenu, StateGameOver, false},
		{StatePlaying, StateGameOver, true},
		{StatePlaying, StatePaused, true},
		{StatePlaying, StateMenu, false},
		{StatePaused, StatePlaying, true},
		{StatePaused, StateGameOver, false},
		{StateGameOver, StateMenu, true},
		{StateGameOver, StatePlaying, false},
		{StateMenu, StateTerminated, true},
		{StatePlaying, StateTerminated, true},
		{StatePaused, StateTerminated, true},
		{StateGameOver, StateTerminated, true},
		{StateTerminated, StateMenu, false},
		{StateTerminated, StateTerminated, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransition(tt.to))
		})
	}
}
