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
		{StateStarting, "Starting"},
		{StatePlaying, "Playing"},
		{StateBossIntro, "BossIntro"},
		{StatePaused, "Paused"},
		{StateDying, "Dying"},
		{StateGameOver, "GameOver"},
		{StateStageClear, "StageClear"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameState_Ended(t *testing.T) {
	for _, s := range []GameState{StateMenu, StateStarting, StatePlaying, StateBossIntro, StatePaused, StateDying} {
		assert.False(t, s.Ended(), s.String())
		assert.False(t, s.AcceptsRestart(), s.String())
	}
	assert.True(t, StateGameOver.Ended())
	assert.True(t, StateStageClear.AcceptsRestart())
}
