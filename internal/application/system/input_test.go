package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/starship/internal/domain/entity"
)

func TestInputState_Thrust(t *testing.T) {
	tests := []struct {
		name string
		in   InputState
		want entity.Vec2
	}{
		{"idle", InputState{}, entity.Vec2{}},
		{"left", InputState{Left: true}, entity.Vec2{X: -1}},
		{"up right", InputState{Up: true, Right: true}, entity.Vec2{X: 1, Y: -1}},
		{"opposite keys cancel", InputState{Left: true, Right: true, Down: true}, entity.Vec2{Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Thrust())
		})
	}
}

func TestKeyboardInput_ImplementsInputSource(t *testing.T) {
	var _ InputSource = NewKeyboardInput()
}
