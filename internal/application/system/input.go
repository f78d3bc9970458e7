package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/starship/internal/domain/entity"
)

// InputState holds the intents polled for one tick.
// Movement and Fire are held keys; Start, Pause, Restart and Quit are edges.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool

	Start   bool
	Pause   bool
	Restart bool
	Quit    bool
}

// Thrust returns the unit-axis direction requested by the movement keys
func (in InputState) Thrust() entity.Vec2 {
	var d entity.Vec2
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	if in.Up {
		d.Y--
	}
	if in.Down {
		d.Y++
	}
	return d
}

// InputSource is polled once per tick
type InputSource interface {
	Poll() InputState
}

// KeyboardInput reads the Ebitengine keyboard state
type KeyboardInput struct{}

// NewKeyboardInput creates a keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll reads the current input state
func (k *KeyboardInput) Poll() InputState {
	return InputState{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:    ebiten.IsKeyPressed(ebiten.KeySpace),
		Start:   inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}
