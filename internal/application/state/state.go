package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateTerminated
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

var transitions = map[GameState][]GameState{
	StateMenu:     {StatePlaying},
	StatePlaying:  {StatePaused, StateGameOver},
	StatePaused:   {StatePlaying},
	StateGameOver: {StateMenu},
}

// CanTransition reports whether the state machine allows s -> to.
// Every live state may move to StateTerminated; StateTerminated is final.
func (s GameState) CanTransition(to GameState) bool {
	if s == StateTerminated {
		return false
	}
	if to == StateTerminated {
		return true
	}
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}
