package components

import (
	"github.com/automoto/sushi-knight/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

// Set moves to state, remembering the one being left.
func (s *StateData) Set(state config.StateID) {
	if s.CurrentState == state {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = state
}

var State = donburi.NewComponentType[StateData]()
