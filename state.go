package vteparser

import "fmt"

// State is one of the parser's fourteen control-sequence states.
type State uint8

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCsiEntry
	StateCsiParam
	StateCsiIntermediate
	StateCsiIgnore
	StateDcsEntry
	StateDcsParam
	StateDcsIntermediate
	StateDcsPassthrough
	StateDcsIgnore
	StateOscString
	StateSosPmApcString
)

var stateNames = [...]string{
	"Ground",
	"Escape",
	"EscapeIntermediate",
	"CsiEntry",
	"CsiParam",
	"CsiIntermediate",
	"CsiIgnore",
	"DcsEntry",
	"DcsParam",
	"DcsIntermediate",
	"DcsPassthrough",
	"DcsIgnore",
	"OscString",
	"SosPmApcString",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// IsValid reports whether s is one of the fourteen defined states.
func (s State) IsValid() bool {
	return int(s) < len(stateNames)
}

const numStates = len(stateNames)
