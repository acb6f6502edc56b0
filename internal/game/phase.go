package game

import "fmt"

// Phase is the match sequencer's top-level state.
type Phase int

const (
	PhaseSetup         Phase = iota // no match in progress
	PhasePlaying                    // accepting throws
	PhaseLegComplete                // leg decided, waiting for the next-leg advance
	PhaseMatchComplete              // winner revealed, match over
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "SETUP"
	case PhasePlaying:
		return "PLAYING"
	case PhaseLegComplete:
		return "LEG_COMPLETE"
	case PhaseMatchComplete:
		return "MATCH_COMPLETE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", p)
	}
}
