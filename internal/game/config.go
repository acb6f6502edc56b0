package game

import "fmt"

// Variant selects the rule set a match is played under.
type Variant int

const (
	VariantX01           Variant = iota // fixed-start-score elimination (301, 501, ...)
	VariantAccuracyDrill                // rotating-target doubles drill
)

// String returns the string representation of the variant.
func (v Variant) String() string {
	switch v {
	case VariantX01:
		return "X01"
	case VariantAccuracyDrill:
		return "ACCURACY_DRILL"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", v)
	}
}

// drillStartScore is the fixed bankroll the accuracy drill starts from.
const drillStartScore = 27

// MatchConfig holds the immutable parameters chosen before play.
type MatchConfig struct {
	Variant       Variant `json:"variant"`
	StartingScore int     `json:"startingScore"` // X01 only; the drill always starts at 27
	SetsToWin     int     `json:"setsToWin"`
	LegsToWin     int     `json:"legsToWin"`
	Player1       string  `json:"player1"`
	Player2       string  `json:"player2"` // empty means solo play
}

// Validate checks the config invariants. A config that fails validation is a
// caller contract violation from the setup layer, not a recoverable state.
func (c MatchConfig) Validate() error {
	if c.SetsToWin < 1 {
		return fmt.Errorf("setsToWin must be at least 1, got %d", c.SetsToWin)
	}
	if c.LegsToWin < 1 {
		return fmt.Errorf("legsToWin must be at least 1, got %d", c.LegsToWin)
	}
	if c.Variant == VariantX01 && c.StartingScore <= 0 {
		return fmt.Errorf("startingScore must be positive, got %d", c.StartingScore)
	}
	if c.Player1 == "" {
		return fmt.Errorf("player 1 name is required")
	}
	return nil
}

// PlayerCount returns 1 for solo play, 2 for a duel.
func (c MatchConfig) PlayerCount() int {
	if c.Player2 == "" {
		return 1
	}
	return 2
}

// GameType returns the solo/duel discriminator used in persisted records.
func (c MatchConfig) GameType() string {
	if c.PlayerCount() > 1 {
		return "DUEL"
	}
	return "SOLO"
}

// Mode returns the numeric mode identifier used in persisted records:
// the starting score for X01, 27 for the drill.
func (c MatchConfig) Mode() int {
	if c.Variant == VariantAccuracyDrill {
		return drillStartScore
	}
	return c.StartingScore
}

// startScore returns the score every player begins a leg with.
func (c MatchConfig) startScore() int {
	if c.Variant == VariantAccuracyDrill {
		return drillStartScore
	}
	return c.StartingScore
}
