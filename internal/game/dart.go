package game

import "strconv"

// maxDartsPerTurn bounds the turn accumulator. A fourth throw in one turn is
// ignored, never an error.
const maxDartsPerTurn = 3

// Dart is one throw held in the turn accumulator. It is ephemeral: once the
// turn commits, darts are flattened into a TurnRecord and discarded.
type Dart struct {
	Base       int  `json:"base"`       // 0-20, 25, or 50 for the double bull
	Multiplier int  `json:"multiplier"` // 1, 2 or 3
	Points     int  `json:"points"`
	Bust       bool `json:"bust"`            // this throw busted the turn (X01)
	CheckoutOK bool `json:"checkoutAttempt"` // thrown at a finishable score (X01 stat only)
	Hit        bool `json:"hit"`             // matched the round target (drill)
}

// dartPoints computes the scored value of a throw. 50 is the double bull,
// a fixed 50-point segment rather than 25x2.
func dartPoints(base, multiplier int) int {
	if base == 50 {
		return 50
	}
	return base * multiplier
}

// Label renders the throw the way scoreboards write it: "T20", "D16", "BULL".
func (d Dart) Label() string {
	switch d.Base {
	case 0:
		return "MISS"
	case 25:
		return "25"
	case 50:
		return "BULL"
	}
	switch d.Multiplier {
	case 2:
		return "D" + strconv.Itoa(d.Base)
	case 3:
		return "T" + strconv.Itoa(d.Base)
	default:
		return strconv.Itoa(d.Base)
	}
}

func sumPoints(darts []Dart) int {
	total := 0
	for _, d := range darts {
		total += d.Points
	}
	return total
}

func countCheckoutAttempts(darts []Dart) int {
	n := 0
	for _, d := range darts {
		if d.CheckoutOK {
			n++
		}
	}
	return n
}

func countHits(darts []Dart) int {
	n := 0
	for _, d := range darts {
		if d.Hit {
			n++
		}
	}
	return n
}
