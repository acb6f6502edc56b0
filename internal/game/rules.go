package game

// minOpenScore is the lowest score a player can check out from. Under standard
// 01-game rules no single dart scores exactly 1, so reaching a remainder of 1
// leaves the leg unfinishable and the throw is a bust.
const minOpenScore = 2

// throwClass is the rule engine's verdict on one X01 throw.
type throwClass int

const (
	classContinue throwClass = iota
	classBust
	classCheckout
)

// classifyX01 applies the X01 rules to a single throw. scoreBefore is the
// player's remaining score minus points already accumulated this turn.
func classifyX01(scoreBefore int, d Dart) throwClass {
	remaining := scoreBefore - d.Points
	if remaining < 0 || remaining == minOpenScore-1 {
		return classBust
	}
	if remaining == 0 {
		// A leg must be finished on a double; the 50 bull counts as one.
		if d.Multiplier == 2 || d.Base == 50 {
			return classCheckout
		}
		return classBust
	}
	return classContinue
}

// isCheckoutAttempt reports whether a score is finishable with one more dart:
// an even score from 2 to 40, or exactly 50. Used only for the
// doubles-attempted statistic, never for rule enforcement.
func isCheckoutAttempt(score int) bool {
	if score == 50 {
		return true
	}
	return score >= minOpenScore && score <= 40 && score%2 == 0
}

// drillTargets is the ordered target list for the accuracy drill: doubles 1
// through 20, then the bull.
var drillTargets = [...]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 25}

// drillRounds is the total number of rounds in the drill.
const drillRounds = len(drillTargets)

// doubledValue returns the points one hit on the round's target is worth:
// 50 for the bull round, otherwise double the target.
func doubledValue(target int) int {
	if target == 25 {
		return 50
	}
	return target * 2
}

// isDrillHit reports whether a throw counts as a hit for the given target.
// Only the double of the target counts; the bull round accepts the 50
// segment or 25 at multiplier 2.
func isDrillHit(target, base, multiplier int) bool {
	if target == 25 {
		return base == 50 || (base == 25 && multiplier == 2)
	}
	return base == target && multiplier == 2
}
