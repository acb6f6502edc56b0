package game

import "time"

// Cosmetic pacing between a committed outcome and the next state change.
// The core never sleeps; it reports the delay and the caller owns the timer.
const (
	TurnSwitchDelay = time.Second            // after a natural 3-dart turn
	BustSwitchDelay = 1500 * time.Millisecond // after a bust
	WinRevealDelay  = 1500 * time.Millisecond // before the winner is exposed
)

// Outcome classifies what a throw (or commit) did to the match.
type Outcome int

const (
	OutcomeIgnored      Outcome = iota // input rejected by a guard, state unchanged
	OutcomeContinue                    // turn still open
	OutcomeTurnComplete                // third dart down, turn pending commit
	OutcomeBust                        // turn busted, pending commit
	OutcomeLegWin                      // leg decided, waiting for next-leg advance
	OutcomeMatchWin                    // match decided, winner pending reveal
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "IGNORED"
	case OutcomeContinue:
		return "CONTINUE"
	case OutcomeTurnComplete:
		return "TURN_COMPLETE"
	case OutcomeBust:
		return "BUST"
	case OutcomeLegWin:
		return "LEG_WIN"
	case OutcomeMatchWin:
		return "MATCH_WIN"
	default:
		return "UNKNOWN"
	}
}

// ThrowResult tells the caller what happened and how long to wait before the
// follow-up call (CommitTurn or RevealWinner). A zero Delay means no follow-up
// is scheduled.
type ThrowResult struct {
	Outcome Outcome
	Delay   time.Duration
}

var ignored = ThrowResult{Outcome: OutcomeIgnored}

// LegResult describes a decided leg while the match waits for the advance.
type LegResult struct {
	PlayerIndex int  `json:"playerIndex"`
	SetWon      bool `json:"setWon"`
}

// MatchScore tracks the running set/leg tally. Legs reset to zero whenever a
// set is won.
type MatchScore struct {
	P1Sets int `json:"p1Sets"`
	P1Legs int `json:"p1Legs"`
	P2Sets int `json:"p2Sets"`
	P2Legs int `json:"p2Legs"`
}

// addLeg credits a leg to the given player and rolls legs into sets. It
// returns whether the leg completed a set and whether that decided the match.
func (s *MatchScore) addLeg(playerIndex, legsToWin, setsToWin int) (setWon, matchWon bool) {
	if playerIndex == 0 {
		s.P1Legs++
	} else {
		s.P2Legs++
	}
	if s.P1Legs >= legsToWin {
		s.P1Sets++
		s.P1Legs, s.P2Legs = 0, 0
		setWon = true
	} else if s.P2Legs >= legsToWin {
		s.P2Sets++
		s.P1Legs, s.P2Legs = 0, 0
		setWon = true
	}
	matchWon = s.P1Sets >= setsToWin || s.P2Sets >= setsToWin
	return setWon, matchWon
}

// Match is the turn-based scoring state machine. It is synchronous and
// single-owner: callers serialize access and drive the cosmetic delays
// themselves. All I/O and feedback happens through injected ports.
type Match struct {
	cfg       MatchConfig
	announcer Announcer

	players    []Player
	current    int
	legStarter int
	score      MatchScore
	turnDarts  []Dart

	legWinner     *LegResult
	winnerIdx     int // -1 until the winner is revealed
	pendingWinner int // -1 unless a win is mid-processing
	processingWin bool
	roundIndex    int // drill only
	phase         Phase

	undoStack []snapshot
	emitted   bool // summary records handed out already
}

// NewMatch validates the config and starts a match in the PLAYING phase with
// a fresh snapshot stack.
func NewMatch(cfg MatchConfig, announcer Announcer) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if announcer == nil {
		announcer = NopAnnouncer{}
	}

	start := cfg.startScore()
	players := []Player{{ID: 1, Name: cfg.Player1, Score: start, InitialScore: start}}
	if cfg.PlayerCount() > 1 {
		players = append(players, Player{ID: 2, Name: cfg.Player2, Score: start, InitialScore: start})
	}

	m := &Match{
		cfg:           cfg,
		announcer:     announcer,
		players:       players,
		winnerIdx:     -1,
		pendingWinner: -1,
		phase:         PhasePlaying,
	}
	m.announcer.MatchStarted()
	return m, nil
}

// ThrowDart ingests one dart for the active player. It is a no-op while the
// match or leg is decided, a win is mid-processing, the turn already holds
// three darts, or the turn is busted.
func (m *Match) ThrowDart(base, multiplier int) ThrowResult {
	if m.phase != PhasePlaying || m.processingWin || m.legWinner != nil {
		return ignored
	}
	if len(m.turnDarts) >= maxDartsPerTurn {
		return ignored
	}
	// A bust ends the turn no matter how many darts remain; anything thrown
	// before the switch delay elapses is discarded.
	if n := len(m.turnDarts); n > 0 && m.turnDarts[n-1].Bust {
		return ignored
	}
	if m.players[m.current].Eliminated {
		return ignored
	}

	if m.cfg.Variant == VariantAccuracyDrill {
		return m.throwDrill(base, multiplier)
	}
	return m.throwX01(base, multiplier)
}

func (m *Match) throwX01(base, multiplier int) ThrowResult {
	d := Dart{Base: base, Multiplier: multiplier, Points: dartPoints(base, multiplier)}
	before := m.players[m.current].Score - sumPoints(m.turnDarts)

	switch classifyX01(before, d) {
	case classBust:
		d.Bust = true
		m.turnDarts = append(m.turnDarts, d)
		return ThrowResult{Outcome: OutcomeBust, Delay: BustSwitchDelay}
	case classCheckout:
		d.CheckoutOK = true
		m.turnDarts = append(m.turnDarts, d)
		return m.resolveLegWin()
	default:
		d.CheckoutOK = isCheckoutAttempt(before)
		m.turnDarts = append(m.turnDarts, d)
		if len(m.turnDarts) == maxDartsPerTurn {
			return ThrowResult{Outcome: OutcomeTurnComplete, Delay: TurnSwitchDelay}
		}
		return ThrowResult{Outcome: OutcomeContinue}
	}
}

func (m *Match) throwDrill(base, multiplier int) ThrowResult {
	target := drillTargets[m.roundIndex]
	d := Dart{Base: base, Multiplier: multiplier}
	if isDrillHit(target, base, multiplier) {
		d.Hit = true
		d.Points = doubledValue(target)
	}
	m.turnDarts = append(m.turnDarts, d)
	if len(m.turnDarts) == maxDartsPerTurn {
		return ThrowResult{Outcome: OutcomeTurnComplete, Delay: TurnSwitchDelay}
	}
	return ThrowResult{Outcome: OutcomeContinue}
}

// CommitTurn commits the accumulated darts: applies scoring, appends the turn
// record, and rotates to the next player. Callers invoke it directly (early
// turn validation) or after the delay reported by ThrowDart.
func (m *Match) CommitTurn() ThrowResult {
	if m.phase != PhasePlaying || m.processingWin || m.legWinner != nil {
		return ignored
	}
	if len(m.turnDarts) == 0 {
		return ignored
	}
	m.saveSnapshot()
	if m.cfg.Variant == VariantAccuracyDrill {
		return m.commitDrillTurn()
	}
	return m.commitX01Turn()
}

func (m *Match) commitX01Turn() ThrowResult {
	darts := m.turnDarts
	bust := darts[len(darts)-1].Bust
	points := 0
	if !bust {
		points = sumPoints(darts)
	}

	p := &m.players[m.current]
	p.Score -= points
	p.History = append(p.History, newTurnRecord(points, bust, darts, false))
	p.Stats.TotalDarts += len(darts)
	p.Stats.DoublesAttempted += countCheckoutAttempts(darts)
	p.Stats.TotalPointsScored += points
	p.Stats.recordBand(points)

	if bust {
		m.announcer.Bust()
	} else {
		m.announcer.Scored(points)
	}

	m.turnDarts = nil
	if len(m.players) > 1 {
		m.current = m.nextActive(m.current)
		m.announcer.TurnSwitched(m.current)
	}
	return ThrowResult{Outcome: OutcomeContinue}
}

func (m *Match) commitDrillTurn() ThrowResult {
	// A drill turn always charges three darts; unthrown ones count as misses.
	darts := m.turnDarts
	for len(darts) < maxDartsPerTurn {
		darts = append(darts, Dart{Multiplier: 1})
	}

	target := drillTargets[m.roundIndex]
	value := doubledValue(target)
	hits := countHits(darts)

	delta := -value
	missedRound := true
	if hits > 0 {
		delta = hits * value
		missedRound = false
	}

	p := &m.players[m.current]
	p.Score += delta
	if p.Score < 0 {
		p.Eliminated = true
	}
	p.History = append(p.History, newTurnRecord(delta, missedRound, darts, true))
	p.Stats.TotalDarts += len(darts)
	if hits > 0 {
		p.Stats.TotalPointsScored += delta
		m.announcer.Scored(delta)
	} else {
		m.announcer.Bust()
	}

	m.turnDarts = nil
	return m.advanceDrill()
}

// advanceDrill moves the drill to the next non-eliminated player, bumping the
// round once every active player has thrown, and ends the game when all
// players are out or the target list is exhausted.
func (m *Match) advanceDrill() ThrowResult {
	active := 0
	for _, p := range m.players {
		if !p.Eliminated {
			active++
		}
	}
	if active == 0 {
		// Everyone eliminated: highest score wins, even if negative.
		return m.endMatch(m.bestScoreIndex(false))
	}

	next := m.nextActive(m.current)
	if next <= m.current {
		// Rotation wrapped: the round is complete for every active player.
		if m.roundIndex+1 >= drillRounds {
			return m.endMatch(m.bestScoreIndex(true))
		}
		m.roundIndex++
	}
	if next != m.current {
		m.current = next
		m.announcer.TurnSwitched(m.current)
	}
	return ThrowResult{Outcome: OutcomeContinue}
}

// nextActive is the shared rotation primitive: the next non-eliminated player
// after from, mod player count. With nobody else active it returns from.
func (m *Match) nextActive(from int) int {
	n := len(m.players)
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if !m.players[idx].Eliminated {
			return idx
		}
	}
	return from
}

// bestScoreIndex returns the index of the highest-scoring player, optionally
// restricted to non-eliminated players. Ties go to the lower index.
func (m *Match) bestScoreIndex(activeOnly bool) int {
	best := -1
	for i, p := range m.players {
		if activeOnly && p.Eliminated {
			continue
		}
		if best < 0 || p.Score > m.players[best].Score {
			best = i
		}
	}
	if best < 0 {
		best = 0
	}
	return best
}

// resolveLegWin applies a checkout turn, advances the set/leg tally and either
// parks the match behind the win-processing lock or opens the leg-complete
// stage.
func (m *Match) resolveLegWin() ThrowResult {
	m.saveSnapshot()
	m.processingWin = true

	darts := m.turnDarts
	total := sumPoints(darts)

	p := &m.players[m.current]
	p.Score -= total
	p.History = append(p.History, newTurnRecord(total, false, darts, false))
	p.Stats.TotalDarts += len(darts)
	p.Stats.DoublesAttempted += countCheckoutAttempts(darts)
	p.Stats.TotalPointsScored += total
	p.Stats.CheckoutSuccesses++
	if total > p.Stats.HighestCheckout {
		p.Stats.HighestCheckout = total
	}
	p.Stats.recordBand(total)

	setWon, matchWon := m.score.addLeg(m.current, m.cfg.LegsToWin, m.cfg.SetsToWin)
	if matchWon {
		// Winner stays hidden behind the lock until RevealWinner.
		m.pendingWinner = m.current
		return ThrowResult{Outcome: OutcomeMatchWin, Delay: WinRevealDelay}
	}

	m.legWinner = &LegResult{PlayerIndex: m.current, SetWon: setWon}
	m.processingWin = false
	m.phase = PhaseLegComplete
	m.announcer.LegWon(p.Name, setWon)
	return ThrowResult{Outcome: OutcomeLegWin}
}

// endMatch parks a decided drill match behind the win-processing lock, same
// path as an X01 match-winning checkout.
func (m *Match) endMatch(winnerIdx int) ThrowResult {
	m.processingWin = true
	m.pendingWinner = winnerIdx
	return ThrowResult{Outcome: OutcomeMatchWin, Delay: WinRevealDelay}
}

// RevealWinner exposes the winner after the dramatic pause and releases the
// win-processing lock. Returns false if no win is pending.
func (m *Match) RevealWinner() bool {
	if !m.processingWin || m.pendingWinner < 0 {
		return false
	}
	m.winnerIdx = m.pendingWinner
	m.pendingWinner = -1
	m.processingWin = false
	m.phase = PhaseMatchComplete
	m.announcer.MatchWon(m.players[m.winnerIdx].Name)
	return true
}

// UndoLastDart removes the most recent uncommitted dart from the turn
// accumulator. No-op mid win processing or with an empty accumulator.
func (m *Match) UndoLastDart() bool {
	if m.processingWin || len(m.turnDarts) == 0 {
		return false
	}
	m.turnDarts = m.turnDarts[:len(m.turnDarts)-1]
	return true
}

// UndoTurn rewinds to the last committed snapshot. No-op on an empty stack or
// while a win is mid-processing.
func (m *Match) UndoTurn() bool {
	if m.processingWin || len(m.undoStack) == 0 {
		return false
	}
	m.restoreSnapshot()
	m.processingWin = false
	return true
}

// NextLeg resets scores and turn history for a new leg. The starting player
// alternates leg to leg regardless of who won the previous one.
func (m *Match) NextLeg() bool {
	if m.legWinner == nil {
		return false
	}
	m.saveSnapshot()
	for i := range m.players {
		m.players[i].Score = m.players[i].InitialScore
		m.players[i].History = nil
	}
	m.legWinner = nil
	m.turnDarts = nil
	m.legStarter = (m.legStarter + 1) % len(m.players)
	m.current = m.legStarter
	m.phase = PhasePlaying
	return true
}

// Accessors. Callers receive copies or read-only views; all mutation goes
// through the operations above.

func (m *Match) Config() MatchConfig { return m.cfg }
func (m *Match) Phase() Phase        { return m.phase }
func (m *Match) Score() MatchScore   { return m.score }
func (m *Match) Players() []Player   { return m.players }
func (m *Match) CurrentPlayer() int  { return m.current }
func (m *Match) LegStarter() int     { return m.legStarter }
func (m *Match) TurnDarts() []Dart   { return m.turnDarts }
func (m *Match) ProcessingWin() bool { return m.processingWin }
func (m *Match) CanUndo() bool       { return len(m.undoStack) > 0 }

// LegWinner returns the decided leg while the match waits for NextLeg.
func (m *Match) LegWinner() *LegResult { return m.legWinner }

// Winner returns the revealed match winner, nil before the reveal.
func (m *Match) Winner() *Player {
	if m.winnerIdx < 0 {
		return nil
	}
	return &m.players[m.winnerIdx]
}

// ActiveRemaining is the current player's score minus points already
// accumulated this turn.
func (m *Match) ActiveRemaining() int {
	return m.players[m.current].Score - sumPoints(m.turnDarts)
}

// DrillTarget returns the current round's target and true for drill matches.
func (m *Match) DrillTarget() (int, bool) {
	if m.cfg.Variant != VariantAccuracyDrill {
		return 0, false
	}
	return drillTargets[m.roundIndex], true
}

// DrillRound returns the zero-based round index.
func (m *Match) DrillRound() int { return m.roundIndex }

// newTurnRecord flattens accumulator darts into an immutable history entry.
// For drill turns only hits carry points, so misses after a registered hit
// still show up as zero-point darts.
func newTurnRecord(total int, bust bool, darts []Dart, drill bool) TurnRecord {
	details := make([]DartDetail, len(darts))
	for i, d := range darts {
		pts := d.Points
		if drill && !d.Hit {
			pts = 0
		}
		details[i] = DartDetail{Value: d.Base, Multiplier: d.Multiplier, Label: d.Label(), Points: pts}
	}
	return TurnRecord{Total: total, Bust: bust, Darts: details}
}
