package game

import "testing"

func newX01Duel(t *testing.T, start, legsToWin, setsToWin int) *Match {
	t.Helper()
	m, err := NewMatch(MatchConfig{
		Variant:       VariantX01,
		StartingScore: start,
		SetsToWin:     setsToWin,
		LegsToWin:     legsToWin,
		Player1:       "Alice",
		Player2:       "Bob",
	}, nil)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

func TestNewMatch_ConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  MatchConfig
	}{
		{"zero sets", MatchConfig{Variant: VariantX01, StartingScore: 501, SetsToWin: 0, LegsToWin: 1, Player1: "A"}},
		{"zero legs", MatchConfig{Variant: VariantX01, StartingScore: 501, SetsToWin: 1, LegsToWin: 0, Player1: "A"}},
		{"zero start", MatchConfig{Variant: VariantX01, StartingScore: 0, SetsToWin: 1, LegsToWin: 1, Player1: "A"}},
		{"no player", MatchConfig{Variant: VariantX01, StartingScore: 501, SetsToWin: 1, LegsToWin: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatch(tt.cfg, nil); err == nil {
				t.Error("NewMatch accepted an invalid config")
			}
		})
	}
}

func TestMatch_StartsPlaying(t *testing.T) {
	m := newX01Duel(t, 501, 3, 1)
	if m.Phase() != PhasePlaying {
		t.Errorf("phase = %v, want %v", m.Phase(), PhasePlaying)
	}
	if len(m.Players()) != 2 {
		t.Fatalf("players = %d, want 2", len(m.Players()))
	}
	for _, p := range m.Players() {
		if p.Score != 501 || p.InitialScore != 501 {
			t.Errorf("player %s score = %d/%d, want 501/501", p.Name, p.Score, p.InitialScore)
		}
	}
	if m.CanUndo() {
		t.Error("fresh match should have an empty snapshot stack")
	}
}

func TestMatch_TurnLengthBound(t *testing.T) {
	m := newX01Duel(t, 501, 3, 1)
	for i := 0; i < 3; i++ {
		if res := m.ThrowDart(5, 1); res.Outcome == OutcomeIgnored {
			t.Fatalf("throw %d ignored", i+1)
		}
	}
	if res := m.ThrowDart(5, 1); res.Outcome != OutcomeIgnored {
		t.Errorf("4th throw outcome = %v, want %v", res.Outcome, OutcomeIgnored)
	}
	if len(m.TurnDarts()) != 3 {
		t.Errorf("turn holds %d darts, want 3", len(m.TurnDarts()))
	}
}

// Scenario: at 40, single-20 then single-19 leaves a remainder of 1, which is
// unfinishable and busts the whole turn. The accumulated points are discarded.
func TestMatch_BustDiscardsTurnPoints(t *testing.T) {
	m := newX01Duel(t, 40, 3, 1)

	if res := m.ThrowDart(20, 1); res.Outcome != OutcomeContinue {
		t.Fatalf("first throw = %v, want %v", res.Outcome, OutcomeContinue)
	}
	res := m.ThrowDart(19, 1)
	if res.Outcome != OutcomeBust {
		t.Fatalf("second throw = %v, want %v", res.Outcome, OutcomeBust)
	}
	if res.Delay != BustSwitchDelay {
		t.Errorf("bust delay = %v, want %v", res.Delay, BustSwitchDelay)
	}

	if res := m.CommitTurn(); res.Outcome != OutcomeContinue {
		t.Fatalf("commit = %v, want %v", res.Outcome, OutcomeContinue)
	}

	p := m.Players()[0]
	if p.Score != 40 {
		t.Errorf("score after bust = %d, want 40", p.Score)
	}
	if len(p.History) != 1 {
		t.Fatalf("history = %d records, want 1", len(p.History))
	}
	rec := p.History[0]
	if !rec.Bust || rec.Total != 0 {
		t.Errorf("record = {total %d, bust %v}, want {0, true}", rec.Total, rec.Bust)
	}
	if len(rec.Darts) != 2 {
		t.Errorf("record darts = %d, want 2", len(rec.Darts))
	}
	if m.CurrentPlayer() != 1 {
		t.Errorf("turn did not switch after bust commit")
	}
}

// A bust ends the turn with darts still in hand: throws during the switch
// window are discarded, and the committed record holds only the darts up to
// and including the busting one.
func TestMatch_BustEndsTurnImmediately(t *testing.T) {
	m := newX01Duel(t, 40, 3, 1)

	m.ThrowDart(20, 1) // 20 left
	if res := m.ThrowDart(19, 1); res.Outcome != OutcomeBust {
		t.Fatalf("second throw = %v, want %v", res.Outcome, OutcomeBust)
	}
	if res := m.ThrowDart(5, 1); res.Outcome != OutcomeIgnored {
		t.Fatalf("throw after bust = %v, want %v", res.Outcome, OutcomeIgnored)
	}
	if len(m.TurnDarts()) != 2 {
		t.Errorf("turn holds %d darts, want 2", len(m.TurnDarts()))
	}

	// The busting dart itself is still retractable during the window.
	if !m.UndoLastDart() {
		t.Fatal("UndoLastDart refused the bust dart")
	}
	if res := m.ThrowDart(10, 1); res.Outcome != OutcomeContinue {
		t.Errorf("throw after retraction = %v, want %v", res.Outcome, OutcomeContinue)
	}
	if res := m.ThrowDart(5, 1); res.Outcome != OutcomeTurnComplete {
		t.Errorf("third throw = %v, want %v", res.Outcome, OutcomeTurnComplete)
	}
	m.CommitTurn()

	p := m.Players()[0]
	if p.Score != 5 {
		t.Errorf("score = %d, want 5", p.Score)
	}
	if p.Stats.TotalDarts != 3 {
		t.Errorf("darts charged = %d, want 3", p.Stats.TotalDarts)
	}
}

func TestMatch_BustedTurnCommitsOnlyAccumulatedDarts(t *testing.T) {
	m := newX01Duel(t, 40, 3, 1)

	m.ThrowDart(20, 1)
	m.ThrowDart(19, 1) // remainder 1: bust
	m.ThrowDart(5, 1)  // discarded
	m.CommitTurn()

	p := m.Players()[0]
	if p.Score != 40 {
		t.Errorf("score = %d, want 40", p.Score)
	}
	if p.Stats.TotalDarts != 2 {
		t.Errorf("darts charged = %d, want 2", p.Stats.TotalDarts)
	}
	if rec := p.History[0]; len(rec.Darts) != 2 || !rec.Bust {
		t.Errorf("record = {darts %d, bust %v}, want {2, true}", len(rec.Darts), rec.Bust)
	}
}

func TestMatch_OvershootBusts(t *testing.T) {
	m := newX01Duel(t, 40, 3, 1)
	m.ThrowDart(20, 1) // 20 left
	m.ThrowDart(10, 1) // 10 left
	res := m.ThrowDart(20, 3)
	if res.Outcome != OutcomeBust {
		t.Fatalf("overshoot = %v, want %v", res.Outcome, OutcomeBust)
	}
	m.CommitTurn()
	if got := m.Players()[0].Score; got != 40 {
		t.Errorf("score = %d, want 40", got)
	}
}

// Scenario: 32 out on double-16 wins the leg and records the checkout value.
func TestMatch_CheckoutOnDouble(t *testing.T) {
	m := newX01Duel(t, 32, 2, 1)

	res := m.ThrowDart(16, 2)
	if res.Outcome != OutcomeLegWin {
		t.Fatalf("checkout = %v, want %v", res.Outcome, OutcomeLegWin)
	}
	if m.Phase() != PhaseLegComplete {
		t.Errorf("phase = %v, want %v", m.Phase(), PhaseLegComplete)
	}
	lw := m.LegWinner()
	if lw == nil || lw.PlayerIndex != 0 {
		t.Fatalf("legWinner = %+v, want player 0", lw)
	}

	st := m.Players()[0].Stats
	if st.CheckoutSuccesses != 1 {
		t.Errorf("checkout successes = %d, want 1", st.CheckoutSuccesses)
	}
	if st.HighestCheckout != 32 {
		t.Errorf("highest checkout = %d, want 32", st.HighestCheckout)
	}
	if got := m.Score().P1Legs; got != 1 {
		t.Errorf("p1 legs = %d, want 1", got)
	}
}

// Scenario: reaching zero on a single is a bust, not a win.
func TestMatch_CheckoutRequiresDouble(t *testing.T) {
	m := newX01Duel(t, 20, 3, 1)
	res := m.ThrowDart(20, 1)
	if res.Outcome != OutcomeBust {
		t.Fatalf("single finish = %v, want %v", res.Outcome, OutcomeBust)
	}
	m.CommitTurn()
	if got := m.Players()[0].Score; got != 20 {
		t.Errorf("score = %d, want 20", got)
	}
	if m.LegWinner() != nil {
		t.Error("leg must not be won on a single finish")
	}
}

func TestMatch_BullFinishesLeg(t *testing.T) {
	m := newX01Duel(t, 50, 2, 1)
	if res := m.ThrowDart(50, 1); res.Outcome != OutcomeLegWin {
		t.Fatalf("bull finish = %v, want %v", res.Outcome, OutcomeLegWin)
	}
}

func TestMatch_WinnerHiddenUntilReveal(t *testing.T) {
	m := newX01Duel(t, 32, 1, 1)

	res := m.ThrowDart(16, 2)
	if res.Outcome != OutcomeMatchWin {
		t.Fatalf("match-winning throw = %v, want %v", res.Outcome, OutcomeMatchWin)
	}
	if res.Delay != WinRevealDelay {
		t.Errorf("reveal delay = %v, want %v", res.Delay, WinRevealDelay)
	}
	if !m.ProcessingWin() {
		t.Error("processingWin must be set while the win is pending")
	}
	if m.Winner() != nil {
		t.Error("winner exposed before reveal")
	}

	// The lock blocks all further input.
	if res := m.ThrowDart(20, 1); res.Outcome != OutcomeIgnored {
		t.Errorf("throw during win processing = %v, want ignored", res.Outcome)
	}
	if m.UndoTurn() {
		t.Error("undo during win processing must be a no-op")
	}
	if m.UndoLastDart() {
		t.Error("undoLastDart during win processing must be a no-op")
	}

	if !m.RevealWinner() {
		t.Fatal("RevealWinner failed with a pending win")
	}
	if m.Phase() != PhaseMatchComplete {
		t.Errorf("phase = %v, want %v", m.Phase(), PhaseMatchComplete)
	}
	if w := m.Winner(); w == nil || w.Name != "Alice" {
		t.Errorf("winner = %+v, want Alice", w)
	}
	if m.RevealWinner() {
		t.Error("second reveal must report false")
	}
}

func TestMatch_LegSetRollover(t *testing.T) {
	m := newX01Duel(t, 2, 2, 2)

	// Leg 1: Alice checks out immediately.
	if res := m.ThrowDart(1, 2); res.Outcome != OutcomeLegWin {
		t.Fatalf("leg 1 = %v, want %v", res.Outcome, OutcomeLegWin)
	}
	if s := m.Score(); s.P1Legs != 1 || s.P1Sets != 0 {
		t.Fatalf("after leg 1 score = %+v", s)
	}
	m.NextLeg()

	// Leg 2: Bob starts, busts, Alice checks out. Two legs roll into a set
	// and both leg counters reset in the same transition.
	if m.CurrentPlayer() != 1 {
		t.Fatalf("leg 2 starter = %d, want 1", m.CurrentPlayer())
	}
	m.ThrowDart(1, 1) // remainder 1: bust
	m.CommitTurn()
	if res := m.ThrowDart(1, 2); res.Outcome != OutcomeLegWin {
		t.Fatal("Alice failed to check out leg 2")
	}
	s := m.Score()
	if s.P1Sets != 1 {
		t.Errorf("p1 sets = %d, want 1", s.P1Sets)
	}
	if s.P1Legs != 0 || s.P2Legs != 0 {
		t.Errorf("leg counters = %d-%d, want 0-0", s.P1Legs, s.P2Legs)
	}
	lw := m.LegWinner()
	if lw == nil || !lw.SetWon {
		t.Errorf("legWinner = %+v, want setWon", lw)
	}
}

// Scenario: a best-of-3-sets match runs to completion, the winner comes out
// of the reveal, and the summary batch can only be taken once.
func TestMatch_CompletionEmitsOnce(t *testing.T) {
	m := newX01Duel(t, 2, 2, 2)

	winLegForAlice := func() ThrowResult {
		t.Helper()
		if m.CurrentPlayer() != 0 {
			// Bob throws away his turn with a bust.
			m.ThrowDart(1, 1)
			m.CommitTurn()
		}
		res := m.ThrowDart(1, 2)
		if res.Outcome != OutcomeLegWin && res.Outcome != OutcomeMatchWin {
			t.Fatalf("checkout = %v", res.Outcome)
		}
		return res
	}

	var last ThrowResult
	for i := 0; i < 4; i++ {
		last = winLegForAlice()
		if last.Outcome == OutcomeMatchWin {
			break
		}
		m.NextLeg()
	}
	if last.Outcome != OutcomeMatchWin {
		t.Fatalf("match not decided after 4 legs, score %+v", m.Score())
	}
	if s := m.Score(); s.P1Sets != 2 {
		t.Fatalf("p1 sets = %d, want 2", s.P1Sets)
	}

	if m.SummaryRecords() != nil {
		t.Fatal("summary available before the winner reveal")
	}
	m.RevealWinner()

	records := m.SummaryRecords()
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].Result != "WIN" || records[0].PlayerName != "Alice" {
		t.Errorf("record 0 = %s/%s, want Alice/WIN", records[0].PlayerName, records[0].Result)
	}
	if records[1].Result != "LOSS" || records[1].PlayerName != "Bob" {
		t.Errorf("record 1 = %s/%s, want Bob/LOSS", records[1].PlayerName, records[1].Result)
	}
	if records[0].Mode != 2 || records[0].GameType != "DUEL" {
		t.Errorf("record 0 mode/type = %d/%s", records[0].Mode, records[0].GameType)
	}

	// A duplicated completion event must not double-insert.
	if m.SummaryRecords() != nil {
		t.Error("summary emitted twice")
	}
}

func TestMatch_AlternatingLegStarter(t *testing.T) {
	m := newX01Duel(t, 2, 10, 1)

	want := []int{0, 1, 0, 1, 0, 1}
	for i, starter := range want {
		if m.CurrentPlayer() != starter {
			t.Fatalf("leg %d starter = %d, want %d", i+1, m.CurrentPlayer(), starter)
		}
		// Whoever starts the leg finishes it in one dart.
		if res := m.ThrowDart(1, 2); res.Outcome != OutcomeLegWin {
			t.Fatalf("leg %d not won: %v", i+1, res.Outcome)
		}
		if !m.NextLeg() {
			t.Fatalf("NextLeg failed after leg %d", i+1)
		}
	}
}

func TestMatch_NextLegResetsScores(t *testing.T) {
	m := newX01Duel(t, 101, 3, 1)
	m.ThrowDart(20, 3)
	m.ThrowDart(20, 1)
	m.ThrowDart(19, 1)
	m.CommitTurn() // Alice at 2
	m.ThrowDart(1, 1)
	m.ThrowDart(1, 1)
	m.ThrowDart(1, 1)
	m.CommitTurn() // Bob at 98

	if res := m.ThrowDart(1, 2); res.Outcome != OutcomeLegWin {
		t.Fatal("Alice failed to check out")
	}
	m.NextLeg()

	for _, p := range m.Players() {
		if p.Score != 101 {
			t.Errorf("player %s score = %d, want 101", p.Name, p.Score)
		}
		if len(p.History) != 0 {
			t.Errorf("player %s history not cleared", p.Name)
		}
	}
	if m.LegWinner() != nil {
		t.Error("legWinner not cleared")
	}
	// Cumulative stats survive the leg reset.
	if m.Players()[0].Stats.TotalDarts == 0 {
		t.Error("stats reset across legs")
	}
}

func TestMatch_UndoTurnRoundTrip(t *testing.T) {
	m := newX01Duel(t, 501, 3, 1)

	before := struct {
		score   int
		stats   PlayerStats
		current int
		tally   MatchScore
	}{m.Players()[0].Score, m.Players()[0].Stats, m.CurrentPlayer(), m.Score()}

	m.ThrowDart(20, 3)
	m.ThrowDart(20, 3)
	m.ThrowDart(20, 3)
	m.CommitTurn()

	if m.Players()[0].Score != 321 {
		t.Fatalf("score after 180 = %d, want 321", m.Players()[0].Score)
	}
	if !m.UndoTurn() {
		t.Fatal("UndoTurn failed with a non-empty stack")
	}

	if got := m.Players()[0].Score; got != before.score {
		t.Errorf("score = %d, want %d", got, before.score)
	}
	if got := m.Players()[0].Stats; got != before.stats {
		t.Errorf("stats = %+v, want %+v", got, before.stats)
	}
	if got := m.CurrentPlayer(); got != before.current {
		t.Errorf("current = %d, want %d", got, before.current)
	}
	if got := m.Score(); got != before.tally {
		t.Errorf("match score = %+v, want %+v", got, before.tally)
	}
	if len(m.TurnDarts()) != 0 {
		t.Error("turn accumulator not cleared by undo")
	}
}

func TestMatch_UndoLegWin(t *testing.T) {
	m := newX01Duel(t, 32, 2, 1)
	m.ThrowDart(16, 2)
	if m.LegWinner() == nil {
		t.Fatal("leg not won")
	}
	if !m.UndoTurn() {
		t.Fatal("UndoTurn failed after a leg win")
	}
	if m.LegWinner() != nil {
		t.Error("legWinner survived the undo")
	}
	if m.Phase() != PhasePlaying {
		t.Errorf("phase = %v, want %v", m.Phase(), PhasePlaying)
	}
	if got := m.Players()[0].Score; got != 32 {
		t.Errorf("score = %d, want 32", got)
	}
	if got := m.Score().P1Legs; got != 0 {
		t.Errorf("p1 legs = %d, want 0", got)
	}
}

func TestMatch_UndoPastBeginningIsNoop(t *testing.T) {
	m := newX01Duel(t, 501, 3, 1)
	if m.UndoTurn() {
		t.Error("undo on an empty stack must report false")
	}
}

func TestMatch_UndoLastDart(t *testing.T) {
	m := newX01Duel(t, 501, 3, 1)
	if m.UndoLastDart() {
		t.Error("undoLastDart with an empty accumulator must report false")
	}
	m.ThrowDart(20, 1)
	m.ThrowDart(19, 1)
	if !m.UndoLastDart() {
		t.Fatal("undoLastDart failed")
	}
	if got := len(m.TurnDarts()); got != 1 {
		t.Errorf("accumulator = %d darts, want 1", got)
	}
	if got := m.ActiveRemaining(); got != 481 {
		t.Errorf("remaining = %d, want 481", got)
	}
}

func TestMatch_CommitPartialTurn(t *testing.T) {
	m := newX01Duel(t, 501, 3, 1)
	m.ThrowDart(20, 1)
	if res := m.CommitTurn(); res.Outcome != OutcomeContinue {
		t.Fatalf("early commit = %v, want %v", res.Outcome, OutcomeContinue)
	}
	if got := m.Players()[0].Score; got != 481 {
		t.Errorf("score = %d, want 481", got)
	}
	if got := m.Players()[0].Stats.TotalDarts; got != 1 {
		t.Errorf("darts = %d, want 1", got)
	}
	if m.CurrentPlayer() != 1 {
		t.Error("turn did not switch after early commit")
	}
	if res := m.CommitTurn(); res.Outcome != OutcomeIgnored {
		t.Errorf("commit with empty accumulator = %v, want ignored", res.Outcome)
	}
}

func TestMatch_CheckoutAttemptTracking(t *testing.T) {
	m := newX01Duel(t, 45, 3, 1)
	m.ThrowDart(5, 1)  // thrown at 45: odd, no single-dart finish
	m.ThrowDart(20, 1) // thrown at 40: attempt
	m.ThrowDart(4, 1)  // thrown at 20: attempt
	m.CommitTurn()
	if got := m.Players()[0].Stats.DoublesAttempted; got != 2 {
		t.Errorf("doubles attempted = %d, want 2", got)
	}
}

func TestMatch_SoloKeepsSinglePlayerTurn(t *testing.T) {
	m, err := NewMatch(MatchConfig{
		Variant:       VariantX01,
		StartingScore: 301,
		SetsToWin:     1,
		LegsToWin:     1,
		Player1:       "Alice",
	}, nil)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	m.ThrowDart(20, 1)
	m.ThrowDart(20, 1)
	m.ThrowDart(20, 1)
	m.CommitTurn()
	if m.CurrentPlayer() != 0 {
		t.Error("solo mode must stay on the single player")
	}
	if got := m.Players()[0].Score; got != 241 {
		t.Errorf("score = %d, want 241", got)
	}
}

func TestMatch_ScoringBands(t *testing.T) {
	m := newX01Duel(t, 1001, 10, 1)

	turns := [][3][2]int{
		{{20, 3}, {20, 3}, {20, 3}}, // 180
		{{20, 3}, {20, 3}, {20, 1}}, // 140
		{{20, 3}, {20, 1}, {20, 1}}, // 100
		{{20, 1}, {20, 1}, {20, 1}}, // 60
	}
	for _, turn := range turns {
		for _, d := range turn {
			m.ThrowDart(d[0], d[1])
		}
		m.CommitTurn() // Alice
		m.ThrowDart(1, 1)
		m.ThrowDart(1, 1)
		m.ThrowDart(1, 1)
		m.CommitTurn() // Bob keeps the rotation moving
	}

	st := m.Players()[0].Stats
	if st.Scores180 != 1 || st.Scores140 != 1 || st.Scores100 != 1 || st.Scores60 != 1 {
		t.Errorf("bands = 60:%d 100:%d 140:%d 180:%d, want one each",
			st.Scores60, st.Scores100, st.Scores140, st.Scores180)
	}
}
