package game

// snapshot is a deep, independent copy of all mutable match state, taken
// immediately before a committed mutation. The fields are written out
// explicitly rather than cloned generically so the capture set stays exactly
// the undo contract and nothing more.
type snapshot struct {
	players       []Player
	currentPlayer int
	legStarter    int
	score         MatchScore
	legWinner     *LegResult
	winnerIdx     int
	pendingWinner int
	processingWin bool
	roundIndex    int
	phase         Phase
}

// saveSnapshot pushes the current state onto the undo stack.
func (m *Match) saveSnapshot() {
	snap := snapshot{
		players:       clonePlayers(m.players),
		currentPlayer: m.current,
		legStarter:    m.legStarter,
		score:         m.score,
		winnerIdx:     m.winnerIdx,
		pendingWinner: m.pendingWinner,
		processingWin: m.processingWin,
		roundIndex:    m.roundIndex,
		phase:         m.phase,
	}
	if m.legWinner != nil {
		lw := *m.legWinner
		snap.legWinner = &lw
	}
	m.undoStack = append(m.undoStack, snap)
}

// restoreSnapshot pops the top snapshot and restores every field atomically.
// The in-progress turn accumulator is cleared; uncommitted darts do not
// survive a rewind.
func (m *Match) restoreSnapshot() {
	snap := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]

	m.players = snap.players
	m.current = snap.currentPlayer
	m.legStarter = snap.legStarter
	m.score = snap.score
	m.legWinner = snap.legWinner
	m.winnerIdx = snap.winnerIdx
	m.pendingWinner = snap.pendingWinner
	m.processingWin = snap.processingWin
	m.roundIndex = snap.roundIndex
	m.phase = snap.phase
	m.turnDarts = nil
}
