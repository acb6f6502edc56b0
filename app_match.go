package main

import (
	"fmt"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"dartkeeper/internal/checkout"
	"dartkeeper/internal/game"
	"dartkeeper/internal/storage"
)

// UIDart is one throw of the open turn as the scoreboard renders it.
type UIDart struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
	Bust   bool   `json:"bust"`
	Hit    bool   `json:"hit"`
}

// UIPlayer is the per-player scoreboard block.
type UIPlayer struct {
	Name        string            `json:"name"`
	Score       int               `json:"score"`
	Eliminated  bool              `json:"isEliminated"`
	Average     float64           `json:"average"`
	CheckoutPct float64           `json:"checkoutPct"`
	History     []game.TurnRecord `json:"history"`
	Stats       game.PlayerStats  `json:"stats"`
}

// UIState is the full frontend view of the running match, pushed on every
// change through the match:state event.
type UIState struct {
	InMatch       bool            `json:"inMatch"`
	Phase         string          `json:"phase"`
	Variant       string          `json:"variant"`
	Players       []UIPlayer      `json:"players"`
	CurrentPlayer int             `json:"currentPlayer"`
	LegStarter    int             `json:"legStarter"`
	TurnDarts     []UIDart        `json:"turnDarts"`
	MatchScore    game.MatchScore `json:"matchScore"`
	LegWinner     *game.LegResult `json:"legWinner"`
	WinnerName    string          `json:"winnerName"` // empty until revealed
	ProcessingWin bool            `json:"processingWin"`
	CanUndo       bool            `json:"canUndo"`
	CheckoutHint  []string        `json:"checkoutHint"` // active player, X01 only
	DrillTarget   int             `json:"drillTarget"`
	DrillRound    int             `json:"drillRound"`
}

// StartMatch begins a new match with the given configuration.
func (a *App) StartMatch(cfg game.MatchConfig) (UIState, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	m, err := game.NewMatch(cfg, a.announcer())
	if err != nil {
		return UIState{}, err
	}

	a.stopTimers()
	a.match = m
	a.lastConfig = cfg
	a.hasConfig = true
	fmt.Printf("Match started: %s %s, first to %d set(s) of %d leg(s)\n",
		cfg.GameType(), cfg.Variant, cfg.SetsToWin, cfg.LegsToWin)
	return a.pushStateLocked(), nil
}

// ThrowDart records one throw for the active player and schedules whatever
// follow-up the outcome calls for.
func (a *App) ThrowDart(base, multiplier int) UIState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.match == nil {
		return a.stateLocked()
	}
	res := a.match.ThrowDart(base, multiplier)
	a.scheduleLocked(res)
	return a.pushStateLocked()
}

// CompleteTurn commits the open turn immediately, without waiting for the
// pacing timer. Used when a partial turn is validated by hand.
func (a *App) CompleteTurn() UIState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.match == nil {
		return a.stateLocked()
	}
	a.stopTimers()
	res := a.match.CommitTurn()
	a.scheduleLocked(res)
	return a.pushStateLocked()
}

// UndoLastDart reverts the most recent throw of the open turn.
func (a *App) UndoLastDart() UIState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.match == nil {
		return a.stateLocked()
	}
	a.stopTimers()
	if a.match.UndoLastDart() {
		fmt.Println("Undid last dart")
	}
	return a.pushStateLocked()
}

// UndoTurn reverts the last committed turn as a whole.
func (a *App) UndoTurn() UIState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.match == nil {
		return a.stateLocked()
	}
	a.stopTimers()
	if a.match.UndoTurn() {
		fmt.Println("Undid last turn")
	}
	return a.pushStateLocked()
}

// NextLeg advances past a decided leg.
func (a *App) NextLeg() UIState {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.match == nil {
		return a.stateLocked()
	}
	if a.match.NextLeg() {
		fmt.Println("Next leg")
	}
	return a.pushStateLocked()
}

// RestartMatch starts a fresh match with the previous configuration.
func (a *App) RestartMatch() (UIState, error) {
	a.mu.Lock()
	hasConfig := a.hasConfig
	cfg := a.lastConfig
	a.mu.Unlock()

	if !hasConfig {
		return UIState{}, fmt.Errorf("no previous match to restart")
	}
	return a.StartMatch(cfg)
}

// ReturnToSetup abandons the running match. An unrevealed winner is dropped,
// not persisted.
func (a *App) ReturnToSetup() UIState {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopTimers()
	a.match = nil
	return a.pushStateLocked()
}

// GetState returns the current view without mutating anything.
func (a *App) GetState() UIState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stateLocked()
}

// scheduleLocked arms the pacing timer demanded by a throw outcome. Callers
// hold a.mu.
func (a *App) scheduleLocked(res game.ThrowResult) {
	switch res.Outcome {
	case game.OutcomeTurnComplete, game.OutcomeBust:
		if a.switchTimer != nil {
			a.switchTimer.Stop()
		}
		a.switchTimer = time.AfterFunc(res.Delay, a.commitPendingTurn)
	case game.OutcomeMatchWin:
		if a.revealTimer != nil {
			a.revealTimer.Stop()
		}
		a.revealTimer = time.AfterFunc(res.Delay, a.revealWinner)
	}
}

// commitPendingTurn fires when the turn-switch delay elapses.
func (a *App) commitPendingTurn() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.match == nil {
		return
	}
	a.switchTimer = nil
	res := a.match.CommitTurn()
	a.scheduleLocked(res)
	a.pushStateLocked()
}

// revealWinner fires after the win-reveal delay: the winner becomes visible
// and the match records go to storage exactly once.
func (a *App) revealWinner() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.match == nil {
		return
	}
	a.revealTimer = nil
	if !a.match.RevealWinner() {
		return
	}

	if summaries := a.match.SummaryRecords(); len(summaries) > 0 && a.emitter != nil {
		records := storage.FromSummaries(summaries)
		if err := a.emitter.Emit(a.ctx, records); err != nil {
			fmt.Printf("Failed to hand off match records: %v\n", err)
		}
	}
	a.pushStateLocked()
}

// stateLocked builds the frontend view. Callers hold a.mu.
func (a *App) stateLocked() UIState {
	m := a.match
	if m == nil {
		return UIState{Phase: game.PhaseSetup.String()}
	}

	cfg := m.Config()
	state := UIState{
		InMatch:       true,
		Phase:         m.Phase().String(),
		Variant:       cfg.Variant.String(),
		CurrentPlayer: m.CurrentPlayer(),
		LegStarter:    m.LegStarter(),
		MatchScore:    m.Score(),
		LegWinner:     m.LegWinner(),
		ProcessingWin: m.ProcessingWin(),
		CanUndo:       m.CanUndo(),
	}

	for _, d := range m.TurnDarts() {
		state.TurnDarts = append(state.TurnDarts, UIDart{
			Label:  d.Label(),
			Points: d.Points,
			Bust:   d.Bust,
			Hit:    d.Hit,
		})
	}

	for _, p := range m.Players() {
		up := UIPlayer{
			Name:       p.Name,
			Score:      p.Score,
			Eliminated: p.Eliminated,
			History:    p.History,
			Stats:      p.Stats,
		}
		if cfg.Variant == game.VariantX01 {
			up.Average = game.ThreeDartAverage(p.Stats.TotalPointsScored, p.Stats.TotalDarts)
			up.CheckoutPct = game.CheckoutRate(p.Stats.CheckoutSuccesses, p.Stats.DoublesAttempted)
		}
		state.Players = append(state.Players, up)
	}

	if w := m.Winner(); w != nil {
		state.WinnerName = w.Name
	}

	switch cfg.Variant {
	case game.VariantX01:
		// The hint only helps while the turn is still open.
		if !m.ProcessingWin() && len(m.TurnDarts()) < 3 {
			state.CheckoutHint = checkout.Suggest(m.ActiveRemaining())
		}
	case game.VariantAccuracyDrill:
		if target, ok := m.DrillTarget(); ok {
			state.DrillTarget = target
		}
		state.DrillRound = m.DrillRound()
	}

	return state
}

// pushStateLocked builds the view and pushes it to the frontend. Callers
// hold a.mu.
func (a *App) pushStateLocked() UIState {
	state := a.stateLocked()
	if a.ctx != nil {
		runtime.EventsEmit(a.ctx, "match:state", state)
	}
	return state
}

// eventAnnouncer forwards match events to the frontend for sound playback.
type eventAnnouncer struct {
	app *App
}

func (e *eventAnnouncer) emit(event string, data ...interface{}) {
	if e.app.ctx != nil {
		runtime.EventsEmit(e.app.ctx, event, data...)
	}
}

func (e *eventAnnouncer) MatchStarted() { e.emit("sound:start") }

func (e *eventAnnouncer) TurnSwitched(idx int) { e.emit("sound:turn", idx) }

func (e *eventAnnouncer) Scored(points int) { e.emit("sound:score", points) }

func (e *eventAnnouncer) Bust() { e.emit("sound:bust") }

func (e *eventAnnouncer) LegWon(name string, setWon bool) {
	e.emit("sound:leg", map[string]interface{}{"player": name, "setWon": setWon})
}

func (e *eventAnnouncer) MatchWon(name string) { e.emit("sound:win", name) }
