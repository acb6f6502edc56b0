package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"dartkeeper/internal/game"
	"dartkeeper/internal/notify"
	"dartkeeper/internal/storage"
)

// App is the desktop application backbone. It owns the live match, the
// persistence pipeline and the pacing timers; the frontend drives it through
// the bound methods and listens for pushed state events.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	match      *game.Match
	lastConfig game.MatchConfig
	hasConfig  bool

	store   *storage.SQLiteStore
	queue   *storage.Queue
	emitter *storage.Emitter
	hub     *notify.Hub

	switchTimer *time.Timer
	revealTimer *time.Timer
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// dataDir resolves where the match database and fallback queue live.
func dataDir() string {
	if dir := os.Getenv("DARTKEEPER_DATA_DIR"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "dartkeeper")
}

// startup is called when the app starts
func (a *App) startup(ctx context.Context) {
	a.ctx, a.cancel = context.WithCancel(ctx)

	dir := dataDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Failed to create data directory %s: %v\n", dir, err)
	}

	a.queue = storage.NewQueue(filepath.Join(dir, "pending_matches.json"))

	store, err := storage.OpenSQLite(filepath.Join(dir, "matches.db"))
	if err != nil {
		// History persists through the queue until the database recovers.
		fmt.Printf("Failed to open match database: %v\n", err)
	} else {
		a.store = store
		a.emitter = storage.NewEmitter(store, a.queue)
		if err := a.emitter.Reconcile(a.ctx); err != nil {
			fmt.Printf("Queue reconciliation: %v\n", err)
		}
		a.emitter.Start(a.ctx)
	}

	if addr := os.Getenv("DARTKEEPER_SPECTATOR_ADDR"); addr != "" {
		a.hub = notify.NewHub()
		go func() {
			if err := a.hub.Listen(addr); err != nil && err != http.ErrServerClosed {
				fmt.Printf("Spectator feed stopped: %v\n", err)
			}
		}()
	}

	a.RegisterUndoHotkey()
}

// shutdown is called on app exit; it flushes any pending saves.
func (a *App) shutdown(ctx context.Context) {
	a.mu.Lock()
	a.stopTimers()
	a.mu.Unlock()

	if a.cancel != nil {
		a.cancel()
	}
	if a.emitter != nil {
		a.emitter.Wait()
	}
	if a.store != nil {
		a.store.Close()
	}
}

// stopTimers cancels any pending turn-switch or winner-reveal callback.
// Callers hold a.mu.
func (a *App) stopTimers() {
	if a.switchTimer != nil {
		a.switchTimer.Stop()
		a.switchTimer = nil
	}
	if a.revealTimer != nil {
		a.revealTimer.Stop()
		a.revealTimer = nil
	}
}

// announcer assembles the notification sinks for a new match.
func (a *App) announcer() game.Announcer {
	sinks := notify.Multi{notify.Logger{}, &eventAnnouncer{app: a}}
	if a.hub != nil {
		sinks = append(sinks, a.hub)
	}
	return sinks
}
