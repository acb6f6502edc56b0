package main

import (
	"fmt"

	"dartkeeper/internal/stats"
	"dartkeeper/internal/storage"
)

// GetDashboard aggregates the full match history into the statistics screen
// payload. A missing store yields an empty dashboard, never an error.
func (a *App) GetDashboard() stats.Dashboard {
	records := a.GetMatchHistory()
	return stats.BuildDashboard(records)
}

// GetMatchHistory returns every stored match record, oldest first.
func (a *App) GetMatchHistory() []storage.MatchRecord {
	if a.store == nil {
		return []storage.MatchRecord{}
	}
	records, err := a.store.ListMatches(a.ctx)
	if err != nil {
		fmt.Printf("Failed to load match history: %v\n", err)
		return []storage.MatchRecord{}
	}
	if records == nil {
		records = []storage.MatchRecord{}
	}
	return records
}

// DeleteMatch removes one record from the history.
func (a *App) DeleteMatch(id string) string {
	if a.store == nil {
		return "History store not available"
	}
	if err := a.store.DeleteMatch(a.ctx, id); err != nil {
		fmt.Printf("Failed to delete match %s: %v\n", id, err)
		return fmt.Sprintf("Delete failed: %v", err)
	}
	return ""
}

// DeleteMatches removes a selection of records from the history.
func (a *App) DeleteMatches(ids []string) string {
	if a.store == nil {
		return "History store not available"
	}
	if err := a.store.DeleteMatches(a.ctx, ids); err != nil {
		fmt.Printf("Failed to delete %d matches: %v\n", len(ids), err)
		return fmt.Sprintf("Delete failed: %v", err)
	}
	return ""
}

// ClearHistory wipes the whole match history.
func (a *App) ClearHistory() string {
	if a.store == nil {
		return "History store not available"
	}
	if err := a.store.ClearAll(a.ctx); err != nil {
		fmt.Printf("Failed to clear history: %v\n", err)
		return fmt.Sprintf("Clear failed: %v", err)
	}
	fmt.Println("Match history cleared")
	return ""
}
