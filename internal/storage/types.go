// Package storage persists completed-match records. The primary store is a
// local sqlite database; records that cannot be written there are queued in a
// JSON fallback file and reconciled later.
package storage

import (
	"time"

	"github.com/google/uuid"

	"dartkeeper/internal/game"
)

// MatchRecord is one flat row per player per finished match. The JSON keys
// are the stable contract consumed by the statistics dashboard.
type MatchRecord struct {
	ID              string            `json:"id"`
	Mode            int               `json:"mode"` // starting score, 27 for the drill
	GameType        string            `json:"game_type"`
	PlayerName      string            `json:"winner_name"`
	Result          string            `json:"result"`
	Average         float64           `json:"avg"`
	Darts           int               `json:"darts"`
	CheckoutPct     float64           `json:"checkout"`
	HighestCheckout int               `json:"highest_checkout"`
	Scores60        int               `json:"scores_60plus"`
	Scores100       int               `json:"scores_100plus"`
	Scores140       int               `json:"scores_140plus"`
	Scores180       int               `json:"scores_180s"`
	Turns           []game.TurnRecord `json:"match_details"`
	CreatedAt       time.Time         `json:"created_at"`
}

// FromSummary stamps a core summary with an ID and timestamp for persistence.
func FromSummary(s game.MatchSummary) MatchRecord {
	return MatchRecord{
		ID:              uuid.NewString(),
		Mode:            s.Mode,
		GameType:        s.GameType,
		PlayerName:      s.PlayerName,
		Result:          s.Result,
		Average:         s.Average,
		Darts:           s.Darts,
		CheckoutPct:     s.CheckoutPct,
		HighestCheckout: s.HighestCheckout,
		Scores60:        s.Scores60,
		Scores100:       s.Scores100,
		Scores140:       s.Scores140,
		Scores180:       s.Scores180,
		Turns:           s.Turns,
		CreatedAt:       time.Now().UTC(),
	}
}

// FromSummaries converts a whole emission batch.
func FromSummaries(summaries []game.MatchSummary) []MatchRecord {
	records := make([]MatchRecord, len(summaries))
	for i, s := range summaries {
		records[i] = FromSummary(s)
	}
	return records
}
