package game

// MatchSummary is the flat per-player record handed to the persistence
// adapter once per finished match. The JSON keys are the persisted contract
// for downstream statistics consumers.
type MatchSummary struct {
	Mode            int          `json:"mode"` // starting score, 27 for the drill
	GameType        string       `json:"game_type"`
	PlayerName      string       `json:"winner_name"`
	Result          string       `json:"result"` // WIN or LOSS
	Average         float64      `json:"avg"`    // 3-dart average, final score for the drill
	Darts           int          `json:"darts"`
	CheckoutPct     float64      `json:"checkout"`
	HighestCheckout int          `json:"highest_checkout"`
	Scores60        int          `json:"scores_60plus"`
	Scores100       int          `json:"scores_100plus"`
	Scores140       int          `json:"scores_140plus"`
	Scores180       int          `json:"scores_180s"`
	Turns           []TurnRecord `json:"match_details"`
}

// ThreeDartAverage is points per three darts thrown.
func ThreeDartAverage(points, darts int) float64 {
	if darts == 0 {
		return 0
	}
	return float64(points) / float64(darts) * 3
}

// CheckoutRate is the percentage of successful finishes over doubles
// attempted.
func CheckoutRate(successes, attempts int) float64 {
	if attempts == 0 {
		return 0
	}
	return float64(successes) / float64(attempts) * 100
}

// SummaryRecords builds one record per player, winner and losers alike.
// It is single-shot per match: repeated calls after the first return nil, so
// a doubled completion event can never double-insert downstream.
func (m *Match) SummaryRecords() []MatchSummary {
	if m.winnerIdx < 0 || m.emitted {
		return nil
	}
	m.emitted = true

	records := make([]MatchSummary, 0, len(m.players))
	for i, p := range m.players {
		rec := MatchSummary{
			Mode:            m.cfg.Mode(),
			GameType:        m.cfg.GameType(),
			PlayerName:      p.Name,
			Result:          "LOSS",
			Darts:           p.Stats.TotalDarts,
			HighestCheckout: p.Stats.HighestCheckout,
			Scores60:        p.Stats.Scores60,
			Scores100:       p.Stats.Scores100,
			Scores140:       p.Stats.Scores140,
			Scores180:       p.Stats.Scores180,
			Turns:           p.clone().History,
		}
		if i == m.winnerIdx {
			rec.Result = "WIN"
		}
		if m.cfg.Variant == VariantAccuracyDrill {
			rec.Average = float64(p.Score)
		} else {
			rec.Average = ThreeDartAverage(p.Stats.TotalPointsScored, p.Stats.TotalDarts)
			rec.CheckoutPct = CheckoutRate(p.Stats.CheckoutSuccesses, p.Stats.DoublesAttempted)
		}
		records = append(records, rec)
	}
	return records
}
