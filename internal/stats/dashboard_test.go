package stats

import (
	"testing"
	"time"

	"dartkeeper/internal/game"
	"dartkeeper/internal/storage"
)

func TestRankFor(t *testing.T) {
	tests := []struct {
		avg       float64
		wantTitle string
	}{
		{0, "DÉBUTANT"},
		{29.9, "DÉBUTANT"},
		{30, "AMATEUR"},
		{45, "PUB HERO"},
		{55, "CLUB PLAYER"},
		{65, "SEMI-PRO"},
		{70, "PRO TOUR"},
		{85, "WORLD CLASS"},
		{120, "WORLD CLASS"},
	}
	for _, tt := range tests {
		if got := RankFor(tt.avg); got.Title != tt.wantTitle {
			t.Errorf("RankFor(%v) = %s, want %s", tt.avg, got.Title, tt.wantTitle)
		}
	}
}

func TestRankFor_Progress(t *testing.T) {
	r := RankFor(35)
	if r.Title != "AMATEUR" {
		t.Fatalf("rank = %s, want AMATEUR", r.Title)
	}
	if r.Progress != 50 {
		t.Errorf("progress = %v, want 50", r.Progress)
	}
	if r.NextMin != 40 {
		t.Errorf("next tier at %v, want 40", r.NextMin)
	}

	top := RankFor(100)
	if top.Progress != 100 || top.NextMin != 0 {
		t.Errorf("top tier = %+v, want progress 100 and no next tier", top)
	}
}

func record(mode int, gameType, result string, avg float64, darts int) storage.MatchRecord {
	return storage.MatchRecord{
		ID:         gameType + result,
		Mode:       mode,
		GameType:   gameType,
		Result:     result,
		Average:    avg,
		Darts:      darts,
		PlayerName: "Alice",
		CreatedAt:  time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
	}
}

func TestBuildDashboard_Empty(t *testing.T) {
	d := BuildDashboard(nil)
	if d.Stats.Games != 0 {
		t.Errorf("games = %d, want 0", d.Stats.Games)
	}
	if d.Rank.Title != "DÉBUTANT" {
		t.Errorf("rank = %s, want DÉBUTANT", d.Rank.Title)
	}
	if len(d.Stats.Distribution) != 4 {
		t.Errorf("distribution bands = %d, want 4", len(d.Stats.Distribution))
	}
	if len(d.Chart) != 0 {
		t.Errorf("chart points = %d, want 0", len(d.Chart))
	}
}

func TestBuildDashboard_Counters(t *testing.T) {
	records := []storage.MatchRecord{
		record(501, "DUEL", "WIN", 60, 30),
		record(501, "DUEL", "LOSS", 40, 45),
		record(301, "SOLO", "WIN", 50, 18),
	}
	d := BuildDashboard(records)

	if d.Stats.Games != 3 || d.Stats.SoloGames != 1 || d.Stats.DuelGames != 2 {
		t.Errorf("game counts = %d/%d/%d, want 3/1/2",
			d.Stats.Games, d.Stats.SoloGames, d.Stats.DuelGames)
	}
	if d.Stats.Wins != 1 || d.Stats.Losses != 1 {
		t.Errorf("duel record = %d-%d, want 1-1", d.Stats.Wins, d.Stats.Losses)
	}
	if d.Stats.WinRate != 50 {
		t.Errorf("win rate = %v, want 50", d.Stats.WinRate)
	}
	if d.Stats.Average != 50 {
		t.Errorf("avg = %v, want 50", d.Stats.Average)
	}
	if d.Stats.BestAverage != 60 {
		t.Errorf("best avg = %v, want 60", d.Stats.BestAverage)
	}
	if d.Stats.TotalDarts != 93 {
		t.Errorf("total darts = %d, want 93", d.Stats.TotalDarts)
	}
	if d.Rank.Title != "CLUB PLAYER" {
		t.Errorf("rank = %s, want CLUB PLAYER", d.Rank.Title)
	}
	if len(d.Chart) != 3 {
		t.Errorf("chart points = %d, want 3", len(d.Chart))
	}
}

func TestBuildDashboard_BestPerMode(t *testing.T) {
	records := []storage.MatchRecord{
		record(301, "SOLO", "WIN", 55, 21),
		record(301, "SOLO", "WIN", 62, 15),
		record(501, "SOLO", "WIN", 48, 60),
		record(27, "SOLO", "WIN", 89, 63), // drill: avg column holds the final score
		record(27, "SOLO", "WIN", 41, 63),
	}
	d := BuildDashboard(records)

	if d.Stats.Best301 != 15 {
		t.Errorf("best 301 = %d darts, want 15", d.Stats.Best301)
	}
	if d.Stats.Best501 != 60 {
		t.Errorf("best 501 = %d darts, want 60", d.Stats.Best501)
	}
	if d.Stats.BestDrill != 89 {
		t.Errorf("best drill = %v, want 89", d.Stats.BestDrill)
	}
}

func TestBuildDashboard_RecentFormAndTrend(t *testing.T) {
	// Six matches: lifetime avg 45, last five avg 48, trend +3.
	records := []storage.MatchRecord{
		record(501, "SOLO", "WIN", 30, 30),
		record(501, "SOLO", "WIN", 40, 30),
		record(501, "SOLO", "WIN", 44, 30),
		record(501, "SOLO", "WIN", 48, 30),
		record(501, "SOLO", "WIN", 52, 30),
		record(501, "SOLO", "WIN", 56, 30),
	}
	d := BuildDashboard(records)
	if d.Stats.Average != 45 {
		t.Fatalf("avg = %v, want 45", d.Stats.Average)
	}
	if d.Stats.RecentAverage != 48 {
		t.Errorf("recent avg = %v, want 48", d.Stats.RecentAverage)
	}
	if d.Stats.AverageTrend != 3 {
		t.Errorf("trend = %v, want 3", d.Stats.AverageTrend)
	}
}

func TestBuildDashboard_CheckoutAggregation(t *testing.T) {
	a := record(501, "DUEL", "WIN", 60, 30)
	a.CheckoutPct = 50
	a.HighestCheckout = 100
	b := record(501, "DUEL", "LOSS", 40, 45)
	b.CheckoutPct = 0 // no finish: excluded from the mean
	c := record(501, "DUEL", "WIN", 55, 33)
	c.CheckoutPct = 25
	c.HighestCheckout = 64

	d := BuildDashboard([]storage.MatchRecord{a, b, c})
	if d.Stats.CheckoutRate != 38 {
		t.Errorf("checkout rate = %v, want 38 (mean of 50 and 25, rounded)", d.Stats.CheckoutRate)
	}
	if d.Stats.HighestCheckout != 100 {
		t.Errorf("highest checkout = %d, want 100", d.Stats.HighestCheckout)
	}
}

func TestBuildDashboard_ScoringDistribution(t *testing.T) {
	a := record(501, "SOLO", "WIN", 60, 30)
	a.Scores60, a.Scores100, a.Scores140, a.Scores180 = 4, 3, 2, 1
	d := BuildDashboard([]storage.MatchRecord{a})

	bands := d.Stats.Distribution
	if len(bands) != 4 {
		t.Fatalf("bands = %d, want 4", len(bands))
	}
	wantCounts := []int{4, 3, 2, 1}
	wantPcts := []float64{40, 30, 20, 10}
	for i, b := range bands {
		if b.Count != wantCounts[i] || b.Percent != wantPcts[i] {
			t.Errorf("band %s = %d (%v%%), want %d (%v%%)",
				b.Name, b.Count, b.Percent, wantCounts[i], wantPcts[i])
		}
	}
	if d.Stats.Total180s != 1 {
		t.Errorf("total 180s = %d, want 1", d.Stats.Total180s)
	}
}

func TestBuildDashboard_First9AndTrebles(t *testing.T) {
	treble := game.DartDetail{Value: 20, Multiplier: 3, Label: "T20", Points: 60}
	single := game.DartDetail{Value: 20, Multiplier: 1, Label: "20", Points: 20}

	r := record(501, "SOLO", "WIN", 60, 12)
	r.Turns = []game.TurnRecord{
		{Total: 180, Darts: []game.DartDetail{treble, treble, treble}},
		{Total: 100, Darts: []game.DartDetail{treble, single, single}},
		{Total: 60, Darts: []game.DartDetail{single, single, single}},
		// Beyond the first nine darts: counts for trebles, not first-9.
		{Total: 140, Darts: []game.DartDetail{treble, treble, single}},
	}

	d := BuildDashboard([]storage.MatchRecord{r})
	// (180+100+60) points over 9 darts = 113.3 per three darts.
	if d.Stats.First9Average != 113.3 {
		t.Errorf("first-9 avg = %v, want 113.3", d.Stats.First9Average)
	}
	// 6 trebles over 12 recorded throws.
	if d.Stats.TreblePct != 50 {
		t.Errorf("treble pct = %v, want 50", d.Stats.TreblePct)
	}
}
