// Package stats aggregates stored match records into the dashboard shown on
// the statistics screen.
package stats

import (
	"math"

	"dartkeeper/internal/storage"
)

// Rank is one tier of the skill ladder, positioned by lifetime 3-dart
// average.
type Rank struct {
	Title    string  `json:"title"`
	Icon     string  `json:"icon"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Progress float64 `json:"progress"` // percent through the current tier
	NextMin  float64 `json:"next_min"` // 0 when already at the top tier
}

// ladder is ordered lowest tier first. Max of one tier is Min of the next.
var ladder = []Rank{
	{Title: "DÉBUTANT", Icon: "🌱", Min: 0, Max: 30},
	{Title: "AMATEUR", Icon: "🍺", Min: 30, Max: 40},
	{Title: "PUB HERO", Icon: "🔥", Min: 40, Max: 50},
	{Title: "CLUB PLAYER", Icon: "🎯", Min: 50, Max: 60},
	{Title: "SEMI-PRO", Icon: "🏆", Min: 60, Max: 70},
	{Title: "PRO TOUR", Icon: "👑", Min: 70, Max: 85},
	{Title: "WORLD CLASS", Icon: "👽", Min: 85, Max: 200},
}

// RankFor places an average on the ladder and computes progress toward the
// next tier.
func RankFor(avg float64) Rank {
	rank := ladder[len(ladder)-1]
	idx := len(ladder) - 1
	for i, r := range ladder {
		if avg >= r.Min && avg < r.Max {
			rank, idx = r, i
			break
		}
	}
	if idx == len(ladder)-1 {
		rank.Progress = 100
		return rank
	}
	rank.NextMin = rank.Max
	rank.Progress = math.Min(math.Max((avg-rank.Min)/(rank.Max-rank.Min)*100, 0), 100)
	return rank
}

// Band is one slice of the scoring distribution.
type Band struct {
	Name    string  `json:"name"`
	Count   int     `json:"value"`
	Percent float64 `json:"percent"`
}

// ChartPoint is one match on the average-over-time chart.
type ChartPoint struct {
	Date     string  `json:"date"` // RFC3339, oldest first
	Average  float64 `json:"avg"`
	Checkout float64 `json:"checkout"`
	Darts    int     `json:"darts"`
}

// Overview is the flat block of headline numbers.
type Overview struct {
	Games     int `json:"games"`
	SoloGames int `json:"soloGames"`
	DuelGames int `json:"duelGames"`
	Wins      int `json:"wins"`   // duels only
	Losses    int `json:"losses"` // duels only

	WinRate       float64 `json:"winRate"`
	Average       float64 `json:"avg"`
	BestAverage   float64 `json:"bestAvg"`
	RecentAverage float64 `json:"recentAvg"` // last five matches
	AverageTrend  float64 `json:"avgTrend"`  // recent minus lifetime

	Best301   int     `json:"best301"` // fewest darts to finish a 301
	Best501   int     `json:"best501"`
	BestDrill float64 `json:"bestBobs"` // highest final drill score

	Total180s       int     `json:"total180"`
	HighestCheckout int     `json:"highestCheckout"`
	CheckoutRate    float64 `json:"checkoutRate"` // mean over matches with a finish

	First9Average float64 `json:"first9Avg"`
	TreblePct     float64 `json:"treblePercentage"`
	TotalDarts    int     `json:"totalDartsThrown"`

	Distribution []Band `json:"scoringDistribution"`
}

// Dashboard is the full payload for the statistics screen.
type Dashboard struct {
	Stats Overview     `json:"stats"`
	Rank  Rank         `json:"rank"`
	Chart []ChartPoint `json:"chartData"`
}

// BuildDashboard aggregates records, oldest first, into the dashboard.
func BuildDashboard(records []storage.MatchRecord) Dashboard {
	if len(records) == 0 {
		return Dashboard{
			Rank:  RankFor(0),
			Stats: Overview{Distribution: distribution(0, 0, 0, 0)},
			Chart: []ChartPoint{},
		}
	}

	var o Overview
	o.Games = len(records)

	var avgSum float64
	var first9Points, first9Darts int
	var trebles, throwsRecorded int
	var checkoutSum float64
	var checkoutGames int
	var s60, s100, s140, s180 int

	chart := make([]ChartPoint, 0, len(records))
	for _, r := range records {
		switch r.GameType {
		case "SOLO":
			o.SoloGames++
		case "DUEL":
			o.DuelGames++
			if r.Result == "WIN" {
				o.Wins++
			} else {
				o.Losses++
			}
		}

		avgSum += r.Average
		if r.Average > o.BestAverage {
			o.BestAverage = r.Average
		}
		o.TotalDarts += r.Darts

		// Opening form: points per dart over the first three turns.
		for i, turn := range r.Turns {
			if i < 3 {
				first9Points += turn.Total
				first9Darts += len(turn.Darts)
			}
			for _, d := range turn.Darts {
				if d.Multiplier == 3 {
					trebles++
				}
				throwsRecorded++
			}
		}

		if r.Mode == 301 && r.Darts > 0 && (o.Best301 == 0 || r.Darts < o.Best301) {
			o.Best301 = r.Darts
		}
		if r.Mode == 501 && r.Darts > 0 && (o.Best501 == 0 || r.Darts < o.Best501) {
			o.Best501 = r.Darts
		}
		if r.Mode == 27 && r.Average > o.BestDrill {
			o.BestDrill = r.Average
		}

		if r.HighestCheckout > o.HighestCheckout {
			o.HighestCheckout = r.HighestCheckout
		}
		if r.CheckoutPct > 0 {
			checkoutSum += r.CheckoutPct
			checkoutGames++
		}

		s60 += r.Scores60
		s100 += r.Scores100
		s140 += r.Scores140
		s180 += r.Scores180

		chart = append(chart, ChartPoint{
			Date:     r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			Average:  r.Average,
			Checkout: r.CheckoutPct,
			Darts:    r.Darts,
		})
	}

	o.Average = round1(avgSum / float64(o.Games))

	recent := records
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	var recentSum float64
	for _, r := range recent {
		recentSum += r.Average
	}
	o.RecentAverage = round1(recentSum / float64(len(recent)))
	o.AverageTrend = round1(o.RecentAverage - o.Average)

	if o.DuelGames > 0 {
		o.WinRate = math.Round(float64(o.Wins) / float64(o.DuelGames) * 100)
	}
	if checkoutGames > 0 {
		o.CheckoutRate = math.Round(checkoutSum / float64(checkoutGames))
	}
	if first9Darts > 0 {
		o.First9Average = round1(float64(first9Points) / float64(first9Darts) * 3)
	}
	if throwsRecorded > 0 {
		o.TreblePct = round1(float64(trebles) / float64(throwsRecorded) * 100)
	}
	o.Total180s = s180
	o.Distribution = distribution(s60, s100, s140, s180)

	return Dashboard{Stats: o, Rank: RankFor(o.Average), Chart: chart}
}

func distribution(s60, s100, s140, s180 int) []Band {
	total := s60 + s100 + s140 + s180
	if total == 0 {
		total = 1
	}
	pct := func(n int) float64 {
		return math.Round(float64(n) / float64(total) * 100)
	}
	return []Band{
		{Name: "60+", Count: s60, Percent: pct(s60)},
		{Name: "100+", Count: s100, Percent: pct(s100)},
		{Name: "140+", Count: s140, Percent: pct(s140)},
		{Name: "180", Count: s180, Percent: pct(s180)},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
