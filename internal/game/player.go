package game

// PlayerStats accumulates over a whole match; it is never reset between legs.
type PlayerStats struct {
	TotalDarts        int `json:"totalDarts"`
	DoublesAttempted  int `json:"doublesAttempted"`
	TotalPointsScored int `json:"totalPointsScored"`
	CheckoutSuccesses int `json:"checkoutSuccesses"`
	Scores60          int `json:"scores60"`  // turns scoring 60-99
	Scores100         int `json:"scores100"` // turns scoring 100-139
	Scores140         int `json:"scores140"` // turns scoring 140-179
	Scores180         int `json:"scores180"` // maximum turns
	HighestCheckout   int `json:"highestCheckout"`
}

// recordBand tallies a committed turn total into its scoring band.
func (s *PlayerStats) recordBand(points int) {
	switch {
	case points == 180:
		s.Scores180++
	case points >= 140:
		s.Scores140++
	case points >= 100:
		s.Scores100++
	case points >= 60:
		s.Scores60++
	}
}

// DartDetail is the flattened per-throw entry stored inside a TurnRecord.
// The short JSON keys match the persisted match_details format.
type DartDetail struct {
	Value      int    `json:"val"`
	Multiplier int    `json:"mult"`
	Label      string `json:"txt"`
	Points     int    `json:"pts"`
}

// TurnRecord is appended to a player's history when a turn concludes and is
// never mutated afterward.
type TurnRecord struct {
	Total int          `json:"total"`
	Bust  bool         `json:"is_bust"`
	Darts []DartDetail `json:"darts"`
}

// Player is the per-player mutable record for the running match.
type Player struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Score        int          `json:"score"`
	InitialScore int          `json:"initialScore"`
	Eliminated   bool         `json:"isEliminated"` // drill only
	History      []TurnRecord `json:"history"`      // current leg's turns, oldest first
	Stats        PlayerStats  `json:"stats"`
}

// clone returns a deep copy; used by the snapshot manager so undo restores
// history and stats untouched by later mutation.
func (p Player) clone() Player {
	out := p
	out.History = make([]TurnRecord, len(p.History))
	for i, tr := range p.History {
		cp := tr
		cp.Darts = append([]DartDetail(nil), tr.Darts...)
		out.History[i] = cp
	}
	return out
}

func clonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = p.clone()
	}
	return out
}
