package game

// Announcer is the outbound notification port. Every call is advisory and
// fire-and-forget: implementations must not block and can never influence
// rule outcomes. The core holds no ambient feedback state; whoever builds the
// match injects the sinks it wants (sound, spectator broadcast, logging).
type Announcer interface {
	MatchStarted()
	TurnSwitched(playerIndex int)
	Scored(points int)
	Bust()
	LegWon(playerName string, setWon bool)
	MatchWon(playerName string)
}

// NopAnnouncer discards all notifications.
type NopAnnouncer struct{}

func (NopAnnouncer) MatchStarted()       {}
func (NopAnnouncer) TurnSwitched(int)    {}
func (NopAnnouncer) Scored(int)          {}
func (NopAnnouncer) Bust()               {}
func (NopAnnouncer) LegWon(string, bool) {}
func (NopAnnouncer) MatchWon(string)     {}
