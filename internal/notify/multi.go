package notify

import "dartkeeper/internal/game"

// Multi fans one event stream out to several announcers.
type Multi []game.Announcer

func (m Multi) MatchStarted() {
	for _, a := range m {
		a.MatchStarted()
	}
}

func (m Multi) TurnSwitched(playerIndex int) {
	for _, a := range m {
		a.TurnSwitched(playerIndex)
	}
}

func (m Multi) Scored(points int) {
	for _, a := range m {
		a.Scored(points)
	}
}

func (m Multi) Bust() {
	for _, a := range m {
		a.Bust()
	}
}

func (m Multi) LegWon(playerName string, setWon bool) {
	for _, a := range m {
		a.LegWon(playerName, setWon)
	}
}

func (m Multi) MatchWon(playerName string) {
	for _, a := range m {
		a.MatchWon(playerName)
	}
}
