package notify

import "fmt"

// Logger prints match events to the console.
type Logger struct{}

func (Logger) MatchStarted() {
	fmt.Println("Match started")
}

func (Logger) TurnSwitched(playerIndex int) {
	fmt.Printf("Turn: player %d\n", playerIndex+1)
}

func (Logger) Scored(points int) {
	fmt.Printf("Scored %d\n", points)
}

func (Logger) Bust() {
	fmt.Println("Bust")
}

func (Logger) LegWon(playerName string, setWon bool) {
	if setWon {
		fmt.Printf("%s wins the set\n", playerName)
		return
	}
	fmt.Printf("%s wins the leg\n", playerName)
}

func (Logger) MatchWon(playerName string) {
	fmt.Printf("%s wins the match\n", playerName)
}
