package types

import (
	"fmt"

	"github.com/cbodonnell/pong/pkg/game/constants"
)

type Player uint8

const (
	Player1 Player = iota + 1
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "Unknown"
}

// Score holds the points of each player. Points only ever increase, one at a time.
type Score struct {
	P1 int `json:"p1"`
	P2 int `json:"p2"`
}

// Award gives one point to the player.
func (s *Score) Award(player Player) {
	switch player {
	case Player1:
		s.P1++
	case Player2:
		s.P2++
	}
}

// ScorerSince returns the player who scored between previous and s, if any.
func (s Score) ScorerSince(previous Score) (Player, bool) {
	switch {
	case s.P1 > previous.P1:
		return Player1, true
	case s.P2 > previous.P2:
		return Player2, true
	}
	return 0, false
}

// String formats the score line as it is shown on screen.
func (s Score) String() string {
	return fmt.Sprintf(constants.ScoreFormat, s.P1, s.P2)
}
