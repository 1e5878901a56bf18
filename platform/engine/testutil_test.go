package engine

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/Asabs18/Monopoly/app/models"
	"github.com/Asabs18/Monopoly/platform/board"
)

// Tests run against the real rule tables so rent schedules and track
// layout match production.
func loadTables(t *testing.T) ([]models.Property, models.CardFile) {
	t.Helper()
	os.Setenv("BOARD_ASSETS", "../board")
	properties, err := board.LoadProperties()
	if err != nil {
		t.Fatalf("loading properties: %v", err)
	}
	cards, err := board.LoadCards()
	if err != nil {
		t.Fatalf("loading cards: %v", err)
	}
	return properties, cards
}

// newTestGame builds a deterministic game: scripted dice, fixed seed, and
// seat 0 holding the first turn.
func newTestGame(t *testing.T, seats int, rolls ...[2]int) *Game {
	t.Helper()
	properties, cards := loadTables(t)
	if len(rolls) == 0 {
		rolls = [][2]int{{1, 2}}
	}
	seatList := make([]Seat, seats)
	for i := range seatList {
		seatList[i] = Seat{Name: fmt.Sprintf("P%d", i), Piece: "dog"}
	}
	g, err := NewGame(Config{
		Properties: properties,
		Cards:      cards,
		Seed:       1,
		Roller:     FixedRolls(rolls...),
		RollDelay:  time.Millisecond,
	}, seatList)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	setTurn(g, 0)
	return g
}

func setTurn(g *Game, seat int) {
	for _, p := range g.Players {
		p.HasTurn = false
	}
	g.current = seat
	g.Players[seat].HasTurn = true
	g.diceRolled = false
	g.pending = PendingNone
	g.pendingCard = nil
}

// giveProperty hands a space to a player outright, bypassing payment.
func giveProperty(g *Game, seat, pos int) *Space {
	s := g.Board.At(pos)
	s.Owner = g.Players[seat]
	g.Players[seat].Properties = append(g.Players[seat].Properties, s)
	return s
}

// giveGroup hands a player every street in a color group.
func giveGroup(g *Game, seat int, group string) []*Space {
	spaces := g.Board.GroupSpaces(group)
	for _, s := range spaces {
		s.Owner = g.Players[seat]
		g.Players[seat].Properties = append(g.Players[seat].Properties, s)
	}
	return spaces
}
