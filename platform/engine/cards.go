package engine

import (
	"math/rand"

	"github.com/Asabs18/Monopoly/app/models"
)

// Deck draws without replacement from a shuffled pile and reshuffles the
// full set when the pile runs out. Drawing never fails.
type Deck struct {
	cards []models.Card
	pile  []int
	rng   *rand.Rand
}

func NewDeck(cards []models.Card, rng *rand.Rand) *Deck {
	d := &Deck{cards: cards, rng: rng}
	d.reshuffle()
	return d
}

func (d *Deck) reshuffle() {
	d.pile = d.rng.Perm(len(d.cards))
}

func (d *Deck) Draw() models.Card {
	if len(d.pile) == 0 {
		d.reshuffle()
	}
	idx := d.pile[len(d.pile)-1]
	d.pile = d.pile[:len(d.pile)-1]
	return d.cards[idx]
}

// Remaining reports how many cards are left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.pile)
}

// resolveCard executes one scripted effect against the acting player.
// It returns true when the card moved the player, in which case the caller
// must resolve the landing on the new space.
func (g *Game) resolveCard(card models.Card, p *Player) bool {
	switch card.Action {
	case "advance":
		p.MoveTo(card.Position)
		return true
	case "advance_railroad":
		p.MoveTo(g.Board.NearestRailroad(p.Position))
		return true
	case "advance_utility":
		p.MoveTo(g.Board.NearestUtility(p.Position))
		return true
	case "back":
		p.MoveBy(-card.Amount)
		return true
	case "collect":
		p.Receive(card.Amount)
	case "charge":
		p.Deduct(card.Amount)
	case "jail":
		p.SendToJail(g.Board.JailIndex())
	case "jail_free":
		p.JailCards++
	case "repairs":
		p.Deduct(g.repairBill(p, card.PerHouse, card.PerHotel))
	case "group_collect":
		// Every other player pays the acting player a fixed amount. A
		// payer who goes under covering it pays nothing, same as rent.
		for _, other := range g.Players {
			if other != p && !other.Bankrupt {
				other.Deduct(card.Amount)
				if !other.Bankrupt {
					p.Receive(card.Amount)
				}
			}
		}
	case "group_pay":
		for _, other := range g.Players {
			if other != p && !other.Bankrupt {
				p.Deduct(card.Amount)
				if p.Bankrupt {
					break
				}
				other.Receive(card.Amount)
			}
		}
	}
	return false
}

func (g *Game) repairBill(p *Player, perHouse, perHotel int) int {
	bill := 0
	for _, s := range p.Properties {
		if s.Houses == MaxBuildings {
			bill += perHotel
		} else {
			bill += perHouse * s.Houses
		}
	}
	return bill
}
