package engine

import "fmt"

type AuctionState int

const (
	AuctionIdle AuctionState = iota
	AuctionRunning
	AuctionSettled
)

// BidIncrement is the fixed step every bid raises the ask by.
const BidIncrement = 10

type bidder struct {
	player    *Player
	bid       int
	hasBid    bool
	withdrawn bool
}

// Auction runs sequential bidding over a snapshot of the players for one
// property. Bids strictly increase by the fixed increment; withdrawing is
// irreversible for the auction instance.
type Auction struct {
	State    AuctionState
	Property *Space

	bidders []*bidder
	turn    int
	NextAsk int

	// Winner is set on settlement; nil when every bidder withdrew
	// without bidding and the property stays with the bank.
	Winner *Player
}

func NewAuction(players []*Player, property *Space) *Auction {
	a := &Auction{
		State:    AuctionIdle,
		Property: property,
		NextAsk:  BidIncrement,
	}
	for _, p := range players {
		if !p.Bankrupt {
			a.bidders = append(a.bidders, &bidder{player: p})
		}
	}
	return a
}

func (a *Auction) Start() error {
	if a.State != AuctionIdle {
		return fmt.Errorf("%w: auction already started", ErrInvalidAction)
	}
	if len(a.bidders) == 0 {
		return fmt.Errorf("%w: auction with no eligible bidders", ErrInvariant)
	}
	a.State = AuctionRunning
	return nil
}

// CurrentBidder returns the player whose turn it is to act.
func (a *Auction) CurrentBidder() *Player {
	return a.bidders[a.turn].player
}

// PlaceBid records the asking price as the current bidder's bid and raises
// the ask by the increment.
func (a *Auction) PlaceBid() error {
	if a.State != AuctionRunning {
		return fmt.Errorf("%w: auction not running", ErrInvalidAction)
	}
	b := a.bidders[a.turn]
	b.bid = a.NextAsk
	b.hasBid = true
	a.NextAsk += BidIncrement
	return a.advance()
}

// Withdraw removes the current bidder from the ring. Withdrawing twice has
// the same effect as once.
func (a *Auction) Withdraw() error {
	if a.State != AuctionRunning {
		return fmt.Errorf("%w: auction not running", ErrInvalidAction)
	}
	a.bidders[a.turn].withdrawn = true
	return a.advance()
}

func (a *Auction) active(b *bidder) bool {
	return !b.withdrawn && !b.player.Bankrupt
}

func (a *Auction) activeCount() int {
	n := 0
	for _, b := range a.bidders {
		if a.active(b) {
			n++
		}
	}
	return n
}

// advance settles the auction when at most one bidder remains, otherwise
// moves the turn pointer to the next active bidder in seat order.
func (a *Auction) advance() error {
	switch a.activeCount() {
	case 0:
		// Everyone withdrew without a bid: unsold, back to the bank.
		a.State = AuctionSettled
		a.Winner = nil
		return nil
	case 1:
		a.State = AuctionSettled
		for _, b := range a.bidders {
			if a.active(b) {
				if b.hasBid {
					a.Winner = b.player
					return a.Property.PurchaseAtAuction(b.player, b.bid)
				}
				// The sole remaining player never bid; the
				// property stays unsold.
				a.Winner = nil
				return nil
			}
		}
		return fmt.Errorf("%w: active bidder not found", ErrInvariant)
	}
	next, err := nextActiveIndex(len(a.bidders), a.turn, func(i int) bool {
		return a.active(a.bidders[i])
	})
	if err != nil {
		return err
	}
	a.turn = next
	return nil
}
