package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Asabs18/Monopoly/app/models"
)

type Status string

const (
	StatusRunning Status = "running"
	StatusOver    Status = "over"
)

// Pending names the interaction window blocking the turn, if any. While a
// window is open the dice stay hidden and end-turn is rejected.
type Pending string

const (
	PendingNone        Pending = ""
	PendingPurchase    Pending = "purchase"
	PendingCard        Pending = "card"
	PendingTax         Pending = "tax"
	PendingGoToJail    Pending = "gotojail"
	PendingFreeParking Pending = "freeparking"
	PendingAuction     Pending = "auction"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Config carries the immutable rule tables and the randomness sources into
// the engine. Tables are loaded once at startup and injected here; the
// engine holds no ambient globals.
type Config struct {
	Properties []models.Property
	Cards      models.CardFile

	// Seed 0 means seed from the clock. Roller overrides the seeded
	// dice when set (tests).
	Seed      int64
	Roller    Roller
	RollDelay time.Duration
}

// Seat describes one player joining the game.
type Seat struct {
	Name  string
	Piece string
}

// Game is the turn controller. It sequences rolls, movement, landing
// resolution and turn advancement; the rent, auction and card rules live
// with their own types. All mutation flows through Step.
type Game struct {
	Board   *Board
	Players []*Player
	Chance  *Deck
	Chest   *Deck

	Status Status
	Winner *Player

	// Advisory dice animation pause for the display layer; the engine
	// itself never sleeps.
	RollDelay time.Duration

	roll       Roller
	rng        *rand.Rand
	current    int
	diceRolled bool
	die1, die2 int

	pending     Pending
	pendingCard *models.Card
	auction     *Auction
}

// NewGame builds a game from the injected tables and 2-4 seats, and gives
// the turn to a random seat.
func NewGame(cfg Config, seats []Seat) (*Game, error) {
	if len(seats) < MinPlayers || len(seats) > MaxPlayers {
		return nil, fmt.Errorf("%w: need %d-%d players, got %d", ErrInvalidAction, MinPlayers, MaxPlayers, len(seats))
	}
	b, err := NewBoard(cfg.Properties)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	roll := cfg.Roller
	if roll == nil {
		roll = RandomRoller(rng)
	}
	delay := cfg.RollDelay
	if delay == 0 {
		delay = DefaultRollDelay
	}

	g := &Game{
		Board:     b,
		Chance:    NewDeck(cfg.Cards.Chance, rng),
		Chest:     NewDeck(cfg.Cards.Chest, rng),
		Status:    StatusRunning,
		RollDelay: delay,
		roll:      roll,
		rng:       rng,
	}
	for i, seat := range seats {
		g.Players = append(g.Players, NewPlayer(i, seat.Name, seat.Piece))
	}
	g.current = rng.Intn(len(g.Players))
	g.Players[g.current].HasTurn = true
	return g, nil
}

// CurrentPlayer returns the seat holding the turn.
func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.current]
}

// Step applies one player intent. Invalid intents return an error and
// mutate nothing.
func (g *Game) Step(intent Intent) error {
	if g.Status == StatusOver {
		return ErrGameOver
	}
	if intent.Seat < 0 || intent.Seat >= len(g.Players) {
		return fmt.Errorf("%w: no seat %d", ErrInvalidAction, intent.Seat)
	}
	p := g.Players[intent.Seat]
	if p.Bankrupt {
		return fmt.Errorf("%w: seat %d is bankrupt", ErrInvalidAction, intent.Seat)
	}

	var err error
	switch intent.Kind {
	case IntentRoll:
		err = g.rollAndMove(p)
	case IntentBuy:
		err = g.buy(p)
	case IntentAuction:
		err = g.startAuction(p)
	case IntentBid:
		err = g.bid(p, true)
	case IntentWithdraw:
		err = g.bid(p, false)
	case IntentBuild:
		err = g.withOwnTurn(p, func(s *Space) error { return s.Build(p, g.Board) }, intent.Position)
	case IntentSellBuilding:
		err = g.withOwnTurn(p, func(s *Space) error { return s.SellBuilding(p) }, intent.Position)
	case IntentMortgage:
		err = g.withOwnTurn(p, func(s *Space) error { return s.MortgageBy(p) }, intent.Position)
	case IntentUnmortgage:
		err = g.withOwnTurn(p, func(s *Space) error { return s.UnmortgageBy(p) }, intent.Position)
	case IntentPayBail:
		err = g.payBail(p)
	case IntentUseJailCard:
		err = g.useJailCard(p)
	case IntentAcknowledge:
		err = g.acknowledge(p)
	case IntentEndTurn:
		err = g.endTurn(p)
	default:
		err = fmt.Errorf("%w: unknown intent %q", ErrInvalidAction, intent.Kind)
	}
	if err != nil {
		return err
	}

	g.checkGameOver()
	// A charge may have bankrupted the seat holding the turn; skip to
	// the next live player so the game never stalls on a dead seat.
	if g.Status == StatusRunning && g.CurrentPlayer().Bankrupt {
		g.pending = PendingNone
		g.pendingCard = nil
		g.auction = nil
		g.advanceTurn()
	}
	return nil
}

// rollAndMove is valid only before this turn's roll and with no interaction
// window open. Jail turns consume the roll without moving unless doubles
// free the player; the third failed attempt forces bail.
func (g *Game) rollAndMove(p *Player) error {
	if !p.HasTurn {
		return ErrNotYourTurn
	}
	if g.diceRolled || g.pending != PendingNone {
		return fmt.Errorf("%w: cannot roll now", ErrInvalidAction)
	}

	g.die1, g.die2 = g.roll()
	g.diceRolled = true
	total := g.die1 + g.die2

	if p.InJail {
		if g.die1 == g.die2 {
			p.escapeJail()
			p.MoveBy(total)
			g.resolveLanding(p)
			return nil
		}
		p.JailTurns++
		if p.JailTurns > MaxJailTurns {
			p.PayBail()
			if !p.Bankrupt {
				p.MoveBy(total)
				g.resolveLanding(p)
			}
		}
		return nil
	}

	p.MoveBy(total)
	g.resolveLanding(p)
	return nil
}

// resolveLanding dispatches the landed space. The controller only
// sequences; rent and purchase rules live on the spaces.
func (g *Game) resolveLanding(p *Player) {
	s := g.Board.At(p.Position)
	switch s.Kind {
	case SpaceStreet, SpaceRailroad, SpaceUtility:
		if s.Owner == nil {
			// Offer buy-or-auction even when the lander cannot
			// afford the list price: the auction path is open to
			// everyone.
			g.pending = PendingPurchase
			return
		}
		if s.CanChargeRent(p) {
			g.chargeRent(s, p)
		}
	case SpaceTax:
		g.pending = PendingTax
	case SpaceChance:
		card := g.Chance.Draw()
		g.pendingCard = &card
		g.pending = PendingCard
	case SpaceChest:
		card := g.Chest.Draw()
		g.pendingCard = &card
		g.pending = PendingCard
	case SpaceFreeParking:
		g.pending = PendingFreeParking
	case SpaceGoToJail:
		g.pending = PendingGoToJail
	}
	// Go and Just Visiting have no interaction window.
}

// chargeRent moves rent from the lander to the owner. Mortgaged spaces
// never reach here. The owner is credited only if the payer actually
// covered the charge.
func (g *Game) chargeRent(s *Space, p *Player) {
	rent := s.Rent(g.Board, g.die1+g.die2)
	p.Deduct(rent)
	if !p.Bankrupt {
		s.Owner.Receive(rent)
	}
}

func (g *Game) buy(p *Player) error {
	if !p.HasTurn {
		return ErrNotYourTurn
	}
	if g.pending != PendingPurchase {
		return fmt.Errorf("%w: nothing to buy", ErrInvalidAction)
	}
	s := g.Board.At(p.Position)
	if err := s.Purchase(p); err != nil {
		return err
	}
	g.pending = PendingNone
	return nil
}

func (g *Game) startAuction(p *Player) error {
	if !p.HasTurn {
		return ErrNotYourTurn
	}
	if g.pending != PendingPurchase {
		return fmt.Errorf("%w: nothing to auction", ErrInvalidAction)
	}
	a := NewAuction(g.Players, g.Board.At(p.Position))
	if err := a.Start(); err != nil {
		return err
	}
	g.auction = a
	g.pending = PendingAuction
	return nil
}

func (g *Game) bid(p *Player, place bool) error {
	if g.pending != PendingAuction || g.auction == nil {
		return fmt.Errorf("%w: no auction running", ErrInvalidAction)
	}
	if g.auction.CurrentBidder() != p {
		return ErrNotYourTurn
	}
	var err error
	if place {
		err = g.auction.PlaceBid()
	} else {
		err = g.auction.Withdraw()
	}
	if err != nil {
		return err
	}
	if g.auction.State == AuctionSettled {
		g.auction = nil
		g.pending = PendingNone
	}
	return nil
}

// withOwnTurn runs a property-management operation (build, sell, mortgage,
// unmortgage) on the player's own turn. These are allowed whenever the
// player holds the turn, matching the build menu being open all turn.
func (g *Game) withOwnTurn(p *Player, op func(*Space) error, pos int) error {
	if !p.HasTurn {
		return ErrNotYourTurn
	}
	if pos < 0 || pos >= BoardSize {
		return fmt.Errorf("%w: no space %d", ErrInvalidAction, pos)
	}
	return op(g.Board.At(pos))
}

func (g *Game) payBail(p *Player) error {
	if !p.HasTurn {
		return ErrNotYourTurn
	}
	if !p.InJail || g.diceRolled {
		return fmt.Errorf("%w: bail not payable now", ErrInvalidAction)
	}
	p.PayBail()
	return nil
}

func (g *Game) useJailCard(p *Player) error {
	if !p.HasTurn {
		return ErrNotYourTurn
	}
	if g.diceRolled || !p.UseJailCard() {
		return fmt.Errorf("%w: no jail card to use", ErrInvalidAction)
	}
	return nil
}

// acknowledge closes the open interaction window and applies its effect.
func (g *Game) acknowledge(p *Player) error {
	if !p.HasTurn {
		return ErrNotYourTurn
	}
	switch g.pending {
	case PendingCard:
		card := *g.pendingCard
		g.pending = PendingNone
		g.pendingCard = nil
		if moved := g.resolveCard(card, p); moved {
			g.resolveLanding(p)
		}
	case PendingTax:
		s := g.Board.At(p.Position)
		g.pending = PendingNone
		p.Deduct(s.TaxAmount)
		if fp := g.Board.FreeParking(); fp != nil && !p.Bankrupt {
			fp.Pot += s.TaxAmount
		}
	case PendingGoToJail:
		g.pending = PendingNone
		p.SendToJail(g.Board.JailIndex())
	case PendingFreeParking:
		fp := g.Board.At(p.Position)
		g.pending = PendingNone
		p.Receive(fp.Pot)
		fp.Pot = 0
	default:
		return fmt.Errorf("%w: nothing to acknowledge", ErrInvalidAction)
	}
	return nil
}

func (g *Game) endTurn(p *Player) error {
	if !p.HasTurn {
		return ErrNotYourTurn
	}
	if !g.diceRolled {
		return fmt.Errorf("%w: roll the dice first", ErrInvalidAction)
	}
	if g.pending != PendingNone {
		return fmt.Errorf("%w: resolve the current action first", ErrInvalidAction)
	}
	g.advanceTurn()
	return nil
}

// advanceTurn hands the turn to the next non-bankrupt seat. The ring scan
// is bounded, so a board of dead seats surfaces an invariant error through
// checkGameOver before this can spin.
func (g *Game) advanceTurn() {
	g.Players[g.current].HasTurn = false
	next, err := nextActiveIndex(len(g.Players), g.current, func(i int) bool {
		return !g.Players[i].Bankrupt
	})
	if err != nil {
		g.Status = StatusOver
		return
	}
	g.current = next
	g.Players[g.current].HasTurn = true
	g.diceRolled = false
	g.die1, g.die2 = 0, 0
}

// checkGameOver ends the game when a single live player remains, declaring
// them the winner.
func (g *Game) checkGameOver() {
	if g.Status != StatusRunning {
		return
	}
	var last *Player
	alive := 0
	for _, p := range g.Players {
		if !p.Bankrupt {
			alive++
			last = p
		}
	}
	if alive == 1 {
		g.Status = StatusOver
		g.Winner = last
		g.pending = PendingNone
		g.pendingCard = nil
		g.auction = nil
		last.HasTurn = false
	}
}

// ShouldDisplayDice implements the dice-visibility policy: hidden once
// rolled or while a window is open; always offered in jail and on Go.
func (g *Game) ShouldDisplayDice() bool {
	if g.Status != StatusRunning || g.diceRolled {
		return false
	}
	p := g.CurrentPlayer()
	if p.InJail || p.Position == 0 {
		return true
	}
	return g.pending == PendingNone
}
