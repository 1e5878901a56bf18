package engine

const (
	StartingMoney = 1500
	PassGoBonus   = 200
	BailAmount    = 50
	MaxJailTurns  = 2
)

// Player holds one seat's account: money, holdings, jail state and the
// terminal bankrupt flag. Building counts live on the owned spaces; the
// holdings list is the single source of ownership truth.
type Player struct {
	Seat  int
	Name  string
	Piece string

	Money      int
	Position   int
	Properties []*Space

	InJail    bool
	JailTurns int
	JailCards int

	Bankrupt bool
	HasTurn  bool
}

func NewPlayer(seat int, name, piece string) *Player {
	return &Player{
		Seat:  seat,
		Name:  name,
		Piece: piece,
		Money: StartingMoney,
	}
}

// MoveBy advances the player, wrapping the track. A forward move that
// crosses or lands exactly on Go credits the bonus exactly once; backward
// moves never do.
func (p *Player) MoveBy(spaces int) {
	old := p.Position
	p.Position = ((old+spaces)%BoardSize + BoardSize) % BoardSize
	if spaces > 0 && (old+spaces >= BoardSize || p.Position == 0) {
		p.Receive(PassGoBonus)
	}
}

// MoveTo moves forward to an absolute position, wrapping (and collecting
// the Go bonus) when the target is behind the player.
func (p *Player) MoveTo(target int) {
	spaces := target - p.Position
	if p.Position > target {
		spaces = (BoardSize - p.Position) + target
	}
	p.MoveBy(spaces)
}

func (p *Player) Receive(amount int) {
	p.Money += amount
}

// Deduct charges the player. A charge the player cannot cover triggers
// liquidation, which either raises the funds or ends in bankruptcy; money
// never persists negative.
func (p *Player) Deduct(amount int) {
	if p.Money >= amount {
		p.Money -= amount
		return
	}
	p.Liquidate(amount)
	if !p.Bankrupt {
		p.Money -= amount
	}
}

// Liquidate raises funds one asset at a time: buildings first (half build
// cost each), then mortgages. When nothing liquidatable remains and the
// target is still short, the player is bankrupt.
func (p *Player) Liquidate(required int) {
	for p.Money < required && !p.Bankrupt {
		if p.sellOneBuilding() {
			continue
		}
		if p.mortgageOneProperty() {
			continue
		}
		p.declareBankruptcy()
	}
}

func (p *Player) sellOneBuilding() bool {
	for _, s := range p.Properties {
		if s.Houses > 0 {
			s.Houses--
			p.Receive(s.HouseCost / 2)
			return true
		}
	}
	return false
}

func (p *Player) mortgageOneProperty() bool {
	for _, s := range p.Properties {
		if !s.Mortgaged && s.Houses == 0 {
			s.Mortgaged = true
			p.Receive(s.MortgageValue)
			return true
		}
	}
	return false
}

// declareBankruptcy is terminal. All holdings return to the bank unowned,
// unmortgaged and without buildings.
func (p *Player) declareBankruptcy() {
	for _, s := range p.Properties {
		s.Owner = nil
		s.Mortgaged = false
		s.Houses = 0
	}
	p.Properties = nil
	p.Money = 0
	p.Bankrupt = true
}

// SendToJail always resets the jail counter, even for a player already in
// jail.
func (p *Player) SendToJail(jailIndex int) {
	p.InJail = true
	p.JailTurns = 0
	p.Position = jailIndex
}

// PayBail routes through Deduct, so an unaffordable bail cascades into
// liquidation instead of being skipped.
func (p *Player) PayBail() {
	p.Deduct(BailAmount)
	p.escapeJail()
}

func (p *Player) escapeJail() {
	p.InJail = false
	p.JailTurns = 0
}

// UseJailCard spends a Get Out of Jail Free card if one is held.
func (p *Player) UseJailCard() bool {
	if !p.InJail || p.JailCards <= 0 {
		return false
	}
	p.JailCards--
	p.escapeJail()
	return true
}

func (p *Player) countKind(kind SpaceKind) int {
	n := 0
	for _, s := range p.Properties {
		if s.Kind == kind {
			n++
		}
	}
	return n
}
