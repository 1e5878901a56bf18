package engine

import (
	"fmt"

	"github.com/Asabs18/Monopoly/app/models"
)

type SpaceKind int

const (
	SpaceGo SpaceKind = iota
	SpaceStreet
	SpaceRailroad
	SpaceUtility
	SpaceTax
	SpaceChance
	SpaceChest
	SpaceFreeParking
	SpaceGoToJail
	SpaceJail
)

// Street rent tiers. Tier 1 (color set) only applies while the set owner
// has no buildings; any house count overrides it.
const (
	TierBase = iota
	TierColorSet
	TierHouse1
	TierHouse2
	TierHouse3
	TierHouse4
	TierHotel
)

// MaxBuildings is 4 houses plus the hotel; a count of 5 means hotel.
const MaxBuildings = 5

var railroadRent = [4]int{25, 50, 100, 200}

var utilityMultiplier = [2]int{4, 10}

// Space is one of the 40 track cells. Static fields come from the board
// table; Owner/Mortgaged/Houses/tier/Pot are the game-mutable half.
type Space struct {
	Kind     SpaceKind
	Name     string
	Position int
	Group    string

	Price          int
	Rents          []int
	MortgageValue  int
	UnmortgageCost int
	HouseCost      int
	TaxAmount      int

	Owner     *Player
	Mortgaged bool
	Houses    int
	tier      int

	// Free Parking pot (house rule: taxes accumulate here).
	Pot int
}

var spaceKinds = map[string]SpaceKind{
	"go":          SpaceGo,
	"street":      SpaceStreet,
	"railroad":    SpaceRailroad,
	"utility":     SpaceUtility,
	"tax":         SpaceTax,
	"chance":      SpaceChance,
	"chest":       SpaceChest,
	"freeparking": SpaceFreeParking,
	"gotojail":    SpaceGoToJail,
	"jail":        SpaceJail,
}

func newSpace(row models.Property) (*Space, error) {
	kind, ok := spaceKinds[row.Type]
	if !ok {
		return nil, fmt.Errorf("%w: unknown space type %q", ErrInvariant, row.Type)
	}
	if kind == SpaceStreet && len(row.Rents) != 7 {
		return nil, fmt.Errorf("%w: %s has %d rent tiers, want 7", ErrInvariant, row.Name, len(row.Rents))
	}
	return &Space{
		Kind:           kind,
		Name:           row.Name,
		Position:       row.Position,
		Group:          row.Group,
		Price:          row.Price,
		Rents:          row.Rents,
		MortgageValue:  row.Mortgage,
		UnmortgageCost: row.Unmortgage,
		HouseCost:      row.HouseCost,
		TaxAmount:      row.Tax,
	}, nil
}

func (s *Space) Ownable() bool {
	return s.Kind == SpaceStreet || s.Kind == SpaceRailroad || s.Kind == SpaceUtility
}

func (s *Space) CanPurchase(p *Player) bool {
	return s.Ownable() && s.Owner == nil && p.Money >= s.Price
}

// Purchase is atomic: either ownership, money and holdings all change, or
// nothing does.
func (s *Space) Purchase(p *Player) error {
	if !s.CanPurchase(p) {
		return fmt.Errorf("%w: cannot buy %s", ErrInvalidAction, s.Name)
	}
	p.Money -= s.Price
	s.Owner = p
	p.Properties = append(p.Properties, s)
	return nil
}

// PurchaseAtAuction settles a winning bid. The bid routes through Deduct
// since a winner may have to liquidate to cover it.
func (s *Space) PurchaseAtAuction(p *Player, bid int) error {
	if !s.Ownable() || s.Owner != nil {
		return fmt.Errorf("%w: %s is not up for auction", ErrInvalidAction, s.Name)
	}
	p.Deduct(bid)
	if p.Bankrupt {
		// The winner went under covering their own bid; the property
		// stays with the bank.
		return nil
	}
	s.Owner = p
	p.Properties = append(p.Properties, s)
	return nil
}

func (s *Space) CanChargeRent(p *Player) bool {
	return s.Ownable() && s.Owner != nil && s.Owner != p && !s.Mortgaged
}

// Rent computes the current rent. diceTotal is only read for utilities,
// where rent is multiplier times the roll that landed the payer here.
func (s *Space) Rent(b *Board, diceTotal int) int {
	switch s.Kind {
	case SpaceStreet:
		s.updateTier(b)
		return s.Rents[s.tier]
	case SpaceRailroad:
		n := s.Owner.countKind(SpaceRailroad)
		if n < 1 {
			n = 1
		} else if n > 4 {
			n = 4
		}
		return railroadRent[n-1]
	case SpaceUtility:
		if s.Owner.countKind(SpaceUtility) >= 2 {
			return utilityMultiplier[1] * diceTotal
		}
		return utilityMultiplier[0] * diceTotal
	}
	return 0
}

// updateTier recomputes the street rent bracket from current ownership and
// buildings. Called on every rent check, never cached across turns.
func (s *Space) updateTier(b *Board) {
	if s.Houses > 0 {
		s.tier = TierBase + 1 + s.Houses // TierHouse1..TierHotel
		return
	}
	if s.Owner != nil && b.OwnsFullGroup(s.Owner, s.Group) {
		s.tier = TierColorSet
		return
	}
	s.tier = TierBase
}

// CanBuild enforces the full-set, mortgage, cap, funds and even-building
// constraints.
func (s *Space) CanBuild(p *Player, b *Board) bool {
	if s.Kind != SpaceStreet || s.Owner != p || s.Mortgaged {
		return false
	}
	if s.Houses >= MaxBuildings || p.Money < s.HouseCost {
		return false
	}
	if !b.OwnsFullGroup(p, s.Group) {
		return false
	}
	for _, sibling := range b.GroupSpaces(s.Group) {
		if sibling != s && s.Houses > sibling.Houses {
			return false
		}
	}
	return true
}

// Build adds exactly one house (or the hotel at count 5). No batching.
func (s *Space) Build(p *Player, b *Board) error {
	if !s.CanBuild(p, b) {
		return fmt.Errorf("%w: cannot build on %s", ErrInvalidAction, s.Name)
	}
	p.Money -= s.HouseCost
	s.Houses++
	return nil
}

// SellBuilding returns half the build cost.
func (s *Space) SellBuilding(p *Player) error {
	if s.Kind != SpaceStreet || s.Owner != p || s.Houses <= 0 {
		return fmt.Errorf("%w: no building to sell on %s", ErrInvalidAction, s.Name)
	}
	s.Houses--
	p.Receive(s.HouseCost / 2)
	return nil
}

func (s *Space) MortgageBy(p *Player) error {
	if !s.Ownable() || s.Owner != p || s.Mortgaged || s.Houses > 0 {
		return fmt.Errorf("%w: cannot mortgage %s", ErrInvalidAction, s.Name)
	}
	s.Mortgaged = true
	p.Receive(s.MortgageValue)
	return nil
}

func (s *Space) UnmortgageBy(p *Player) error {
	if !s.Ownable() || s.Owner != p || !s.Mortgaged || p.Money < s.UnmortgageCost {
		return fmt.Errorf("%w: cannot unmortgage %s", ErrInvalidAction, s.Name)
	}
	p.Money -= s.UnmortgageCost
	s.Mortgaged = false
	return nil
}
