package engine

import (
	"fmt"

	"github.com/Asabs18/Monopoly/app/models"
)

// BoardSize is the fixed track length. The maximum roll is 12, so a single
// move wraps past Go at most once.
const BoardSize = 40

// Board holds the 40 track spaces indexed by position, plus the color
// group index used for monopoly detection.
type Board struct {
	Spaces    []*Space
	groups    map[string][]*Space
	jailIndex int
}

func NewBoard(rows []models.Property) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("%w: board has %d spaces, want %d", ErrInvariant, len(rows), BoardSize)
	}
	b := &Board{
		Spaces: make([]*Space, BoardSize),
		groups: make(map[string][]*Space),
	}
	for _, row := range rows {
		if row.Position < 0 || row.Position >= BoardSize || b.Spaces[row.Position] != nil {
			return nil, fmt.Errorf("%w: bad position %d for %s", ErrInvariant, row.Position, row.Name)
		}
		s, err := newSpace(row)
		if err != nil {
			return nil, err
		}
		b.Spaces[row.Position] = s
		if s.Kind == SpaceStreet {
			b.groups[s.Group] = append(b.groups[s.Group], s)
		}
		if s.Kind == SpaceJail {
			b.jailIndex = s.Position
		}
	}
	for group, members := range b.groups {
		if n := len(members); n != 2 && n != 3 {
			return nil, fmt.Errorf("%w: color group %s has %d members", ErrInvariant, group, n)
		}
	}
	return b, nil
}

func (b *Board) At(pos int) *Space {
	return b.Spaces[pos]
}

func (b *Board) JailIndex() int {
	return b.jailIndex
}

func (b *Board) GroupSpaces(group string) []*Space {
	return b.groups[group]
}

// OwnsFullGroup reports whether p owns every street in the color group.
// Groups are fixed-size (2 or 3), so this is the monopoly check.
func (b *Board) OwnsFullGroup(p *Player, group string) bool {
	members := b.groups[group]
	if len(members) == 0 {
		return false
	}
	for _, s := range members {
		if s.Owner != p {
			return false
		}
	}
	return true
}

// NearestRailroad returns the first railroad strictly ahead of pos,
// wrapping past Go.
func (b *Board) NearestRailroad(pos int) int {
	return b.nearestKind(pos, SpaceRailroad)
}

func (b *Board) NearestUtility(pos int) int {
	return b.nearestKind(pos, SpaceUtility)
}

func (b *Board) nearestKind(pos int, kind SpaceKind) int {
	for i := 1; i <= BoardSize; i++ {
		idx := (pos + i) % BoardSize
		if b.Spaces[idx].Kind == kind {
			return idx
		}
	}
	return pos
}

// FreeParking returns the pot space.
func (b *Board) FreeParking() *Space {
	for _, s := range b.Spaces {
		if s.Kind == SpaceFreeParking {
			return s
		}
	}
	return nil
}
