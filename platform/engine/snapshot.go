package engine

import "github.com/Asabs18/Monopoly/app/models"

// Snapshot renders the read-only state the display layer draws from. The
// rendering layer never mutates core state; it only consumes these.
func (g *Game) Snapshot() models.GameSnapshot {
	snap := models.GameSnapshot{
		Status:      string(g.Status),
		CurrentSeat: g.current,
		WinnerSeat:  -1,
		DiceVisible: g.ShouldDisplayDice(),
		Die1:        g.die1,
		Die2:        g.die2,
		Pending:     string(g.pending),
	}
	if g.Winner != nil {
		snap.WinnerSeat = g.Winner.Seat
	}
	if g.pendingCard != nil {
		snap.CardText = g.pendingCard.Text
	}

	for _, p := range g.Players {
		dto := models.PlayerDto{
			Seat:      p.Seat,
			Username:  p.Name,
			Piece:     p.Piece,
			Balance:   p.Money,
			Pos:       p.Position,
			Jail:      p.InJail,
			JailCards: p.JailCards,
			Bankrupt:  p.Bankrupt,
			HasTurn:   p.HasTurn,
			Holdings:  []int{},
		}
		for _, s := range p.Properties {
			dto.Holdings = append(dto.Holdings, s.Position)
		}
		snap.Players = append(snap.Players, dto)
	}

	for _, s := range g.Board.Spaces {
		dto := models.SpaceDto{
			Position:  s.Position,
			OwnerSeat: -1,
			Mortgaged: s.Mortgaged,
			Houses:    s.Houses,
			Pot:       s.Pot,
			Name:      s.Name,
		}
		if s.Owner != nil {
			dto.OwnerSeat = s.Owner.Seat
		}
		snap.Spaces = append(snap.Spaces, dto)
	}

	if g.auction != nil {
		a := &models.AuctionDto{
			Position:  g.auction.Property.Position,
			NextAsk:   g.auction.NextAsk,
			TurnSeat:  g.auction.CurrentBidder().Seat,
			Bids:      map[int]int{},
			Withdrawn: map[int]bool{},
		}
		for _, b := range g.auction.bidders {
			if b.hasBid {
				a.Bids[b.player.Seat] = b.bid
			}
			if b.withdrawn {
				a.Withdrawn[b.player.Seat] = true
			}
		}
		snap.Auction = a
	}
	return snap
}
