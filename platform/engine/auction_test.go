package engine

import "testing"

func TestAuctionSequentialBidding(t *testing.T) {
	g := newTestGame(t, 4)
	boardwalk := g.Board.At(39)

	a := NewAuction(g.Players, boardwalk)
	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Seat order A B C D; acts: bid, bid, withdraw, bid, withdraw, withdraw.
	steps := []struct {
		seat int
		bid  bool
	}{
		{0, true}, {1, true}, {2, false}, {3, true}, {0, false}, {1, false},
	}
	for i, step := range steps {
		if got := a.CurrentBidder(); got != g.Players[step.seat] {
			t.Fatalf("step %d: bidder = %s, want seat %d", i, got.Name, step.seat)
		}
		var err error
		if step.bid {
			err = a.PlaceBid()
		} else {
			err = a.Withdraw()
		}
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	if a.State != AuctionSettled {
		t.Fatal("auction should be settled")
	}
	if a.Winner != g.Players[3] {
		t.Fatalf("winner = %v, want seat 3", a.Winner)
	}
	if boardwalk.Owner != g.Players[3] {
		t.Error("property not transferred to the winner")
	}
	if g.Players[3].Money != StartingMoney-30 {
		t.Errorf("winner paid %d, want 30", StartingMoney-g.Players[3].Money)
	}
}

func TestAuctionAskRisesByFixedIncrement(t *testing.T) {
	g := newTestGame(t, 3)
	a := NewAuction(g.Players, g.Board.At(39))
	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	for i := 1; i <= 5; i++ {
		if a.NextAsk != i*BidIncrement {
			t.Fatalf("after %d bids: ask = %d, want %d", i-1, a.NextAsk, i*BidIncrement)
		}
		if err := a.PlaceBid(); err != nil {
			t.Fatalf("bid %d: %v", i, err)
		}
	}
}

func TestAuctionAllWithdrawUnsold(t *testing.T) {
	g := newTestGame(t, 3)
	boardwalk := g.Board.At(39)
	a := NewAuction(g.Players, boardwalk)
	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := a.Withdraw(); err != nil {
			t.Fatalf("withdraw %d: %v", i, err)
		}
	}
	if a.State != AuctionSettled || a.Winner != nil {
		t.Errorf("state = %v winner = %v, want settled and unsold", a.State, a.Winner)
	}
	if boardwalk.Owner != nil {
		t.Error("unsold property must stay with the bank")
	}
}

// The last bidder standing never bid; the property stays with the bank.
func TestAuctionSoleRemainerWithoutBidUnsold(t *testing.T) {
	g := newTestGame(t, 2)
	boardwalk := g.Board.At(39)
	a := NewAuction(g.Players, boardwalk)
	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := a.Withdraw(); err != nil { // seat 0 drops out immediately
		t.Fatalf("withdraw: %v", err)
	}
	if a.State != AuctionSettled || a.Winner != nil || boardwalk.Owner != nil {
		t.Error("sole remainer without a bid must settle unsold")
	}
}

func TestAuctionSkipsBankruptPlayers(t *testing.T) {
	g := newTestGame(t, 3)
	g.Players[1].Bankrupt = true

	a := NewAuction(g.Players, g.Board.At(39))
	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := a.PlaceBid(); err != nil { // seat 0
		t.Fatalf("bid: %v", err)
	}
	if a.CurrentBidder() != g.Players[2] {
		t.Errorf("bidder = %s, want seat 2 (seat 1 is bankrupt)", a.CurrentBidder().Name)
	}
}

// Every auction terminates: with a bounded bankroll the ask eventually
// exceeds what anyone can pay, so bids cannot continue forever.
func TestAuctionTerminatesUnderGreedyBidding(t *testing.T) {
	g := newTestGame(t, 4)
	boardwalk := g.Board.At(39)
	a := NewAuction(g.Players, boardwalk)
	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// Everyone bids while they can still afford the ask, then withdraws.
	const maxActs = 4 * (StartingMoney/BidIncrement + 2)
	for i := 0; i < maxActs; i++ {
		if a.State == AuctionSettled {
			break
		}
		var err error
		if a.CurrentBidder().Money >= a.NextAsk {
			err = a.PlaceBid()
		} else {
			err = a.Withdraw()
		}
		if err != nil {
			t.Fatalf("act %d: %v", i, err)
		}
	}
	if a.State != AuctionSettled {
		t.Fatal("auction did not terminate within the act bound")
	}
	if a.Winner == nil || boardwalk.Owner != a.Winner {
		t.Error("greedy bidding must end in a sale")
	}
}

func TestAuctionViaStepIntents(t *testing.T) {
	// Seat 0 rolls 1+2 onto Baltic Avenue and sends it to auction.
	g := newTestGame(t, 2, [2]int{1, 2})
	if err := g.Step(Intent{Kind: IntentRoll, Seat: 0}); err != nil {
		t.Fatalf("roll: %v", err)
	}
	if g.pending != PendingPurchase {
		t.Fatalf("pending = %q, want purchase window", g.pending)
	}
	if err := g.Step(Intent{Kind: IntentAuction, Seat: 0}); err != nil {
		t.Fatalf("auction: %v", err)
	}

	// Off-turn bids are rejected until the ring points at that seat.
	if err := g.Step(Intent{Kind: IntentBid, Seat: 1}); err == nil {
		t.Fatal("bid out of ring order should fail")
	}
	if err := g.Step(Intent{Kind: IntentBid, Seat: 0}); err != nil {
		t.Fatalf("bid: %v", err)
	}
	if err := g.Step(Intent{Kind: IntentWithdraw, Seat: 1}); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	baltic := g.Board.At(3)
	if baltic.Owner != g.Players[0] {
		t.Error("seat 0 should win the auction at 10")
	}
	if g.pending != PendingNone {
		t.Errorf("pending = %q, want cleared after settlement", g.pending)
	}
	if err := g.Step(Intent{Kind: IntentEndTurn, Seat: 0}); err != nil {
		t.Fatalf("end turn after settled auction: %v", err)
	}
}
