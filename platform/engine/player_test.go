package engine

import "testing"

func TestPassGoBonus(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		spaces    int
		wantPos   int
		wantBonus bool
	}{
		{"short move no wrap", 5, 6, 11, false},
		{"crossing go", 38, 4, 2, true},
		{"landing exactly on go", 35, 5, 0, true},
		{"backward never pays", 1, -3, 38, false},
		{"max roll from 28", 28, 12, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, "P0", "dog")
			p.Position = tt.start
			p.MoveBy(tt.spaces)
			if p.Position != tt.wantPos {
				t.Errorf("position = %d, want %d", p.Position, tt.wantPos)
			}
			want := StartingMoney
			if tt.wantBonus {
				want += PassGoBonus
			}
			if p.Money != want {
				t.Errorf("money = %d, want %d", p.Money, want)
			}
		})
	}
}

func TestMoveToWrapsForward(t *testing.T) {
	p := NewPlayer(0, "P0", "dog")
	p.Position = 35
	p.MoveTo(0)
	if p.Position != 0 {
		t.Fatalf("position = %d, want 0", p.Position)
	}
	if p.Money != StartingMoney+PassGoBonus {
		t.Errorf("money = %d, want exactly one bonus (%d)", p.Money, StartingMoney+PassGoBonus)
	}

	// Already on the target: no movement, no bonus.
	p.MoveTo(0)
	if p.Money != StartingMoney+PassGoBonus {
		t.Errorf("standing on go must not pay again, money = %d", p.Money)
	}
}

func TestDeductWithoutLiquidation(t *testing.T) {
	p := NewPlayer(0, "P0", "dog")
	p.Deduct(300)
	if p.Money != StartingMoney-300 {
		t.Errorf("money = %d, want %d", p.Money, StartingMoney-300)
	}
	if p.Bankrupt {
		t.Error("player should not be bankrupt")
	}
}

// $40 on hand, a $50 charge, one $30-mortgage-value property and no
// buildings leaves $20 and no bankruptcy.
func TestDeductMortgagesToCoverRent(t *testing.T) {
	p := NewPlayer(0, "P0", "dog")
	p.Money = 40
	s := &Space{Kind: SpaceStreet, Name: "Baltic Avenue", MortgageValue: 30, Owner: p}
	p.Properties = []*Space{s}

	p.Deduct(50)

	if p.Bankrupt {
		t.Fatal("player should survive via mortgage")
	}
	if p.Money != 20 {
		t.Errorf("money = %d, want 20", p.Money)
	}
	if !s.Mortgaged {
		t.Error("property should be mortgaged")
	}
}

func TestLiquidateSellsBuildingsBeforeMortgaging(t *testing.T) {
	p := NewPlayer(0, "P0", "dog")
	p.Money = 0
	s := &Space{Kind: SpaceStreet, Name: "Boardwalk", HouseCost: 200, MortgageValue: 200, Houses: 2, Owner: p}
	p.Properties = []*Space{s}

	p.Liquidate(100)

	if p.Money != 100 {
		t.Errorf("money = %d, want 100 from one house sale", p.Money)
	}
	if s.Houses != 1 {
		t.Errorf("houses = %d, want 1 (one sale at a time)", s.Houses)
	}
	if s.Mortgaged {
		t.Error("mortgage should not happen while buildings remain")
	}
}

func TestLiquidatePostcondition(t *testing.T) {
	// Either the target is met or the player is bankrupt, never neither.
	for _, required := range []int{10, 100, 1000, 100000} {
		p := NewPlayer(0, "P0", "dog")
		p.Money = 5
		s := &Space{Kind: SpaceStreet, Name: "Baltic Avenue", HouseCost: 50, MortgageValue: 30, Houses: 3, Owner: p}
		p.Properties = []*Space{s}

		p.Liquidate(required)
		if p.Money < required && !p.Bankrupt {
			t.Errorf("required %d: money %d and not bankrupt", required, p.Money)
		}
	}
}

func TestBankruptcyReturnsAssetsToBank(t *testing.T) {
	p := NewPlayer(0, "P0", "dog")
	p.Money = 10
	s1 := &Space{Kind: SpaceStreet, Name: "Park Place", HouseCost: 200, MortgageValue: 175, Houses: 1, Owner: p}
	s2 := &Space{Kind: SpaceRailroad, Name: "Short Line", MortgageValue: 100, Owner: p}
	p.Properties = []*Space{s1, s2}

	p.Deduct(100000)

	if !p.Bankrupt {
		t.Fatal("player should be bankrupt")
	}
	if p.Money != 0 {
		t.Errorf("money = %d, want 0", p.Money)
	}
	for _, s := range []*Space{s1, s2} {
		if s.Owner != nil || s.Mortgaged || s.Houses != 0 {
			t.Errorf("%s not returned clean to the bank: owner=%v mortgaged=%v houses=%d",
				s.Name, s.Owner, s.Mortgaged, s.Houses)
		}
	}
	if len(p.Properties) != 0 {
		t.Errorf("holdings not cleared, %d left", len(p.Properties))
	}
}

func TestSendToJailResetsCounter(t *testing.T) {
	p := NewPlayer(0, "P0", "dog")
	p.SendToJail(10)
	p.JailTurns = 2
	p.SendToJail(10) // fresh entry always resets
	if !p.InJail || p.JailTurns != 0 || p.Position != 10 {
		t.Errorf("jail state = (%v, %d, %d), want (true, 0, 10)", p.InJail, p.JailTurns, p.Position)
	}
}

func TestPayBailCascades(t *testing.T) {
	p := NewPlayer(0, "P0", "dog")
	p.SendToJail(10)
	p.Money = 20
	s := &Space{Kind: SpaceStreet, Name: "Baltic Avenue", MortgageValue: 30, Owner: p}
	p.Properties = []*Space{s}

	p.PayBail()

	if p.InJail {
		t.Error("bail should clear jail")
	}
	if p.Money != 0 { // 20 + 30 - 50
		t.Errorf("money = %d, want 0", p.Money)
	}
	if !s.Mortgaged {
		t.Error("unaffordable bail should mortgage, not be skipped")
	}
}

func TestUseJailCard(t *testing.T) {
	p := NewPlayer(0, "P0", "dog")
	p.SendToJail(10)
	if p.UseJailCard() {
		t.Fatal("no card held, use must fail")
	}
	p.JailCards = 1
	if !p.UseJailCard() {
		t.Fatal("card held, use must succeed")
	}
	if p.InJail || p.JailCards != 0 {
		t.Errorf("state = (%v, %d), want (false, 0)", p.InJail, p.JailCards)
	}
}
