package models

// PlayerDto is the read-only player snapshot pushed to the display layer.
type PlayerDto struct {
	Seat      int    `json:"seat"`
	Username  string `json:"username"`
	Piece     string `json:"piece"`
	Balance   int    `json:"balance"`
	Pos       int    `json:"pos"`
	Jail      bool   `json:"jail"`
	JailCards int    `json:"jail_cards"`
	Bankrupt  bool   `json:"bankrupt"`
	HasTurn   bool   `json:"has_turn"`
	Holdings  []int  `json:"holdings"`
}

// SpaceDto is the mutable half of a board space. The static half lives in
// the Property table the client already has.
type SpaceDto struct {
	Position  int    `json:"position"`
	OwnerSeat int    `json:"owner_seat"` // -1 when bank-owned
	Mortgaged bool   `json:"mortgaged"`
	Houses    int    `json:"houses"`
	Pot       int    `json:"pot,omitempty"`
	Name      string `json:"name"`
}

// AuctionDto mirrors the auction ring for the display layer.
type AuctionDto struct {
	Position  int          `json:"position"`
	NextAsk   int          `json:"next_ask"`
	TurnSeat  int          `json:"turn_seat"`
	Bids      map[int]int  `json:"bids"`
	Withdrawn map[int]bool `json:"withdrawn"`
}

// GameSnapshot is everything the shared display needs to draw a frame.
type GameSnapshot struct {
	Status      string      `json:"status"`
	CurrentSeat int         `json:"current_seat"`
	WinnerSeat  int         `json:"winner_seat"` // -1 while running
	DiceVisible bool        `json:"dice_visible"`
	Die1        int         `json:"die1"`
	Die2        int         `json:"die2"`
	Pending     string      `json:"pending"`
	CardText    string      `json:"card_text,omitempty"`
	Players     []PlayerDto `json:"players"`
	Spaces      []SpaceDto  `json:"spaces"`
	Auction     *AuctionDto `json:"auction,omitempty"`
}
