package models

// Property is one row of the static board table. Rents holds the seven
// street tiers (base, color set, 1-4 houses, hotel); railroads and
// utilities use fixed schedules in the engine instead.
type Property struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Group      string `json:"group"`
	Position   int    `json:"position"`
	Price      int    `json:"price"`
	Rents      []int  `json:"rents"`
	Mortgage   int    `json:"mortgage"`
	Unmortgage int    `json:"unmortgage"`
	HouseCost  int    `json:"housecost"`
	Tax        int    `json:"tax"`
}

// Card is one scripted deck entry. Action selects the effect, the other
// fields are its parameters.
type Card struct {
	Text     string `json:"text"`
	Action   string `json:"action"`
	Amount   int    `json:"amount"`
	Position int    `json:"position"`
	PerHouse int    `json:"per_house"`
	PerHotel int    `json:"per_hotel"`
}

// CardFile carries both deck piles.
type CardFile struct {
	Chance []Card `json:"chance"`
	Chest  []Card `json:"chest"`
}
