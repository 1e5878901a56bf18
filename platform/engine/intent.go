package engine

// IntentKind is a discrete, already-disambiguated player command. The input
// layer resolves clicks to intents; the engine never sees coordinates.
type IntentKind string

const (
	IntentRoll         IntentKind = "roll"
	IntentBuy          IntentKind = "buy"
	IntentAuction      IntentKind = "auction"
	IntentBid          IntentKind = "bid"
	IntentWithdraw     IntentKind = "withdraw"
	IntentBuild        IntentKind = "build"
	IntentSellBuilding IntentKind = "sell-building"
	IntentMortgage     IntentKind = "mortgage"
	IntentUnmortgage   IntentKind = "unmortgage"
	IntentPayBail      IntentKind = "pay-bail"
	IntentUseJailCard  IntentKind = "use-jail-card"
	IntentAcknowledge  IntentKind = "acknowledge"
	IntentEndTurn      IntentKind = "end-turn"
)

// Intent pairs a command with its acting seat. Position is only read by the
// property-management intents (build, sell, mortgage, unmortgage).
type Intent struct {
	Kind     IntentKind `json:"kind"`
	Seat     int        `json:"seat"`
	Position int        `json:"position"`
}
