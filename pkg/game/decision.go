package game

import (
	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
)

// Action is a turn action chosen by the current player
type Action int

// turn actions
const (
	ActionAuction Action = iota
	ActionTrade
	ActionStats
)

// TradeDecision names the challenged player and the contested cards
type TradeDecision struct {
	Contender int
	CowType   cattle.Type
	Quantity  int
}

// NotRevealed is passed to TradeOffer when no opposing card count is disclosed
const NotRevealed = -1

// DecisionSource supplies one player's choices. The engine only consumes
// the values it returns; prompting, re-prompting on malformed input and any
// transport are the source's concern. A source may return ErrCancelled from
// any method to withdraw from the round in progress.
type DecisionSource interface {
	// ChooseAction picks what to do with the turn
	ChooseAction(v View) (Action, error)

	// BidDecision returns the amount to bid, or pass=true to leave the round
	BidDecision(v View) (amount int, pass bool, err error)

	// BuyBackDecision asks the auctioneer whether to reclaim the card by
	// paying the winning bid
	BuyBackDecision(v View, winning Bid) (bool, error)

	// ChoosePayment picks the money cards used to pay the amount.
	// Only consulted when automatic payment is off.
	ChoosePayment(v View, amount int) (currency.Money, error)

	// TradeDecision picks whom to challenge over which cows. joint maps
	// each eligible opponent to the cow types both parties hold.
	TradeDecision(v View, joint map[int][]cattle.Type) (TradeDecision, error)

	// TradeOffer returns the sealed money offer. revealedCardCount is the
	// number of money cards the opposing offer contains, or NotRevealed for
	// the party that commits first.
	TradeOffer(v View, revealedCardCount int) (currency.Money, error)
}
