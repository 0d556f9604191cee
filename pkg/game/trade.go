package game

import (
	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
)

// Trade is a two-party sealed-bid exchange over cow cards both sides hold.
// The challenger commits a money offer first; the contender then commits
// theirs, knowing only how many cards the challenger offered, not which.
// The higher offer wins the contested cows. Both offers are always paid out
// regardless of outcome: the trade is a blind swap of money whose only
// contingent part is the cow transfer.
type Trade struct {
	cowType  cattle.Type
	quantity int

	challenger *Player
	contender  *Player

	challengerOffer currency.Money
	contenderOffer  currency.Money
}

// Outcome is the result of resolving a trade
type Outcome struct {
	Winner int
	Loser  int
	Draw   bool
}

// NewTrade validates and creates a trade round. Both parties must hold at
// least quantity cards of the contested type.
func NewTrade(challenger, contender *Player, cowType cattle.Type, quantity int) (*Trade, error) {
	if quantity < 1 {
		return nil, ErrInsufficientCows
	}

	if !challenger.HasCows(cowType, quantity) || !contender.HasCows(cowType, quantity) {
		return nil, ErrInsufficientCows
	}

	return &Trade{
		cowType:    cowType,
		quantity:   quantity,
		challenger: challenger,
		contender:  contender,
	}, nil
}

// CowType returns the contested cow type
func (t *Trade) CowType() cattle.Type {
	return t.cowType
}

// Quantity returns how many cards of the type are contested
func (t *Trade) Quantity() int {
	return t.quantity
}

// Challenger returns the initiating player's index
func (t *Trade) Challenger() int {
	return t.challenger.Index
}

// Contender returns the challenged player's index
func (t *Trade) Contender() int {
	return t.contender.Index
}

// SetChallengerOffer records the challenger's sealed offer
func (t *Trade) SetChallengerOffer(offer currency.Money) {
	t.challengerOffer = offer.Clone()
}

// ChallengerCardCount returns how many money cards the challenger offered.
// This is the only information revealed to the contender before they commit.
func (t *Trade) ChallengerCardCount() int {
	return t.challengerOffer.CardCount()
}

// SetContenderOffer records the contender's sealed offer
func (t *Trade) SetContenderOffer(offer currency.Money) {
	t.contenderOffer = offer.Clone()
}

// Resolve compares the two offers. The higher monetary value wins the cows;
// an exact tie is a draw. Both parties must be able to cover their own
// offer; if either cannot, no state has changed and ErrInsufficientFunds is
// returned.
func (t *Trade) Resolve(table currency.Table) (Outcome, error) {
	if !t.challenger.HasEnoughMoney(t.challengerOffer) || !t.contender.HasEnoughMoney(t.contenderOffer) {
		return Outcome{}, ErrInsufficientFunds
	}

	ch := t.challengerOffer.Value(table)
	con := t.contenderOffer.Value(table)

	switch {
	case ch > con:
		return Outcome{Winner: t.challenger.Index, Loser: t.contender.Index}, nil
	case ch < con:
		return Outcome{Winner: t.contender.Index, Loser: t.challenger.Index}, nil
	default:
		return Outcome{Draw: true}, nil
	}
}
