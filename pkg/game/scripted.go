package game

import (
	"fmt"

	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
)

// BidAnswer is one scripted response to a bid request
type BidAnswer struct {
	Amount int
	Pass   bool
	Err    error
}

// ScriptedSource replays queued answers. It backs the engine tests and any
// host that wants to drive a game non-interactively. Running out of
// answers for a requested decision panics: the script did not match the
// game's actual flow.
type ScriptedSource struct {
	Actions  []Action
	Bids     []BidAnswer
	BuyBacks []bool
	Payments []currency.Money
	Trades   []TradeDecision
	Offers   []currency.Money

	// CancelNext makes the next decision request return ErrCancelled
	CancelNext bool
}

var _ DecisionSource = (*ScriptedSource)(nil)

func (s *ScriptedSource) cancelled() bool {
	if s.CancelNext {
		s.CancelNext = false
		return true
	}

	return false
}

// ChooseAction pops the next scripted action
func (s *ScriptedSource) ChooseAction(View) (Action, error) {
	if s.cancelled() {
		return 0, ErrCancelled
	}

	if len(s.Actions) == 0 {
		panic("scripted source has no action queued")
	}

	a := s.Actions[0]
	s.Actions = s.Actions[1:]
	return a, nil
}

// BidDecision pops the next scripted bid
func (s *ScriptedSource) BidDecision(View) (int, bool, error) {
	if s.cancelled() {
		return 0, false, ErrCancelled
	}

	if len(s.Bids) == 0 {
		panic("scripted source has no bid queued")
	}

	b := s.Bids[0]
	s.Bids = s.Bids[1:]
	return b.Amount, b.Pass, b.Err
}

// BuyBackDecision pops the next scripted buy-back answer
func (s *ScriptedSource) BuyBackDecision(View, Bid) (bool, error) {
	if s.cancelled() {
		return false, ErrCancelled
	}

	if len(s.BuyBacks) == 0 {
		panic("scripted source has no buy-back answer queued")
	}

	b := s.BuyBacks[0]
	s.BuyBacks = s.BuyBacks[1:]
	return b, nil
}

// ChoosePayment pops the next scripted payment vector
func (s *ScriptedSource) ChoosePayment(_ View, amount int) (currency.Money, error) {
	if s.cancelled() {
		return nil, ErrCancelled
	}

	if len(s.Payments) == 0 {
		panic(fmt.Sprintf("scripted source has no payment queued (owed %d)", amount))
	}

	p := s.Payments[0]
	s.Payments = s.Payments[1:]
	return p, nil
}

// TradeDecision pops the next scripted trade target
func (s *ScriptedSource) TradeDecision(View, map[int][]cattle.Type) (TradeDecision, error) {
	if s.cancelled() {
		return TradeDecision{}, ErrCancelled
	}

	if len(s.Trades) == 0 {
		panic("scripted source has no trade decision queued")
	}

	t := s.Trades[0]
	s.Trades = s.Trades[1:]
	return t, nil
}

// TradeOffer pops the next scripted offer
func (s *ScriptedSource) TradeOffer(View, int) (currency.Money, error) {
	if s.cancelled() {
		return nil, ErrCancelled
	}

	if len(s.Offers) == 0 {
		panic("scripted source has no trade offer queued")
	}

	o := s.Offers[0]
	s.Offers = s.Offers[1:]
	return o, nil
}
