package game

import (
	"sort"

	"kuhhandel/internal/rng"
	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
)

// RandomBot is a decision source that makes legal, mildly greedy choices.
// It is not a strategy: it exists so a table can be filled without humans.
type RandomBot struct {
	table currency.Table
	rng   rng.Generator
}

var _ DecisionSource = (*RandomBot)(nil)

// NewRandomBot returns a bot over the given denomination table
func NewRandomBot(table currency.Table, generator rng.Generator) *RandomBot {
	return &RandomBot{
		table: table,
		rng:   generator,
	}
}

// ChooseAction bids while cards remain, trades once the stack is empty
func (b *RandomBot) ChooseAction(v View) (Action, error) {
	if v.StackRemaining == 0 {
		return ActionTrade, nil
	}

	// trade occasionally when a joint cow exists
	if len(b.jointCows(v)) > 0 && b.rng.Intn(4) == 0 {
		return ActionTrade, nil
	}

	return ActionAuction, nil
}

// BidDecision raises by one of the smaller denominations, passing once the
// price climbs past half the bot's money
func (b *RandomBot) BidDecision(v View) (int, bool, error) {
	next := v.HighBid + b.smallestDenomination()

	if next > v.Self.MoneyValue/2 || b.rng.Intn(3) == 0 {
		return 0, true, nil
	}

	return next, false, nil
}

// BuyBackDecision reclaims the card when the winning bid is cheap
func (b *RandomBot) BuyBackDecision(v View, winning Bid) (bool, error) {
	return winning.Amount*3 < v.Self.MoneyValue, nil
}

// ChoosePayment delegates to the payment solver
func (b *RandomBot) ChoosePayment(v View, amount int) (currency.Money, error) {
	return currency.Solve(b.table, amount, v.Self.Money)
}

// TradeDecision challenges the first opponent sharing a cow type
func (b *RandomBot) TradeDecision(v View, joint map[int][]cattle.Type) (TradeDecision, error) {
	opponents := make([]int, 0, len(joint))
	for idx := range joint {
		opponents = append(opponents, idx)
	}
	sort.Ints(opponents)

	contender := opponents[b.rng.Intn(len(opponents))]
	types := joint[contender]
	cowType := types[b.rng.Intn(len(types))]

	return TradeDecision{
		Contender: contender,
		CowType:   cowType,
		Quantity:  1,
	}, nil
}

// TradeOffer stakes roughly a tenth of the bot's money
func (b *RandomBot) TradeOffer(v View, _ int) (currency.Money, error) {
	target := v.Self.MoneyValue / 10
	if target == 0 {
		return currency.NewMoney(b.table), nil
	}

	return currency.Solve(b.table, target, v.Self.Money)
}

func (b *RandomBot) jointCows(v View) []int {
	mine := v.Self.Cows

	var opponents []int
	for _, p := range v.Players {
		if p.Index == v.Self.Index || p.Eliminated {
			continue
		}

		for t := range p.Cows {
			if mine[t] > 0 {
				opponents = append(opponents, p.Index)
				break
			}
		}
	}

	return opponents
}

func (b *RandomBot) smallestDenomination() int {
	for _, v := range b.table {
		if v > 0 {
			return v
		}
	}

	return 0
}
