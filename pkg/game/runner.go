package game

import (
	"errors"
	"fmt"

	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
)

// Runner drives a game to completion against a decision source per seat.
// It owns the protocol glue the engines stay out of: soliciting decisions,
// turning validation failures into forced passes or re-solicited turns, and
// reversing a round when a source cancels.
type Runner struct {
	game    *Game
	sources []DecisionSource
}

// NewRunner returns a runner over the game and one source per seat
func NewRunner(g *Game, sources []DecisionSource) (*Runner, error) {
	if len(sources) != len(g.players) {
		return nil, fmt.Errorf("expected %d decision sources, got %d", len(g.players), len(sources))
	}

	return &Runner{
		game:    g,
		sources: sources,
	}, nil
}

// Run loops turns until the game is over. Validation failures re-solicit
// the same seat; cancellations abandon the round without consuming the
// turn. If no active seat can act at all (stack exhausted, no trade
// partners left), the game is ended where it stands.
func (r *Runner) Run() error {
	g := r.game
	stuck := 0

	for !g.IsGameOver() {
		cur := g.CurrentPlayer()

		action, err := r.sources[cur].ChooseAction(g.View(cur))
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				continue
			}

			return err
		}

		switch action {
		case ActionAuction:
			err = r.PlayAuction()
		case ActionTrade:
			err = r.PlayTrade()
		case ActionStats:
			continue
		default:
			return fmt.Errorf("unknown action: %d", action)
		}

		if err == nil {
			stuck = 0
			continue
		}

		if errors.Is(err, ErrCancelled) {
			continue
		}

		if !isValidationError(err) {
			return err
		}

		e := newEvent(EventRoundFailure, cur, "%s", err.Error())
		g.emit(e)

		// nothing this seat can do: skip the turn so play moves on, and
		// end the game if a full rotation gets skipped the same way
		if g.Stack().IsEmpty() && len(g.JointCows(cur)) == 0 {
			g.EndTurn()

			stuck++
			if !g.IsGameOver() && stuck >= len(g.ActivePlayers()) {
				g.log.Warn("no active player can act, ending game")
				g.freezeScores()
			}
		}
	}

	return nil
}

// PlayAuction runs one full auction round for the current player: draw,
// bidding, optional buy-back, payment, settlement, end of turn.
func (r *Runner) PlayAuction() error {
	g := r.game
	cur := g.CurrentPlayer()

	auction, card, inflated, err := g.StartAuction()
	if err != nil {
		return err
	}

	cancel := func() {
		g.CancelAuction(card, inflated)
	}

	if err := r.collectBids(auction, card); err != nil {
		cancel()
		return err
	}

	winning := auction.WinningBid()

	if winning.Player == auction.Auctioneer() {
		// nobody bid: the auctioneer keeps the card for free
		g.Player(cur).AddCows(card, 1)

		e := newEvent(EventAuctionWon, cur, "nobody bid, player %d keeps cow %d", cur, card)
		e.Card = &card
		g.emit(e)

		g.EndTurn()
		return nil
	}

	buyBack := false
	if auction.CanBuyBack(g.Player(cur)) {
		view := g.View(cur)
		view.CurrentCard = &card
		view.HighBid = winning.Amount

		buyBack, err = r.sources[cur].BuyBackDecision(view, winning)
		if err != nil {
			cancel()
			return err
		}
	}

	buyer, seller := winning.Player, cur
	if buyBack {
		buyer, seller = cur, winning.Player
	}

	payment, err := r.collectPayment(buyer, winning.Amount, card, auction)
	if err != nil {
		cancel()
		return err
	}

	g.SettleAuction(buyer, seller, payment, card)

	eventType := EventAuctionWon
	if buyBack {
		eventType = EventBuyBack
	}

	e := newEvent(eventType, buyer, "player %d takes cow %d for %d", buyer, card, winning.Amount)
	e.Card = &card
	e.Amount = winning.Amount
	g.emit(e)

	g.EndTurn()
	return nil
}

// collectBids sweeps the remaining bidders until the round completes.
// A rejected bid forces the bidder out of the round for that turn.
func (r *Runner) collectBids(auction *Auction, card cattle.Type) error {
	g := r.game

	for {
		for _, idx := range auction.Remaining() {
			view := g.View(idx)
			view.CurrentCard = &card
			view.HighBid = auction.HighBid()

			amount, pass, err := r.sources[idx].BidDecision(view)
			if err != nil {
				return err
			}

			if pass {
				auction.Pass(idx)
				g.emit(newEvent(EventPass, idx, "player %d passes", idx))
				continue
			}

			if err := auction.PlaceBid(g.Player(idx), amount); err != nil {
				e := newEvent(EventBidRejected, idx, "bid of %d rejected: %s", amount, err.Error())
				e.Amount = amount
				g.emit(e)

				auction.Pass(idx)
				continue
			}

			e := newEvent(EventBidPlaced, idx, "player %d bids %d", idx, amount)
			e.Amount = amount
			g.emit(e)
		}

		if auction.IsComplete() {
			return nil
		}
	}
}

// collectPayment produces the buyer's payment vector, either from the
// solver or from the buyer's own choice of cards
func (r *Runner) collectPayment(buyer, amount int, card cattle.Type, auction *Auction) (currency.Money, error) {
	g := r.game

	if g.Options().AutomaticPayment {
		return currency.Solve(g.Table(), amount, g.Player(buyer).Money())
	}

	for {
		view := g.View(buyer)
		view.CurrentCard = &card
		view.HighBid = auction.HighBid()

		payment, err := r.sources[buyer].ChoosePayment(view, amount)
		if err != nil {
			return nil, err
		}

		if !g.Player(buyer).HasEnoughMoney(payment) {
			g.emit(newEvent(EventRoundFailure, buyer, "%s", ErrInsufficientFunds.Error()))
			continue
		}

		if payment.Value(g.Table()) < amount {
			g.emit(newEvent(EventRoundFailure, buyer, "%s", ErrShortPayment.Error()))
			continue
		}

		return payment, nil
	}
}

// PlayTrade runs one full trade round for the current player: pick a
// target, collect both sealed offers, resolve, settle, end of turn.
func (r *Runner) PlayTrade() error {
	g := r.game
	cur := g.CurrentPlayer()

	joint := g.JointCows(cur)
	if len(joint) == 0 {
		return ErrNoJointCows
	}

	decision, err := r.sources[cur].TradeDecision(g.View(cur), joint)
	if err != nil {
		return err
	}

	if _, ok := joint[decision.Contender]; !ok {
		return ErrNoJointCows
	}

	trade, err := NewTrade(g.Player(cur), g.Player(decision.Contender), decision.CowType, decision.Quantity)
	if err != nil {
		return err
	}

	challengerOffer, err := r.sources[cur].TradeOffer(g.View(cur), NotRevealed)
	if err != nil {
		return err
	}
	trade.SetChallengerOffer(challengerOffer)

	contenderOffer, err := r.sources[decision.Contender].TradeOffer(g.View(decision.Contender), trade.ChallengerCardCount())
	if err != nil {
		return err
	}
	trade.SetContenderOffer(contenderOffer)

	outcome, err := trade.Resolve(g.Table())
	if err != nil {
		return err
	}

	g.SettleTrade(trade, outcome)
	g.EndTurn()
	return nil
}

func isValidationError(err error) bool {
	for _, v := range []error{
		ErrBidTooLow,
		ErrInsufficientFunds,
		ErrInsufficientCows,
		ErrNoJointCows,
		ErrStackEmpty,
		ErrShortPayment,
	} {
		if errors.Is(err, v) {
			return true
		}
	}

	return false
}
