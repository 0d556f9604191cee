package game

import (
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"kuhhandel/internal/rng"
	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
)

const eventBufferSize = 256

// Game owns one table: the players, the card stack, the bank, and the turn
// rotation. All mutation is synchronous; one round is in flight at a time.
type Game struct {
	opts    Options
	log     logrus.FieldLogger
	table   currency.Table
	players []*Player
	stack   *cattle.Stack
	bank    *Bank

	current int
	turn    int

	events chan Event

	// finalScores is set once, when the game-over condition is first met
	finalScores []int
}

// NewGame creates a game with numPlayers seats. The stack is shuffled and a
// starting player is picked; with Options.Seed set, both are deterministic.
func NewGame(logger logrus.FieldLogger, numPlayers int, opts Options) (*Game, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if numPlayers < opts.MinPlayers || numPlayers > opts.MaxPlayers {
		return nil, PlayerCountError{Min: opts.MinPlayers, Max: opts.MaxPlayers, Got: numPlayers}
	}

	players := make([]*Player, numPlayers)
	for i := range players {
		players[i] = NewPlayer(i, opts.Denominations, opts.StartingMoney)
	}

	stack := cattle.NewStack(opts.CowTypes, opts.CopiesPerCow)
	stack.Shuffle(opts.Seed)

	var generator rng.Generator = rng.Crypto{}
	if opts.Seed > 0 {
		generator = rand.New(rand.NewSource(opts.Seed))
	}

	g := &Game{
		opts:    opts,
		log:     logger,
		table:   opts.Denominations,
		players: players,
		stack:   stack,
		bank:    NewBank(opts.Denominations),
		current: generator.Intn(numPlayers),
		events:  make(chan Event, eventBufferSize),
	}

	g.log.WithFields(logrus.Fields{
		"players":      numPlayers,
		"startingSeat": g.current,
		"stackSize":    stack.Remaining(),
		"shuffleSeed":  stack.GetSeed(),
	}).Debug("game created")

	return g, nil
}

// Options returns the options the game was created with
func (g *Game) Options() Options {
	return g.opts
}

// Table returns the money denomination table
func (g *Game) Table() currency.Table {
	return g.table
}

// Player returns the player at the given seat
func (g *Game) Player(index int) *Player {
	return g.players[index]
}

// Players returns all seats in order
func (g *Game) Players() []*Player {
	return append([]*Player{}, g.players...)
}

// CurrentPlayer returns the seat whose turn it is
func (g *Game) CurrentPlayer() int {
	return g.current
}

// Turn returns the turn counter
func (g *Game) Turn() int {
	return g.turn
}

// Stack returns the draw stack
func (g *Game) Stack() *cattle.Stack {
	return g.stack
}

// Bank returns the bank
func (g *Game) Bank() *Bank {
	return g.bank
}

// ActivePlayers returns the seats still in the rotation, ascending
func (g *Game) ActivePlayers() []int {
	active := make([]int, 0, len(g.players))
	for _, p := range g.players {
		if !p.Eliminated() {
			active = append(active, p.Index)
		}
	}

	return active
}

// StartAuction draws the next card and opens a bidding round for it.
// A donkey draw inflates every player's money before bidding starts; the
// denomination granted is reported so a cancellation can reverse it.
func (g *Game) StartAuction() (*Auction, cattle.Type, int, error) {
	if g.finalScores != nil {
		return nil, 0, 0, ErrGameOver
	}

	if g.stack.IsEmpty() {
		return nil, 0, 0, ErrStackEmpty
	}

	card, err := g.stack.Draw()
	if err != nil {
		return nil, 0, 0, ErrStackEmpty
	}

	e := newEvent(EventCardDrawn, g.current, "bid for cow %d", card)
	e.Card = &card
	g.emit(e)

	if g.stack.IsEmpty() {
		g.emit(newEvent(EventLastCard, -1, "the last card was drawn"))
	}

	inflated := 0
	if g.stack.IsDonkey(card) {
		inflated = g.bank.Inflate(g.players)

		e := newEvent(EventDonkey, -1, "it's a donkey! everyone receives %d", inflated)
		e.Amount = inflated
		e.Stage = g.bank.Stage()
		g.emit(e)

		g.log.WithFields(logrus.Fields{"granted": inflated, "stage": g.bank.Stage()}).Debug("donkey inflation")
	}

	return NewAuction(g.current, g.eligibleBidders()), card, inflated, nil
}

// eligibleBidders is every active player except the auctioneer, clockwise
// starting after the auctioneer
func (g *Game) eligibleBidders() []int {
	n := len(g.players)
	bidders := make([]int, 0, n-1)

	for i := 1; i < n; i++ {
		idx := (g.current + i) % n
		if !g.players[idx].Eliminated() {
			bidders = append(bidders, idx)
		}
	}

	return bidders
}

// CancelAuction restores the drawn card and reverses any inflation the draw
// triggered. The turn is not consumed.
func (g *Game) CancelAuction(card cattle.Type, inflated int) {
	if inflated > 0 {
		g.bank.UndoInflate(g.players)
	}

	g.stack.UndoDraw(card)
	g.emit(newEvent(EventRoundCancel, g.current, "auction round cancelled"))
}

// SettleAuction moves the payment from buyer to seller and the card to the
// buyer. Caller validates affordability beforehand.
func (g *Game) SettleAuction(buyer, seller int, payment currency.Money, card cattle.Type) {
	g.players[buyer].RemoveMoney(payment)
	g.players[seller].AddMoney(payment)
	g.players[buyer].AddCows(card, 1)
}

// JointCows maps each other active player to the cow types both they and
// the challenger currently hold
func (g *Game) JointCows(challenger int) map[int][]cattle.Type {
	joint := make(map[int][]cattle.Type)

	for _, p := range g.players {
		if p.Index == challenger || p.Eliminated() {
			continue
		}

		var shared []cattle.Type
		for _, t := range g.players[challenger].CowTypes() {
			if p.HasCows(t, 1) {
				shared = append(shared, t)
			}
		}

		if len(shared) > 0 {
			sort.Slice(shared, func(i, j int) bool { return shared[i] < shared[j] })
			joint[p.Index] = shared
		}
	}

	return joint
}

// SettleTrade pays out both sealed offers and, on a decisive outcome, moves
// the contested cows from loser to winner. On a draw only the money swaps.
func (g *Game) SettleTrade(t *Trade, outcome Outcome) {
	challenger := g.players[t.Challenger()]
	contender := g.players[t.Contender()]

	// both offers are always paid, whoever won the cows
	contender.RemoveMoney(t.contenderOffer)
	challenger.AddMoney(t.contenderOffer)

	challenger.RemoveMoney(t.challengerOffer)
	contender.AddMoney(t.challengerOffer)

	if outcome.Draw {
		g.emit(newEvent(EventTradeDraw, -1, "trade over cow %d is a draw", t.CowType()))
		return
	}

	g.players[outcome.Loser].RemoveCows(t.CowType(), t.Quantity())
	g.players[outcome.Winner].AddCows(t.CowType(), t.Quantity())

	e := newEvent(EventTradeResolved, outcome.Winner, "player %d won %d cow %d from player %d",
		outcome.Winner, t.Quantity(), t.CowType(), outcome.Loser)
	card := t.CowType()
	e.Card = &card
	g.emit(e)
}

// EndTurn closes the current turn: every player's completed sets are
// banked, then, once the stack is exhausted, players left without cow cards
// are eliminated. The rotation advances to the next active seat; when at
// most one seat remains active the rotation stops and the game is over.
func (g *Game) EndTurn() {
	for _, p := range g.players {
		p.UpdateScore()
	}

	if g.stack.IsEmpty() {
		for _, p := range g.players {
			if !p.Eliminated() && p.CowCount() == 0 {
				p.eliminate()
				g.emit(newEvent(EventEliminated, p.Index, "player %d has no cows left and is out", p.Index))
			}
		}
	}

	g.turn++

	if len(g.ActivePlayers()) > 1 {
		g.advance()
	}

	if g.isGameOverCondition() && g.finalScores == nil {
		g.freezeScores()
	}
}

// advance moves the current-player pointer to the next active seat
func (g *Game) advance() {
	n := len(g.players)
	for i := 1; i <= n; i++ {
		idx := (g.current + i) % n
		if !g.players[idx].Eliminated() {
			g.current = idx
			return
		}
	}
}

func (g *Game) isGameOverCondition() bool {
	return g.stack.IsEmpty() && len(g.ActivePlayers()) <= 1
}

// IsGameOver returns true when the stack is exhausted and at most one
// player is still active
func (g *Game) IsGameOver() bool {
	return g.finalScores != nil
}

func (g *Game) freezeScores() {
	scores := make([]int, len(g.players))
	for i, p := range g.players {
		scores[i] = p.Score()
	}
	g.finalScores = scores

	e := newEvent(EventGameOver, -1, "game over")
	e.Scores = scores
	g.emit(e)

	g.log.WithField("scores", scores).Info("game over")
}

// FinalScores returns the frozen per-seat scores, or ErrGameNotOver while
// the game is still running
func (g *Game) FinalScores() ([]int, error) {
	if g.finalScores == nil {
		return nil, ErrGameNotOver
	}

	return append([]int{}, g.finalScores...), nil
}
