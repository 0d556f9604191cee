package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kuhhandel/pkg/currency"
)

func tradePlayers() (*Player, *Player) {
	challenger := NewPlayer(0, testTable, testStart)
	contender := NewPlayer(1, testTable, testStart)

	challenger.AddCows(20, 2)
	contender.AddCows(20, 1)
	return challenger, contender
}

func TestNewTrade_Preconditions(t *testing.T) {
	challenger, contender := tradePlayers()

	_, err := NewTrade(challenger, contender, 20, 0)
	assert.Equal(t, ErrInsufficientCows, err)

	// contender only holds one
	_, err = NewTrade(challenger, contender, 20, 2)
	assert.Equal(t, ErrInsufficientCows, err)

	_, err = NewTrade(challenger, contender, 40, 1)
	assert.Equal(t, ErrInsufficientCows, err)

	trade, err := NewTrade(challenger, contender, 20, 1)
	assert.NoError(t, err)
	assert.NotNil(t, trade)
}

func TestTrade_ChallengerCardCountRevealed(t *testing.T) {
	challenger, contender := tradePlayers()
	trade, _ := NewTrade(challenger, contender, 20, 1)

	trade.SetChallengerOffer(currency.Money{0, 2, 1, 0, 0, 0})
	assert.Equal(t, 3, trade.ChallengerCardCount())
}

func TestTrade_ResolveHigherValueWins(t *testing.T) {
	challenger, contender := tradePlayers()
	trade, _ := NewTrade(challenger, contender, 20, 1)

	trade.SetChallengerOffer(currency.Money{0, 3, 0, 0, 0, 0}) // 30
	trade.SetContenderOffer(currency.Money{0, 2, 0, 0, 0, 0})  // 20

	outcome, err := trade.Resolve(testTable)
	assert.NoError(t, err)
	assert.False(t, outcome.Draw)
	assert.Equal(t, 0, outcome.Winner)
	assert.Equal(t, 1, outcome.Loser)
}

func TestTrade_ResolveEqualValuesIsDraw(t *testing.T) {
	challenger, contender := tradePlayers()
	trade, _ := NewTrade(challenger, contender, 20, 1)

	// same value through different cards is still a tie
	trade.SetChallengerOffer(currency.Money{0, 2, 0, 0, 0, 0}) // 20
	trade.SetContenderOffer(currency.Money{2, 2, 0, 0, 0, 0})  // 20, plus zero cards

	outcome, err := trade.Resolve(testTable)
	assert.NoError(t, err)
	assert.True(t, outcome.Draw)
}

func TestTrade_ResolveUnaffordableOffer(t *testing.T) {
	challenger, contender := tradePlayers()
	trade, _ := NewTrade(challenger, contender, 20, 1)

	trade.SetChallengerOffer(currency.Money{0, 0, 0, 1, 0, 0}) // holds no 100s
	trade.SetContenderOffer(currency.Money{0, 1, 0, 0, 0, 0})

	_, err := trade.Resolve(testTable)
	assert.Equal(t, ErrInsufficientFunds, err)
}

func TestSettleTrade_DecisiveOutcome(t *testing.T) {
	g := newTestGame(t, 2)
	challenger := g.Player(0)
	contender := g.Player(1)

	challenger.AddCows(20, 1)
	contender.AddCows(20, 1)

	trade, err := NewTrade(challenger, contender, 20, 1)
	assert.NoError(t, err)

	chOffer := currency.Money{0, 3, 0, 0, 0, 0} // 30
	coOffer := currency.Money{0, 2, 0, 0, 0, 0} // 20
	trade.SetChallengerOffer(chOffer)
	trade.SetContenderOffer(coOffer)

	outcome, err := trade.Resolve(g.Table())
	assert.NoError(t, err)

	g.SettleTrade(trade, outcome)

	// both offers were paid out: challenger nets -30 + 20
	assert.Equal(t, 270, challenger.MoneyValue())
	assert.Equal(t, 290, contender.MoneyValue())

	// the cows went to the challenger
	assert.True(t, challenger.HasCows(20, 2))
	assert.False(t, contender.HasCows(20, 1))
}

func TestSettleTrade_DrawSwapsMoneyOnly(t *testing.T) {
	g := newTestGame(t, 2)
	challenger := g.Player(0)
	contender := g.Player(1)

	challenger.AddCows(20, 1)
	contender.AddCows(20, 1)

	trade, err := NewTrade(challenger, contender, 20, 1)
	assert.NoError(t, err)

	trade.SetChallengerOffer(currency.Money{0, 0, 1, 0, 0, 0}) // 50
	trade.SetContenderOffer(currency.Money{2, 0, 1, 0, 0, 0})  // 50, padded with zero cards

	outcome, err := trade.Resolve(g.Table())
	assert.NoError(t, err)
	assert.True(t, outcome.Draw)

	g.SettleTrade(trade, outcome)

	// money still changes hands in both directions
	assert.Equal(t, currency.Money{5, 3, 5, 0, 0, 0}, challenger.Money())
	assert.Equal(t, currency.Money{1, 3, 5, 0, 0, 0}, contender.Money())

	// no cows moved
	assert.True(t, challenger.HasCows(20, 1))
	assert.True(t, contender.HasCows(20, 1))
}
