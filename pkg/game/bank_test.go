package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kuhhandel/pkg/currency"
)

func testPlayers(n int) []*Player {
	players := make([]*Player, n)
	for i := range players {
		players[i] = NewPlayer(i, testTable, testStart)
	}

	return players
}

func TestBank_Inflate(t *testing.T) {
	players := testPlayers(3)
	bank := NewBank(testTable)

	assert.Equal(t, 2, bank.Stage())

	granted := bank.Inflate(players)
	assert.Equal(t, 50, granted)
	assert.Equal(t, 3, bank.Stage())

	for _, p := range players {
		assert.Equal(t, 330, p.MoneyValue())
	}

	// subsequent donkeys grant the next denomination
	assert.Equal(t, 100, bank.Inflate(players))
	assert.Equal(t, 200, bank.Inflate(players))
	assert.Equal(t, 500, bank.Inflate(players))
	assert.Equal(t, 6, bank.Stage())
}

func TestBank_InflateExhaustedTable(t *testing.T) {
	players := testPlayers(2)
	bank := NewBank(testTable)

	for i := 0; i < 4; i++ {
		assert.NotZero(t, bank.Inflate(players))
	}

	before := players[0].MoneyValue()
	assert.Zero(t, bank.Inflate(players))
	assert.Equal(t, 6, bank.Stage())
	assert.Equal(t, before, players[0].MoneyValue())
}

func TestBank_UndoInflateIsExactInverse(t *testing.T) {
	players := testPlayers(2)
	bank := NewBank(testTable)

	before := make([]currency.Money, len(players))
	for i, p := range players {
		before[i] = p.Money()
	}

	granted := bank.Inflate(players)
	undone := bank.UndoInflate(players)

	assert.Equal(t, granted, undone)
	assert.Equal(t, 2, bank.Stage())
	for i, p := range players {
		assert.Equal(t, before[i], p.Money())
	}
}

func TestBank_UndoInflatePanicsBelowStartingStage(t *testing.T) {
	bank := NewBank(testTable)
	assert.Panics(t, func() {
		bank.UndoInflate(testPlayers(2))
	})
}
