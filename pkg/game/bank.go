package game

import "kuhhandel/pkg/currency"

// startingStage is the denomination slot the bank first grants on a donkey
// draw: the third smallest denomination.
const startingStage = 2

// Bank hands out money when a donkey is drawn. The inflation stage points
// into the denomination table and only moves forward, except for the
// explicit undo of a cancelled round.
type Bank struct {
	table currency.Table
	stage int
}

// NewBank returns a bank over the given denomination table
func NewBank(table currency.Table) *Bank {
	return &Bank{
		table: table,
		stage: startingStage,
	}
}

// Stage returns the current inflation stage index
func (b *Bank) Stage() int {
	return b.stage
}

// Inflate grants each player one card of the current stage's denomination
// and advances the stage. Returns the denomination granted, or 0 when the
// table is already exhausted.
func (b *Bank) Inflate(players []*Player) int {
	if b.stage >= len(b.table) {
		return 0
	}

	grant := currency.NewMoney(b.table)
	grant[b.stage] = 1

	for _, p := range players {
		p.AddMoney(grant)
	}

	denom := b.table[b.stage]
	b.stage++
	return denom
}

// UndoInflate reverses the most recent Inflate. It must only be called
// immediately after the Inflate it undoes; rewinding past the starting
// stage panics.
func (b *Bank) UndoInflate(players []*Player) int {
	if b.stage <= startingStage {
		panic("undo inflation without a matching inflation")
	}

	b.stage--

	grant := currency.NewMoney(b.table)
	grant[b.stage] = 1

	for _, p := range players {
		p.RemoveMoney(grant)
	}

	return b.table[b.stage]
}
