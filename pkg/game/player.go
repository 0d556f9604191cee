package game

import (
	"fmt"
	"sort"

	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
)

// Player is an individual in the game, identified by a stable index.
// Eliminated players are skipped in the rotation but keep their holdings
// for final scoring.
type Player struct {
	Index int

	money      currency.Money
	table      currency.Table
	cows       map[cattle.Type]int
	sets       []cattle.Type
	eliminated bool
}

// NewPlayer returns a new player with the given starting money
func NewPlayer(index int, table currency.Table, startingMoney currency.Money) *Player {
	return &Player{
		Index: index,
		money: startingMoney.Clone(),
		table: table,
		cows:  make(map[cattle.Type]int),
	}
}

// AddMoney adds the vector to the player's holding
func (p *Player) AddMoney(v currency.Money) {
	p.money.Add(v)
}

// RemoveMoney subtracts the vector from the player's holding.
// Callers must check HasEnoughMoney first; going past zero panics.
func (p *Player) RemoveMoney(v currency.Money) {
	p.money.Sub(v)
}

// HasEnoughMoney returns true if every slot of (holding - v) stays >= 0
func (p *Player) HasEnoughMoney(v currency.Money) bool {
	return p.money.CanAfford(v)
}

// MoneyValue returns the total value of the player's money cards
func (p *Player) MoneyValue() int {
	return p.money.Value(p.table)
}

// Money returns a copy of the player's money vector
func (p *Player) Money() currency.Money {
	return p.money.Clone()
}

// MoneyCardCount returns how many money cards the player holds
func (p *Player) MoneyCardCount() int {
	return p.money.CardCount()
}

// AddCows adds count cards of the given type to the player's inventory
func (p *Player) AddCows(t cattle.Type, count int) {
	p.cows[t] += count
}

// RemoveCows removes count cards of the given type.
// Callers must check HasCows first; removing more than held panics.
func (p *Player) RemoveCows(t cattle.Type, count int) {
	have := p.cows[t]
	if have < count {
		panic(fmt.Sprintf("player %d holds %d of %s, removing %d", p.Index, have, t, count))
	}

	if have == count {
		delete(p.cows, t)
		return
	}

	p.cows[t] = have - count
}

// HasCows returns true if the player holds at least count cards of the type
func (p *Player) HasCows(t cattle.Type, count int) bool {
	return p.cows[t] >= count
}

// CowCount returns the total number of loose cow cards the player holds
func (p *Player) CowCount() int {
	total := 0
	for _, n := range p.cows {
		total += n
	}

	return total
}

// CowTypes returns the distinct types the player holds, ascending
func (p *Player) CowTypes() []cattle.Type {
	types := make([]cattle.Type, 0, len(p.cows))
	for t := range p.cows {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Cows returns a copy of the player's cow inventory
func (p *Player) Cows() map[cattle.Type]int {
	cows := make(map[cattle.Type]int, len(p.cows))
	for t, n := range p.cows {
		cows[t] = n
	}

	return cows
}

// UpdateScore converts every four-of-a-kind in the live inventory into a
// completed set. Runs at the end of every turn.
func (p *Player) UpdateScore() {
	for _, t := range p.CowTypes() {
		for p.cows[t] >= 4 {
			p.RemoveCows(t, 4)
			p.sets = append(p.sets, t)
		}
	}
}

// Score returns the player's cumulative score: the number of completed sets
// times four times the sum of the completed sets' type values. Note this is
// a single product across all sets, not a per-set sum.
func (p *Player) Score() int {
	sum := 0
	for _, t := range p.sets {
		sum += int(t)
	}

	return len(p.sets) * 4 * sum
}

// CompletedSets returns the types of the player's completed sets, in completion order
func (p *Player) CompletedSets() []cattle.Type {
	return append([]cattle.Type{}, p.sets...)
}

// Eliminated returns true once the player is out of the rotation
func (p *Player) Eliminated() bool {
	return p.eliminated
}

func (p *Player) eliminate() {
	p.eliminated = true
}
