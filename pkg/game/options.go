package game

import (
	"errors"

	"kuhhandel/pkg/cattle"
	"kuhhandel/pkg/currency"
)

// Options are options for creating a new game
type Options struct {
	// CowTypes are the cow card values in play; the lowest is the donkey
	CowTypes []cattle.Type
	// CopiesPerCow is how many cards of each type go into the stack
	CopiesPerCow int
	// Denominations is the ascending money card table; slot 0 may be a zero placeholder
	Denominations currency.Table
	// StartingMoney is the per-denomination card count each player begins with
	StartingMoney currency.Money
	// MinPlayers and MaxPlayers bound the seat count
	MinPlayers int
	MaxPlayers int
	// AutomaticPayment selects solver-chosen payments over manual card choice
	AutomaticPayment bool
	// Seed drives the stack shuffle and starting player. 0 means random.
	Seed int64
}

// DefaultOptions returns the default options for a game
func DefaultOptions() Options {
	return Options{
		CowTypes:         []cattle.Type{10, 20, 40, 70, 100},
		CopiesPerCow:     4,
		Denominations:    currency.Table{0, 10, 50, 100, 200, 500},
		StartingMoney:    currency.Money{3, 3, 5, 0, 0, 0},
		MinPlayers:       2,
		MaxPlayers:       4,
		AutomaticPayment: true,
	}
}

func (o Options) validate() error {
	if len(o.CowTypes) == 0 {
		return errors.New("at least one cow type is required")
	}

	if o.CopiesPerCow < 1 {
		return errors.New("copies per cow must be at least 1")
	}

	if err := o.Denominations.Validate(); err != nil {
		return err
	}

	if len(o.StartingMoney) != len(o.Denominations) {
		return errors.New("starting money must match the denomination table")
	}

	if o.MinPlayers < 2 || o.MaxPlayers < o.MinPlayers {
		return errors.New("invalid player count bounds")
	}

	return nil
}
