package game

import (
	"errors"
	"fmt"
)

// ErrBidTooLow is returned when a bid does not exceed the current highest bid
var ErrBidTooLow = errors.New("bid is too low")

// ErrInsufficientFunds is returned when a player cannot cover an amount of money
var ErrInsufficientFunds = errors.New("player has not enough money")

// ErrInsufficientCows is returned when a player does not hold the required cow cards
var ErrInsufficientCows = errors.New("player has not enough cows")

// ErrNoJointCows is returned when a trade is attempted and the challenger
// shares no cow type with any other active player
var ErrNoJointCows = errors.New("there are no joint cows")

// ErrStackEmpty is returned when an auction is attempted after the last card was drawn
var ErrStackEmpty = errors.New("card stack is empty")

// ErrCancelled is returned by a decision source that withdraws mid-round.
// The runner reverses any card draw and inflation already applied.
var ErrCancelled = errors.New("round cancelled")

// ErrGameOver is returned when an action is attempted on an ended game
var ErrGameOver = errors.New("game is over")

// ErrGameNotOver is returned when final scores are requested too early
var ErrGameNotOver = errors.New("game is not over")

// ErrShortPayment is returned when a manually chosen payment does not cover the owed amount
var ErrShortPayment = errors.New("payment does not cover the owed amount")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected between %d and %d players, got %d", p.Min, p.Max, p.Got)
}
