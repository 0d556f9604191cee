package cattle

import (
	"errors"
	"math/rand"
	"time"
)

// ErrStackEmpty is an error when Draw() is attempted and there are no more cards
var ErrStackEmpty = errors.New("card stack is empty")

// Stack is the shared draw pile of cow cards, consumed from the front.
// Once the last card is drawn the stack is empty for the rest of the game;
// the only way back is UndoDraw for a cancelled round.
type Stack struct {
	cards  []Type
	donkey Type
	empty  bool
	seed   int64
	rng    *rand.Rand
}

// NewStack returns an unshuffled stack with copies of each type.
// You must call Shuffle() before play. The lowest type is the donkey.
func NewStack(types []Type, copies int) *Stack {
	cards := make([]Type, 0, len(types)*copies)
	for _, t := range types {
		for i := 0; i < copies; i++ {
			cards = append(cards, t)
		}
	}

	return &Stack{
		cards:  cards,
		donkey: LowestType(types),
		seed:   -1,
	}
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (s *Stack) SetSeed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
}

// Shuffle will shuffle the stack
// You can manually specify the seed, or you can leave it as 0 for a
// time-based seed. The seed used is available from GetSeed().
func (s *Stack) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.SetSeed(seed)

	for j := len(s.cards) - 1; j > 0; j-- {
		i := s.rng.Intn(j + 1)

		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// GetSeed returns the seed used to shuffle the stack
func (s *Stack) GetSeed() int64 {
	return s.seed
}

// Draw pops and returns the front card.
// Drawing the last card marks the stack empty. Returns ErrStackEmpty when
// no cards remain.
func (s *Stack) Draw() (Type, error) {
	if len(s.cards) == 0 {
		return 0, ErrStackEmpty
	}

	card := s.cards[0]
	s.cards = s.cards[1:]

	if len(s.cards) == 0 {
		s.empty = true
	}

	return card, nil
}

// UndoDraw reinserts a card at the front of the stack.
// Used only when a round is cancelled before settlement.
func (s *Stack) UndoDraw(card Type) {
	s.cards = append([]Type{card}, s.cards...)
	s.empty = false
}

// IsEmpty returns true once the last card has been drawn
func (s *Stack) IsEmpty() bool {
	return s.empty
}

// Remaining returns the number of cards left
func (s *Stack) Remaining() int {
	return len(s.cards)
}

// Peek returns the front card without drawing it
func (s *Stack) Peek() (Type, bool) {
	if len(s.cards) == 0 {
		return 0, false
	}

	return s.cards[0], true
}

// IsDonkey returns true if the card is the designated donkey type
func (s *Stack) IsDonkey(card Type) bool {
	return card == s.donkey
}

// Donkey returns the designated donkey type
func (s *Stack) Donkey() Type {
	return s.donkey
}
