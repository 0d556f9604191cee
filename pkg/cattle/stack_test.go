package cattle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTypes = []Type{10, 20, 40, 70, 100}

func TestNewStack(t *testing.T) {
	s := NewStack(testTypes, 4)
	assert.Equal(t, 20, s.Remaining())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, Type(10), s.Donkey())
	assert.True(t, s.IsDonkey(10))
	assert.False(t, s.IsDonkey(20))
}

func TestStack_ShuffleIsDeterministicWithSeed(t *testing.T) {
	a := NewStack(testTypes, 4)
	a.Shuffle(42)

	b := NewStack(testTypes, 4)
	b.Shuffle(42)

	assert.Equal(t, int64(42), a.GetSeed())
	for a.Remaining() > 0 {
		ca, errA := a.Draw()
		cb, errB := b.Draw()
		assert.NoError(t, errA)
		assert.NoError(t, errB)
		assert.Equal(t, ca, cb)
	}
}

func TestStack_DrawToEmpty(t *testing.T) {
	s := NewStack([]Type{10}, 2)

	card, err := s.Draw()
	assert.NoError(t, err)
	assert.Equal(t, Type(10), card)
	assert.False(t, s.IsEmpty())

	_, err = s.Draw()
	assert.NoError(t, err)
	assert.True(t, s.IsEmpty())

	_, err = s.Draw()
	assert.Equal(t, ErrStackEmpty, err)
}

func TestStack_UndoDraw(t *testing.T) {
	s := NewStack([]Type{10, 20}, 1)
	s.Shuffle(1)

	first, err := s.Draw()
	assert.NoError(t, err)

	s.UndoDraw(first)
	assert.Equal(t, 2, s.Remaining())

	again, err := s.Draw()
	assert.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestStack_UndoDrawClearsEmpty(t *testing.T) {
	s := NewStack([]Type{10}, 1)

	card, err := s.Draw()
	assert.NoError(t, err)
	assert.True(t, s.IsEmpty())

	s.UndoDraw(card)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 1, s.Remaining())
}

func TestStack_Peek(t *testing.T) {
	s := NewStack([]Type{10}, 1)

	card, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, Type(10), card)
	assert.Equal(t, 1, s.Remaining())

	_, _ = s.Draw()
	_, ok = s.Peek()
	assert.False(t, ok)
}

func TestStack_ShufflePanicsOnNegativeSeed(t *testing.T) {
	assert.Panics(t, func() {
		NewStack(testTypes, 4).Shuffle(-1)
	})
}
