package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTable = Table{0, 10, 50, 100, 200, 500}

func TestTable_Validate(t *testing.T) {
	assert.NoError(t, testTable.Validate())
	assert.Equal(t, ErrEmptyTable, Table{}.Validate())
	assert.Error(t, Table{0, 10, 10}.Validate())
	assert.Error(t, Table{0, 50, 10}.Validate())
	assert.Error(t, Table{-10, 0, 10}.Validate())
}

func TestMoney_Value(t *testing.T) {
	m := Money{3, 3, 5, 0, 0, 0}
	assert.Equal(t, 280, m.Value(testTable))
	assert.Equal(t, 0, NewMoney(testTable).Value(testTable))
	assert.Equal(t, 500, Money{0, 0, 0, 0, 0, 1}.Value(testTable))
}

func TestMoney_CardCount(t *testing.T) {
	assert.Equal(t, 11, Money{3, 3, 5, 0, 0, 0}.CardCount())
	assert.Equal(t, 0, NewMoney(testTable).CardCount())
}

func TestMoney_AddSubRoundTrip(t *testing.T) {
	m := Money{3, 3, 5, 0, 0, 0}
	v := Money{1, 2, 3, 0, 0, 0}

	original := m.Clone()
	m.Sub(v)
	assert.Equal(t, Money{2, 1, 2, 0, 0, 0}, m)

	m.Add(v)
	assert.Equal(t, original, m)
}

func TestMoney_SubPanicsOnUnderflow(t *testing.T) {
	m := Money{0, 1, 0, 0, 0, 0}
	assert.Panics(t, func() {
		m.Sub(Money{0, 2, 0, 0, 0, 0})
	})
}

func TestMoney_CanAfford(t *testing.T) {
	m := Money{3, 3, 5, 0, 0, 0}

	assert.True(t, m.CanAfford(Money{3, 3, 5, 0, 0, 0}))
	assert.True(t, m.CanAfford(NewMoney(testTable)))
	assert.False(t, m.CanAfford(Money{4, 0, 0, 0, 0, 0}))
	assert.False(t, m.CanAfford(Money{0, 0, 0, 1, 0, 0}))

	// CanAfford is true iff every slot of m-v stays >= 0
	for slot := 0; slot < len(testTable); slot++ {
		v := NewMoney(testTable)
		v[slot] = m[slot]
		assert.True(t, m.CanAfford(v))

		v[slot]++
		assert.False(t, m.CanAfford(v))
	}
}

func TestMoney_Equal(t *testing.T) {
	assert.True(t, Money{1, 2}.Equal(Money{1, 2}))
	assert.False(t, Money{1, 2}.Equal(Money{2, 1}))
	assert.False(t, Money{1, 2}.Equal(Money{1, 2, 0}))
}
