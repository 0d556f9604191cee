package currency

import "fmt"

// Table is the ascending list of money card denominations.
// The first entry may be 0; it acts as a placeholder slot and never
// contributes value.
type Table []int

// Validate ensures the table is non-empty and strictly ascending
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}

	for i, v := range t {
		if v < 0 {
			return fmt.Errorf("denomination at slot %d is negative", i)
		}

		if i > 0 && v <= t[i-1] {
			return fmt.Errorf("denominations must be strictly ascending (slot %d)", i)
		}
	}

	return nil
}

// Money is a per-denomination card count vector. Slot i holds the number of
// cards of Table[i] the owner has.
type Money []int

// NewMoney returns a zeroed vector sized for the table
func NewMoney(t Table) Money {
	return make(Money, len(t))
}

// Clone returns a copy of the vector
func (m Money) Clone() Money {
	c := make(Money, len(m))
	copy(c, m)
	return c
}

// Add adds the counts of v element-wise
func (m Money) Add(v Money) {
	for i := range v {
		m[i] += v[i]
	}
}

// Sub subtracts the counts of v element-wise.
// Callers must check CanAfford first; subtracting past zero is a contract
// violation and panics.
func (m Money) Sub(v Money) {
	for i := range v {
		if m[i] < v[i] {
			panic(fmt.Sprintf("money underflow in slot %d: have %d, removing %d", i, m[i], v[i]))
		}

		m[i] -= v[i]
	}
}

// CanAfford returns true if every slot of (m - v) would remain >= 0
func (m Money) CanAfford(v Money) bool {
	for i := range v {
		if m[i] < v[i] {
			return false
		}
	}

	return true
}

// Value returns the dot product of the vector and the denomination table
func (m Money) Value(t Table) int {
	total := 0
	for i, count := range m {
		total += count * t[i]
	}

	return total
}

// CardCount returns the total number of money cards in the vector
func (m Money) CardCount() int {
	total := 0
	for _, count := range m {
		total += count
	}

	return total
}

// Equal returns true if both vectors hold the same counts
func (m Money) Equal(v Money) bool {
	if len(m) != len(v) {
		return false
	}

	for i := range m {
		if m[i] != v[i] {
			return false
		}
	}

	return true
}
