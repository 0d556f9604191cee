package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolve_ExactChange(t *testing.T) {
	holding := Money{0, 3, 1, 0, 0, 0} // 3x10, 1x50

	payment, err := Solve(testTable, 50, holding)
	assert.NoError(t, err)
	assert.Equal(t, Money{0, 0, 1, 0, 0, 0}, payment)
	assert.Equal(t, 50, payment.Value(testTable))
}

func TestSolve_PrefersFewerCardsOnEqualOverpay(t *testing.T) {
	// 20 can be paid as 2x10 or, with overpay, 1x50. Exact change wins.
	holding := Money{0, 2, 1, 0, 0, 0}
	payment, err := Solve(testTable, 20, holding)
	assert.NoError(t, err)
	assert.Equal(t, Money{0, 2, 0, 0, 0, 0}, payment)

	// 100 as 1x100 beats 2x50
	holding = Money{0, 0, 2, 1, 0, 0}
	payment, err = Solve(testTable, 100, holding)
	assert.NoError(t, err)
	assert.Equal(t, Money{0, 0, 0, 1, 0, 0}, payment)
}

func TestSolve_MinimizesOverpayFirst(t *testing.T) {
	// Target 60 from 1x50 + 2x10: 50+10 is exact, a lone 50 is short,
	// 50+10+10 overpays
	holding := Money{0, 2, 1, 0, 0, 0}
	payment, err := Solve(testTable, 60, holding)
	assert.NoError(t, err)
	assert.Equal(t, Money{0, 1, 1, 0, 0, 0}, payment)

	// Target 30 from 1x50 + 2x10: 10+10 = 20 is short, so the best
	// reachable is overpay. 50 alone (overpay 20, 1 card) beats
	// 50+10 (not explored: branch stops at 50) and 10+10+50 (overpay 40).
	payment, err = Solve(testTable, 30, holding)
	assert.NoError(t, err)
	assert.Equal(t, Money{0, 0, 1, 0, 0, 0}, payment)
}

func TestSolve_NeverUnderpays(t *testing.T) {
	holding := Money{2, 4, 3, 2, 1, 1}
	totalValue := holding.Value(testTable)

	for target := 0; target <= totalValue; target += 35 {
		payment, err := Solve(testTable, target, holding)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, payment.Value(testTable), target)
		assert.True(t, holding.CanAfford(payment))
	}
}

func TestSolve_OptimalAgainstBruteForce(t *testing.T) {
	holding := Money{0, 3, 2, 1, 0, 0} // 30 + 100 + 100 = 230 total

	for target := 10; target <= 230; target += 10 {
		payment, err := Solve(testTable, target, holding)
		assert.NoError(t, err)

		bestOverpay, bestCount := bruteForceBest(testTable, target, holding)
		assert.Equal(t, bestOverpay, payment.Value(testTable)-target, "target %d", target)
		assert.Equal(t, bestCount, payment.CardCount(), "target %d", target)
	}
}

func TestSolve_ZeroCardsStayHome(t *testing.T) {
	// Placeholder zero-value cards never appear in a payment
	holding := Money{3, 3, 5, 0, 0, 0}
	payment, err := Solve(testTable, 100, holding)
	assert.NoError(t, err)
	assert.Equal(t, 0, payment[0])
	assert.Equal(t, 100, payment.Value(testTable))
}

func TestSolve_ShortFunds(t *testing.T) {
	holding := Money{0, 1, 0, 0, 0, 0}
	payment, err := Solve(testTable, 50, holding)
	assert.Equal(t, ErrShortFunds, err)
	assert.Nil(t, payment)
}

// bruteForceBest enumerates every subset of the holding and returns the
// lexicographically best (overpay, card count) among reaching subsets
func bruteForceBest(table Table, target int, holding Money) (int, int) {
	faces := expand(table, holding)
	n := len(faces)

	bestOverpay, bestCount := -1, -1
	for mask := 0; mask < (1 << n); mask++ {
		sum, count := 0, 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				sum += faces[i]
				count++
			}
		}

		if sum < target {
			continue
		}

		overpay := sum - target
		if bestOverpay == -1 || overpay < bestOverpay || (overpay == bestOverpay && count < bestCount) {
			bestOverpay = overpay
			bestCount = count
		}
	}

	return bestOverpay, bestCount
}
