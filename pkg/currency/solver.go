package currency

// Solve finds the best payment covering target out of the given holding.
// Best means smallest overpay, and among equal overpays the fewest cards.
//
// The holding is expanded into an explicit descending list of card faces and
// searched with an include/exclude recursion. A branch stops the first time
// its running sum reaches the target, so no candidate ever carries more
// cards than were needed to cross the threshold on that branch. Exponential
// in the number of cards, which stays in the low tens for any player.
//
// Returns ErrShortFunds if the holding is worth less than the target; the
// caller is expected to have checked affordability already.
func Solve(t Table, target int, holding Money) (Money, error) {
	faces := expand(t, holding)

	total := 0
	for _, f := range faces {
		total += f
	}

	if total < target {
		return nil, ErrShortFunds
	}

	s := &solver{
		faces:      faces,
		target:     target,
		minOverpay: -1,
	}
	s.search(0, 0, nil)

	return collapse(t, s.best), nil
}

type solver struct {
	faces  []int
	target int

	best       []int
	minOverpay int
}

func (s *solver) search(idx, sum int, selected []int) {
	if sum >= s.target {
		overpay := sum - s.target

		if s.minOverpay == -1 || overpay < s.minOverpay {
			s.minOverpay = overpay
			s.best = append([]int{}, selected...)
		} else if overpay == s.minOverpay && len(selected) < len(s.best) {
			s.best = append([]int{}, selected...)
		}

		return
	}

	if idx >= len(s.faces) {
		return
	}

	s.search(idx+1, sum+s.faces[idx], append(selected, s.faces[idx]))
	s.search(idx+1, sum, selected)
}

// expand turns the count vector into a flat list of card faces, highest first
func expand(t Table, m Money) []int {
	faces := make([]int, 0, m.CardCount())
	for i := len(m) - 1; i >= 0; i-- {
		for n := 0; n < m[i]; n++ {
			faces = append(faces, t[i])
		}
	}

	return faces
}

// collapse rebuilds a count vector from a list of card faces
func collapse(t Table, faces []int) Money {
	m := NewMoney(t)
	for _, f := range faces {
		for i, v := range t {
			if v == f {
				m[i]++
				break
			}
		}
	}

	return m
}
