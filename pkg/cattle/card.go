package cattle

import "strconv"

// Type is a cow card type. Its integer value doubles as the score weight of
// a completed set of that type.
type Type int

func (t Type) String() string {
	return "cow:" + strconv.Itoa(int(t))
}

// LowestType returns the smallest type in the list
// The lowest type is the donkey in the default configuration
func LowestType(types []Type) Type {
	lowest := types[0]
	for _, t := range types[1:] {
		if t < lowest {
			lowest = t
		}
	}

	return lowest
}
