package currency

import "errors"

// ErrEmptyTable is returned when a denomination table has no entries
var ErrEmptyTable = errors.New("denomination table is empty")

// ErrShortFunds is returned by Solve when the holding cannot cover the target.
// Affordability must be verified before asking for a payment.
var ErrShortFunds = errors.New("holding is worth less than the target value")
