package financial

import "errors"

var (
	// ErrEmptyPopulation guards every aggregate over a member list; an
	// empty pool has no meaningful averages or ratios.
	ErrEmptyPopulation = errors.New("financial: empty member population")

	// ErrArithmeticDegeneracy is raised when a required ratio has a zero
	// denominator and no defined fallback exists.
	ErrArithmeticDegeneracy = errors.New("financial: division by zero with no defined fallback")
)
