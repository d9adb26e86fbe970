package payroll

import "errors"

var (
	// ErrInvalidCategory is returned for any employee category outside the
	// recognized enumeration, before any arithmetic runs.
	ErrInvalidCategory = errors.New("unknown employee category")

	// ErrInvalidInput is returned for a gross salary that is negative or
	// otherwise unusable.
	ErrInvalidInput = errors.New("invalid gross salary")
)
