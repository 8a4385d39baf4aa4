package geom

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned when a rotation leaves the float64 range.
var ErrOutOfRange = errors.New("rotated coordinates are out of range")

// PointsFormatError is returned by ParsePoints when no valid point could be
// found in the input.
type PointsFormatError struct {
	// Input is the trimmed input exactly as it was given.
	Input string
}

// Error implements the error interface for PointsFormatError.
func (e *PointsFormatError) Error() string {
	return fmt.Sprintf(`Invalid points format: %s. Use "(x,y)" or "[(x,y) (x,y)]".`, e.Input)
}

// CenterFormatError is returned by ParseCenter for anything that is not a
// single parenthesized point.
type CenterFormatError struct {
	// Input is the argument as received, untrimmed.
	Input string
}

// Error implements the error interface for CenterFormatError.
func (e *CenterFormatError) Error() string {
	return fmt.Sprintf(`Invalid center format: %s. Use "(cx,cy)" or pass separate cx cy.`, e.Input)
}
