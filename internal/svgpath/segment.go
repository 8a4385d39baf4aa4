// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package svgpath

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoData is returned by Reformat when the path data is blank.
var ErrNoData = errors.New("no path data given")

// Segment is one path command with a single group of arguments.
type Segment struct {
	Command byte
	Args    []float64
}

// Path is an ordered list of segments.
type Path []Segment

// SyntaxError reports malformed path data.
type SyntaxError struct {
	Offset int
	Msg    string
}

// Error implements the error interface for SyntaxError.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid path data at offset %d: %s", e.Offset, e.Msg)
}

// argCount returns the number of arguments a command takes.
func argCount(cmd byte) (int, bool) {
	switch upper(cmd) {
	case 'M', 'L', 'T':
		return 2, true
	case 'H', 'V':
		return 1, true
	case 'C':
		return 6, true
	case 'S', 'Q':
		return 4, true
	case 'A':
		return 7, true
	case 'Z':
		return 0, true
	}
	return 0, false
}

func upper(cmd byte) byte {
	if cmd >= 'a' && cmd <= 'z' {
		return cmd - 'a' + 'A'
	}
	return cmd
}

func isRelative(cmd byte) bool {
	return cmd >= 'a' && cmd <= 'z'
}

// isArcFlag reports whether argument k of an arc is the large-arc or sweep flag.
func isArcFlag(cmd byte, k int) bool {
	return upper(cmd) == 'A' && (k == 3 || k == 4)
}

// IsFinite reports whether every argument in p is a finite number.
func (p Path) IsFinite() bool {
	for _, seg := range p {
		for _, v := range seg.Args {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return false
			}
		}
	}
	return true
}
