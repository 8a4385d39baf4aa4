// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package geom

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// pointCandidateRegex matches an opening parenthesis up to the next closing
// one. Nested or escaped parentheses are not supported.
var pointCandidateRegex = regexp.MustCompile(`\([^)]*\)`)

// ParsePoint parses a single `(x,y)` token. It reports false instead of an
// error so callers can decide whether a malformed point is fatal.
func ParsePoint(text string) (Point, bool) {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return Point{}, false
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return Point{}, false
	}

	x, ok := parseCoordinate(parts[0])
	if !ok {
		return Point{}, false
	}
	y, ok := parseCoordinate(parts[1])
	if !ok {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// parseCoordinate parses one trimmed number and rejects NaN and infinities.
func parseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParsePoints parses either a single point or a bracketed list of points.
// Inside brackets, anything that is not a well-formed point is skipped. It
// fails with a *PointsFormatError when no point at all is found.
func ParsePoints(text string) (PointSet, error) {
	s := strings.TrimSpace(text)

	var points PointSet
	switch {
	case strings.HasPrefix(s, "["):
		if inner, ok := strings.CutSuffix(s[1:], "]"); ok {
			points = scanPoints(inner)
		}
	case strings.HasPrefix(s, "("):
		if p, ok := ParsePoint(s); ok {
			points = PointSet{p}
		}
	}

	if len(points) == 0 {
		return nil, &PointsFormatError{Input: s}
	}
	return points, nil
}

// scanPoints extracts every parenthesized candidate left to right and keeps
// the ones that parse.
func scanPoints(s string) PointSet {
	candidates := pointCandidateRegex.FindAllString(s, -1)

	points := make(PointSet, 0, len(candidates))
	for _, c := range candidates {
		if p, ok := ParsePoint(c); ok {
			points = append(points, p)
		}
	}
	return points
}

// ParseCenter parses the rotation pivot. Only the single-point form is
// accepted.
func ParseCenter(text string) (Point, error) {
	if !strings.HasPrefix(strings.TrimSpace(text), "(") {
		return Point{}, &CenterFormatError{Input: text}
	}
	p, ok := ParsePoint(text)
	if !ok {
		return Point{}, &CenterFormatError{Input: text}
	}
	return p, nil
}
