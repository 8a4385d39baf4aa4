// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package svgpath

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// Parse tokenizes SVG path data. Empty input yields an empty path.
func Parse(d string) (Path, error) {
	b := []byte(d)
	path := Path{}

	i := skipWhitespace(b, 0)
	for i < len(b) {
		cmd := b[i]
		n, ok := argCount(cmd)
		if !ok {
			return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unexpected character %q", cmd)}
		}
		if len(path) == 0 && upper(cmd) != 'M' {
			return nil, &SyntaxError{Offset: i, Msg: "path data must start with a moveto command"}
		}
		i++

		if n == 0 {
			path = append(path, Segment{Command: cmd})
			i = skipWhitespace(b, i)
			continue
		}

		for first := true; ; first = false {
			i = skipWhitespace(b, i)
			if !first && (i >= len(b) || !startsNumber(b[i])) {
				break
			}

			args := make([]float64, n)
			for k := range args {
				if k > 0 {
					i = skipSeparator(b, i)
				}
				if i >= len(b) {
					return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("unexpected end of data in %q command", cmd)}
				}

				if isArcFlag(cmd, k) {
					if b[i] != '0' && b[i] != '1' {
						return nil, &SyntaxError{Offset: i, Msg: "arc flag must be 0 or 1"}
					}
					args[k] = float64(b[i] - '0')
					i++
					continue
				}

				v, m := strconv.ParseFloat(b[i:])
				if m == 0 {
					return nil, &SyntaxError{Offset: i, Msg: fmt.Sprintf("expected number, got %q", b[i])}
				}
				if math.IsInf(v, 0) || math.IsNaN(v) {
					return nil, &SyntaxError{Offset: i, Msg: "number out of range"}
				}
				args[k] = v
				i += m
			}
			path = append(path, Segment{Command: cmd, Args: args})
			i = skipSeparator(b, i)

			// Extra coordinate pairs after a moveto are implicit linetos.
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		}
	}
	return path, nil
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func skipWhitespace(b []byte, i int) int {
	for i < len(b) && isWhitespace(b[i]) {
		i++
	}
	return i
}

// skipSeparator skips whitespace with at most one comma in it.
func skipSeparator(b []byte, i int) int {
	i = skipWhitespace(b, i)
	if i < len(b) && b[i] == ',' {
		i = skipWhitespace(b, i+1)
	}
	return i
}

func startsNumber(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+'
}
