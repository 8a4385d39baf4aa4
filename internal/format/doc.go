// Package format renders rotation and path results for the terminal and
// for machine consumers. Numbers are written in fixed notation and trimmed
// of trailing zeros.
package format
