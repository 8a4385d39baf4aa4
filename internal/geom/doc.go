/*
Package geom parses textual points and rotates them in the plane.

A point is written as `(x,y)` with optional whitespace around the
parentheses, the comma, and each number. A point set is either a single
point or a bracketed list such as `[(50,96) (510,296)]`.

Parsing happens at two layers with two failure policies. ParsePoint is
tolerant and reports a malformed point with a false ok value, which lets
ParsePoints skip bad members of a bracketed list. ParsePoints and
ParseCenter are strict and return typed errors whose messages are shown
to the user unchanged.
*/
package geom
