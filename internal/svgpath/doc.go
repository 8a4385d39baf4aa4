/*
Package svgpath reads SVG path data (the `d` attribute) and writes it back
in a normalized form.

Implicit command repetition is expanded so every Segment holds exactly one
argument group. A path can be converted to absolute coordinates and rotated
about a center point before it is formatted again.
*/
package svgpath
