/*
Package chargen implements the character set model used by bitmap character
generator ROMs as found in vintage computers and trainer boards.

A character is a rectangular grid of on/off pixels up to 16 by 16. A set of
characters shares one configuration describing how each row of pixels is
packed into bytes; the configuration has two independent axes, the bit order
within each byte and which side of a row carries the unused filler bits when
the width is not a multiple of eight.
*/
package chargen

import "strings"

// Character is one glyph's pixel grid, stored row-major. Every row must have
// the same length. A true cell is an "on" pixel.
type Character [][]bool

// New returns an all-off character of the given dimensions. Dimensions are
// clamped to the valid range.
func New(width, height int) Character {
	width, height = ClampDimension(width), ClampDimension(height)
	c := make(Character, height)
	for y := range c {
		c[y] = make([]bool, width)
	}
	return c
}

// Width returns the number of columns.
func (c Character) Width() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

// Height returns the number of rows.
func (c Character) Height() int {
	return len(c)
}

// Clone returns a deep copy sharing no storage with c.
func (c Character) Clone() Character {
	d := make(Character, len(c))
	for y, row := range c {
		d[y] = append([]bool(nil), row...)
	}
	return d
}

// Equal reports whether two characters have identical dimensions and pixels.
func (c Character) Equal(o Character) bool {
	if len(c) != len(o) {
		return false
	}
	for y, row := range c {
		if len(row) != len(o[y]) {
			return false
		}
		for x, on := range row {
			if on != o[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders the grid with '#' for on and '.' for off, one row per line.
func (c Character) String() string {
	var b strings.Builder
	for y, row := range c {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, on := range row {
			if on {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
