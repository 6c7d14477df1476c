/*
Package transform implements the geometric operations offered by the
character editor: invert, flips, rotation, shifting, trimming, anchored
resizing and similarity comparison.

Every operation is pure. The input character is never modified and a freshly
allocated grid is always returned, so callers are free to keep references to
earlier states, which is what the undo history does.
*/
package transform

import "github.com/bodgit/chargen"

// RotateDirection selects a 90 degree rotation.
type RotateDirection int

const (
	RotateLeft RotateDirection = iota
	RotateRight
)

// ShiftDirection selects which way Shift moves the pixels.
type ShiftDirection int

const (
	ShiftUp ShiftDirection = iota
	ShiftDown
	ShiftLeft
	ShiftRight
)

// Invert negates every cell.
func Invert(c chargen.Character) chargen.Character {
	d := c.Clone()
	for y, row := range d {
		for x := range row {
			row[x] = !c[y][x]
		}
	}
	return d
}

// FlipHorizontal reverses the column order of every row.
func FlipHorizontal(c chargen.Character) chargen.Character {
	w := c.Width()
	d := c.Clone()
	for y, row := range d {
		for x := range row {
			row[x] = c[y][w-1-x]
		}
	}
	return d
}

// FlipVertical reverses the row order.
func FlipVertical(c chargen.Character) chargen.Character {
	h := c.Height()
	d := c.Clone()
	for y := range d {
		copy(d[y], c[h-1-y])
	}
	return d
}

// Rotate turns the character 90 degrees in the given direction. The result
// has swapped dimensions; callers wanting to stay within a fixed box resize
// afterwards.
func Rotate(c chargen.Character, dir RotateDirection) chargen.Character {
	w, h := c.Width(), c.Height()
	d := make(chargen.Character, w)
	for y := range d {
		d[y] = make([]bool, h)
		for x := range d[y] {
			if dir == RotateRight {
				d[y][x] = c[h-1-x][y]
			} else {
				d[y][x] = c[x][w-1-y]
			}
		}
	}
	return d
}

// Shift moves every pixel one cell in the given direction. The vacated edge
// is cleared, or filled with the pixels that fell off the opposite edge when
// wrap is true.
func Shift(c chargen.Character, dir ShiftDirection, wrap bool) chargen.Character {
	w, h := c.Width(), c.Height()
	d := chargen.New(w, h)

	var dx, dy int
	switch dir {
	case ShiftUp:
		dy = -1
	case ShiftDown:
		dy = 1
	case ShiftLeft:
		dx = -1
	case ShiftRight:
		dx = 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x-dx, y-dy
			if wrap {
				sx, sy = (sx+w)%w, (sy+h)%h
			} else if sx < 0 || sx >= w || sy < 0 || sy >= h {
				continue
			}
			d[y][x] = c[sy][sx]
		}
	}

	return d
}

// Box is the smallest rectangle containing all on pixels, inclusive bounds.
type Box struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// BoundingBox returns the bounding box of the on pixels. ok is false when the
// character is entirely off; callers must handle that before computing
// offsets from the box.
func BoundingBox(c chargen.Character) (box Box, ok bool) {
	box = Box{MinRow: c.Height(), MinCol: c.Width(), MaxRow: -1, MaxCol: -1}
	for y, row := range c {
		for x, on := range row {
			if !on {
				continue
			}
			ok = true
			if y < box.MinRow {
				box.MinRow = y
			}
			if y > box.MaxRow {
				box.MaxRow = y
			}
			if x < box.MinCol {
				box.MinCol = x
			}
			if x > box.MaxCol {
				box.MaxCol = x
			}
		}
	}
	if !ok {
		return Box{}, false
	}
	return box, true
}

// Trim crops the character to its bounding box. An entirely off character
// trims to a 1x1 off character, never an empty grid.
func Trim(c chargen.Character) chargen.Character {
	box, ok := BoundingBox(c)
	if !ok {
		return chargen.New(1, 1)
	}

	d := make(chargen.Character, box.MaxRow-box.MinRow+1)
	for y := range d {
		d[y] = append([]bool(nil), c[box.MinRow+y][box.MinCol:box.MaxCol+1]...)
	}
	return d
}
