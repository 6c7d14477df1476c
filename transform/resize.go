package transform

import "github.com/bodgit/chargen"

// floorDiv divides rounding toward negative infinity, unlike Go's integer
// division which truncates toward zero.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// offset returns where the old extent starts within the new extent along one
// axis. Centering uses the floor of the (possibly negative) half difference;
// this floor-based rule for odd size differences is a deliberate, arbitrary
// tie-break shared with CompareTrimmed, and must not silently become a
// ceiling-based one or previously packed and shared data stops lining up.
func offset(a chargen.Alignment, newExtent, oldExtent int) int {
	switch a {
	case chargen.AlignCenter:
		return floorDiv(newExtent-oldExtent, 2)
	case chargen.AlignEnd:
		return newExtent - oldExtent
	}
	return 0
}

// Resize places the existing grid inside a new canvas of the given dimensions
// so that the anchor edge or corner of the old content aligns with the same
// edge or corner of the new canvas. Content falling outside the new bounds is
// cropped; newly exposed cells are off. Dimensions are clamped to the valid
// range.
func Resize(c chargen.Character, width, height int, anchor chargen.Anchor) chargen.Character {
	width, height = chargen.ClampDimension(width), chargen.ClampDimension(height)

	dx := offset(anchor.Horizontal(), width, c.Width())
	dy := offset(anchor.Vertical(), height, c.Height())

	d := chargen.New(width, height)
	for y := range d {
		sy := y - dy
		if sy < 0 || sy >= c.Height() {
			continue
		}
		for x := range d[y] {
			sx := x - dx
			if sx < 0 || sx >= c.Width() {
				continue
			}
			d[y][x] = c[sy][sx]
		}
	}

	return d
}
