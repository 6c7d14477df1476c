package transform

import "github.com/bodgit/chargen"

// Diff summarises a pixel comparison between two characters.
type Diff struct {
	DifferingPixels int
	TotalPixels     int
}

// CompareTrimmed measures how alike two characters are regardless of their
// position and canvas size. Both are trimmed to their bounding boxes, the
// smaller is centered inside the other's dimensions using the same
// floor-based centering rule as Resize, and cell-wise mismatches are counted
// over the union rectangle. Two entirely off characters compare as identical.
// Lower average difference means more similar, which is how a library ranks
// lookalike characters.
func CompareTrimmed(a, b chargen.Character) Diff {
	ta, tb := Trim(a), Trim(b)

	w := ta.Width()
	if tb.Width() > w {
		w = tb.Width()
	}
	h := ta.Height()
	if tb.Height() > h {
		h = tb.Height()
	}

	ra := Resize(ta, w, h, chargen.AnchorCenter)
	rb := Resize(tb, w, h, chargen.AnchorCenter)

	d := Diff{TotalPixels: w * h}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ra[y][x] != rb[y][x] {
				d.DifferingPixels++
			}
		}
	}

	return d
}
