package sheet

import (
	"image"
	"image/color"

	"github.com/bodgit/chargen"
)

// Encode renders a character set as a two color paletted image, perRow
// characters per row of the sheet; perRow of zero or less puts the whole set
// on one row. Characters are assumed to share the dimensions of the first
// one, as all characters in a set share one configuration.
func Encode(cs []chargen.Character, perRow int) *image.Paletted {
	palette := color.Palette{color.White, color.Black}

	if len(cs) == 0 {
		return image.NewPaletted(image.Rect(0, 0, 0, 0), palette)
	}
	if perRow <= 0 || perRow > len(cs) {
		perRow = len(cs)
	}

	w, h := cs[0].Width(), cs[0].Height()
	rows := (len(cs) + perRow - 1) / perRow

	pm := image.NewPaletted(image.Rect(0, 0, perRow*w, rows*h), palette)
	for i, c := range cs {
		ox, oy := (i%perRow)*w, (i/perRow)*h
		for y := 0; y < h && y < c.Height(); y++ {
			for x := 0; x < w && x < c.Width(); x++ {
				if c[y][x] {
					pm.SetColorIndex(ox+x, oy+y, 1)
				}
			}
		}
	}

	return pm
}
