package sheet

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/bodgit/chargen"
	"github.com/ericpauley/go-quantize/quantize"
)

var errCellSize = errors.New("sheet: cell dimensions must be within the character size range")

// toTwoColors reduces any image to a paletted image with at most two colors.
func toTwoColors(m image.Image) *image.Paletted {
	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok && len(cp) <= 2 {
			pm = image.NewPaletted(b, cp)
			draw.Draw(pm, b, m, b.Min, draw.Src)
		}
	}
	if pm == nil || len(pm.Palette) > 2 {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, 2), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	return pm
}

// inkIndex returns the palette index treated as an on pixel: the darker of
// two colors, or the sole color if it is closer to black than to white.
func inkIndex(p color.Palette) (uint8, bool) {
	switch len(p) {
	case 0:
		return 0, false
	case 1:
		return 0, luminance(p[0]) < 500*0xffff
	}
	if luminance(p[0]) < luminance(p[1]) {
		return 0, true
	}
	return 1, true
}

// Decode slices a font sheet image into characters of the given cell size,
// left to right then top to bottom. Partial cells at the right and bottom
// edges are dropped, the same tolerance the codec extends to trailing
// garbage in ROM dumps.
func Decode(m image.Image, cellWidth, cellHeight int) ([]chargen.Character, error) {
	if cellWidth < chargen.MinDimension || cellWidth > chargen.MaxDimension ||
		cellHeight < chargen.MinDimension || cellHeight > chargen.MaxDimension {
		return nil, errCellSize
	}

	pm := toTwoColors(m)
	ink, hasInk := inkIndex(pm.Palette)

	b := pm.Bounds()
	cols, rows := b.Dx()/cellWidth, b.Dy()/cellHeight

	cs := make([]chargen.Character, 0, cols*rows)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			c := chargen.New(cellWidth, cellHeight)
			for y := 0; y < cellHeight; y++ {
				for x := 0; x < cellWidth; x++ {
					if hasInk && pm.ColorIndexAt(b.Min.X+cx*cellWidth+x, b.Min.Y+cy*cellHeight+y) == ink {
						c[y][x] = true
					}
				}
			}
			cs = append(cs, c)
		}
	}

	return cs, nil
}
