/*
Package sheet converts between font sheet images and character sets.

A font sheet is an ordinary bitmap image holding a grid of equally sized
character cells, read left to right then top to bottom. Reading reduces the
image to two colors first, quantizing when needed, and treats the darker
color as an on pixel. Writing produces a two color paletted image suitable
for saving as a preview file.
*/
package sheet

import "image/color"

// luminance returns a perceptual brightness for ordering colors; the darker
// color of a two color sheet is the ink.
func luminance(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return 299*r + 587*g + 114*b
}
