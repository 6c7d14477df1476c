/*
Package codec packs characters into the raw byte layout of a character
generator ROM and back.

Each row of pixels occupies ceil(width/8) bytes and each character occupies
one row's bytes times the height, so the packed form of a set is simply the
characters concatenated. Two independent axes of the configuration control
the layout within a row: the bit order decides whether the most or least
significant bit of a byte is its leftmost pixel, and the padding direction
decides which side of the row carries the unused filler bits when the width
is not a multiple of eight. Filler bits are always written as zero and
ignored when reading.
*/
package codec

import "github.com/bodgit/chargen"

// bitPosition maps logical pixel x of a row to the byte index within the row
// and the mask selecting its bit. With left padding the filler bits lead the
// row, shifting every pixel toward the row's right edge.
func bitPosition(x int, cfg chargen.Config) (int, byte) {
	if cfg.Padding == chargen.PaddingLeft {
		x += cfg.BytesPerRow()*8 - cfg.Width
	}

	var mask byte
	if cfg.BitOrder == chargen.MSBFirst {
		mask = 0x80 >> (x & 7)
	} else {
		mask = 1 << (x & 7)
	}

	return x >> 3, mask
}

// CharacterBytes packs a single character. Exporters that emit textual byte
// values must use this so their output stays byte-identical to Encode.
func CharacterBytes(c chargen.Character, cfg chargen.Config) []byte {
	bytesPerRow := cfg.BytesPerRow()
	b := make([]byte, cfg.BytesPerCharacter())

	for y := 0; y < cfg.Height; y++ {
		if y >= len(c) {
			break
		}
		for x := 0; x < cfg.Width && x < len(c[y]); x++ {
			if !c[y][x] {
				continue
			}
			i, mask := bitPosition(x, cfg)
			b[y*bytesPerRow+i] |= mask
		}
	}

	return b
}

// Encode packs a character set into its ROM byte layout, one character after
// another.
func Encode(cs []chargen.Character, cfg chargen.Config) []byte {
	b := make([]byte, 0, len(cs)*cfg.BytesPerCharacter())
	for _, c := range cs {
		b = append(b, CharacterBytes(c, cfg)...)
	}
	return b
}

// Decode unpacks a byte buffer into characters. The buffer is sliced into as
// many whole characters as it holds; a trailing partial character is silently
// dropped, as ROM dumps frequently carry trailing garbage.
func Decode(b []byte, cfg chargen.Config) []chargen.Character {
	bytesPerRow := cfg.BytesPerRow()
	bytesPerChar := cfg.BytesPerCharacter()

	cs := make([]chargen.Character, 0, len(b)/bytesPerChar)
	for off := 0; off+bytesPerChar <= len(b); off += bytesPerChar {
		c := chargen.New(cfg.Width, cfg.Height)
		for y := 0; y < cfg.Height; y++ {
			row := b[off+y*bytesPerRow:]
			for x := 0; x < cfg.Width; x++ {
				i, mask := bitPosition(x, cfg)
				c[y][x] = row[i]&mask != 0
			}
		}
		cs = append(cs, c)
	}

	return cs
}
