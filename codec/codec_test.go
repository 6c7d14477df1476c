package codec

import (
	"math/rand"
	"testing"

	"github.com/bodgit/chargen"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomCharacters(r *rand.Rand, n, width, height int) []chargen.Character {
	cs := make([]chargen.Character, n)
	for i := range cs {
		c := chargen.New(width, height)
		for y := range c {
			for x := range c[y] {
				c[y][x] = r.Intn(2) == 1
			}
		}
		cs[i] = c
	}
	return cs
}

func TestRoundTripAllConfigurations(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for width := chargen.MinDimension; width <= chargen.MaxDimension; width++ {
		for height := chargen.MinDimension; height <= chargen.MaxDimension; height++ {
			for _, padding := range []chargen.Padding{chargen.PaddingRight, chargen.PaddingLeft} {
				for _, bitOrder := range []chargen.BitOrder{chargen.MSBFirst, chargen.LSBFirst} {
					cfg := chargen.Config{Width: width, Height: height, Padding: padding, BitOrder: bitOrder}

					cs := randomCharacters(r, 3, width, height)
					got := Decode(Encode(cs, cfg), cfg)

					require.Len(t, got, len(cs), "%+v", cfg)
					for i := range cs {
						require.True(t, cs[i].Equal(got[i]), "%+v character %d:\n%s", cfg, i, cmp.Diff(cs[i], got[i]))
					}
				}
			}
		}
	}
}

func TestEncodeAfterDecodeReproducesBuffer(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	// Widths that are byte multiples have no filler bits, so any buffer of
	// whole characters survives a decode/encode cycle bit for bit.
	for _, width := range []int{8, 16} {
		cfg := chargen.Config{Width: width, Height: 11}

		b := make([]byte, 5*cfg.BytesPerCharacter())
		r.Read(b)

		assert.Equal(t, b, Encode(Decode(b, cfg), cfg))
	}
}

func TestDecodeConcreteCircle(t *testing.T) {
	cfg := chargen.Config{Width: 8, Height: 8}
	b := []byte{0x3c, 0x42, 0x81, 0x81, 0x81, 0x81, 0x42, 0x3c}

	cs := Decode(b, cfg)
	require.Len(t, cs, 1)

	// 0x3c is 00111100.
	assert.Equal(t, []bool{false, false, true, true, true, true, false, false}, cs[0][0])

	assert.Equal(t, b, Encode(cs, cfg))
}

func TestDecodeDropsTrailingPartialCharacter(t *testing.T) {
	cfg := chargen.Config{Width: 8, Height: 8}

	b := make([]byte, 2*cfg.BytesPerCharacter()+3)
	for i := range b {
		b[i] = byte(i)
	}

	assert.Len(t, Decode(b, cfg), 2)
	assert.Empty(t, Decode(b[:cfg.BytesPerCharacter()-1], cfg))
}

func TestPaddingPlacement(t *testing.T) {
	// A 5 wide row with only the leftmost pixel set.
	c := chargen.New(5, 1)
	c[0][0] = true

	tests := []struct {
		padding  chargen.Padding
		bitOrder chargen.BitOrder
		want     byte
	}{
		// Right padding: pixels in the leading bits, filler trails.
		{chargen.PaddingRight, chargen.MSBFirst, 0x80},
		{chargen.PaddingRight, chargen.LSBFirst, 0x01},
		// Left padding: filler leads, pixels pushed to the trailing bits.
		{chargen.PaddingLeft, chargen.MSBFirst, 0x10},
		{chargen.PaddingLeft, chargen.LSBFirst, 0x08},
	}

	for _, tt := range tests {
		cfg := chargen.Config{Width: 5, Height: 1, Padding: tt.padding, BitOrder: tt.bitOrder}
		assert.Equal(t, []byte{tt.want}, CharacterBytes(c, cfg), "%s %s", tt.padding, tt.bitOrder)
	}
}

func TestCharacterBytesMatchesEncode(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	cfg := chargen.Config{Width: 13, Height: 9, Padding: chargen.PaddingLeft, BitOrder: chargen.LSBFirst}

	cs := randomCharacters(r, 4, cfg.Width, cfg.Height)

	var b []byte
	for _, c := range cs {
		b = append(b, CharacterBytes(c, cfg)...)
	}

	assert.Equal(t, Encode(cs, cfg), b)
}

func TestEncodeZeroFillsFillerBits(t *testing.T) {
	c := chargen.New(3, 2)
	for y := range c {
		for x := range c[y] {
			c[y][x] = true
		}
	}

	assert.Equal(t, []byte{0xe0, 0xe0}, CharacterBytes(c, chargen.Config{Width: 3, Height: 2}))
	assert.Equal(t, []byte{0x07, 0x07}, CharacterBytes(c, chargen.Config{Width: 3, Height: 2, Padding: chargen.PaddingLeft}))
}

func TestEncodeToleratesUndersizedGrid(t *testing.T) {
	cfg := chargen.Config{Width: 8, Height: 4}

	// A grid smaller than the configuration packs as if the missing cells
	// were off.
	b := CharacterBytes(chargen.Character{{true, true}}, cfg)
	assert.Equal(t, []byte{0xc0, 0x00, 0x00, 0x00}, b)
}
