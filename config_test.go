package chargen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesPerRow(t *testing.T) {
	tests := []struct {
		width, bytes int
	}{
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{16, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.bytes, Config{Width: tt.width, Height: 8}.BytesPerRow(), "width %d", tt.width)
	}
}

func TestBytesPerCharacter(t *testing.T) {
	assert.Equal(t, 8, Config{Width: 8, Height: 8}.BytesPerCharacter())
	assert.Equal(t, 32, Config{Width: 16, Height: 16}.BytesPerCharacter())
	assert.Equal(t, 5, Config{Width: 5, Height: 5}.BytesPerCharacter())
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Config{Width: 8, Height: 8}.Validate())
	assert.Nil(t, Config{Width: 1, Height: 16, Padding: PaddingLeft, BitOrder: LSBFirst}.Validate())

	// All problems are reported at once.
	problems := Config{Width: 0, Height: 17, Padding: Padding(9), BitOrder: BitOrder(9)}.Validate()
	require.Len(t, problems, 4)
	for _, p := range problems {
		assert.NotEmpty(t, p)
	}
}

func TestParsePadding(t *testing.T) {
	for _, p := range []Padding{PaddingRight, PaddingLeft} {
		got, err := ParsePadding(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	_, err := ParsePadding("bottom")
	assert.Error(t, err)
}

func TestParseBitOrder(t *testing.T) {
	for _, o := range []BitOrder{MSBFirst, LSBFirst} {
		got, err := ParseBitOrder(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	_, err := ParseBitOrder("middle")
	assert.Error(t, err)
}

func TestClampDimension(t *testing.T) {
	assert.Equal(t, MinDimension, ClampDimension(-3))
	assert.Equal(t, 8, ClampDimension(8))
	assert.Equal(t, MaxDimension, ClampDimension(40))
}
