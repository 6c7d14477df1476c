package chargen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnchorAxes(t *testing.T) {
	tests := []struct {
		anchor     Anchor
		horizontal Alignment
		vertical   Alignment
	}{
		{AnchorTopLeft, AlignStart, AlignStart},
		{AnchorTopCenter, AlignCenter, AlignStart},
		{AnchorTopRight, AlignEnd, AlignStart},
		{AnchorMiddleLeft, AlignStart, AlignCenter},
		{AnchorCenter, AlignCenter, AlignCenter},
		{AnchorMiddleRight, AlignEnd, AlignCenter},
		{AnchorBottomLeft, AlignStart, AlignEnd},
		{AnchorBottomCenter, AlignCenter, AlignEnd},
		{AnchorBottomRight, AlignEnd, AlignEnd},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.horizontal, tt.anchor.Horizontal(), "%s horizontal", tt.anchor)
		assert.Equal(t, tt.vertical, tt.anchor.Vertical(), "%s vertical", tt.anchor)
	}
}

func TestParseAnchor(t *testing.T) {
	for a := AnchorTopLeft; a <= AnchorBottomRight; a++ {
		got, err := ParseAnchor(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAnchor("middle")
	assert.Error(t, err)
}
