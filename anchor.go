package chargen

import "fmt"

// Alignment is one position along a single axis of a resize.
type Alignment int

const (
	// AlignStart pins content to the top or left edge.
	AlignStart Alignment = iota
	// AlignCenter centers content, flooring the offset on odd differences.
	AlignCenter
	// AlignEnd pins content to the bottom or right edge.
	AlignEnd
)

// Anchor is one of nine alignment references on a 3 by 3 grid, used when
// resizing a character to decide where the existing content is placed within
// the new canvas.
type Anchor int

// Anchors are laid out row-major so the row selects the vertical alignment
// and the column selects the horizontal one.
const (
	AnchorTopLeft Anchor = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
)

var anchorNames = [...]string{"tl", "tc", "tr", "ml", "mc", "mr", "bl", "bc", "br"}

func (a Anchor) String() string {
	if a < AnchorTopLeft || a > AnchorBottomRight {
		return fmt.Sprintf("anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor converts the two-letter form used by flags and stored settings.
func ParseAnchor(s string) (Anchor, error) {
	for i, name := range anchorNames {
		if s == name {
			return Anchor(i), nil
		}
	}
	return AnchorCenter, fmt.Errorf("chargen: unknown anchor %q", s)
}

// Horizontal returns the alignment along the width axis.
func (a Anchor) Horizontal() Alignment {
	return Alignment(a % 3)
}

// Vertical returns the alignment along the height axis.
func (a Anchor) Vertical() Alignment {
	return Alignment(a / 3)
}
