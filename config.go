package chargen

import "fmt"

const (
	// MinDimension is the smallest usable character width or height.
	MinDimension = 1
	// MaxDimension is the largest usable character width or height.
	MaxDimension = 16
)

// Padding selects which side of a row's packed bytes holds the unused filler
// bits when the width is not a multiple of eight.
type Padding int

const (
	// PaddingRight places the pixels at the start of the row; the filler
	// bits are the trailing bits of the row's final byte.
	PaddingRight Padding = iota
	// PaddingLeft places the pixels at the end of the row; the filler
	// bits are the leading bits of the row's first byte.
	PaddingLeft
)

func (p Padding) String() string {
	if p == PaddingLeft {
		return "left"
	}
	return "right"
}

// ParsePadding converts the textual form used by flags and stored settings.
func ParsePadding(s string) (Padding, error) {
	switch s {
	case "right":
		return PaddingRight, nil
	case "left":
		return PaddingLeft, nil
	}
	return PaddingRight, fmt.Errorf("chargen: unknown padding %q", s)
}

// BitOrder selects which bit of a packed byte corresponds to the leftmost
// pixel it covers.
type BitOrder int

const (
	// MSBFirst reads each byte from its highest bit to its lowest.
	MSBFirst BitOrder = iota
	// LSBFirst reads each byte from its lowest bit to its highest.
	LSBFirst
)

func (o BitOrder) String() string {
	if o == LSBFirst {
		return "lsb"
	}
	return "msb"
}

// ParseBitOrder converts the textual form used by flags and stored settings.
func ParseBitOrder(s string) (BitOrder, error) {
	switch s {
	case "msb":
		return MSBFirst, nil
	case "lsb":
		return LSBFirst, nil
	}
	return MSBFirst, fmt.Errorf("chargen: unknown bit order %q", s)
}

// Config describes how every character in a set is packed into bytes. All
// characters in a set share one configuration.
type Config struct {
	Width    int
	Height   int
	Padding  Padding
	BitOrder BitOrder
}

// BytesPerRow returns the number of bytes holding one row of pixels.
func (c Config) BytesPerRow() int {
	return (c.Width + 7) / 8
}

// BytesPerCharacter returns the number of bytes holding one whole character.
func (c Config) BytesPerCharacter() int {
	return c.BytesPerRow() * c.Height
}

// ClampDimension forces a width or height into the valid range.
func ClampDimension(n int) int {
	if n < MinDimension {
		return MinDimension
	}
	if n > MaxDimension {
		return MaxDimension
	}
	return n
}

// Validate returns a list of human-readable problems with the configuration,
// or nil if it is usable. All problems are reported at once so a form can
// display them together. The codecs assume a configuration that has already
// passed validation.
func (c Config) Validate() []string {
	var problems []string
	if c.Width < MinDimension || c.Width > MaxDimension {
		problems = append(problems, fmt.Sprintf("width must be between %d and %d, got %d", MinDimension, MaxDimension, c.Width))
	}
	if c.Height < MinDimension || c.Height > MaxDimension {
		problems = append(problems, fmt.Sprintf("height must be between %d and %d, got %d", MinDimension, MaxDimension, c.Height))
	}
	if c.Padding != PaddingRight && c.Padding != PaddingLeft {
		problems = append(problems, fmt.Sprintf("padding must be %q or %q", PaddingRight, PaddingLeft))
	}
	if c.BitOrder != MSBFirst && c.BitOrder != LSBFirst {
		problems = append(problems, fmt.Sprintf("bit order must be %q or %q", MSBFirst, LSBFirst))
	}
	return problems
}
