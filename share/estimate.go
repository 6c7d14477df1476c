package share

import "github.com/bodgit/chargen"

const (
	headerSize = 3
	// textOverhead budgets for a typical name and description plus their
	// NUL terminators without knowing the actual strings.
	textOverhead = 24
	// compressionNumerator over compressionDenominator is the assumed
	// DEFLATE ratio; bitmap data for fonts compresses well, 50% is a
	// conservative middle ground.
	compressionNumerator   = 1
	compressionDenominator = 2
)

// EstimateLength predicts the token length Encode would produce for a set of
// the given shape, without running the compressor. It exists so a UI can warn
// before a token exceeds a practical URL length; the estimate uses a fixed
// 50% compression heuristic plus fixed per-field overhead and is not exact.
func EstimateLength(characterCount, width, height int) int {
	bytesPerChar := chargen.Config{Width: width, Height: height}.BytesPerCharacter()

	raw := headerSize + textOverhead + characterCount*bytesPerChar
	compressed := (raw*compressionNumerator + compressionDenominator - 1) / compressionDenominator

	// Unpadded base64 expands 3 bytes into 4 characters.
	return len(versionPrefix) + (compressed*4+2)/3
}
