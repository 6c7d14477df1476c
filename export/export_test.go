package export

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/bodgit/chargen"
	"github.com/bodgit/chargen/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circle(t *testing.T) chargen.Character {
	t.Helper()

	cs := codec.Decode([]byte{0x3c, 0x42, 0x81, 0x81, 0x81, 0x81, 0x42, 0x3c}, chargen.Config{Width: 8, Height: 8})
	require.Len(t, cs, 1)
	return cs[0]
}

func TestCHeader(t *testing.T) {
	cfg := chargen.Config{Width: 8, Height: 8}

	var b bytes.Buffer
	require.NoError(t, CHeader(&b, "font", []chargen.Character{circle(t)}, cfg))

	want := `/* 8x8 character set, 1 characters, 8 bytes */
const unsigned char font[] = {
    0x3c, 0x42, 0x81, 0x81, 0x81, 0x81, 0x42, 0x3c, /* 0 */
};
`
	assert.Equal(t, want, b.String())
}

func TestAssembly(t *testing.T) {
	cfg := chargen.Config{Width: 8, Height: 8}

	var b bytes.Buffer
	require.NoError(t, Assembly(&b, "font", []chargen.Character{circle(t)}, cfg))

	want := `; 8x8 character set, 1 characters
font:
    .db $3c,$42,$81,$81,$81,$81,$42,$3c
`
	assert.Equal(t, want, b.String())
}

// The exported text must carry exactly the codec's bytes; this is a contract
// with every tool that assembles the text back into a ROM.
func TestExportedBytesMatchCodec(t *testing.T) {
	cfg := chargen.Config{Width: 5, Height: 7, Padding: chargen.PaddingLeft, BitOrder: chargen.LSBFirst}

	c := chargen.New(5, 7)
	c[0][0] = true
	c[3][2] = true
	c[6][4] = true

	want := codec.CharacterBytes(c, cfg)

	var b bytes.Buffer
	require.NoError(t, Assembly(&b, "font", []chargen.Character{c}, cfg))

	s := bufio.NewScanner(&b)
	var got []byte
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if !strings.HasPrefix(line, ".db ") {
			continue
		}
		for _, field := range strings.Split(strings.TrimPrefix(line, ".db "), ",") {
			var v byte
			_, err := fmt.Sscanf(field, "$%02x", &v)
			require.NoError(t, err)
			got = append(got, v)
		}
	}

	assert.Equal(t, want, got)
}

func TestExportEmptySet(t *testing.T) {
	cfg := chargen.Config{Width: 8, Height: 8}

	var b bytes.Buffer
	require.NoError(t, CHeader(&b, "font", nil, cfg))
	assert.Contains(t, b.String(), "0 characters")
}
