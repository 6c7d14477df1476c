/*
Package export writes a character set as C or assembly source text.

Both formats emit the packed bytes of each character exactly as the codec
produces them, so a ROM assembled or compiled from the exported text is
byte-identical to the binary the codec would write.
*/
package export

import (
	"fmt"
	"io"

	"github.com/bodgit/chargen"
	"github.com/bodgit/chargen/codec"
)

// CHeader writes the set as a C unsigned char array named name, one
// character's bytes per line.
func CHeader(w io.Writer, name string, cs []chargen.Character, cfg chargen.Config) error {
	if _, err := fmt.Fprintf(w, "/* %dx%d character set, %d characters, %d bytes */\n", cfg.Width, cfg.Height, len(cs), len(cs)*cfg.BytesPerCharacter()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "const unsigned char %s[] = {\n", name); err != nil {
		return err
	}

	for i, c := range cs {
		if _, err := io.WriteString(w, "    "); err != nil {
			return err
		}
		for _, b := range codec.CharacterBytes(c, cfg) {
			if _, err := fmt.Fprintf(w, "0x%02x, ", b); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "/* %d */\n", i); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "};\n")
	return err
}

// Assembly writes the set as .db directives under the given label, one
// character per line.
func Assembly(w io.Writer, label string, cs []chargen.Character, cfg chargen.Config) error {
	if _, err := fmt.Fprintf(w, "; %dx%d character set, %d characters\n%s:\n", cfg.Width, cfg.Height, len(cs), label); err != nil {
		return err
	}

	for _, c := range cs {
		if _, err := io.WriteString(w, "    .db "); err != nil {
			return err
		}
		for j, b := range codec.CharacterBytes(c, cfg) {
			sep := ","
			if j == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%s$%02x", sep, b); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
