/*
Package share serializes a character set plus its name and description into a
compressed, URL-safe token, and parses such tokens back.

The token is the literal version tag "2:" followed by the base64url encoding
(standard alphabet with '+' and '/' swapped for '-' and '_', padding
stripped) of the DEFLATE-compressed payload. The payload is a three byte
header of width, height and a flags byte (bit 0 set for left padding, bit 1
set for LSB-first bit order), the UTF-8 name and description each terminated
by a NUL, and finally the packed bitmap bytes. The token is self-describing:
decoding never needs external configuration.
*/
package share

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/chargen"
	"github.com/bodgit/chargen/codec"
)

const versionPrefix = "2:"

const (
	flagPaddingLeft = 1 << 0
	flagLSBFirst    = 1 << 1
)

var (
	errVersion      = errors.New("share: missing or unsupported version prefix")
	errUnterminated = errors.New("share: unterminated name or description")
	errTruncated    = errors.New("share: payload too short")
)

// base64url is the standard base64 alphabet with '+' and '/' replaced by '-'
// and '_'; padding is never emitted.
var base64url = base64.RawURLEncoding

// Decoded is the result of parsing a token.
type Decoded struct {
	Name        string
	Description string
	Characters  []chargen.Character
	Config      chargen.Config
}

// Encode builds a share token for the given character set. The name and
// description may contain any UTF-8 except NUL, which the framing reserves.
func Encode(name, description string, cs []chargen.Character, cfg chargen.Config) (string, error) {
	if strings.ContainsRune(name, 0) || strings.ContainsRune(description, 0) {
		return "", errors.New("share: name and description must not contain NUL")
	}

	var flags byte
	if cfg.Padding == chargen.PaddingLeft {
		flags |= flagPaddingLeft
	}
	if cfg.BitOrder == chargen.LSBFirst {
		flags |= flagLSBFirst
	}

	payload := new(bytes.Buffer)
	payload.Write([]byte{byte(cfg.Width), byte(cfg.Height), flags})
	payload.WriteString(name)
	payload.WriteByte(0)
	payload.WriteString(description)
	payload.WriteByte(0)
	payload.Write(codec.Encode(cs, cfg))

	compressed := new(bytes.Buffer)
	zw, err := flate.NewWriter(compressed, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := zw.Write(payload.Bytes()); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}

	return versionPrefix + base64url.EncodeToString(compressed.Bytes()), nil
}

// Decode parses a share token. It fails fast on a missing version prefix,
// corrupt compressed data, an unterminated name or description, or an
// impossible header; callers never receive partially decoded data.
func Decode(token string) (Decoded, error) {
	if !strings.HasPrefix(token, versionPrefix) {
		return Decoded{}, errVersion
	}

	// Tolerate padding some URL handling may have reinstated.
	compressed, err := base64url.DecodeString(strings.TrimRight(token[len(versionPrefix):], "="))
	if err != nil {
		return Decoded{}, fmt.Errorf("share: invalid token encoding: %w", err)
	}

	zr := flate.NewReader(bytes.NewReader(compressed))
	payload, err := io.ReadAll(zr)
	if cerr := zr.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Decoded{}, fmt.Errorf("share: corrupt compressed data: %w", err)
	}

	if len(payload) < 3 {
		return Decoded{}, errTruncated
	}

	cfg := chargen.Config{
		Width:  int(payload[0]),
		Height: int(payload[1]),
	}
	if payload[2]&flagPaddingLeft != 0 {
		cfg.Padding = chargen.PaddingLeft
	}
	if payload[2]&flagLSBFirst != 0 {
		cfg.BitOrder = chargen.LSBFirst
	}
	if problems := cfg.Validate(); len(problems) > 0 {
		return Decoded{}, fmt.Errorf("share: invalid header: %s", strings.Join(problems, "; "))
	}

	rest := payload[3:]
	name, rest, err := nulString(rest)
	if err != nil {
		return Decoded{}, err
	}
	description, rest, err := nulString(rest)
	if err != nil {
		return Decoded{}, err
	}

	return Decoded{
		Name:        name,
		Description: description,
		Characters:  codec.Decode(rest, cfg),
		Config:      cfg,
	}, nil
}

func nulString(b []byte) (string, []byte, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return "", nil, errUnterminated
	}
	return string(b[:i]), b[i+1:], nil
}
