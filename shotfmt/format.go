package shotfmt

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrUnknownFormat indicates a format name other than "b8" or "01".
	ErrUnknownFormat = errors.New("shotfmt: unknown format")
	// ErrBadSymbol indicates a character other than '0' or '1' in 01 input.
	ErrBadSymbol = errors.New("shotfmt: invalid symbol")
	// ErrTruncated indicates input ending inside a shot.
	ErrTruncated = errors.New("shotfmt: truncated shot")
	// ErrWidth indicates a shot width that is non-positive or inconsistent.
	ErrWidth = errors.New("shotfmt: bad shot width")
)

// Format names a shot encoding. The value doubles as the file extension.
type Format string

const (
	// B8 is the packed little-endian bit format.
	B8 Format = "b8"
	// Bits01 is the one-line-per-shot ASCII format.
	Bits01 Format = "01"
)

// ParseFormat accepts "b8" or "01" (case-insensitive for b8).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate returns ErrUnknownFormat for unsupported formats.
func (f Format) Validate() error {
	if f != B8 && f != Bits01 {
		return fmt.Errorf("format %q: %w", string(f), ErrUnknownFormat)
	}
	return nil
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Encode writes shots to w in format f.
func Encode(w io.Writer, f Format, shots [][]bool) error {
	switch f {
	case B8:
		return EncodeB8(w, shots)
	case Bits01:
		return Encode01(w, shots)
	default:
		return f.Validate()
	}
}

// Decode reads every shot of width bits from r in format f. For 01 input a
// non-positive bits accepts any width as long as all lines agree.
func Decode(r io.Reader, f Format, bits int) ([][]bool, error) {
	switch f {
	case B8:
		return DecodeB8(r, bits)
	case Bits01:
		return Decode01(r, bits)
	default:
		return nil, f.Validate()
	}
}
