package shotfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfacecode/shotfmt"
)

func bits(s string) []bool {
	out := make([]bool, len(s))
	for i, c := range s {
		out[i] = c == '1'
	}
	return out
}

// TestEncodeB8_BitOrder pins the little-endian packing.
func TestEncodeB8_BitOrder(t *testing.T) {
	var buf bytes.Buffer
	shots := [][]bool{
		bits("100000001"), // bit 0 and bit 8
		bits("011000000"), // bits 1, 2
		bits("000000000"),
	}
	require.NoError(t, shotfmt.EncodeB8(&buf, shots))
	assert.Equal(t, []byte{0x01, 0x01, 0x06, 0x00, 0x00, 0x00}, buf.Bytes())
}

// TestRoundTrip covers both formats over awkward widths.
func TestRoundTrip(t *testing.T) {
	for _, f := range []shotfmt.Format{shotfmt.B8, shotfmt.Bits01} {
		for _, width := range []int{1, 7, 8, 9, 17, 64} {
			shots := make([][]bool, 5)
			for s := range shots {
				shots[s] = make([]bool, width)
				for k := range shots[s] {
					shots[s][k] = (s*31+k*7)%3 == 0
				}
			}
			var buf bytes.Buffer
			require.NoError(t, shotfmt.Encode(&buf, f, shots))
			if f == shotfmt.B8 {
				assert.Equal(t, 5*shotfmt.BytesPerShot(width), buf.Len())
			}

			got, err := shotfmt.Decode(&buf, f, width)
			require.NoError(t, err)
			if diff := cmp.Diff(shots, got); diff != "" {
				t.Errorf("%s width %d round trip (-want +got):\n%s", f, width, diff)
			}
		}
	}
}

// TestDecode01 checks blank lines, CRLF and width inference.
func TestDecode01(t *testing.T) {
	got, err := shotfmt.Decode01(strings.NewReader("0101\r\n\n1111\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, [][]bool{bits("0101"), bits("1111")}, got)

	var buf bytes.Buffer
	require.NoError(t, shotfmt.Encode01(&buf, got))
	assert.Equal(t, "0101\n1111\n", buf.String())
}

// TestDecode_Errors covers malformed input.
func TestDecode_Errors(t *testing.T) {
	_, err := shotfmt.Decode01(strings.NewReader("01x1\n"), 0)
	assert.ErrorIs(t, err, shotfmt.ErrBadSymbol)

	_, err = shotfmt.Decode01(strings.NewReader("0101\n011\n"), 0)
	assert.ErrorIs(t, err, shotfmt.ErrWidth)

	_, err = shotfmt.Decode01(strings.NewReader("0101\n"), 5)
	assert.ErrorIs(t, err, shotfmt.ErrWidth)

	_, err = shotfmt.DecodeB8(bytes.NewReader([]byte{1, 2, 3}), 9)
	assert.ErrorIs(t, err, shotfmt.ErrTruncated)

	_, err = shotfmt.DecodeB8(bytes.NewReader(nil), 0)
	assert.ErrorIs(t, err, shotfmt.ErrWidth)

	got, err := shotfmt.DecodeB8(bytes.NewReader(nil), 9)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestParseFormat accepts both names and rejects others.
func TestParseFormat(t *testing.T) {
	f, err := shotfmt.ParseFormat("B8")
	require.NoError(t, err)
	assert.Equal(t, shotfmt.B8, f)

	f, err = shotfmt.ParseFormat("01")
	require.NoError(t, err)
	assert.Equal(t, shotfmt.Bits01, f)

	_, err = shotfmt.ParseFormat("ptb64")
	assert.ErrorIs(t, err, shotfmt.ErrUnknownFormat)
	assert.ErrorIs(t, shotfmt.Encode(&bytes.Buffer{}, "hits", nil), shotfmt.ErrUnknownFormat)
}
