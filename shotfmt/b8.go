package shotfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// BytesPerShot returns ⌈bits/8⌉.
func BytesPerShot(bits int) int { return (bits + 7) / 8 }

// EncodeB8 packs each shot into BytesPerShot(len(shot)) bytes.
// Complexity: O(total bits).
func EncodeB8(w io.Writer, shots [][]bool) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, shot := range shots {
		buf = packShot(buf[:0], shot)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("EncodeB8: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("EncodeB8: %w", err)
	}
	return nil
}

func packShot(dst []byte, shot []bool) []byte {
	n := BytesPerShot(len(shot))
	for i := 0; i < n; i++ {
		dst = append(dst, 0)
	}
	base := len(dst) - n
	for k, bit := range shot {
		if bit {
			dst[base+k/8] |= 1 << (k % 8)
		}
	}
	return dst
}

// DecodeB8 unpacks shots of the given width until r is exhausted.
// Returns ErrWidth if bits < 1 and ErrTruncated if r ends mid-shot.
// Complexity: O(total bits).
func DecodeB8(r io.Reader, bits int) ([][]bool, error) {
	if bits < 1 {
		return nil, fmt.Errorf("DecodeB8: bits=%d: %w", bits, ErrWidth)
	}
	br := bufio.NewReader(r)
	buf := make([]byte, BytesPerShot(bits))

	var shots [][]bool
	for {
		_, err := io.ReadFull(br, buf)
		switch {
		case errors.Is(err, io.EOF):
			return shots, nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, fmt.Errorf("DecodeB8: shot %d: %w", len(shots), ErrTruncated)
		case err != nil:
			return nil, fmt.Errorf("DecodeB8: %w", err)
		}
		shot := make([]bool, bits)
		for k := range shot {
			shot[k] = buf[k/8]>>(k%8)&1 == 1
		}
		shots = append(shots, shot)
	}
}
