package shotfmt

import (
	"bufio"
	"fmt"
	"io"
)

// Encode01 writes one line of '0'/'1' per shot.
func Encode01(w io.Writer, shots [][]bool) error {
	bw := bufio.NewWriter(w)
	for _, shot := range shots {
		for _, bit := range shot {
			c := byte('0')
			if bit {
				c = '1'
			}
			bw.WriteByte(c)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("Encode01: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Encode01: %w", err)
	}
	return nil
}

// Decode01 reads one shot per non-blank line. When bits > 0 every line must
// have exactly that many symbols; otherwise all lines must match the first.
// Returns ErrBadSymbol for characters other than '0' and '1' and ErrWidth
// for a line of the wrong length.
func Decode01(r io.Reader, bits int) ([][]bool, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var shots [][]bool
	line := 0
	for sc.Scan() {
		line++
		text := sc.Bytes()
		if len(text) > 0 && text[len(text)-1] == '\r' {
			text = text[:len(text)-1]
		}
		if len(text) == 0 {
			continue
		}
		if bits <= 0 {
			bits = len(text)
		}
		if len(text) != bits {
			return nil, fmt.Errorf("Decode01: line %d has %d symbols, want %d: %w", line, len(text), bits, ErrWidth)
		}
		shot := make([]bool, len(text))
		for k, c := range text {
			switch c {
			case '0':
			case '1':
				shot[k] = true
			default:
				return nil, fmt.Errorf("Decode01: line %d column %d: %q: %w", line, k+1, c, ErrBadSymbol)
			}
		}
		shots = append(shots, shot)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Decode01: %w", err)
	}
	return shots, nil
}
