package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const indentUnit = "    "

// String renders c in text form, one instruction per line.
func (c Circuit) String() string {
	var sb strings.Builder
	c.write(&sb, "")
	return sb.String()
}

// WriteTo writes the text form of c to w.
func (c Circuit) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	cw := &countingWriter{w: bw}
	c.write(cw, "")
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, cw.err
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := io.WriteString(cw.w, s)
	cw.n += int64(n)
	cw.err = err
	return n, err
}

func (c Circuit) write(w io.StringWriter, indent string) {
	for _, op := range c.ops {
		w.WriteString(indent)
		if op.Gate == RepeatBlock {
			w.WriteString("REPEAT " + strconv.Itoa(op.Repetitions) + " {\n")
			op.Body.write(w, indent+indentUnit)
			w.WriteString(indent + "}\n")
			continue
		}
		w.WriteString(op.String())
		w.WriteString("\n")
	}
}

// String renders a single non-REPEAT instruction, e.g. "X_ERROR(0.01) 0 1".
func (op Op) String() string {
	var sb strings.Builder
	sb.WriteString(string(op.Gate))
	if len(op.Args) > 0 {
		sb.WriteByte('(')
		for i, a := range op.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatArg(a))
		}
		sb.WriteByte(')')
	}
	for _, t := range op.Targets {
		sb.WriteByte(' ')
		sb.WriteString(t.String())
	}
	return sb.String()
}

func formatArg(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// Parse reads a circuit in text form. Blank lines and '#' comments are
// ignored. Consecutive instructions are kept as written (no fusing).
func Parse(r io.Reader) (Circuit, error) {
	type frame struct {
		ops  []Op
		reps int
	}
	stack := []frame{{}}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		switch {
		case text == "}":
			if len(stack) == 1 {
				return Circuit{}, fmt.Errorf("line %d: unmatched '}': %w", line, ErrSyntax)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1]
			parent.ops = append(parent.ops, Op{Gate: RepeatBlock, Repetitions: top.reps, Body: Circuit{ops: top.ops}})

		case strings.HasPrefix(text, "REPEAT"):
			fields := strings.Fields(text)
			if len(fields) != 3 || fields[0] != "REPEAT" || fields[2] != "{" {
				return Circuit{}, fmt.Errorf("line %d: %q: %w", line, text, ErrSyntax)
			}
			reps, err := strconv.Atoi(fields[1])
			if err != nil || reps < 0 {
				return Circuit{}, fmt.Errorf("line %d: repetitions %q: %w", line, fields[1], ErrSyntax)
			}
			stack = append(stack, frame{reps: reps})

		default:
			op, err := parseOp(text)
			if err != nil {
				return Circuit{}, fmt.Errorf("line %d: %w", line, err)
			}
			top := &stack[len(stack)-1]
			top.ops = append(top.ops, op)
		}
	}
	if err := sc.Err(); err != nil {
		return Circuit{}, err
	}
	if len(stack) != 1 {
		return Circuit{}, fmt.Errorf("unterminated REPEAT block: %w", ErrSyntax)
	}
	return Circuit{ops: stack[0].ops}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (Circuit, error) {
	return Parse(strings.NewReader(s))
}

func parseOp(text string) (Op, error) {
	name, rest := text, ""
	if i := strings.IndexAny(text, "( \t"); i >= 0 {
		name, rest = text[:i], text[i:]
	}
	g := Gate(name)
	if !g.Known() || g == RepeatBlock {
		return Op{}, fmt.Errorf("%q: %w", name, ErrUnknownGate)
	}

	var args []float64
	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return Op{}, fmt.Errorf("%q: missing ')': %w", text, ErrSyntax)
		}
		for _, f := range strings.Split(rest[1:end], ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return Op{}, fmt.Errorf("%q: argument %q: %w", text, f, ErrSyntax)
			}
			args = append(args, v)
		}
		rest = rest[end+1:]
	}

	var targets []Target
	for _, f := range strings.Fields(rest) {
		t, err := parseTarget(f)
		if err != nil {
			return Op{}, err
		}
		targets = append(targets, t)
	}
	return Op{Gate: g, Targets: targets, Args: args}, nil
}
