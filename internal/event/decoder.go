package event

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// maxLineSize bounds one event line; keybinds events carry the whole
// configuration.
const maxLineSize = 4 << 20

// LineError wraps a decode failure with its input line number. The
// decoder stays usable after returning one.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Decoder reads newline-delimited events.
type Decoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Decoder{scanner: sc}
}

// Next returns the next event. Blank lines are skipped. A bad line yields
// a *LineError and the following call continues with the next line. At
// the end of input Next returns io.EOF.
func (d *Decoder) Next() (Event, error) {
	for d.scanner.Scan() {
		d.line++
		line := bytes.TrimSpace(d.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		ev, err := Decode(line)
		if err != nil {
			return nil, &LineError{Line: d.line, Err: err}
		}
		return ev, nil
	}
	if err := d.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return nil, io.EOF
}
