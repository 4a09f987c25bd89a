// core/seqio/lines.go
package seqio

import (
	"bufio"
	"bytes"
	"io"
)

const (
	initialLineBuf = 64 * 1024
	// DefaultMaxLine allows very long single-line sequences (64 MiB).
	DefaultMaxLine = 64 * 1024 * 1024
)

// newLineScanner returns a scanner whose tokens keep their terminator.
func newLineScanner(r io.Reader, maxLine int) *bufio.Scanner {
	if maxLine <= 0 {
		maxLine = DefaultMaxLine
	}
	sc := bufio.NewScanner(r)
	buf := make([]byte, 0, min(initialLineBuf, maxLine))
	sc.Buffer(buf, maxLine)
	sc.Split(scanRawLines)
	return sc
}

// scanRawLines splits on "\n", "\r\n" or a bare "\r" and returns each line
// with its terminator. A '\r' at the end of the buffer waits for one more
// byte unless the input is exhausted.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i+1], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i+2], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i+1], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
