// core/fasta/state.go
package fasta

import (
	"strings"

	"parsefasta-core/seq"
)

// State is the FASTA line machine. The zero value is ready to use and waits
// for a header.
//
// Step is a pure function of the State and the line: any State, including
// one already stepped, may be stepped again and earlier values never
// change. Sequence bytes are shared between successive values and copied
// only when an older value is extended a second time. Emitted records never
// alias the buffer. A State is not safe for concurrent use.
type State struct {
	header string
	acc    *accum
	n      int // bytes of acc.b that belong to this State
}

// accum is append-only storage shared by the States of one record.
type accum struct{ b []byte }

// InRecord reports whether a header has been seen.
func (s State) InRecord() bool { return s.header != "" }

// Pending reports whether Finish would emit a record.
func (s State) Pending() bool { return s.header != "" || s.n > 0 }

// Step consumes one raw line. It returns a record when the line is a header
// that closes a previous record.
//
// When the closed record fails validation it is dropped and the error is
// returned together with a State already positioned on the new header, so a
// caller may log and keep stepping.
func (s State) Step(line string) (State, *seq.Record, error) {
	line = seq.Chomp(line)

	isHeader := strings.HasPrefix(line, ">")
	switch {
	case s.header == "" && isHeader:
		s.header = line[1:]
		return s, nil, nil
	case isHeader:
		rec, err := s.build()
		s.header = line[1:]
		s.acc, s.n = nil, 0
		return s, rec, err
	default:
		return s.extend(line), nil, nil
	}
}

// extend appends line in place when s owns the tail of the shared storage,
// and on a private copy otherwise.
func (s State) extend(line string) State {
	if line == "" {
		return s
	}
	if s.acc == nil || len(s.acc.b) != s.n {
		b := make([]byte, s.n, s.n+len(line))
		if s.acc != nil {
			copy(b, s.acc.b[:s.n])
		}
		s.acc = &accum{b: b}
	}
	s.acc.b = append(s.acc.b, line...)
	s.n = len(s.acc.b)
	return s
}

func (s State) sequence() string {
	if s.acc == nil {
		return ""
	}
	return string(s.acc.b[:s.n])
}

// Finish flushes the pending record at end of input. It returns nil, nil when
// nothing is pending.
func (s State) Finish() (*seq.Record, error) {
	if !s.Pending() {
		return nil, nil
	}
	return s.build()
}

func (s State) build() (*seq.Record, error) {
	return seq.Build(seq.Fields{
		Header: seq.TrimHeader(s.header),
		Seq:    s.sequence(),
	})
}
