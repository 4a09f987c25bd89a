// core/fastq/state.go
package fastq

import (
	"strings"

	"parsefasta-core/seq"
)

// State is the FASTQ four-line machine: header, sequence, description,
// quality. The zero value expects a header line.
type State struct {
	header string
	seq    string
	desc   string
	qual   string
	index  int
}

// Index returns the position within the current four-line group.
func (s State) Index() int { return s.index }

// Step consumes one raw line and returns a record after every fourth line.
// An index outside 0..3 yields seq.ErrCycleDesync; the state is returned
// unchanged so the caller can stop without resynchronizing.
func (s State) Step(line string) (State, *seq.Record, error) {
	line = seq.Chomp(line)

	switch s.index {
	case 0:
		s.header = strings.TrimPrefix(line, "@")
	case 1:
		s.seq = line
	case 2:
		s.desc = strings.TrimPrefix(line, "+")
	case 3:
		s.qual = line
		desc, qual := s.desc, s.qual
		rec, err := seq.Build(seq.Fields{
			Header: s.header,
			Seq:    s.seq,
			Desc:   &desc,
			Qual:   &qual,
		})
		if err != nil {
			return s, nil, err
		}
		s.index = 0
		return s, rec, nil
	default:
		return s, nil, &seq.CycleError{Index: s.index}
	}
	s.index++
	return s, nil, nil
}

// Finish checks that input ended on a group boundary.
func (s State) Finish() error {
	if s.index != 0 {
		return &seq.CycleError{Index: s.index}
	}
	return nil
}
