// core/seq/errors.go
package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrSequenceFormat is returned when a sequence without a quality string
	// contains the FASTA record separator '>'.
	ErrSequenceFormat = errors.New("a sequence contained a '>' character (the fastA file record separator)")

	// ErrCycleDesync is returned when the FASTQ four-line cycle leaves 0..3,
	// or when input ends in the middle of a four-line group.
	ErrCycleDesync = errors.New("fastq line cycle out of sync")

	// ErrDataFormat is returned when input does not start with the marker of
	// the requested format.
	ErrDataFormat = errors.New("input does not look like the requested sequence format")

	// ErrEmptyQuality is returned when a FASTQ rendering is asked to repeat an
	// empty quality pattern.
	ErrEmptyQuality = errors.New("quality pattern can't be empty")
)

// SequenceFormatError carries the header of the record that failed the
// '>' check.
type SequenceFormatError struct {
	Header string
}

func (e *SequenceFormatError) Error() string {
	return fmt.Sprintf("record %q: %v", e.Header, ErrSequenceFormat)
}

func (e *SequenceFormatError) Unwrap() error { return ErrSequenceFormat }

// CycleError reports the offending FASTQ line index.
type CycleError struct {
	Index int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%v (line index %d)", ErrCycleDesync, e.Index)
}

func (e *CycleError) Unwrap() error { return ErrCycleDesync }
