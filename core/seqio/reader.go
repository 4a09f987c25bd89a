// core/seqio/reader.go
package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"parsefasta-core/fasta"
	"parsefasta-core/fastq"
	"parsefasta-core/seq"
)

// ParseError locates a parse failure. Path is empty for unnamed readers.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Option configures a Reader or a run-to-completion loop.
type Option func(*config)

type config struct {
	name      string
	maxLine   int
	onInvalid func(error) error
}

// WithName sets the path reported in ParseError.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithMaxLine caps the length of a single input line.
func WithMaxLine(n int) Option {
	return func(c *config) { c.maxLine = n }
}

// WithInvalidHandler is consulted by Each for malformed-sequence errors.
// Returning nil skips the record; returning an error stops the loop with it.
func WithInvalidHandler(fn func(error) error) Option {
	return func(c *config) { c.onInvalid = fn }
}

func newConfig(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Reader pulls records from a line source one at a time.
//
// A malformed-sequence error (seq.ErrSequenceFormat) is not sticky: the
// offending record is dropped and Read may be called again. Any other error,
// including io.EOF, is returned by every later call.
type Reader struct {
	sc     *bufio.Scanner
	format Format
	name   string

	fa fasta.State
	fq fastq.State

	line int
	err  error
}

// NewReader returns a Reader parsing r as format f.
func NewReader(r io.Reader, f Format, opts ...Option) *Reader {
	c := newConfig(opts)
	return &Reader{
		sc:     newLineScanner(r, c.maxLine),
		format: f,
		name:   c.name,
	}
}

// Format returns the format being parsed.
func (r *Reader) Format() Format { return r.format }

// Line returns the number of lines consumed so far.
func (r *Reader) Line() int { return r.line }

// Read returns the next record, or io.EOF once input is exhausted and the
// final record has been returned.
func (r *Reader) Read() (*seq.Record, error) {
	if r.err != nil {
		return nil, r.err
	}
	for r.sc.Scan() {
		r.line++
		rec, err := r.step(r.sc.Text())
		if err != nil {
			return nil, r.fail(err)
		}
		if rec != nil {
			return rec, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		r.err = r.wrap(fmt.Errorf("read: %w", err))
		return nil, r.err
	}

	rec, err := r.finish()
	r.err = io.EOF
	if err != nil {
		// Nothing more can follow a failed final record.
		return nil, r.wrap(err)
	}
	if rec != nil {
		return rec, nil
	}
	return nil, io.EOF
}

func (r *Reader) step(line string) (rec *seq.Record, err error) {
	switch r.format {
	case FASTA:
		r.fa, rec, err = r.fa.Step(line)
	case FASTQ:
		r.fq, rec, err = r.fq.Step(line)
	default:
		err = fmt.Errorf("unsupported format %v", r.format)
	}
	return rec, err
}

func (r *Reader) finish() (*seq.Record, error) {
	switch r.format {
	case FASTA:
		return r.fa.Finish()
	case FASTQ:
		return nil, r.fq.Finish()
	}
	return nil, fmt.Errorf("unsupported format %v", r.format)
}

// fail wraps err and latches it unless it is a recoverable malformed
// sequence.
func (r *Reader) fail(err error) error {
	werr := r.wrap(err)
	if !errors.Is(err, seq.ErrSequenceFormat) {
		r.err = werr
	}
	return werr
}

func (r *Reader) wrap(err error) error {
	return &ParseError{Path: r.name, Line: r.line, Err: err}
}
