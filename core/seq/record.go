// core/seq/record.go
package seq

import (
	"strings"
)

// Record is one parsed FASTA or FASTQ entry. Desc and Qual are nil for
// FASTA records.
type Record struct {
	Header string
	ID     string
	Seq    string
	Desc   *string
	Qual   *string
}

// Fields are the raw values accumulated by a state machine before Build
// normalizes them.
type Fields struct {
	Header string
	Seq    string
	Desc   *string
	Qual   *string
}

// Build strips whitespace from the sequence (and quality, when present),
// rejects quality-less sequences containing '>', derives the ID and returns
// the record.
func Build(f Fields) (*Record, error) {
	return build(f, true)
}

// BuildUnchecked is Build without the '>' check.
func BuildUnchecked(f Fields) (*Record, error) {
	return build(f, false)
}

func build(f Fields, checkSeq bool) (*Record, error) {
	s := StripWhitespace(f.Seq)

	var qual *string
	if f.Qual != nil {
		q := StripWhitespace(*f.Qual)
		qual = &q
	} else if checkSeq && strings.IndexByte(s, '>') >= 0 {
		return nil, &SequenceFormatError{Header: f.Header}
	}

	var desc *string
	if f.Desc != nil {
		d := *f.Desc
		desc = &d
	}

	return &Record{
		Header: f.Header,
		ID:     ExtractID(f.Header),
		Seq:    s,
		Desc:   desc,
		Qual:   qual,
	}, nil
}

// IsFASTQ reports whether the record carries a quality string.
func (r *Record) IsFASTQ() bool { return r.Qual != nil }

// Description returns the FASTQ '+' line content, if any.
func (r *Record) Description() (string, bool) {
	if r.Desc == nil {
		return "", false
	}
	return *r.Desc, true
}

// Quality returns the quality string, if any.
func (r *Record) Quality() (string, bool) {
	if r.Qual == nil {
		return "", false
	}
	return *r.Qual, true
}

// Equal compares header, sequence, description and quality.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Header == o.Header &&
		r.Seq == o.Seq &&
		optEqual(r.Desc, o.Desc) &&
		optEqual(r.Qual, o.Qual)
}

func optEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// String renders FASTQ text for records with a quality string, FASTA text
// otherwise. No trailing newline.
func (r *Record) String() string {
	if r.IsFASTQ() {
		s, _ := r.FASTQ()
		return s
	}
	return r.FASTA()
}

// FASTA renders ">header\nseq". Description and quality are dropped.
func (r *Record) FASTA() string {
	return ">" + r.Header + "\n" + r.Seq
}

type fastqOptions struct {
	desc string
	qual string
}

// FASTQOption customizes FASTQ rendering of records without a quality
// string.
type FASTQOption func(*fastqOptions)

// WithDesc sets the '+' line content used for FASTA records.
func WithDesc(desc string) FASTQOption {
	return func(o *fastqOptions) { o.desc = desc }
}

// WithQualPattern sets the pattern repeated to the sequence length to build a
// quality string for FASTA records.
func WithQualPattern(p string) FASTQOption {
	return func(o *fastqOptions) { o.qual = p }
}

// FASTQ renders "@header\nseq\n+desc\nqual". Records that already carry a
// quality string ignore opts.
func (r *Record) FASTQ(opts ...FASTQOption) (string, error) {
	if r.IsFASTQ() {
		desc, _ := r.Description()
		return "@" + r.Header + "\n" + r.Seq + "\n+" + desc + "\n" + *r.Qual, nil
	}

	o := fastqOptions{desc: "", qual: "I"}
	for _, fn := range opts {
		fn(&o)
	}
	if o.qual == "" {
		return "", ErrEmptyQuality
	}
	return "@" + r.Header + "\n" + r.Seq + "\n+" + o.desc + "\n" + repeatTo(o.qual, len(r.Seq)), nil
}

func repeatTo(p string, n int) string {
	if n == 0 {
		return ""
	}
	reps := (n + len(p) - 1) / len(p)
	return strings.Repeat(p, reps)[:n]
}
