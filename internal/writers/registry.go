// internal/writers/registry.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"parsefasta/internal/output"
)

// Options tune the record writers. Fields a format does not use are ignored.
type Options struct {
	Header      bool   // tsv: emit the column header
	Wrap        int    // fasta: bases per line, 0 = single line
	Desc        string // fastq: '+' line description for FASTA input
	QualPattern string // fastq: quality pattern for FASTA input
}

// RecordWriterFunc drains in and writes every item to w.
type RecordWriterFunc func(w io.Writer, in <-chan output.Item, opt Options) error

var recordWriters = map[string]RecordWriterFunc{}

// RegisterRecord installs fn for format (last wins).
func RegisterRecord(format string, fn RecordWriterFunc) { recordWriters[format] = fn }

// RecordFormats lists the registered formats, sorted.
func RecordFormats() []string {
	out := make([]string, 0, len(recordWriters))
	for f := range recordWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// WriteRecords dispatches to the writer registered for format.
func WriteRecords(format string, w io.Writer, in <-chan output.Item, opt Options) error {
	fn, ok := recordWriters[format]
	if !ok {
		return fmt.Errorf("unknown record format %q (no writer registered)", format)
	}
	return fn(w, in, opt)
}

// StartRecordWriter spins up a writer goroutine for format. The input is
// always drained, even after a write error, so senders never block.
func StartRecordWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- output.Item, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Item, bufSize)
	errCh := make(chan error, 1)
	go func() {
		err := WriteRecords(format, out, in, opt)
		for range in {
		}
		errCh <- err
	}()
	return in, errCh
}

// buffered runs fn against a buffered view of w and flushes it.
func buffered(w io.Writer, fn func(io.Writer) error) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	if err := fn(bw); err != nil {
		return err
	}
	return bw.Flush()
}
