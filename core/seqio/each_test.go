package seqio

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"parsefasta-core/seq"
)

const plain = `>seq1
ACGT
>seq2
NNnn
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func collectIDs(ids *[]string) func(*seq.Record) error {
	return func(r *seq.Record) error {
		*ids = append(*ids, r.ID)
		return nil
	}
}

func TestEachPath(t *testing.T) {
	fn := writeFile(t, "x.fa", plain)
	var ids []string
	if err := EachPath(context.Background(), fn, FASTA, collectIDs(&ids)); err != nil {
		t.Fatalf("EachPath: %v", err)
	}
	if strings.Join(ids, ",") != "seq1,seq2" {
		t.Fatalf("ids=%v", ids)
	}
}

func TestEachPathStdin(t *testing.T) {
	orig := os.Stdin
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, "@r1\nACGT\n+\nIIII\n")
		_ = w.Close()
	}()

	count := 0
	err = EachPath(context.Background(), "-", FASTQ, func(*seq.Record) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 record from stdin, got %d", count)
	}
}

func TestEachPathCancelImmediately_YieldsNoRecords(t *testing.T) {
	fn := writeFile(t, "x.fa", plain)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n := 0
	err := EachPath(ctx, fn, FASTA, func(*seq.Record) error { n++; return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 records due to immediate cancel, got %d", n)
	}
}

func TestEachStopsOnEmitError(t *testing.T) {
	stop := errors.New("enough")
	n := 0
	err := Each(context.Background(), strings.NewReader(plain), FASTA, func(*seq.Record) error {
		n++
		return stop
	})
	if err != stop || n != 1 {
		t.Fatalf("err=%v n=%d", err, n)
	}
}

func TestEachPathWrongMarker(t *testing.T) {
	fn := writeFile(t, "x.fq", plain)
	err := EachPath(context.Background(), fn, FASTQ, func(*seq.Record) error { return nil })
	if !errors.Is(err, seq.ErrDataFormat) {
		t.Fatalf("want ErrDataFormat, got %v", err)
	}

	fn = writeFile(t, "notes.txt", "this is not a sequence file\n")
	err = EachPath(context.Background(), fn, FASTA, func(*seq.Record) error { return nil })
	if !errors.Is(err, seq.ErrDataFormat) {
		t.Fatalf("want ErrDataFormat, got %v", err)
	}
}

func TestEachPathEmptyFile(t *testing.T) {
	fn := writeFile(t, "empty.fa", "")
	n := 0
	if err := EachPath(context.Background(), fn, FASTA, func(*seq.Record) error { n++; return nil }); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("empty file produced %d records", n)
	}
}

func TestEachPathMissingFile(t *testing.T) {
	err := EachPath(context.Background(), filepath.Join(t.TempDir(), "nope.fa"), FASTA, func(*seq.Record) error { return nil })
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("want fs.ErrNotExist, got %v", err)
	}
}

func TestEachInvalidHandler(t *testing.T) {
	in := ">a\nAC\n>bad\nA>C\n>c\nGG\n"

	var ids []string
	var skipped []error
	err := Each(context.Background(), strings.NewReader(in), FASTA, collectIDs(&ids),
		WithInvalidHandler(func(err error) error {
			skipped = append(skipped, err)
			return nil
		}))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(ids, ",") != "a,c" || len(skipped) != 1 {
		t.Fatalf("ids=%v skipped=%v", ids, skipped)
	}

	ids = nil
	err = Each(context.Background(), strings.NewReader(in), FASTA, collectIDs(&ids))
	if !errors.Is(err, seq.ErrSequenceFormat) {
		t.Fatalf("without a handler the error must stop the loop, got %v", err)
	}
	if strings.Join(ids, ",") != "a" {
		t.Fatalf("ids=%v", ids)
	}
}

func TestEachDesyncIsNotSkippable(t *testing.T) {
	handled := false
	err := Each(context.Background(), strings.NewReader("@r1\nAC\n+\n"), FASTQ,
		func(*seq.Record) error { return nil },
		WithInvalidHandler(func(error) error { handled = true; return nil }))
	if !errors.Is(err, seq.ErrCycleDesync) || handled {
		t.Fatalf("err=%v handled=%v", err, handled)
	}
}

func TestEachPathReportsPath(t *testing.T) {
	fn := writeFile(t, "bad.fa", ">bad\nAC>GT\n")
	err := EachPath(context.Background(), fn, FASTA, func(*seq.Record) error { return nil })
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Path != fn || pe.Line != 2 {
		t.Fatalf("bad ParseError: %v", err)
	}
	if !strings.HasPrefix(err.Error(), fn+":2:") {
		t.Fatalf("message %q lacks location", err.Error())
	}
}
