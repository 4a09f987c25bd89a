package fastq

import (
	"errors"
	"strings"
	"testing"

	"parsefasta-core/seq"
)

func run(t *testing.T, in string) ([]*seq.Record, error) {
	t.Helper()
	var (
		st   State
		recs []*seq.Record
	)
	for _, line := range strings.SplitAfter(in, "\n") {
		if line == "" {
			continue
		}
		var (
			rec *seq.Record
			err error
		)
		st, rec, err = st.Step(line)
		if err != nil {
			return recs, err
		}
		if rec != nil {
			recs = append(recs, rec)
		}
	}
	return recs, st.Finish()
}

func TestSingleRecord(t *testing.T) {
	recs, err := run(t, "@r1\nACGT\n+\n!!!!\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.Header != "r1" || r.ID != "r1" || r.Seq != "ACGT" {
		t.Fatalf("bad record %+v", r)
	}
	if d, ok := r.Description(); !ok || d != "" {
		t.Fatalf("desc = %q, %v", d, ok)
	}
	if q, ok := r.Quality(); !ok || q != "!!!!" {
		t.Fatalf("qual = %q, %v", q, ok)
	}
}

func TestFieldsAndWhitespace(t *testing.T) {
	in := "@seq1 apples\r\nAC TG\r\n+seq1 apples\r\n!! +2\r\n" +
		"@seq2 pie\nAA>CC\n+\n>>>>\n"
	recs, err := run(t, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].Header != "seq1 apples" || recs[0].ID != "seq1" || recs[0].Seq != "ACTG" {
		t.Errorf("record 0 = %+v", recs[0])
	}
	if d, _ := recs[0].Description(); d != "seq1 apples" {
		t.Errorf("record 0 desc = %q", d)
	}
	if q, _ := recs[0].Quality(); q != "!!+2" {
		t.Errorf("record 0 qual = %q", q)
	}
	if recs[1].Seq != "AA>CC" {
		t.Errorf("'>' must be allowed when quality is present, got %q", recs[1].Seq)
	}
}

func TestRecordCount(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 25; i++ {
		b.WriteString("@r\nACGT\n+\nIIII\n")
	}
	recs, err := run(t, b.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 25 {
		t.Fatalf("want 25 records, got %d", len(recs))
	}
}

func TestTruncatedInputDesyncs(t *testing.T) {
	for _, in := range []string{
		"@r1\n",
		"@r1\nACGT\n",
		"@r1\nACGT\n+\n",
		"@r1\nACGT\n+\nIIII\n@r2\n",
	} {
		recs, err := run(t, in)
		if !errors.Is(err, seq.ErrCycleDesync) {
			t.Errorf("%q: want ErrCycleDesync, got %v", in, err)
		}
		if strings.Count(in, "\n")/4 != len(recs) {
			t.Errorf("%q: only complete groups may be emitted, got %d", in, len(recs))
		}
	}
}

func TestCorruptIndexIsFatal(t *testing.T) {
	for _, idx := range []int{-1, 4, 99} {
		st := State{index: idx}
		next, rec, err := st.Step("@r1\n")
		var ce *seq.CycleError
		if !errors.As(err, &ce) || ce.Index != idx {
			t.Fatalf("index %d: want CycleError, got %v", idx, err)
		}
		if rec != nil {
			t.Fatalf("index %d: no record may be emitted", idx)
		}
		if next.Index() != idx {
			t.Fatalf("index %d: state must not resynchronize, got %d", idx, next.Index())
		}
	}
}

func TestIndexCycles(t *testing.T) {
	var st State
	lines := []string{"@a\n", "AC\n", "+\n", "II\n"}
	for i, l := range lines {
		if st.Index() != i {
			t.Fatalf("before line %d index = %d", i, st.Index())
		}
		st, _, _ = st.Step(l)
	}
	if st.Index() != 0 {
		t.Fatalf("index not reset after group: %d", st.Index())
	}
}

func TestMissingMarkersKeepLine(t *testing.T) {
	recs, err := run(t, "r1 x\nACGT\nplain\nIIII\n")
	if err != nil {
		t.Fatal(err)
	}
	r := recs[0]
	if d, _ := r.Description(); r.Header != "r1 x" || d != "plain" {
		t.Fatalf("header=%q desc=%q", r.Header, d)
	}
}
