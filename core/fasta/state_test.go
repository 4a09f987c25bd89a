package fasta

import (
	"errors"
	"strings"
	"testing"

	"parsefasta-core/seq"
)

// run drives the machine over every line of in, then flushes.
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
	rec, err := st.Finish()
	if err != nil {
		return recs, err
	}
	if rec != nil {
		recs = append(recs, rec)
	}
	return recs, nil
}

func TestTwoRecords(t *testing.T) {
	recs, err := run(t, ">s1 desc\nACGT\nAC\n>s2\nTTTT\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	want := []struct{ header, id, seq string }{
		{"s1 desc", "s1", "ACGTAC"},
		{"s2", "s2", "TTTT"},
	}
	for i, w := range want {
		r := recs[i]
		if r.Header != w.header || r.ID != w.id || r.Seq != w.seq {
			t.Errorf("record %d = {%q %q %q}, want {%q %q %q}", i, r.Header, r.ID, r.Seq, w.header, w.id, w.seq)
		}
		if r.Desc != nil || r.Qual != nil {
			t.Errorf("record %d: FASTA record must not carry desc/qual", i)
		}
	}
}

func TestEmptySequencesAndOddHeaders(t *testing.T) {
	in := ">empty seq at beginning\n" +
		">seq1 is fun\nAACTGG NNN\n" +
		">seq2\r\nAATCCTGNNN\r\n" +
		">empty seq 1\n>empty seq 2\n\n" +
		">seq3\nyyyyyyyyyy\nyyyyy\nNNN\n" +
		">seq 4 > has many '>' in header\nACTG\nactg\n" +
		">empty seq at end\n"
	recs, err := run(t, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []struct{ header, seq string }{
		{"empty seq at beginning", ""},
		{"seq1 is fun", "AACTGGNNN"},
		{"seq2", "AATCCTGNNN"},
		{"empty seq 1", ""},
		{"empty seq 2", ""},
		{"seq3", "yyyyyyyyyyyyyyyNNN"},
		{"seq 4 > has many '>' in header", "ACTGactg"},
		{"empty seq at end", ""},
	}
	if len(recs) != len(want) {
		t.Fatalf("want %d records, got %d", len(want), len(recs))
	}
	for i, w := range want {
		if recs[i].Header != w.header || recs[i].Seq != w.seq {
			t.Errorf("record %d = {%q %q}, want {%q %q}", i, recs[i].Header, recs[i].Seq, w.header, w.seq)
		}
	}
}

func TestHeaderIsTrimmed(t *testing.T) {
	recs, err := run(t, ">  padded header \t\nAC\n>last  \nGG\n")
	if err != nil {
		t.Fatal(err)
	}
	if recs[0].Header != "padded header" || recs[0].ID != "padded" {
		t.Errorf("got header %q id %q", recs[0].Header, recs[0].ID)
	}
	if recs[1].Header != "last" {
		t.Errorf("final header not trimmed: %q", recs[1].Header)
	}
}

func TestSeparatorInSequence(t *testing.T) {
	_, err := run(t, ">bad\nAC>GT\n")
	if !errors.Is(err, seq.ErrSequenceFormat) {
		t.Fatalf("want ErrSequenceFormat, got %v", err)
	}
	var sfe *seq.SequenceFormatError
	if !errors.As(err, &sfe) || sfe.Header != "bad" {
		t.Fatalf("want SequenceFormatError for %q, got %v", "bad", err)
	}
}

func TestSeparatorErrorAtBoundary(t *testing.T) {
	recs, err := run(t, ">ok\nAC\n>bad\nA>C\n>never\nGG\n")
	if !errors.Is(err, seq.ErrSequenceFormat) {
		t.Fatalf("want ErrSequenceFormat, got %v", err)
	}
	if len(recs) != 1 || recs[0].ID != "ok" {
		t.Fatalf("records before the bad one must be emitted, got %d", len(recs))
	}
}

func TestRecordCountMatchesHeaders(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString(">r")
		b.WriteString(strings.Repeat("x", i%3))
		b.WriteString("\n")
		for j := 0; j < i%4; j++ {
			b.WriteString("ACGT\n")
		}
	}
	recs, err := run(t, b.String())
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 50 {
		t.Fatalf("want 50 records, got %d", len(recs))
	}
	for i, r := range recs {
		if r.Seq != strings.Repeat("ACGT", i%4) {
			t.Errorf("record %d seq = %q", i, r.Seq)
		}
	}
}

func TestRecordsDoNotAliasBuffer(t *testing.T) {
	var st State
	st, _, _ = st.Step(">a\n")
	st, _, _ = st.Step("AAAA\n")
	st, first, err := st.Step(">b\n")
	if err != nil || first == nil {
		t.Fatalf("expected first record, err=%v", err)
	}
	st, _, _ = st.Step("CC\n")
	if first.Seq != "AAAA" {
		t.Fatalf("emitted record changed after buffer reuse: %q", first.Seq)
	}
	last, err := st.Finish()
	if err != nil || last.Seq != "CC" {
		t.Fatalf("bad final record %+v err=%v", last, err)
	}
}

func TestStepDoesNotMutateEarlierStates(t *testing.T) {
	var s0 State
	for _, line := range []string{">h\n", "AAAAAAAA\n", ">h2\n", "AC\n"} {
		s0, _, _ = s0.Step(line)
	}
	s1, _, _ := s0.Step("GT\n")
	s2, _, _ := s0.Step("TT\n")
	s3, _, _ := s1.Step("CC\n")

	for _, c := range []struct {
		st   State
		want string
	}{
		{s0, "AC"}, {s1, "ACGT"}, {s2, "ACTT"}, {s3, "ACGTCC"},
	} {
		rec, err := c.st.Finish()
		if err != nil || rec.Seq != c.want {
			t.Errorf("Finish = %+v, %v; want seq %q", rec, err, c.want)
		}
	}

	// Same line twice from one State: equal results.
	a, _, _ := s0.Step("G\n")
	b, _, _ := s0.Step("G\n")
	ra, _ := a.Finish()
	rb, _ := b.Finish()
	if !ra.Equal(rb) {
		t.Fatalf("repeated Step differs: %q vs %q", ra.Seq, rb.Seq)
	}
}

func TestStateTransitions(t *testing.T) {
	var st State
	if st.InRecord() || st.Pending() {
		t.Fatal("zero State must await a header")
	}
	if rec, err := st.Finish(); rec != nil || err != nil {
		t.Fatalf("empty Finish = %v, %v", rec, err)
	}
	st, _, _ = st.Step(">h\n")
	if !st.InRecord() || !st.Pending() {
		t.Fatal("expected InRecord after header")
	}
}

func TestLinesBeforeFirstHeaderJoinFirstRecord(t *testing.T) {
	recs, err := run(t, "AC\n>h\nGT\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Seq != "ACGT" {
		t.Fatalf("got %+v", recs)
	}
}

func TestSkipInvalidRecord(t *testing.T) {
	var (
		st  State
		ids []string
		bad int
	)
	for _, line := range []string{">a\n", "AC\n", ">bad\n", "A>C\n", ">c\n", "GG\n"} {
		var (
			rec *seq.Record
			err error
		)
		st, rec, err = st.Step(line)
		if err != nil {
			if !errors.Is(err, seq.ErrSequenceFormat) {
				t.Fatalf("unexpected error: %v", err)
			}
			bad++
			continue
		}
		if rec != nil {
			ids = append(ids, rec.ID)
		}
	}
	last, err := st.Finish()
	if err != nil {
		t.Fatal(err)
	}
	ids = append(ids, last.ID)
	if bad != 1 || strings.Join(ids, ",") != "a,c" {
		t.Fatalf("bad=%d ids=%v", bad, ids)
	}
}
