// internal/output/fasta.go
package output

import (
	"io"
	"strings"

	"parsefasta-core/seq"
)

// WriteFASTA writes one FASTA record. wrap > 0 splits the sequence into
// lines of at most wrap bases; an empty sequence still gets its own line.
func WriteFASTA(w io.Writer, r *seq.Record, wrap int) error {
	var b strings.Builder
	b.Grow(len(r.Header) + len(r.Seq) + len(r.Seq)/max(wrap, 1) + 3)
	b.WriteByte('>')
	b.WriteString(r.Header)
	b.WriteByte('\n')
	if wrap <= 0 || len(r.Seq) <= wrap {
		b.WriteString(r.Seq)
		b.WriteByte('\n')
	} else {
		for off := 0; off < len(r.Seq); off += wrap {
			end := min(off+wrap, len(r.Seq))
			b.WriteString(r.Seq[off:end])
			b.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteFASTQ writes one FASTQ record. FASTA records get desc and a quality
// string repeating qualPattern.
func WriteFASTQ(w io.Writer, r *seq.Record, desc, qualPattern string) error {
	s, err := r.FASTQ(seq.WithDesc(desc), seq.WithQualPattern(qualPattern))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}
