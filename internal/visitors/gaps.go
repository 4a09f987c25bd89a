package visitors

import (
	"parsefasta-core/seq"
	"parsefasta/internal/output"
)

// RemoveGaps strips gap characters from FASTA sequences. FASTQ records keep
// their bases so sequence and quality stay aligned.
func RemoveGaps(gap byte) Visitor {
	return func(it output.Item) (bool, output.Item, error) {
		if it.Rec.IsFASTQ() {
			return true, it, nil
		}
		s := seq.RemoveGaps(it.Rec.Seq, gap)
		if len(s) == len(it.Rec.Seq) {
			return true, it, nil
		}
		r := *it.Rec
		r.Seq = s
		return true, output.Item{SourceFile: it.SourceFile, Rec: &r}, nil
	}
}
