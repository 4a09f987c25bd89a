// internal/output/tsv.go
package output

import (
	"fmt"
	"io"
	"strings"
)

// StreamTSV writes one tab-delimited row per item as items arrive.
func StreamTSV(w io.Writer, in <-chan Item, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for it := range in {
		if err := WriteTSVRow(w, it); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSVRow writes a single row. Missing desc/qual are written as empty
// cells. Tabs inside free-text cells are written as the two characters `\t`.
func WriteTSVRow(w io.Writer, it Item) error {
	r := it.Rec
	desc, _ := r.Description()
	qual, _ := r.Quality()
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
		tsvCell(it.SourceFile), r.ID, tsvCell(r.Header), len(r.Seq), r.Seq, tsvCell(desc), qual)
	return err
}

var tabEscaper = strings.NewReplacer("\t", `\t`)

func tsvCell(s string) string {
	if strings.IndexByte(s, '\t') < 0 {
		return s
	}
	return tabEscaper.Replace(s)
}
