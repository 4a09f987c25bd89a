// internal/output/item.go
package output

import (
	"parsefasta-core/seq"
	"parsefasta/pkg/api"
)

// Item is a parsed record tagged with the file it came from.
type Item struct {
	SourceFile string
	Rec        *seq.Record
}

// ToAPIRecord converts an Item to the stable wire schema (v1).
func ToAPIRecord(it Item) api.RecordV1 {
	r := it.Rec
	return api.RecordV1{
		ID:         r.ID,
		Header:     r.Header,
		Seq:        r.Seq,
		Desc:       r.Desc,
		Qual:       r.Qual,
		Length:     len(r.Seq),
		SourceFile: it.SourceFile,
	}
}
