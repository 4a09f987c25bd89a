// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSONL/msgpack schema for one parsed record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Desc and Qual are absent for FASTA records and present (possibly empty)
// for FASTQ records.
type RecordV1 struct {
	ID         string  `json:"id" msgpack:"id"`
	Header     string  `json:"header" msgpack:"header"`
	Seq        string  `json:"seq" msgpack:"seq"`
	Desc       *string `json:"desc,omitempty" msgpack:"desc,omitempty"`
	Qual       *string `json:"qual,omitempty" msgpack:"qual,omitempty"`
	Length     int     `json:"length" msgpack:"length"`
	SourceFile string  `json:"source_file,omitempty" msgpack:"source_file,omitempty"`
}

// StatsV1 is the stable schema for one per-file summary.
type StatsV1 struct {
	SourceFile   string  `json:"source_file" msgpack:"source_file"`
	Format       string  `json:"format" msgpack:"format"`
	Records      int     `json:"records" msgpack:"records"`
	Invalid      int     `json:"invalid,omitempty" msgpack:"invalid,omitempty"`
	TotalBases   int     `json:"total_bases" msgpack:"total_bases"`
	MinLength    int     `json:"min_length" msgpack:"min_length"`
	MaxLength    int     `json:"max_length" msgpack:"max_length"`
	MeanLength   float64 `json:"mean_length" msgpack:"mean_length"`
	MedianLength float64 `json:"median_length" msgpack:"median_length"`
	N50          int     `json:"n50" msgpack:"n50"`
	GC           float64 `json:"gc" msgpack:"gc"`
}
