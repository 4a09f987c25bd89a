// internal/output/common.go
package output

// Output format names shared by the CLI and the writer registry.
const (
	FormatTSV     = "tsv"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatMsgpack = "msgpack"
	FormatFASTA   = "fasta"
	FormatFASTQ   = "fastq"
	FormatIDs     = "ids"
	FormatText    = "text"
)

// TSVHeader is the canonical header row for record TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tid\theader\tlength\tseq\tdesc\tqual"

// StatsHeader is the header row for the stats text table.
const StatsHeader = "source_file\tformat\trecords\tinvalid\ttotal_bases\tmin_len\tmax_len\tmean_len\tmedian_len\tn50\tgc"
