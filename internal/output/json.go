// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"parsefasta/internal/summary"
	"parsefasta/pkg/api"
)

// WriteStatsJSON writes all summaries as one indented JSON array.
func WriteStatsJSON(w io.Writer, list []summary.Summary) error {
	out := make([]api.StatsV1, 0, len(list))
	for _, s := range list {
		out = append(out, ToAPIStats(s))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
