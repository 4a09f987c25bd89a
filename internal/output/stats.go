// internal/output/stats.go
package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"parsefasta/internal/summary"
	"parsefasta/pkg/api"
)

// ToAPIStats converts a Summary to the stable wire schema (v1).
func ToAPIStats(s summary.Summary) api.StatsV1 {
	return api.StatsV1{
		SourceFile:   s.SourceFile,
		Format:       s.Format,
		Records:      s.Records,
		Invalid:      s.Invalid,
		TotalBases:   s.TotalBases,
		MinLength:    s.MinLength,
		MaxLength:    s.MaxLength,
		MeanLength:   s.MeanLength,
		MedianLength: s.MedianLength,
		N50:          s.N50,
		GC:           s.GC,
	}
}

// StatsTextWriter prints summaries as a TSV table. The header row is
// highlighted when colorize is set.
type StatsTextWriter struct {
	w       io.Writer
	header  bool
	wrote   bool
	heading *color.Color
	warn    *color.Color
}

func NewStatsTextWriter(w io.Writer, header, colorize bool) *StatsTextWriter {
	heading := color.New(color.Bold, color.FgCyan)
	warn := color.New(color.FgYellow)
	if colorize {
		heading.EnableColor()
		warn.EnableColor()
	} else {
		heading.DisableColor()
		warn.DisableColor()
	}
	return &StatsTextWriter{w: w, header: header, heading: heading, warn: warn}
}

// Write prints one summary row, preceded by the header on first use.
func (sw *StatsTextWriter) Write(s summary.Summary) error {
	if sw.header && !sw.wrote {
		if _, err := sw.heading.Fprintln(sw.w, StatsHeader); err != nil {
			return err
		}
	}
	sw.wrote = true

	invalid := fmt.Sprint(s.Invalid)
	if s.Invalid > 0 {
		invalid = sw.warn.Sprint(invalid)
	}
	_, err := fmt.Fprintf(sw.w, "%s\t%s\t%d\t%s\t%d\t%d\t%d\t%.2f\t%.1f\t%d\t%.4f\n",
		s.SourceFile, s.Format, s.Records, invalid, s.TotalBases,
		s.MinLength, s.MaxLength, s.MeanLength, s.MedianLength, s.N50, s.GC)
	return err
}
