// internal/summary/summary.go
package summary

import (
	"sort"

	"github.com/montanaflynn/stats"

	"parsefasta-core/seq"
)

// Summary describes the records of one input file.
type Summary struct {
	SourceFile   string
	Format       string
	Records      int
	Invalid      int
	TotalBases   int
	MinLength    int
	MaxLength    int
	MeanLength   float64
	MedianLength float64
	N50          int
	GC           float64
}

// Accumulator collects record lengths and base composition. Not safe for
// concurrent use; the pipeline gives each file its own.
type Accumulator struct {
	lengths []float64
	gc      int
	acgtu   int
	invalid int
}

// Add records one parsed record.
func (a *Accumulator) Add(r *seq.Record) {
	a.lengths = append(a.lengths, float64(len(r.Seq)))
	c := seq.BaseCounts(r.Seq, false)
	a.gc += c.G + c.C
	a.acgtu += c.A + c.C + c.G + c.T + countU(r.Seq)
}

// Skip counts a record dropped as malformed.
func (a *Accumulator) Skip() { a.invalid++ }

// Summary finalizes the statistics. Empty inputs yield zero values.
func (a *Accumulator) Summary(source, format string) Summary {
	s := Summary{
		SourceFile: source,
		Format:     format,
		Records:    len(a.lengths),
		Invalid:    a.invalid,
	}
	if len(a.lengths) == 0 {
		return s
	}
	data := stats.Float64Data(a.lengths)
	total, _ := data.Sum()
	minL, _ := data.Min()
	maxL, _ := data.Max()
	mean, _ := data.Mean()
	median, _ := data.Median()

	s.TotalBases = int(total)
	s.MinLength = int(minL)
	s.MaxLength = int(maxL)
	s.MeanLength = mean
	s.MedianLength = median
	s.N50 = n50(a.lengths, s.TotalBases)
	if a.acgtu > 0 {
		s.GC = float64(a.gc) / float64(a.acgtu)
	}
	return s
}

// n50 is the length L such that records of length >= L hold at least half of
// all bases.
func n50(lengths []float64, total int) int {
	sorted := append([]float64(nil), lengths...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	acc := 0
	for _, l := range sorted {
		acc += int(l)
		if 2*acc >= total {
			return int(l)
		}
	}
	return 0
}

func countU(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == 'u' || s[i] == 'U' {
			n++
		}
	}
	return n
}
