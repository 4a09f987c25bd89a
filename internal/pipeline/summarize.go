// internal/pipeline/summarize.go
package pipeline

import (
	"context"

	"parsefasta-core/seq"
	"parsefasta-core/seqio"
	"parsefasta/internal/summary"
)

// Summarize parses every file concurrently and calls visit with one Summary
// per file, in input order.
func Summarize(ctx context.Context, cfg Config, files []string, visit func(summary.Summary) error) error {
	work := func(ctx context.Context, path string) (summary.Summary, error) {
		var acc summary.Accumulator
		opts := []seqio.Option{seqio.WithMaxLine(cfg.MaxLine)}
		if cfg.SkipInvalid {
			opts = append(opts, seqio.WithInvalidHandler(func(err error) error {
				acc.Skip()
				if cfg.OnInvalid != nil {
					cfg.OnInvalid(path, err)
				}
				return nil
			}))
		}
		err := seqio.EachPath(ctx, path, cfg.Format, func(r *seq.Record) error {
			acc.Add(r)
			return nil
		}, opts...)
		if err != nil {
			return summary.Summary{}, err
		}
		return acc.Summary(path, cfg.Format.String()), nil
	}
	return ForEachFile(ctx, cfg, files, work, func(_ string, s summary.Summary) error {
		return visit(s)
	})
}
