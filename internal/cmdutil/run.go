package cmdutil

import (
	"context"
	"errors"

	"parsefasta-core/seq"
	"parsefasta-core/seqio"
	"parsefasta/internal/output"
)

// StreamConfig selects how input files are parsed.
type StreamConfig struct {
	Format      seqio.Format
	MaxLine     int
	SkipInvalid bool

	// OnInvalid is told about each skipped record when SkipInvalid is set.
	OnInvalid func(path string, err error)
}

// RunStream parses files one after another, applies a visitor, and streams
// kept results via send. It returns the number of sent outputs and the first
// error encountered.
func RunStream[T any](
	ctx context.Context,
	cfg StreamConfig,
	files []string,
	visit func(output.Item) (bool, T, error),
	send func(T) error,
) (int, error) {
	total := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		opts := []seqio.Option{seqio.WithMaxLine(cfg.MaxLine)}
		if cfg.SkipInvalid {
			opts = append(opts, seqio.WithInvalidHandler(func(err error) error {
				if cfg.OnInvalid != nil {
					cfg.OnInvalid(path, err)
				}
				return nil
			}))
		}
		err := seqio.EachPath(ctx, path, cfg.Format, func(r *seq.Record) error {
			keep, out, vErr := visit(output.Item{SourceFile: path, Rec: r})
			if vErr != nil {
				return vErr
			}
			if !keep {
				return nil
			}
			if err := send(out); err != nil {
				return err
			}
			total++
			return nil
		}, opts...)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// IsInputError reports whether err stems from malformed input rather than
// I/O or cancellation.
func IsInputError(err error) bool {
	return errors.Is(err, seq.ErrSequenceFormat) ||
		errors.Is(err, seq.ErrCycleDesync) ||
		errors.Is(err, seq.ErrDataFormat)
}
