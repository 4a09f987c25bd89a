// core/seqio/each.go
package seqio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"parsefasta-core/seq"
)

// Each parses r to completion, calling emit for every record in input order.
// Cancellation via ctx is honored between records. A non-nil error from emit
// stops the loop and is returned as is.
func Each(ctx context.Context, r io.Reader, f Format, emit func(*seq.Record) error, opts ...Option) error {
	c := newConfig(opts)
	rd := NewReader(r, f, opts...)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if c.onInvalid != nil && errors.Is(err, seq.ErrSequenceFormat) {
				if herr := c.onInvalid(err); herr != nil {
					return herr
				}
				continue
			}
			return err
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// EachPath opens path ("-" for stdin), checks that it starts with the
// format's record marker and runs Each over it. An empty input yields no
// records. The handle is closed on every return path.
func EachPath(ctx context.Context, path string, f Format, emit func(*seq.Record) error, opts ...Option) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	br := bufio.NewReader(rc)
	first, err := br.Peek(1)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if first[0] != f.Marker() {
		return fmt.Errorf("%s: %w (want %q, got %q)", path, seq.ErrDataFormat, f.Marker(), first[0])
	}

	opts = append([]Option{WithName(path)}, opts...)
	return Each(ctx, br, f, emit, opts...)
}
