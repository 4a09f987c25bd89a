// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"parsefasta/internal/cmdutil"
	"parsefasta/internal/output"
	"parsefasta/internal/writers"
)

// Exit codes shared by every subcommand.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

type Options struct {
	Files            []string
	Stream           cmdutil.StreamConfig
	NoRecordExitCode int
}

type VisitorFunc[T any] func(output.Item) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run streams every record of o.Files through visit into the writer built by
// wf and maps the outcome to an exit code.
func Run[T any](
	parent context.Context,
	stdout io.Writer,
	logger *log.Logger,
	o Options,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	inCh, writeErr := wf.Start(stdout, 256)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := cmdutil.RunStream[T](ctx, o.Stream, o.Files, visit,
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		logger.Error("write failed", "err", werr)
		return ExitIO
	}

	if code, done := ExitCode(logger, perr); done {
		return code
	}
	logger.Debug("done", "records", total, "files", len(o.Files))
	if total == 0 {
		return o.NoRecordExitCode
	}
	return ExitOK
}

// ExitCode maps a parse error to an exit code. done is false for a nil error.
func ExitCode(logger *log.Logger, err error) (code int, done bool) {
	switch {
	case err == nil:
		return ExitOK, false
	case errors.Is(err, context.Canceled):
		return ExitCanceled, true
	case writers.IsBrokenPipe(err):
		return ExitOK, true
	case cmdutil.IsInputError(err):
		logger.Error("invalid input", "err", err)
		return ExitUsage, true
	default:
		logger.Error("read failed", "err", err)
		return ExitIO, true
	}
}
