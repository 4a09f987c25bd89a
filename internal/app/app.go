// internal/app/app.go
package app

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"parsefasta-core/seqio"
	"parsefasta/internal/appcore"
	"parsefasta/internal/cli"
	"parsefasta/internal/cmdutil"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	opts, err := cli.ParseArgs(argv, stdout, stderr)
	if errors.Is(err, cli.ErrHelp) {
		return appcore.ExitOK
	}
	if err != nil {
		cmdutil.NewLogger(stderr, "", false, false).Error(err, "hint", "try --help")
		return appcore.ExitUsage
	}

	logger := cmdutil.NewLogger(stderr, opts.LogLevel, opts.Quiet, opts.Verbose)
	format, err := seqio.ParseFormat(opts.Format)
	if err != nil {
		logger.Error(err)
		return appcore.ExitUsage
	}
	logger.Debug("starting", "command", opts.Command, "format", format, "files", len(opts.Files))

	switch opts.Command {
	case cli.CmdStats:
		return runStats(parent, stdout, logger, opts, format)
	case cli.CmdIDs:
		return runIDs(parent, stdout, logger, opts, format)
	default:
		return runRecords(parent, stdout, logger, opts, format)
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func streamConfig(o cli.Options, format seqio.Format, logger *log.Logger) cmdutil.StreamConfig {
	return cmdutil.StreamConfig{
		Format:      format,
		MaxLine:     o.MaxLine,
		SkipInvalid: o.SkipInvalid,
		OnInvalid:   warnInvalid(logger),
	}
}

func warnInvalid(logger *log.Logger) func(path string, err error) {
	return func(path string, err error) {
		logger.Warn("skipping invalid record", "file", path, "err", err)
	}
}
