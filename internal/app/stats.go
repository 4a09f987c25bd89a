package app

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"parsefasta-core/seqio"
	"parsefasta/internal/appcore"
	"parsefasta/internal/cli"
	"parsefasta/internal/encstream"
	"parsefasta/internal/output"
	"parsefasta/internal/pipeline"
	"parsefasta/internal/runutil"
	"parsefasta/internal/summary"
	"parsefasta/internal/writers"
)

func runStats(ctx context.Context, stdout io.Writer, logger *log.Logger, o cli.Options, format seqio.Format) int {
	cfg := pipeline.Config{
		Threads:     runutil.Threads(o.Threads),
		Format:      format,
		MaxLine:     o.MaxLine,
		SkipInvalid: o.SkipInvalid,
		OnInvalid:   warnInvalid(logger),
	}

	bw := bufio.NewWriter(stdout)
	records := 0
	var (
		visit  func(summary.Summary) error
		finish func() error
	)
	switch o.StatsOutput {
	case output.FormatJSON:
		var list []summary.Summary
		visit = func(s summary.Summary) error { list = append(list, s); return nil }
		finish = func() error { return output.WriteStatsJSON(bw, list) }
	case output.FormatJSONL:
		in, done := encstream.Start[summary.Summary](bw, 16, json.NewEncoder,
			func(enc *json.Encoder, s summary.Summary) error { return enc.Encode(output.ToAPIStats(s)) },
			writers.IsBrokenPipe)
		visit = func(s summary.Summary) error { in <- s; return nil }
		finish = func() error { close(in); return <-done }
	default:
		tw := output.NewStatsTextWriter(bw, o.Header, colorize(o.Color, stdout))
		visit = tw.Write
		finish = func() error { return nil }
	}

	perr := pipeline.Summarize(ctx, cfg, o.Files, func(s summary.Summary) error {
		records += s.Records
		if s.Invalid > 0 {
			logger.Warn("invalid records skipped", "file", s.SourceFile, "count", s.Invalid)
		}
		return visit(s)
	})

	werr := finish()
	if werr == nil {
		werr = bw.Flush()
	}
	if writers.IsBrokenPipe(werr) {
		return appcore.ExitOK
	}
	if code, done := appcore.ExitCode(logger, perr); done {
		return code
	}
	if werr != nil {
		logger.Error("write failed", "err", werr)
		return appcore.ExitIO
	}
	if records == 0 {
		return o.NoRecordExitCode
	}
	return appcore.ExitOK
}

// colorize resolves --color. auto colors only a terminal stdout.
func colorize(mode string, stdout io.Writer) bool {
	switch mode {
	case cli.ColorAlways:
		return true
	case cli.ColorNever:
		return false
	}
	f, ok := stdout.(*os.File)
	return ok && f == os.Stdout && !color.NoColor
}
