package app

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"parsefasta-core/seqio"
	"parsefasta/internal/appcore"
	"parsefasta/internal/cli"
	"parsefasta/internal/output"
	"parsefasta/internal/visitors"
	"parsefasta/internal/writers"
)

func runRecords(ctx context.Context, stdout io.Writer, logger *log.Logger, o cli.Options, format seqio.Format) int {
	var chain []visitors.Visitor
	if o.RemoveGaps {
		chain = append(chain, visitors.RemoveGaps(o.GapChar[0]))
	}
	if o.DedupeIDs > 0 {
		chain = append(chain, visitors.DedupeIDs(o.DedupeIDs))
	}
	visit := visitors.Visitor(visitors.PassThrough)
	if len(chain) > 0 {
		visit = visitors.Chain(chain...)
	}

	wf := appcore.NewRecordWriterFactory(o.Output, writers.Options{
		Header:      o.Header,
		Wrap:        o.Wrap,
		Desc:        o.Desc,
		QualPattern: o.QualChar,
	})
	return appcore.Run[output.Item](ctx, stdout, logger, coreOptions(o, format, logger),
		appcore.VisitorFunc[output.Item](visit), wf)
}

func runIDs(ctx context.Context, stdout io.Writer, logger *log.Logger, o cli.Options, format seqio.Format) int {
	wf := appcore.NewRecordWriterFactory(output.FormatIDs, writers.Options{})
	return appcore.Run[output.Item](ctx, stdout, logger, coreOptions(o, format, logger),
		visitors.PassThrough, wf)
}

func coreOptions(o cli.Options, format seqio.Format, logger *log.Logger) appcore.Options {
	return appcore.Options{
		Files:            o.Files,
		Stream:           streamConfig(o, format, logger),
		NoRecordExitCode: o.NoRecordExitCode,
	}
}
