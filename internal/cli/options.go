// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"

	"parsefasta/internal/cliutil"
	"parsefasta/internal/cmdutil"
	"parsefasta/internal/version"
)

// Subcommands
const (
	CmdRecords = "records"
	CmdStats   = "stats"
	CmdIDs     = "ids"
)

// Color modes for the stats table.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrHelp is returned when help or the version was printed and nothing else
// should run.
var ErrHelp = errors.New("help requested")

// Options holds all CLI flags and arguments.
type Options struct {
	Command string

	// Global
	LogLevel         string
	Quiet            bool
	Verbose          bool
	MaxLine          int
	NoRecordExitCode int

	// Input (every subcommand)
	Files       []string
	Format      string
	SkipInvalid bool

	// records
	Output     string
	Header     bool // true unless --no-header
	RemoveGaps bool
	GapChar    string
	Wrap       int
	Desc       string
	QualChar   string
	DedupeIDs  int

	// stats
	Threads     int
	StatsOutput string
	Color       string
}

// exitRequest carries kingpin's terminate code out of Parse.
type exitRequest struct{ code int }

func newApp(o *Options, stdout, stderr io.Writer) *kingpin.Application {
	app := kingpin.New("pfa", "Parse FASTA/FASTQ files line by line.\n\n"+examples)
	app.Version(version.Version)
	app.UsageWriter(stdout)
	app.ErrorWriter(stderr)
	app.HelpFlag.Short('h')
	app.Terminate(func(code int) { panic(exitRequest{code: code}) })

	app.Flag("log-level", "log level: debug | info | warn | error").
		Default("info").Envar("PFA_LOG_LEVEL").
		EnumVar(&o.LogLevel, cmdutil.LogLevels...)
	app.Flag("quiet", "only log errors").Short('q').Envar("PFA_QUIET").BoolVar(&o.Quiet)
	app.Flag("verbose", "log debug output").Short('v').BoolVar(&o.Verbose)
	app.Flag("max-line", "longest accepted input line in bytes (0 = 64 MiB)").
		Default("0").Envar("PFA_MAX_LINE").IntVar(&o.MaxLine)
	app.Flag("no-record-exit-code", "exit code when no records were produced").
		Default("1").Envar("PFA_NO_RECORD_EXIT_CODE").IntVar(&o.NoRecordExitCode)

	records := app.Command(CmdRecords, "Stream parsed records.").Default()
	addInput(records, o)
	records.Flag("output", "output format: tsv | jsonl | msgpack | fasta | fastq").
		Short('o').Default("tsv").Envar("PFA_OUTPUT").
		EnumVar(&o.Output, "tsv", "jsonl", "msgpack", "fasta", "fastq")
	records.Flag("header", "print the TSV header line").Default("true").BoolVar(&o.Header)
	records.Flag("remove-gaps", "strip gap characters from FASTA sequences").BoolVar(&o.RemoveGaps)
	records.Flag("gap-char", "gap character for --remove-gaps").Default("-").StringVar(&o.GapChar)
	records.Flag("wrap", "FASTA output line width (0 = no wrapping)").Default("0").IntVar(&o.Wrap)
	records.Flag("desc", "FASTQ '+' line for records read from FASTA").Default("").StringVar(&o.Desc)
	records.Flag("qual-char", "quality pattern for records read from FASTA").
		Default("I").Envar("PFA_QUAL_CHAR").StringVar(&o.QualChar)
	records.Flag("dedupe-ids", "drop records whose id is among the last N distinct ids (0 = off)").
		Default("0").IntVar(&o.DedupeIDs)

	stats := app.Command(CmdStats, "Summarize each input file.")
	addInput(stats, o)
	stats.Flag("threads", "number of worker threads (0 = all CPUs)").
		Short('t').Default("0").Envar("PFA_THREADS").IntVar(&o.Threads)
	stats.Flag("output", "output format: text | json | jsonl").
		Short('o').Default("text").Envar("PFA_STATS_OUTPUT").
		EnumVar(&o.StatsOutput, "text", "json", "jsonl")
	stats.Flag("header", "print the table header line").Default("true").BoolVar(&o.Header)
	stats.Flag("color", "colorize the text table: auto | always | never").
		Default(ColorAuto).Envar("PFA_COLOR").
		EnumVar(&o.Color, ColorAuto, ColorAlways, ColorNever)

	ids := app.Command(CmdIDs, "Print record identifiers, one per line.")
	addInput(ids, o)

	return app
}

func addInput(cmd *kingpin.CmdClause, o *Options) {
	cmd.Flag("format", "input format: fasta | fastq").
		Short('f').Required().Envar("PFA_FORMAT").
		EnumVar(&o.Format, "fasta", "fa", "fastq", "fq")
	cmd.Flag("skip-invalid", "skip malformed FASTA records instead of failing").
		Envar("PFA_SKIP_INVALID").BoolVar(&o.SkipInvalid)
	cmd.Arg("files", "input files or globs ('-' = stdin)").Required().StringsVar(&o.Files)
}

// ParseArgs parses argv (without the program name). Help and version output
// go to stdout and yield ErrHelp.
func ParseArgs(argv []string, stdout, stderr io.Writer) (opt Options, err error) {
	app := newApp(&opt, stdout, stderr)

	defer func() {
		if r := recover(); r != nil {
			req, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			if req.code == 0 {
				err = ErrHelp
			} else {
				err = errors.New("invalid arguments")
			}
		}
	}()

	cmd, err := app.Parse(argv)
	if err != nil {
		return opt, err
	}
	opt.Command = cmd
	return opt, validate(&opt)
}

func validate(o *Options) error {
	files, err := cliutil.ExpandPositionals(o.Files)
	if err != nil {
		return err
	}
	o.Files = files
	if cliutil.CountStdin(o.Files) > 1 {
		return errors.New("stdin ('-') can only be read once")
	}
	if o.MaxLine < 0 {
		return errors.New("--max-line must be ≥ 0")
	}
	switch o.Command {
	case CmdRecords:
		if len(o.GapChar) != 1 {
			return fmt.Errorf("--gap-char must be a single byte, got %q", o.GapChar)
		}
		if o.QualChar == "" {
			return errors.New("--qual-char must not be empty")
		}
		if o.Wrap < 0 {
			return errors.New("--wrap must be ≥ 0")
		}
		if o.DedupeIDs < 0 {
			return errors.New("--dedupe-ids must be ≥ 0")
		}
	case CmdStats:
		if o.Threads < 0 {
			return errors.New("--threads must be ≥ 0")
		}
	}
	return nil
}
