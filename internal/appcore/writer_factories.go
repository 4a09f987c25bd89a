package appcore

import (
	"io"

	"parsefasta/internal/output"
	"parsefasta/internal/writers"
)

// RecordWriterFactory starts the registered writer for Format.
type RecordWriterFactory struct {
	Format string
	Opt    writers.Options
}

func NewRecordWriterFactory(format string, opt writers.Options) RecordWriterFactory {
	return RecordWriterFactory{Format: format, Opt: opt}
}

func (w RecordWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Item, <-chan error) {
	return writers.StartRecordWriter(out, w.Format, w.Opt, bufSize)
}
