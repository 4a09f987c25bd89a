// internal/writers/records.go
package writers

import (
	"encoding/json"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"parsefasta/internal/encstream"
	"parsefasta/internal/output"
)

func init() {
	RegisterRecord(output.FormatTSV, func(w io.Writer, in <-chan output.Item, opt Options) error {
		return buffered(w, func(bw io.Writer) error {
			return output.StreamTSV(bw, in, opt.Header)
		})
	})

	RegisterRecord(output.FormatJSONL, func(w io.Writer, in <-chan output.Item, _ Options) error {
		return forward(in, func() (chan<- output.Item, <-chan error) {
			return StartRecordJSONLWriter(w, 64)
		})
	})

	RegisterRecord(output.FormatMsgpack, func(w io.Writer, in <-chan output.Item, _ Options) error {
		return forward(in, func() (chan<- output.Item, <-chan error) {
			return StartRecordMsgpackWriter(w, 64)
		})
	})

	RegisterRecord(output.FormatFASTA, func(w io.Writer, in <-chan output.Item, opt Options) error {
		return buffered(w, func(bw io.Writer) error {
			for it := range in {
				if err := output.WriteFASTA(bw, it.Rec, opt.Wrap); err != nil {
					return err
				}
			}
			return nil
		})
	})

	RegisterRecord(output.FormatFASTQ, func(w io.Writer, in <-chan output.Item, opt Options) error {
		return buffered(w, func(bw io.Writer) error {
			for it := range in {
				if err := output.WriteFASTQ(bw, it.Rec, opt.Desc, opt.QualPattern); err != nil {
					return err
				}
			}
			return nil
		})
	})

	RegisterRecord(output.FormatIDs, func(w io.Writer, in <-chan output.Item, _ Options) error {
		return buffered(w, func(bw io.Writer) error {
			for it := range in {
				if _, err := io.WriteString(bw, it.Rec.ID+"\n"); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func forward(in <-chan output.Item, start func() (chan<- output.Item, <-chan error)) error {
	pipe, done := start()
	for it := range in {
		pipe <- it
	}
	close(pipe)
	return <-done
}

// StartRecordJSONLWriter streams each item as one JSON line (v1).
func StartRecordJSONLWriter(out io.Writer, bufSize int) (chan<- output.Item, <-chan error) {
	return encstream.Start[output.Item](out, bufSize, json.NewEncoder,
		func(enc *json.Encoder, it output.Item) error {
			return enc.Encode(output.ToAPIRecord(it))
		},
		IsBrokenPipe,
	)
}

// StartRecordMsgpackWriter streams items as a sequence of msgpack maps (v1).
func StartRecordMsgpackWriter(out io.Writer, bufSize int) (chan<- output.Item, <-chan error) {
	return encstream.Start[output.Item](out, bufSize, msgpack.NewEncoder,
		func(enc *msgpack.Encoder, it output.Item) error {
			return enc.Encode(output.ToAPIRecord(it))
		},
		IsBrokenPipe,
	)
}
