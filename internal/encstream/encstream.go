// internal/encstream/encstream.go
package encstream

import (
	"bufio"
	"io"
	"sync"
)

// Reuse a 64 KiB buffered writer across streams to avoid per-writer mallocs.
// Encoders are tied to an io.Writer, so they are (re)created per stream.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Start spins up an encoder goroutine for values of type T.
//   - newEnc: builds the encoder (json.NewEncoder, msgpack.NewEncoder, ...)
//   - encode: converts one value to its wire type and encodes it
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// After an encode error the goroutine keeps draining the input so senders
// never block; the error is reported once on the returned channel.
func Start[T any, E any](
	out io.Writer,
	bufSize int,
	newEnc func(io.Writer) E,
	encode func(E, T) error,
	isBroken func(error) bool,
) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		// Rebind to the actual output while keeping the pooled buffer.
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := newEnc(bw)
		for v := range in {
			if err := encode(enc, v); err != nil {
				done <- err
				for range in {
				}
				return
			}
		}
		if err := bw.Flush(); err != nil && !isBroken(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}
