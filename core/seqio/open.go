// core/seqio/open.go
package seqio

import (
	"io"
	"os"
)

// Open returns a reader for path, or stdin when path is "-". Closing the
// stdin reader is a no-op. A missing file yields an error matching
// fs.ErrNotExist.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return fh, nil
}
