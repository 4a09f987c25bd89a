// core/seqio/format.go
package seqio

import (
	"fmt"
	"strings"
)

// Format selects the line machine. There is no auto-detection.
type Format int

const (
	FASTA Format = iota + 1
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Marker is the first byte of every record in the format.
func (f Format) Marker() byte {
	if f == FASTQ {
		return '@'
	}
	return '>'
}

// ParseFormat accepts "fasta"/"fa" and "fastq"/"fq", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fasta", "fa":
		return FASTA, nil
	case "fastq", "fq":
		return FASTQ, nil
	}
	return 0, fmt.Errorf("unknown sequence format %q (want fasta | fastq)", s)
}
