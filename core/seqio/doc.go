// Package seqio drives the FASTA and FASTQ line machines over a byte stream.
//
// Reader is the pull API: one record per Read call. Each and EachPath are
// run-to-completion loops built on Reader. Every parse owns its own state, so
// separate files may be parsed from separate goroutines.
package seqio
