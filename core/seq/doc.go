// Package seq holds the record type shared by the FASTA and FASTQ parsers and
// the builder that normalizes and validates accumulated fields.
//
// Build performs no I/O. A record is either fully valid or an error is
// returned before anything reaches the caller.
package seq
