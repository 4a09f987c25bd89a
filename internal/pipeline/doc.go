// Package pipeline fans input files out to a bounded set of workers and
// hands their results back in input order.
//
// A single file is never split across workers: each parse owns its own line
// machine, so no parser state is shared between goroutines.
package pipeline
