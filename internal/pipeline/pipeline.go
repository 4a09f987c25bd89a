// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"parsefasta-core/seqio"
)

// Config controls the per-file pipeline.
type Config struct {
	Threads     int          // number of worker goroutines (>=1)
	Format      seqio.Format // caller-selected format, applied to every file
	MaxLine     int          // longest accepted input line; 0 = seqio default
	SkipInvalid bool         // drop malformed FASTA records instead of failing the file

	// OnInvalid is told about every skipped record. May be called from
	// several workers at once.
	OnInvalid func(path string, err error)
}

// ForEachFile runs work on every file using cfg.Threads workers and calls
// visit with the results in input order. Each file is parsed by exactly one
// worker. It returns the first error (work, visit or cancellation) in input
// order; later results are discarded.
func ForEachFile[T any](
	ctx context.Context,
	cfg Config,
	files []string,
	work func(ctx context.Context, path string) (T, error),
	visit func(path string, v T) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		idx  int
		path string
	}
	type result struct {
		idx int
		val T
		err error
	}
	jobs := make(chan job)
	results := make(chan result, cfg.Threads)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				v, err := work(ctx, j.path)
				select {
				case results <- result{idx: j.idx, val: v, err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Feed work
	go func() {
		defer close(jobs)
		for i, f := range files {
			select {
			case jobs <- job{idx: i, path: f}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Reorder to input order.
	var (
		first   error
		next    int
		pending = make(map[int]result, cfg.Threads)
	)
	for r := range results {
		if first != nil {
			continue
		}
		pending[r.idx] = r
		for {
			p, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			err := p.err
			if err == nil {
				err = visit(files[p.idx], p.val)
			}
			if err != nil {
				first = err
				cancel()
				break
			}
		}
	}

	if first != nil {
		return first
	}
	return parent.Err()
}
