// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"hoco-core/fasta"
	"hoco-core/hoco"
)

// Config controls the compression pipeline.
type Config struct {
	Threads int  // number of worker goroutines (>=1)
	Buffer  int  // capacity of the stage channels; 0 runs them unbuffered
	WithMap bool // attach a hodeco map to every compressed record
}

// ForEachRecord streams compressed records to the caller via visit. A single
// goroutine parses records from in, Threads workers collapse homopolymer
// runs, and a single collector invokes visit, so visit needs no locking.
// It returns the first error encountered (including context cancellation).
func ForEachRecord(
	ctx context.Context,
	cfg Config,
	in io.Reader,
	visit func(hoco.CompressedRecord) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Buffer < 0 {
		cfg.Buffer = 0
	}

	g, ctx := errgroup.WithContext(ctx)

	jobs := make(chan fasta.Record, cfg.Buffer)
	results := make(chan hoco.CompressedRecord, cfg.Buffer)

	// Reader
	g.Go(func() error {
		defer close(jobs)
		return fasta.ReadAllCtx(ctx, in, func(rec fasta.Record) error {
			select {
			case jobs <- rec:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	})

	// Workers
	var workers sync.WaitGroup
	workers.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer workers.Done()
			for rec := range jobs {
				select {
				case results <- compressRecord(rec, cfg.WithMap):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		workers.Wait()
		close(results)
	}()

	// Collector
	g.Go(func() error {
		for cr := range results {
			if err := visit(cr); err != nil {
				return err
			}
		}
		return nil
	})

	return g.Wait()
}

// compressRecord collapses the record's homopolymer runs. With withMap the
// result carries the full hodeco map, run start offsets plus the trailing
// total-length entry.
func compressRecord(rec fasta.Record, withMap bool) hoco.CompressedRecord {
	cr := hoco.CompressedRecord{ID: rec.ID, Desc: rec.Desc}
	if withMap {
		seq, offs := hoco.CompressWithMap(rec.Seq)
		cr.Seq = seq
		cr.Map = append(offs, len(rec.Seq))
	} else {
		cr.Seq = hoco.Compress(rec.Seq)
	}
	return cr
}
