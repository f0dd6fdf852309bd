// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"vpcr-core/engine"
	"vpcr-core/fasta"
	"vpcr-core/primer"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int  // number of worker goroutines (>=1)
	NeedSeq bool // fill Product.Seq by slicing the record

	// Accept, when set, is called on the reader goroutine for every record;
	// records it rejects are never scheduled.
	Accept func(sourceFile string, rec fasta.Record) bool
}

// Job is one record scheduled for a worker. Index is its position in the
// accepted input stream and fixes the output order.
type Job struct {
	Index      int
	SourceFile string
	Rec        fasta.Record
}

type batch[T any] struct {
	index int
	items []T
}

// ForEach reads every record of seqFiles, runs work on cfg.Threads workers
// and calls visit for each result. Results of record i are all visited before
// those of record i+1, so the output does not depend on the thread count.
//
// A file that cannot be read does not stop the others; the first such error
// is returned at the end. Context cancellation and visit errors stop the run.
func ForEach[T any](
	parent context.Context,
	cfg Config,
	seqFiles []string,
	work func(Job) []T,
	visit func(T) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan Job, cfg.Threads*2)
	results := make(chan batch[T], cfg.Threads*2)

	// Feed work
	var ferr error
	g.Go(func() error {
		defer close(jobs)
		idx := 0
		for _, fa := range seqFiles {
			err := fasta.StreamCtx(gctx, fa, func(rec fasta.Record) error {
				if cfg.Accept != nil && !cfg.Accept(fa, rec) {
					return nil
				}
				select {
				case jobs <- Job{Index: idx, SourceFile: fa, Rec: rec}:
					idx++
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if err != nil && ferr == nil {
				// Keep scanning other files; first error will be returned.
				ferr = err
			}
		}
		return nil
	})

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				b := batch[T]{index: j.Index, items: work(j)}
				select {
				case results <- b:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// Collector: release batches strictly by index.
	var (
		verr    error
		next    int
		pending = make(map[int][]T)
	)
	for b := range results {
		pending[b.index] = b.items
		for {
			items, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if verr != nil {
				continue
			}
			for _, it := range items {
				if err := visit(it); err != nil {
					verr = err
					cancel()
					break
				}
			}
		}
	}
	gerr := g.Wait()

	switch {
	case parent.Err() != nil:
		return parent.Err()
	case verr != nil:
		return verr
	case gerr != nil && !errors.Is(gerr, context.Canceled):
		return gerr
	}
	return ferr
}

// ForEachProduct streams engine.Products to the caller via visit.
func ForEachProduct(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	pairs []primer.Pair,
	sim Simulator,
	visit func(engine.Product) error,
) error {
	return ForEach(ctx, cfg, seqFiles, ProductWork(pairs, sim, cfg.NeedSeq), visit)
}

// ProductWork runs SimulateBatch over all primer pairs for one record, stamps
// the source file and fills Product.Seq if needSeq.
func ProductWork(pairs []primer.Pair, sim Simulator, needSeq bool) func(Job) []engine.Product {
	return func(j Job) []engine.Product {
		hits := sim.SimulateBatch(j.Rec.ID, j.Rec.Seq, pairs)
		for i := range hits {
			hits[i].SourceFile = j.SourceFile
			if needSeq {
				hits[i].Seq = sliceSeq(j.Rec.Seq, hits[i].Start(), hits[i].End())
			}
		}
		return hits
	}
}

// sliceSeq returns seq[start..end] for 1-based inclusive coordinates.
func sliceSeq(seq []byte, start, end int) string {
	if start < 1 || end > len(seq) || start > end {
		return ""
	}
	return string(seq[start-1 : end])
}
