// core/primer/parallel.go
package primer

import "golang.org/x/sync/errgroup"

// ParallelMinWindows is the smallest number of window starts worth splitting
// across goroutines; below it FindSitesParallel scans serially.
const ParallelMinWindows = 1 << 15

// FindSitesParallel is FindSites with the window range split into contiguous
// spans scanned concurrently. Spans are concatenated in order, so the result is
// identical to FindSites for the same inputs.
func FindSitesParallel(template, probe []byte, maxMM int, o Orientation, workers int) []Site {
	pl := len(probe)
	if pl == 0 || len(template) < pl || maxMM < 0 {
		return nil
	}
	windows := len(template) - pl + 1
	if workers <= 1 || windows < ParallelMinWindows {
		return scanRange(template, probe, maxMM, o, 0, windows-1)
	}
	if workers > windows {
		workers = windows
	}

	span := (windows + workers - 1) / workers
	parts := make([][]Site, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * span
		hi := lo + span - 1
		if hi > windows-1 {
			hi = windows - 1
		}
		if lo > hi {
			continue
		}
		w := w
		g.Go(func() error {
			parts[w] = scanRange(template, probe, maxMM, o, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // scans never fail

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Site, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
