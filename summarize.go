package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
)

// From the workload description; a capacity hint only, never enforced.
const maxDistinctKeys = 10_000

// diag is the secondary stream: timings and row counts, never data.
var diag = log.New(os.Stderr, "", 0)

// summarize runs the whole pipeline over path: map the file, partition it into
// workers line-aligned ranges, aggregate each range on its own OS thread, then
// merge and format sequentially. It returns the summary line, or an error if
// any stage fails, in which case no output should be emitted at all.
func summarize(path string, workers int) (string, error) {
	if workers < 1 {
		return "", fmt.Errorf("need at least 1 worker, got %d", workers)
	}

	start := time.Now()
	m, err := mapFile(path)
	if err != nil {
		return "", err
	}
	defer m.unmap()

	parts, err := partitionLines(m.bytes(), workers)
	if err != nil {
		return "", err
	}
	diag.Printf("mapped %d bytes into %d partitions in %s", m.size, len(parts), time.Since(start))

	start = time.Now()
	var (
		tables = make([]*aggTable, len(parts))
		rows   = xsync.NewCounter()
		g      errgroup.Group
	)
	for i, p := range parts {
		g.Go(func() error {
			// One partition per hardware thread; pin so the scan is never
			// migrated mid-pass.
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			t, n, err := aggregatePartition(m.bytes()[p.start:p.end], maxDistinctKeys/workers)
			if err != nil {
				return fmt.Errorf("partition %d [%d, %d): %w", i, p.start, p.end, err)
			}
			tables[i] = t
			rows.Add(n)
			return nil
		})
	}
	// The join barrier: the only synchronization point in the pipeline.
	if err := g.Wait(); err != nil {
		return "", err
	}
	diag.Printf("scanned %d rows in %s", rows.Value(), time.Since(start))

	start = time.Now()
	merged := mergeTables(tables)
	out := formatSummary(merged)
	diag.Printf("merged and formatted %d keys in %s", merged.len(), time.Since(start))
	return out, nil
}
