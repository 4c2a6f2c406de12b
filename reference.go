package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dolthub/swiss"
	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"
)

// referenceSummarize computes the same summary with a plain scanner pipeline:
// batches of lines over a channel, per-worker swiss maps, a sequential merge
// and an independent sort-and-format pass. It allocates per line and is far
// slower than summarize, which is the point: it is the obviously-correct
// implementation the fast path is checked against (and the -slow mode).
func referenceSummarize(path string, workers int) (string, error) {
	if workers < 1 {
		return "", fmt.Errorf("need at least 1 worker, got %d", workers)
	}
	f, err := mmap.Open(path)
	if err != nil {
		return "", fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	const batchSize = 1_000
	batches := make(chan []string, workers)

	var g errgroup.Group
	g.Go(func() error {
		defer close(batches)
		s := bufio.NewScanner(io.NewSectionReader(f, 0, int64(f.Len())))
		lines := make([]string, 0, batchSize)
		for s.Scan() {
			lines = append(lines, s.Text())
			if len(lines) == cap(lines) {
				batches <- lines
				lines = make([]string, 0, batchSize)
			}
		}
		batches <- lines
		return s.Err()
	})

	shards := make([]*swiss.Map[string, *record], workers)
	for i := range shards {
		g.Go(func() error {
			shard := swiss.NewMap[string, *record](uint32(maxDistinctKeys / workers))
			shards[i] = shard
			var werr error
			for batch := range batches {
				if werr != nil {
					continue // keep draining so the reader never blocks
				}
				for _, line := range batch {
					name, value, ok := strings.Cut(line, string(fieldSeparator))
					if !ok {
						werr = fmt.Errorf("record %q: missing separator %q", line, fieldSeparator)
						break
					}
					v, err := parseFixedPoint([]byte(value))
					if err != nil {
						werr = fmt.Errorf("record %q: %w", line, err)
						break
					}
					if r, ok := shard.Get(name); !ok {
						shard.Put(name, &record{min: v, max: v, sum: v, count: 1})
					} else {
						r.min = min(r.min, v)
						r.max = max(r.max, v)
						r.sum += v
						r.count++
					}
				}
			}
			return werr
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	acc := shards[0]
	for _, shard := range shards[1:] {
		shard.Iter(func(name string, r *record) bool {
			if a, ok := acc.Get(name); ok {
				a.min = min(a.min, r.min)
				a.max = max(a.max, r.max)
				a.sum += r.sum
				a.count += r.count
			} else {
				acc.Put(name, r)
			}
			return false
		})
	}

	names := make([]string, 0, acc.Count())
	acc.Iter(func(name string, _ *record) bool {
		names = append(names, name)
		return false
	})
	slices.Sort(names)

	var b strings.Builder
	b.WriteByte('{')
	for i, name := range names {
		if i != 0 {
			b.WriteString(", ")
		}
		r, _ := acc.Get(name)
		fmt.Fprintf(&b, "%s=%.1f/%.1f/%.1f",
			name, float64(r.min)/10, float64(r.max)/10, float64(r.mean())/10)
	}
	b.WriteByte('}')
	return b.String(), nil
}
