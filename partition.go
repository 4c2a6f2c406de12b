package main

import (
	"bytes"
	"fmt"
)

const (
	fieldSeparator = ';'
	lineTerminator = '\n'
)

// partition is a half-open [start, end) byte range of the mapped region. Every
// partition except possibly the last ends just past a line terminator, so a
// worker never starts or stops mid-record.
type partition struct {
	start, end int
}

// partitionLines splits data into n contiguous ranges of roughly even size.
// Each provisional boundary is bumped forward to just past the next line
// terminator; the last partition always ends at len(data). Together the
// partitions cover [0, len(data)) exactly, with no overlap.
func partitionLines(data []byte, n int) ([]partition, error) {
	if n < 1 {
		return nil, fmt.Errorf("need at least 1 partition, got %d", n)
	}
	parts := make([]partition, n)
	target := len(data) / n
	start := 0
	for i := 0; i < n-1; i++ {
		end := start + target
		if end >= len(data) {
			end = len(data)
		} else if j := bytes.IndexByte(data[end:], lineTerminator); j < 0 {
			return nil, fmt.Errorf(
				"no line terminator between offset %d and end of region (truncated input?)", end)
		} else {
			end += j + 1
		}
		parts[i] = partition{start, end}
		start = end
	}
	parts[n-1] = partition{start, len(data)}
	return parts, nil
}
