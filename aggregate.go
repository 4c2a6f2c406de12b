package main

import (
	"bytes"
	"fmt"
)

// parseFixedPoint parses a decimal value with an optional sign and at most one
// fractional digit into its ×10 fixed-point representation: "9.5" -> 95,
// "-2.3" -> -23, "7" -> 70. Anything else is a record fault, including two or
// more fractional digits ("3.33" must fail, never be truncated).
func parseFixedPoint(b []byte) (int64, error) {
	s := b
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return 0, fmt.Errorf("invalid value %q", b)
	}
	var v int64
	i := 0
	for ; i < len(s) && s[i] != '.'; i++ {
		d := s[i] - '0'
		if d > 9 {
			return 0, fmt.Errorf("invalid value %q", b)
		}
		v = v*10 + int64(d)
	}
	if i == 0 {
		// Nothing before the dot.
		return 0, fmt.Errorf("invalid value %q", b)
	}
	v *= 10
	if i < len(s) {
		if i != len(s)-2 {
			return 0, fmt.Errorf("invalid value %q: want exactly one fractional digit", b)
		}
		d := s[i+1] - '0'
		if d > 9 {
			return 0, fmt.Errorf("invalid value %q", b)
		}
		v += int64(d)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// aggregatePartition scans one line-aligned byte range and returns its table
// and the number of rows seen. It touches nothing outside the range and the
// table, so any number of partitions run in parallel without coordination.
func aggregatePartition(data []byte, capacityHint int) (*aggTable, int64, error) {
	t := newAggTable(capacityHint)
	var rows int64
	for len(data) > 0 {
		var line []byte
		if nl := bytes.IndexByte(data, lineTerminator); nl < 0 {
			line, data = data, nil
		} else {
			line, data = data[:nl], data[nl+1:]
		}
		sep := bytes.IndexByte(line, fieldSeparator)
		if sep < 0 {
			return nil, 0, fmt.Errorf("record %q: missing separator %q", line, fieldSeparator)
		}
		v, err := parseFixedPoint(line[sep+1:])
		if err != nil {
			return nil, 0, fmt.Errorf("record %q: %w", line, err)
		}
		t.add(line[:sep], v)
		rows++
	}
	return t, rows, nil
}

// mergeTables folds every table into the first and returns it. min/max are
// commutative and associative, as are sum/count, so the fold order and the
// choice of accumulator never change the result.
func mergeTables(tables []*aggTable) *aggTable {
	acc := tables[0]
	for _, t := range tables[1:] {
		t.items()(func(key []byte, r *record) bool {
			acc.absorb(key, *r)
			return true
		})
	}
	return acc
}
