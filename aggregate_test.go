package main

import (
	"testing"
)

func TestParseFixedPoint(t *testing.T) {
	valid := []struct {
		in   string
		want int64
	}{
		{"0.0", 0},
		{"5.0", 50},
		{"9.5", 95},
		{"-2.3", -23},
		{"-0.0", 0},
		{"99.9", 999},
		{"-99.9", -999},
		{"+4.2", 42},
		{"7", 70},
		{"-12", -120},
		{"123.4", 1234},
	}
	for _, tc := range valid {
		got, err := parseFixedPoint([]byte(tc.in))
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q = %d, want %d", tc.in, got, tc.want)
		}
	}

	invalid := []string{
		"", "-", "+", ".", "3.", ".3", "3.33", "12.34", "abc", "1a.2", "5.x", "--1.0", "1..0",
	}
	for _, in := range invalid {
		if got, err := parseFixedPoint([]byte(in)); err == nil {
			t.Errorf("%q = %d, want error", in, got)
		}
	}
}

func TestAggregatePartition(t *testing.T) {
	data := []byte("A;5.0\nB;-2.3\nA;9.5\nB;0.0\n")
	tbl, rows, err := aggregatePartition(data, 4)
	if err != nil {
		t.Fatal(err)
	}
	if rows != 4 {
		t.Fatalf("rows = %d, want 4", rows)
	}
	got := map[string]record{}
	tbl.items()(func(key []byte, r *record) bool {
		got[string(key)] = *r
		return true
	})
	want := map[string]record{
		"A": {min: 50, max: 95, sum: 145, count: 2},
		"B": {min: -23, max: 0, sum: -23, count: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s = %+v, want %+v", k, got[k], w)
		}
	}
}

func TestAggregatePartitionNoTrailingTerminator(t *testing.T) {
	tbl, rows, err := aggregatePartition([]byte("A;1.0\nB;2.0"), 4)
	if err != nil {
		t.Fatal(err)
	}
	if rows != 2 || tbl.len() != 2 {
		t.Fatalf("rows = %d, keys = %d, want 2 and 2", rows, tbl.len())
	}
}

func TestAggregatePartitionRecordFaults(t *testing.T) {
	for _, in := range []string{
		"A5.0\n",    // missing separator
		"A;\n",      // empty value
		"A;x\n",     // not a number
		"X;3.33\n",  // two fractional digits, must not be truncated
		"A;5.0\nB\n", // later line broken
	} {
		if _, _, err := aggregatePartition([]byte(in), 4); err == nil {
			t.Errorf("%q: want error", in)
		}
	}
}

// Aggregating as one partition or as many and merging must be
// indistinguishable.
func TestMergeMatchesSinglePartition(t *testing.T) {
	data := []byte("A;5.0\nB;-2.3\nA;9.5\nB;0.0\nC;1.1\nA;-33.3\nC;1.1\n")
	single, _, err := aggregatePartition(data, 8)
	if err != nil {
		t.Fatal(err)
	}
	for n := 1; n <= 7; n++ {
		parts, err := partitionLines(data, n)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		tables := make([]*aggTable, len(parts))
		for i, p := range parts {
			tables[i], _, err = aggregatePartition(data[p.start:p.end], 2)
			if err != nil {
				t.Fatalf("n=%d partition %d: %v", n, i, err)
			}
		}
		merged := mergeTables(tables)
		if merged.len() != single.len() {
			t.Fatalf("n=%d: %d keys, want %d", n, merged.len(), single.len())
		}
		single.items()(func(key []byte, want *record) bool {
			e, found := merged.probe(key, sum64(key))
			if !found {
				t.Errorf("n=%d: key %q missing from merge", n, key)
				return true
			}
			if e.rec != *want {
				t.Errorf("n=%d: %q = %+v, want %+v", n, key, e.rec, *want)
			}
			return true
		})
	}
}
