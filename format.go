package main

import (
	"fmt"
	"strings"
)

// formatSummary renders the merged table as one line,
// {key=min/max/mean, ...}, keys in byte-wise lexicographic order, every value
// with exactly one fractional digit. Keys only become strings here, after the
// scan is done.
func formatSummary(t *aggTable) string {
	var sorted SkipList[string, *record]
	t.items()(func(key []byte, r *record) bool {
		sorted.Put(string(key), r)
		return true
	})

	var b strings.Builder
	b.WriteByte('{')
	first := true
	sorted.Items()(func(name string, r *record) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%.1f/%.1f/%.1f",
			name, float64(r.min)/10, float64(r.max)/10, float64(r.mean())/10)
		return true
	})
	b.WriteByte('}')
	return b.String()
}
