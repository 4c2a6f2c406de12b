package main

import (
	"bytes"
	"math/bits"
)

// record is the running aggregate for one key. Values are fixed-point,
// scaled by 10 (one decimal digit), so summation never drifts.
type record struct {
	min, max, sum, count int64
}

// mean returns floor(sum/count) in scaled space. Floor, not Go's
// truncate-toward-zero: -23 over 2 observations is -12 (displayed -1.2).
func (r *record) mean() int64 {
	m := r.sum / r.count
	if r.sum%r.count != 0 && r.sum < 0 {
		m--
	}
	return m
}

type tableEntry struct {
	hash uint64
	key  []byte // borrowed view into the mapped region, nil = empty slot
	rec  record
}

// aggTable maps keys to records: open-addressed, linear probing, power-of-two
// capacity. Keys are compared by content but stored as borrowed slices, so no
// key bytes are copied while the mapping is alive. Exactly one goroutine
// mutates a table at a time.
type aggTable struct {
	entries []tableEntry
	mask    uint64
	used    int
	maxUsed int
}

func newAggTable(capacityHint int) *aggTable {
	if capacityHint < 1 {
		capacityHint = 1
	}
	t := &aggTable{}
	t.reset(1 << bits.Len(uint(2*capacityHint-1)))
	return t
}

func (t *aggTable) reset(size int) {
	t.entries = make([]tableEntry, size)
	t.mask = uint64(size - 1)
	t.used = 0
	t.maxUsed = size / 2
}

func (t *aggTable) len() int { return t.used }

// probe returns the slot holding key, or the empty slot where it belongs.
func (t *aggTable) probe(key []byte, hash uint64) (*tableEntry, bool) {
	for i := hash & t.mask; ; i = (i + 1) & t.mask {
		e := &t.entries[i]
		if e.key == nil {
			return e, false
		}
		if e.hash == hash && bytes.Equal(e.key, key) {
			return e, true
		}
	}
}

func (t *aggTable) entryFor(key []byte, hash uint64) (*tableEntry, bool) {
	e, found := t.probe(key, hash)
	if found {
		return e, true
	}
	if t.used >= t.maxUsed {
		t.grow()
		e, _ = t.probe(key, hash)
	}
	e.hash, e.key = hash, key
	t.used++
	return e, false
}

func (t *aggTable) grow() {
	old := t.entries
	t.reset(2 * len(old))
	for i := range old {
		if e := &old[i]; e.key != nil {
			s, _ := t.probe(e.key, e.hash)
			*s = *e
			t.used++
		}
	}
}

// add folds one observed value into key's record.
func (t *aggTable) add(key []byte, v int64) {
	e, found := t.entryFor(key, sum64(key))
	if !found {
		e.rec = record{min: v, max: v, sum: v, count: 1}
		return
	}
	r := &e.rec
	if v < r.min {
		r.min = v
	} else if v > r.max {
		r.max = v
	}
	r.sum += v
	r.count++
}

// absorb folds a complete record from another table into this one. min and max
// combine symmetrically so the result is the same whichever table absorbs.
func (t *aggTable) absorb(key []byte, r record) {
	e, found := t.entryFor(key, sum64(key))
	if !found {
		e.rec = r
		return
	}
	a := &e.rec
	a.min = min(a.min, r.min)
	a.max = max(a.max, r.max)
	a.sum += r.sum
	a.count += r.count
}

// items yields every (key, record) pair in table order.
func (t *aggTable) items() func(yield func([]byte, *record) bool) {
	return func(yield func([]byte, *record) bool) {
		for i := range t.entries {
			e := &t.entries[i]
			if e.key == nil {
				continue
			}
			if !yield(e.key, &e.rec) {
				return
			}
		}
	}
}
