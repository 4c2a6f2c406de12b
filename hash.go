package main

// Multiply-XOR hash over the key bytes, seed 0. The multiplier is the 64-bit
// FNV prime, which disperses short ASCII names well enough for a table of at
// most ~10k keys. Grouping only: not collision-resistant, never persisted.
const hashMultiplier uint64 = 0x100000001b3

func sum64(key []byte) uint64 {
	var h uint64
	for _, b := range key {
		h = h*hashMultiplier ^ uint64(b)
	}
	return h
}
