package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mappedFile is the input file exposed as one contiguous read-only byte
// region. The mapping extent is rounded up to a page multiple; bytes returns
// only the file's true length. All workers share the region without
// synchronization since nobody writes to it.
type mappedFile struct {
	mapping []byte // page-rounded, what Munmap wants back
	size    int64
}

func (m *mappedFile) bytes() []byte {
	return m.mapping[:m.size]
}

func (m *mappedFile) unmap() error {
	return unix.Munmap(m.mapping)
}

// mapFile maps path read-only. The file handle is closed before returning;
// the mapping keeps the pages reachable on its own.
func mapFile(path string) (*mappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat input: %w", err)
	}
	size := fi.Size()
	if size <= 0 {
		f.Close()
		return nil, fmt.Errorf("input %s is empty", path)
	}

	page := int64(unix.Getpagesize())
	rounded := (size + page - 1) &^ (page - 1)
	mapping, err := unix.Mmap(int(f.Fd()), 0, int(rounded), unix.PROT_READ, unix.MAP_PRIVATE)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("mmap %s (%d bytes): %w", path, rounded, err)
	}
	return &mappedFile{mapping: mapping, size: size}, nil
}
