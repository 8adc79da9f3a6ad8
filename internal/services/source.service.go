package services

import (
	"errors"
	"fmt"
	"os"
)

// ErrSourceRead marks an I/O failure reading the counter snapshot
var ErrSourceRead = errors.New("counter source read failed")

// ErrParse marks a malformed line or field in the counter snapshot
var ErrParse = errors.New("counter snapshot parse failed")

// CounterSource reads the raw textual snapshot of per-interface network
// counters. The kernel rewrites the file on every query, so each Read
// re-reads the full contents from scratch; nothing is cached.
type CounterSource struct {
	path string
}

// NewCounterSource creates a source reading from the given path
// (normally /proc/net/dev)
func NewCounterSource(path string) *CounterSource {
	return &CounterSource{path: path}
}

// Read returns one full snapshot of the counter file
func (s *CounterSource) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceRead, s.path, err)
	}
	return data, nil
}

// Path returns the configured counter file location
func (s *CounterSource) Path() string {
	return s.path
}
