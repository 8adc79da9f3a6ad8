package services

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"netpulse/internal/models"
)

// Column layout of /proc/net/dev data fields after the interface name:
// bytes packets errs drop fifo frame compressed multicast (receive),
// then the same eight again for transmit. Receive bytes is field 0,
// transmit bytes is field 8.
const (
	rxBytesField  = 0
	txBytesField  = 8
	minDataFields = 9
)

// StatsParser parses counter snapshots into aggregate samples, dropping
// interfaces whose name starts with one of the ignored prefixes
type StatsParser struct {
	ignorePrefixes []string
}

// NewStatsParser creates a parser with the given ignore prefixes
func NewStatsParser(ignorePrefixes []string) *StatsParser {
	return &StatsParser{ignorePrefixes: ignorePrefixes}
}

// Parse sums receive/transmit bytes across all non-ignored interfaces.
// A malformed data line fails the whole invocation; the caller discards
// the read rather than aggregating a partial sample.
func (p *StatsParser) Parse(snapshot []byte) (models.AggregateSample, error) {
	var sample models.AggregateSample

	stats, err := p.ParseInterfaces(snapshot)
	if err != nil {
		return sample, err
	}
	for _, s := range stats {
		sample.RxBytes += s.RxBytes
		sample.TxBytes += s.TxBytes
	}
	return sample, nil
}

// ParseInterfaces returns the per-interface counters of all non-ignored
// interfaces in the snapshot
func (p *StatsParser) ParseInterfaces(snapshot []byte) ([]models.InterfaceStats, error) {
	var stats []models.InterfaceStats

	scanner := bufio.NewScanner(bytes.NewReader(snapshot))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		// First two lines are column headers
		if lineNum <= 2 {
			continue
		}

		line := scanner.Text()
		name, data, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		if p.Ignored(name) {
			continue
		}

		fields := strings.Fields(data)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < minDataFields {
			return nil, fmt.Errorf("%w: interface %s: expected at least %d fields, got %d", ErrParse, name, minDataFields, len(fields))
		}

		rx, err := strconv.ParseUint(fields[rxBytesField], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: interface %s: rx bytes: %v", ErrParse, name, err)
		}
		tx, err := strconv.ParseUint(fields[txBytesField], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: interface %s: tx bytes: %v", ErrParse, name, err)
		}

		stats = append(stats, models.InterfaceStats{Name: name, RxBytes: rx, TxBytes: tx})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return stats, nil
}

// Ignored reports whether an interface name matches one of the
// configured ignore prefixes
func (p *StatsParser) Ignored(name string) bool {
	for _, prefix := range p.ignorePrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
