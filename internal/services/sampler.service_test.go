package services

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tick struct {
	download string
	upload   string
}

func writeNetDev(t *testing.T, path string, rx, tx uint64) {
	t.Helper()
	snapshot := netDevHeader +
		"    lo: 42 0 0 0 0 0 0 0 42 0 0 0 0 0 0 0\n" +
		fmt.Sprintf("  eth0: %d 0 0 0 0 0 0 0 %d 0 0 0 0 0 0 0\n", rx, tx)
	require.NoError(t, os.WriteFile(path, []byte(snapshot), 0644))
}

func newTestSampler(t *testing.T) (*Sampler, string, chan tick) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "net_dev")
	s := NewSampler(NewCounterSource(path), newTestParser())
	ticks := make(chan tick, 16)
	t.Cleanup(s.Stop)
	return s, path, ticks
}

func TestSamplerPipeline(t *testing.T) {
	s, path, ticks := newTestSampler(t)
	writeNetDev(t, path, 100, 200)

	// Start samples eagerly, so the first tick arrives before any timer fires
	err := s.Start(3*time.Second, func(download, upload string) {
		ticks <- tick{download, upload}
	})
	require.NoError(t, err)
	require.True(t, s.Running())

	first := <-ticks
	assert.Equal(t, "0.0 B/s", first.download, "first tick has no baseline to diff against")
	assert.Equal(t, "0.0 B/s", first.upload)

	// Counters advance by 900 rx / 1800 tx over a 3s interval
	writeNetDev(t, path, 1000, 2000)
	s.sampleOnce()

	second := <-ticks
	assert.Equal(t, "300.0 B/s", second.download)
	assert.Equal(t, "600.0 B/s", second.upload)
	assert.Equal(t, "↓ 300.0 B/s ↑ 600.0 B/s", s.Latest().String())
}

func TestSamplerReadFailurePreservesBaseline(t *testing.T) {
	s, path, ticks := newTestSampler(t)
	writeNetDev(t, path, 100, 200)

	require.NoError(t, s.Start(3*time.Second, func(download, upload string) {
		ticks <- tick{download, upload}
	}))
	<-ticks

	// A failed read skips the tick without touching the baseline
	require.NoError(t, os.Remove(path))
	s.sampleOnce()
	assert.Empty(t, ticks, "failed tick must not invoke the callback")

	// The next good sample diffs against the pre-failure baseline, not zero
	writeNetDev(t, path, 1000, 2000)
	s.sampleOnce()
	next := <-ticks
	assert.Equal(t, "300.0 B/s", next.download)
	assert.Equal(t, "600.0 B/s", next.upload)
}

func TestSamplerParseFailurePreservesBaseline(t *testing.T) {
	s, path, ticks := newTestSampler(t)
	writeNetDev(t, path, 100, 200)

	require.NoError(t, s.Start(3*time.Second, func(download, upload string) {
		ticks <- tick{download, upload}
	}))
	<-ticks

	require.NoError(t, os.WriteFile(path, []byte(netDevHeader+"  eth0: garbage\n"), 0644))
	s.sampleOnce()
	assert.Empty(t, ticks)

	writeNetDev(t, path, 1000, 2000)
	s.sampleOnce()
	next := <-ticks
	assert.Equal(t, "300.0 B/s", next.download)
}

func TestSamplerStopIdempotent(t *testing.T) {
	s, path, _ := newTestSampler(t)
	writeNetDev(t, path, 0, 0)

	require.NoError(t, s.Start(time.Hour, nil))
	require.True(t, s.Running())

	s.Stop()
	assert.False(t, s.Running())
	s.Stop() // second stop is a no-op
	assert.False(t, s.Running())
}

func TestSamplerStopSuppressesLateTick(t *testing.T) {
	s, path, ticks := newTestSampler(t)
	writeNetDev(t, path, 100, 200)

	require.NoError(t, s.Start(time.Hour, func(download, upload string) {
		ticks <- tick{download, upload}
	}))
	<-ticks
	s.Stop()

	// A pipeline pass completing after Stop must not reach the callback
	writeNetDev(t, path, 9000, 9000)
	s.sampleOnce()
	assert.Empty(t, ticks)
}

func TestSamplerRestartResetsBaseline(t *testing.T) {
	s, path, ticks := newTestSampler(t)
	writeNetDev(t, path, 100, 200)

	require.NoError(t, s.Start(3*time.Second, func(download, upload string) {
		ticks <- tick{download, upload}
	}))
	<-ticks
	s.Stop()

	// Counters kept climbing while stopped; the restart must not turn
	// that gap into a rate
	writeNetDev(t, path, 1000000, 2000000)
	require.NoError(t, s.Start(3*time.Second, func(download, upload string) {
		ticks <- tick{download, upload}
	}))
	first := <-ticks
	assert.Equal(t, "0.0 B/s", first.download)
	assert.Equal(t, "0.0 B/s", first.upload)
}

func TestSamplerDoubleStart(t *testing.T) {
	s, path, _ := newTestSampler(t)
	writeNetDev(t, path, 0, 0)

	require.NoError(t, s.Start(time.Hour, nil))
	err := s.Start(time.Hour, nil)
	assert.Error(t, err, "starting a running sampler must not stack a second ticker")
}

func TestSamplerRejectsNonPositiveInterval(t *testing.T) {
	s, _, _ := newTestSampler(t)
	assert.Error(t, s.Start(0, nil))
	assert.Error(t, s.Start(-time.Second, nil))
	assert.False(t, s.Running())
}

func TestSamplerInterfaces(t *testing.T) {
	s, path, _ := newTestSampler(t)
	writeNetDev(t, path, 123, 456)

	stats, err := s.Interfaces()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "eth0", stats[0].Name)
	assert.Equal(t, uint64(123), stats[0].RxBytes)
	assert.Equal(t, uint64(456), stats[0].TxBytes)
}
