package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.ListenAddr)
	assert.Equal(t, "/proc/net/dev", cfg.ProcNetDev)
	assert.Equal(t, 3*time.Second, cfg.SampleInterval)
	assert.Equal(t, DefaultIgnorePrefixes, cfg.IgnorePrefixes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NETPULSE_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("NETPULSE_PROC_NET_DEV", "/tmp/net_dev")
	t.Setenv("NETPULSE_SAMPLE_INTERVAL", "5s")
	t.Setenv("NETPULSE_IGNORE_PREFIXES", "lo, tun0 ,wg")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/net_dev", cfg.ProcNetDev)
	assert.Equal(t, 5*time.Second, cfg.SampleInterval)
	assert.Equal(t, []string{"lo", "tun0", "wg"}, cfg.IgnorePrefixes)
}

func TestLoadRejectsNonPositiveInterval(t *testing.T) {
	t.Setenv("NETPULSE_SAMPLE_INTERVAL", "-3s")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadIgnoresUnparseableDuration(t *testing.T) {
	t.Setenv("NETPULSE_SAMPLE_INTERVAL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.SampleInterval)
}
