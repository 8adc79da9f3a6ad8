package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultIgnorePrefixes excludes loopback, bridge, virtualization and
// container-runtime interfaces from aggregation
var DefaultIgnorePrefixes = []string{"lo", "virbr", "vnet", "veth", "docker", "br-"}

// Config holds the agent configuration, loaded from environment
// variables with sensible defaults
type Config struct {
	ListenAddr     string
	ProcNetDev     string
	SampleInterval time.Duration
	IgnorePrefixes []string
	TokenSecret    string
	TokenExpiry    time.Duration
}

// Load reads configuration from NETPULSE_* environment variables
func Load() (Config, error) {
	cfg := Config{
		ListenAddr:     env("NETPULSE_LISTEN_ADDR", "localhost:8080"),
		ProcNetDev:     env("NETPULSE_PROC_NET_DEV", "/proc/net/dev"),
		SampleInterval: envDuration("NETPULSE_SAMPLE_INTERVAL", 3*time.Second),
		IgnorePrefixes: envList("NETPULSE_IGNORE_PREFIXES", DefaultIgnorePrefixes),
		TokenSecret:    env("NETPULSE_TOKEN_SECRET", ""),
		TokenExpiry:    envDuration("NETPULSE_TOKEN_EXPIRY", 90*24*time.Hour),
	}

	if cfg.SampleInterval <= 0 {
		return cfg, fmt.Errorf("sample interval must be positive, got %v", cfg.SampleInterval)
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envList(key string, fallback []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
