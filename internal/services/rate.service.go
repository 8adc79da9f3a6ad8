package services

import (
	"sync"
	"time"

	"netpulse/internal/models"
)

// RateCalculator derives bytes/sec rates from consecutive aggregate
// samples. It owns the previous-sample baseline; Compute replaces the
// baseline on every call, so only feed it samples from successful reads.
type RateCalculator struct {
	mu   sync.Mutex
	prev *models.AggregateSample
}

// NewRateCalculator creates a calculator with no baseline yet
func NewRateCalculator() *RateCalculator {
	return &RateCalculator{}
}

// Compute returns the receive/transmit rates between the stored
// baseline and curr over the given interval. The first call establishes
// the baseline and reports zero rates instead of a spurious spike from
// an assumed-zero starting point. A counter going backwards (interface
// reinitialized) is clamped to zero, never reported negative.
func (r *RateCalculator) Compute(curr models.AggregateSample, interval time.Duration) (rxRate, txRate float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.prev == nil {
		r.prev = &curr
		return 0, 0
	}

	seconds := interval.Seconds()
	if seconds <= 0 {
		seconds = 1
	}

	var rxDelta, txDelta uint64
	if curr.RxBytes > r.prev.RxBytes {
		rxDelta = curr.RxBytes - r.prev.RxBytes
	}
	if curr.TxBytes > r.prev.TxBytes {
		txDelta = curr.TxBytes - r.prev.TxBytes
	}

	r.prev = &curr
	return float64(rxDelta) / seconds, float64(txDelta) / seconds
}

// Previous returns the current baseline, or nil before the first Compute
func (r *RateCalculator) Previous() *models.AggregateSample {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prev
}

// Reset drops the baseline; the next Compute reports zero rates again
func (r *RateCalculator) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prev = nil
}
