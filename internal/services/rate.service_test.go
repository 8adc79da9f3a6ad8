package services

import (
	"testing"
	"time"

	"netpulse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFirstCallEstablishesBaseline(t *testing.T) {
	r := NewRateCalculator()

	// No prior baseline: zero rates regardless of the absolute counters
	rx, tx := r.Compute(models.AggregateSample{RxBytes: 123456789, TxBytes: 987654321}, 3*time.Second)
	assert.Zero(t, rx)
	assert.Zero(t, tx)

	prev := r.Previous()
	require.NotNil(t, prev)
	assert.Equal(t, uint64(123456789), prev.RxBytes)
}

func TestComputeExactRates(t *testing.T) {
	r := NewRateCalculator()
	r.Compute(models.AggregateSample{RxBytes: 100, TxBytes: 200}, 3*time.Second)

	rx, tx := r.Compute(models.AggregateSample{RxBytes: 1000, TxBytes: 2000}, 3*time.Second)
	assert.Equal(t, 300.0, rx)
	assert.Equal(t, 600.0, tx)
}

func TestComputeClampsCounterReset(t *testing.T) {
	r := NewRateCalculator()
	r.Compute(models.AggregateSample{RxBytes: 5000, TxBytes: 5000}, time.Second)

	// Counters went backwards (interface reinitialized): report zero,
	// never negative or a wrapped huge value
	rx, tx := r.Compute(models.AggregateSample{RxBytes: 100, TxBytes: 6000}, time.Second)
	assert.Zero(t, rx)
	assert.Equal(t, 1000.0, tx)
}

func TestComputeReplacesBaseline(t *testing.T) {
	r := NewRateCalculator()
	r.Compute(models.AggregateSample{RxBytes: 0, TxBytes: 0}, time.Second)
	r.Compute(models.AggregateSample{RxBytes: 100, TxBytes: 100}, time.Second)

	rx, _ := r.Compute(models.AggregateSample{RxBytes: 150, TxBytes: 150}, time.Second)
	assert.Equal(t, 50.0, rx)
}

func TestReset(t *testing.T) {
	r := NewRateCalculator()
	r.Compute(models.AggregateSample{RxBytes: 100, TxBytes: 100}, time.Second)
	require.NotNil(t, r.Previous())

	r.Reset()
	assert.Nil(t, r.Previous())

	rx, tx := r.Compute(models.AggregateSample{RxBytes: 5000, TxBytes: 5000}, time.Second)
	assert.Zero(t, rx)
	assert.Zero(t, tx)
}
