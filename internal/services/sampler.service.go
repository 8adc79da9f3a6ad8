package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"netpulse/internal/models"
)

// TickFunc receives the formatted download/upload speeds once per
// successful sampling tick
type TickFunc func(download, upload string)

// Sampler drives the read → parse → compute → format pipeline on a
// fixed interval and hands the formatted result to a consumer callback.
// One ticker at most is active per Sampler; ticks never overlap.
type Sampler struct {
	mu      sync.Mutex
	source  *CounterSource
	parser  *StatsParser
	rates   *RateCalculator
	onTick  TickFunc
	latest  models.SpeedSnapshot
	done    chan struct{}
	running bool

	interval time.Duration
}

var sampler *Sampler

// InitSampler initializes the package-level sampler instance
func InitSampler(source *CounterSource, parser *StatsParser) *Sampler {
	sampler = NewSampler(source, parser)
	return sampler
}

// GetSampler returns the initialized sampler
func GetSampler() *Sampler {
	return sampler
}

// NewSampler creates an idle sampler over the given source and parser
func NewSampler(source *CounterSource, parser *StatsParser) *Sampler {
	return &Sampler{
		source: source,
		parser: parser,
		rates:  NewRateCalculator(),
		latest: models.SpeedSnapshot{Download: FormatSpeed(0), Upload: FormatSpeed(0)},
	}
}

// Start begins sampling every interval. The pipeline runs once eagerly
// before the first timer tick so consumers see a value right away.
// Calling Start on a running sampler is an error; it never stacks a
// second ticker. The callback runs with the sampler lock held so that
// Stop can guarantee no delivery after it returns; keep it brief and do
// not call back into the sampler from it.
func (s *Sampler) Start(interval time.Duration, onTick TickFunc) error {
	if interval <= 0 {
		return fmt.Errorf("sample interval must be positive, got %v", interval)
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("sampler already running")
	}
	s.running = true
	s.interval = interval
	s.onTick = onTick
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()

	// A restart must not diff against a baseline from before the stop;
	// the first tick re-establishes it and reports zero
	s.rates.Reset()
	s.sampleOnce()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.sampleOnce()
			}
		}
	}()

	log.Printf("[SAMPLER] Started (interval: %v, source: %s)", interval, s.source.Path())
	return nil
}

// Stop cancels the ticker and guarantees no further callback fires
// after it returns, even for a read already in flight. Safe to call
// when not running.
func (s *Sampler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	close(s.done)
	log.Println("[SAMPLER] Stopped")
}

// Running reports whether a ticker is currently active
func (s *Sampler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Latest returns the most recent speed snapshot
func (s *Sampler) Latest() models.SpeedSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Interfaces reads a fresh snapshot and returns the per-interface
// counters of all non-ignored interfaces. It never touches the rate
// baseline; only scheduled ticks advance that.
func (s *Sampler) Interfaces() ([]models.InterfaceStats, error) {
	data, err := s.source.Read()
	if err != nil {
		return nil, err
	}
	return s.parser.ParseInterfaces(data)
}

// sampleOnce runs one full pipeline pass. A failed read or parse is
// logged and skipped; the rate baseline stays untouched so the next
// tick computes against the pre-failure sample.
func (s *Sampler) sampleOnce() {
	// The read is the only slow step; keep it outside the lock
	data, err := s.source.Read()
	if err != nil {
		log.Printf("[SAMPLER] %v", err)
		return
	}

	sample, err := s.parser.Parse(data)
	if err != nil {
		log.Printf("[SAMPLER] %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Stopped while the read was in flight
	if !s.running {
		return
	}

	rxRate, txRate := s.rates.Compute(sample, s.interval)
	s.latest = models.SpeedSnapshot{
		Download:  FormatSpeed(rxRate),
		Upload:    FormatSpeed(txRate),
		RxRate:    rxRate,
		TxRate:    txRate,
		Timestamp: time.Now(),
	}

	if s.onTick != nil {
		s.onTick(s.latest.Download, s.latest.Upload)
	}
}
