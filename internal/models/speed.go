package models

import "time"

// SpeedSnapshot is the result of one sampling tick: raw rates in
// bytes/sec plus their unit-scaled display strings
type SpeedSnapshot struct {
	Download  string    `json:"download"` // e.g. "12.3 KB/s"
	Upload    string    `json:"upload"`   // e.g. "0.0 B/s"
	RxRate    float64   `json:"rx_rate"`  // bytes/sec
	TxRate    float64   `json:"tx_rate"`  // bytes/sec
	Timestamp time.Time `json:"timestamp"`
}

// String composes the display line handed to consumers
func (s SpeedSnapshot) String() string {
	return "↓ " + s.Download + " ↑ " + s.Upload
}
