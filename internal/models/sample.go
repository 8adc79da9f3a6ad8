package models

// AggregateSample holds the summed cumulative byte counters across all
// non-ignored interfaces at one point in time. Kernel counters are
// cumulative since interface initialization, so both fields only grow
// under normal operation; a decrease means the counter was reset.
type AggregateSample struct {
	RxBytes uint64 `json:"rx_bytes"`
	TxBytes uint64 `json:"tx_bytes"`
}

// InterfaceStats represents the parsed counters of a single interface
type InterfaceStats struct {
	Name    string `json:"name"`
	RxBytes uint64 `json:"rx_bytes"`
	TxBytes uint64 `json:"tx_bytes"`
}
