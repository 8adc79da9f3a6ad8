package models

// CPUStatus represents CPU usage information
type CPUStatus struct {
	UsagePercent float64 `json:"usage_percent"`
	CoreCount    int     `json:"core_count"`
}

// MemoryStatus represents memory usage information
type MemoryStatus struct {
	TotalGB      float64 `json:"total_gb"`
	UsedGB       float64 `json:"used_gb"`
	AvailableGB  float64 `json:"available_gb"`
	UsagePercent float64 `json:"usage_percent"`
}

// HostStatus combines the supplementary host metrics served beside the
// network speed
type HostStatus struct {
	Hostname      string        `json:"hostname"`
	UptimeSeconds uint64        `json:"uptime_seconds"`
	CPU           *CPUStatus    `json:"cpu"`
	Memory        *MemoryStatus `json:"memory"`
}
