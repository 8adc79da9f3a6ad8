package services

import (
	"fmt"

	"netpulse/internal/models"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

const bytesPerGB = 1024 * 1024 * 1024

// GetCPUStatus returns overall CPU usage percentage and core count
func GetCPUStatus() (*models.CPUStatus, error) {
	percentage, err := cpu.Percent(0, false)
	if err != nil {
		return nil, err
	}

	coreCount, err := cpu.Counts(true)
	if err != nil {
		coreCount = 0
	}

	return &models.CPUStatus{
		UsagePercent: percentage[0],
		CoreCount:    coreCount,
	}, nil
}

// GetMemoryStatus returns memory usage information
func GetMemoryStatus() (*models.MemoryStatus, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return nil, err
	}

	return &models.MemoryStatus{
		TotalGB:      float64(vm.Total) / bytesPerGB,
		UsedGB:       float64(vm.Used) / bytesPerGB,
		AvailableGB:  float64(vm.Available) / bytesPerGB,
		UsagePercent: vm.UsedPercent,
	}, nil
}

// GetHostStatus returns the combined supplementary host metrics
func GetHostStatus() (*models.HostStatus, error) {
	cpuStatus, err := GetCPUStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU usage: %w", err)
	}

	memStatus, err := GetMemoryStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory usage: %w", err)
	}

	info, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}

	return &models.HostStatus{
		Hostname:      info.Hostname,
		UptimeSeconds: info.Uptime,
		CPU:           cpuStatus,
		Memory:        memStatus,
	}, nil
}
