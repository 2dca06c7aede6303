package utils

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// GetSystemMetrics returns the current CPU and memory usage as fractions
// in [0, 1]. Collection failures fall back to zero so metric updates never
// block request handling.
func GetSystemMetrics() (float64, float64) {
	var cpuUsage, memoryUsage float64

	// Sampling interval 0 returns usage since the previous call.
	percents, err := cpu.Percent(0, false)
	if err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100.0
	}

	vm, err := mem.VirtualMemory()
	if err == nil {
		memoryUsage = vm.UsedPercent / 100.0
	}

	return cpuUsage, memoryUsage
}
