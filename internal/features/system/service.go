package system

import (
	"fmt"

	"spacehub-backend/internal/config"
	"spacehub-backend/internal/storage"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

type SystemStats struct {
	TotalMemoryMb uint64  `json:"totalMemoryMb"`
	UsedMemoryMb  uint64  `json:"usedMemoryMb"`
	MemoryUsedPct float64 `json:"memoryUsedPct"`
	TotalDiskMb   uint64  `json:"totalDiskMb"`
	UsedDiskMb    uint64  `json:"usedDiskMb"`
	DiskUsedPct   float64 `json:"diskUsedPct"`
	IsDbReachable bool    `json:"isDbReachable"`
}

type SystemService struct{}

func (s *SystemService) GetSystemStats() (*SystemStats, error) {
	memory, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	diskUsage, err := disk.Usage(config.GetEnv().DataFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to read disk stats: %w", err)
	}

	return &SystemStats{
		TotalMemoryMb: memory.Total / 1024 / 1024,
		UsedMemoryMb:  memory.Used / 1024 / 1024,
		MemoryUsedPct: memory.UsedPercent,
		TotalDiskMb:   diskUsage.Total / 1024 / 1024,
		UsedDiskMb:    diskUsage.Used / 1024 / 1024,
		DiskUsedPct:   diskUsage.UsedPercent,
		IsDbReachable: s.isDbReachable(),
	}, nil
}

func (s *SystemService) isDbReachable() bool {
	db, err := storage.GetDb().DB()
	if err != nil {
		return false
	}

	return db.Ping() == nil
}
