package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// StatsProvider exposes a snapshot of some in-memory state as log attributes.
type StatsProvider func() []any

type HeartbeatWorker struct {
	log       *slog.Logger
	interval  time.Duration
	providers []StatsProvider
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration, providers ...StatsProvider) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, interval: interval, providers: providers}
}

// Run logs process health (CPU, RAM) along with the relay state sizes at
// every interval.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	attrs := []any{"pid", p.Pid}
	rss, cpu, err := getSelfStats(p)
	if err != nil {
		w.log.Warn("Failed to collect self stats", "error", err)
	} else {
		attrs = append(attrs, "ram_bytes", rss, "cpu_percent", cpu)
	}
	for _, provider := range w.providers {
		attrs = append(attrs, provider()...)
	}
	w.log.Info("Heartbeat", attrs...)
}

// getSelfStats retrieves technical metrics (Memory, CPU) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
