package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type perfStats struct {
	cpu         metric.Float64Gauge
	memory      metric.Int64Gauge
	liveObjects metric.Int64Gauge
	goroutines  metric.Int64Gauge
}

func newPerfStats(meter metric.Meter) (perfStats, error) {
	cpuGauge, cpuErr := meter.Float64Gauge("cpu_usage")
	memoryGauge, memoryErr := meter.Int64Gauge("allocated_mb")
	liveObjectsGauge, liveObjectsErr := meter.Int64Gauge("live_objects")
	goroutineGauge, goroutineErr := meter.Int64Gauge("goroutine_count")

	err := errors.Join(cpuErr, memoryErr, liveObjectsErr, goroutineErr)
	if err != nil {
		return perfStats{}, err
	}
	return perfStats{
		cpu:         cpuGauge,
		memory:      memoryGauge,
		liveObjects: liveObjectsGauge,
		goroutines:  goroutineGauge,
	}, nil
}

func (p perfStats) record(ctx context.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	// an interval of 0 measures usage since the previous call
	cpuUsage, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		slog.DebugContext(ctx, "failed to read cpu usage", "err", err)
	} else if len(cpuUsage) > 0 {
		p.cpu.Record(ctx, cpuUsage[0])
	}

	p.memory.Record(ctx, int64(memStats.Alloc/1_000_000))
	p.liveObjects.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
	p.goroutines.Record(ctx, int64(runtime.NumGoroutine()))
}

// InstrumentPerfStats records process statistics to the global meter provider
// every interval until ctx is done.
func InstrumentPerfStats(ctx context.Context, interval time.Duration) {
	stats, err := newPerfStats(otel.Meter("go.perf_stats"))
	if err != nil {
		slog.WarnContext(ctx, "failed to create perf stats instruments", "err", err)
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats.record(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}
