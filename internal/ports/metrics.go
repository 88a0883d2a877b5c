package ports

// MetricsRecorder records counters and gauges about state operations. The
// Prometheus adapter lives in internal/metrics.
type MetricsRecorder interface {
	RecordOperation(slice, operation string)
	SetNotificationCount(n int)
	SetSessionActive(active bool)
	SetDarkMode(dark bool)
	SetItemCount(n int)
}
