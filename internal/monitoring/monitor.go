package monitoring

import (
	"sync"
	"time"
)

// Monitor collects and provides operational metrics for the back office
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

// RecordAllocation records one recipe-build allocation and its outcome
// ("advised" when the external service supplied it, "local" otherwise),
// in both the snapshot map and the prometheus counter.
func (m *Monitor) RecordAllocation(outcome string, overBudget bool) {
	m.metricsMutex.Lock()
	key := "allocations_" + outcome
	if count, ok := m.metrics[key].(int); ok {
		m.metrics[key] = count + 1
	} else {
		m.metrics[key] = 1
	}
	m.metrics["last_allocation_at"] = time.Now().Format(time.RFC3339)
	m.metricsMutex.Unlock()

	budget := "within"
	if overBudget {
		budget = "over"
	}
	allocationsTotal.WithLabelValues(outcome, budget).Inc()
}
