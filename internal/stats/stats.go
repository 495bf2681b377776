// Package stats provides in-memory counters for generation operations.
// Nothing is persisted; counters live for the owning process.
package stats

import (
	"sync"
	"time"
)

// maxTrackedOps caps the per-operation map. Keys come from a fixed set of
// operation names, the cap only guards against misuse.
const maxTrackedOps = 100

// Manager records operation counts for the lifetime of the process.
type Manager struct {
	mu        sync.Mutex
	startTime time.Time
	total     int
	failures  int
	perOp     map[string]int
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	StartTime time.Time      // When counting began
	Uptime    time.Duration  // Time since counting began
	Total     int            // Total operations recorded
	Failures  int            // Operations that returned an error
	PerOp     map[string]int // Count per operation name
}

// NewManager creates a manager counting from now.
func NewManager() *Manager {
	return &Manager{
		startTime: time.Now(),
		perOp:     make(map[string]int),
	}
}

// Record counts one completed operation under the given name.
func (m *Manager) Record(op string, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	if failed {
		m.failures++
	}
	if _, exists := m.perOp[op]; exists || len(m.perOp) < maxTrackedOps {
		m.perOp[op]++
	}
}

// Snapshot returns a copy of the current counters.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	perOp := make(map[string]int, len(m.perOp))
	for op, count := range m.perOp {
		perOp[op] = count
	}

	return Snapshot{
		StartTime: m.startTime,
		Uptime:    time.Since(m.startTime),
		Total:     m.total,
		Failures:  m.failures,
		PerOp:     perOp,
	}
}
