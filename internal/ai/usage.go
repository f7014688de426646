package ai

import "sync"

// TaskUsage is the accumulated token consumption for one task type.
type TaskUsage struct {
	Task     string `json:"task"`
	Requests int64  `json:"requests"`
	Tokens   int64  `json:"tokens"`
}

// UsageTracker accumulates in-memory token usage per task for the lifetime
// of the process. There is no budget enforcement; it exists so operators can
// see where tokens go.
type UsageTracker struct {
	mu       sync.RWMutex
	requests map[TaskType]int64
	tokens   map[TaskType]int64
}

// NewUsageTracker creates an empty usage tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{
		requests: make(map[TaskType]int64),
		tokens:   make(map[TaskType]int64),
	}
}

// Record adds one completed request's token count to a task's totals.
func (u *UsageTracker) Record(task TaskType, tokens int) {
	if tokens < 0 {
		tokens = 0
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.requests[task]++
	u.tokens[task] += int64(tokens)
}

// Snapshot returns current usage for every task that has seen traffic,
// ordered by task type.
func (u *UsageTracker) Snapshot() []TaskUsage {
	u.mu.RLock()
	defer u.mu.RUnlock()

	var out []TaskUsage
	for task := TaskExpansion; task <= TaskChat; task++ {
		if u.requests[task] == 0 {
			continue
		}
		out = append(out, TaskUsage{
			Task:     task.String(),
			Requests: u.requests[task],
			Tokens:   u.tokens[task],
		})
	}
	return out
}
