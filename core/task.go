package core

import "time"

// TaskType identifies one named operation within an agent's closed operation
// set. Each agent package exports the constants it understands; dispatch over
// them is an exhaustive switch, so an unrecognized value surfaces as an
// *UnknownTaskTypeError rather than silently falling through.
type TaskType string

// Task is the input to a single agent invocation.
//
// Input carries the operation parameters and is interpreted only by the
// receiving agent; the executor and orchestrator treat it as opaque. Context
// is populated by workflow runs with the results of earlier steps (keyed
// "<agent_name>_result") and is nil for standalone task executions.
type Task struct {
	Type    TaskType       `json:"task_type"`
	Input   map[string]any `json:"input,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// Str returns the string input parameter for key, or def when absent or not a
// string. Agents use it to read loosely typed task input with defaults.
func (t Task) Str(key, def string) string {
	if v, ok := t.Input[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the boolean input parameter for key, or false when absent.
func (t Task) Bool(key string) bool {
	v, _ := t.Input[key].(bool)
	return v
}

// TaskResult is the envelope returned from every task execution, successful or
// not. It is a value object: once constructed it is never mutated, and it is
// the only structure the framework persists (see ResultStore).
//
// Exactly one of Result and Error is populated. ProcessingTime is wall-clock
// seconds; Timestamp is the completion time and serializes as RFC 3339.
type TaskResult struct {
	Success        bool      `json:"success"`
	TaskID         string    `json:"task_id"`
	AgentName      string    `json:"agent_name"`
	Result         any       `json:"result,omitempty"`
	Error          string    `json:"error,omitempty"`
	ProcessingTime float64   `json:"processing_time"`
	Timestamp      time.Time `json:"timestamp"`
}

// Age returns how long ago the result completed, measured against now.
func (r TaskResult) Age(now time.Time) time.Duration {
	return now.Sub(r.Timestamp)
}
