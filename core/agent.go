package core

import (
	"context"
	"time"
)

// Agent is the capability unit of the framework. An implementation supplies a
// single polymorphic Process operation plus identity metadata; all metrics and
// lifecycle bookkeeping is layered on top by the executor (agent.Handle), so
// concrete agents stay free of instrumentation concerns.
//
// Implementations must:
//   - Respect context cancellation inside Process (provider calls block there)
//   - Return an *UnknownTaskTypeError for task types outside their set
//   - Be safe for concurrent Process calls, or rely on the executor's
//     per-agent serialization of metric updates only
type Agent interface {
	// Name is the registry key. It must be unique within an orchestrator;
	// registering a second agent under an existing name replaces the first.
	Name() string

	// Description returns a human-readable summary of the agent's purpose.
	Description() string

	// Capabilities declares the capability set this agent serves. The
	// orchestrator answers capability queries over these declarations.
	Capabilities() []Capability

	// Process executes one task and returns an opaque result payload. Errors
	// are converted into failure envelopes by the executor and never escape
	// to orchestrator callers.
	Process(ctx context.Context, task Task) (any, error)
}

// Capability is a named coarse category of functionality used to look up
// agents without knowing their registry names.
type Capability string

// Capabilities recognized by the stock agents.
const (
	CapabilityTranslation Capability = "translation"
	CapabilitySpeech      Capability = "speech"
	CapabilityQuiz        Capability = "quiz"
	CapabilityFocus       Capability = "focus"
	CapabilityOffline     Capability = "offline"
)

// Status is an agent's lifecycle state. It is mutated only by the executor
// around a Process call.
type Status string

// Lifecycle states.
const (
	StatusInitialized Status = "initialized"
	StatusProcessing  Status = "processing"
	StatusIdle        Status = "idle"
	StatusError       Status = "error"
)

// Metrics holds the per-agent execution counters.
//
// AverageProcessingTime is a cumulative streaming mean in seconds, recomputed
// on each completed task as (avg*(n-1)+latest)/n where n counts completed and
// failed tasks at that moment; failed tasks do not themselves contribute a
// time sample. LastActivity is stamped on every finished task, success or
// failure, and is the zero time until the first one.
type Metrics struct {
	TasksCompleted        int       `json:"tasks_completed"`
	TasksFailed           int       `json:"tasks_failed"`
	AverageProcessingTime float64   `json:"average_processing_time"`
	LastActivity          time.Time `json:"last_activity,omitzero"`
}

// StatusSnapshot is a point-in-time copy of an agent's identity, lifecycle
// state and metrics. It is a value; callers cannot mutate live metrics
// through it.
type StatusSnapshot struct {
	AgentID      string       `json:"agent_id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Status       Status       `json:"status"`
	Capabilities []Capability `json:"capabilities"`
	CreatedAt    time.Time    `json:"created_at"`
	Metrics      Metrics      `json:"metrics"`
}
