package agent

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vidyasetu/agentcore/core"
	"github.com/vidyasetu/agentcore/internal/util"
	"github.com/vidyasetu/agentcore/logging"
)

// Handle is the task executor: it wraps one registered agent with lifecycle
// status, metrics and envelope construction. The orchestrator creates a Handle
// per registration, so metric state has exactly one owner.
//
// Execute is the single point where processing failures become structured
// envelopes; no error or panic from Process escapes it. A per-handle mutex
// serializes the read-modify-write metric updates, making concurrent Execute
// calls against the same agent safe (counters never lose updates), though the
// underlying Process calls themselves may overlap.
type Handle struct {
	agent   core.Agent
	logger  logging.Logger
	id      string
	created time.Time

	mu      sync.Mutex // guards status and metrics
	status  core.Status
	metrics core.Metrics
}

// NewHandle wraps an agent with a fresh identity and zeroed metrics. A nil
// logger is substituted with a NoOpLogger.
func NewHandle(a core.Agent, logger logging.Logger) *Handle {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Handle{
		agent:   a,
		logger:  logger,
		id:      util.NewID(),
		created: time.Now(),
		status:  core.StatusInitialized,
	}
}

// Agent returns the wrapped agent.
func (h *Handle) Agent() core.Agent { return h.agent }

// ID returns the stable agent id generated at registration.
func (h *Handle) ID() string { return h.id }

// Execute runs one task through the agent's Process with full bookkeeping and
// returns the result envelope. It never returns an error and never panics.
func (h *Handle) Execute(ctx context.Context, task core.Task) core.TaskResult {
	taskID := util.NewID()
	start := time.Now()

	h.mu.Lock()
	h.status = core.StatusProcessing
	h.mu.Unlock()

	h.logger.Debug("agent task started",
		"agent", h.agent.Name(), "task_id", taskID, "task_type", task.Type)

	result, err := h.process(ctx, task)

	elapsed := time.Since(start)
	completed := start.Add(elapsed)
	seconds := elapsed.Seconds()

	h.mu.Lock()
	h.metrics.LastActivity = completed
	if err != nil {
		h.metrics.TasksFailed++
		h.status = core.StatusError
	} else {
		h.metrics.TasksCompleted++
		h.updateAverageLocked(seconds)
		h.status = core.StatusIdle
	}
	h.mu.Unlock()

	if err != nil {
		logging.LogTaskExecution(h.logger, h.agent.Name(), taskID, elapsed, false, err.Error())
		return core.TaskResult{
			Success:        false,
			TaskID:         taskID,
			AgentName:      h.agent.Name(),
			Error:          err.Error(),
			ProcessingTime: seconds,
			Timestamp:      completed,
		}
	}

	logging.LogTaskExecution(h.logger, h.agent.Name(), taskID, elapsed, true, "")
	return core.TaskResult{
		Success:        true,
		TaskID:         taskID,
		AgentName:      h.agent.Name(),
		Result:         result,
		ProcessingTime: seconds,
		Timestamp:      completed,
	}
}

// process invokes Process with panic recovery so a misbehaving agent cannot
// take down the orchestrator.
func (h *Handle) process(ctx context.Context, task core.Task) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("agent panic: %v", r)
			h.logger.Error("agent panicked", "agent", h.agent.Name(), "recover", r)
		}
	}()
	return h.agent.Process(ctx, task)
}

// updateAverageLocked folds one completed-task sample into the streaming mean.
// n counts completed and failed tasks at this moment; failed tasks shift the
// denominator but contribute no sample of their own. Caller holds h.mu.
func (h *Handle) updateAverageLocked(seconds float64) {
	n := h.metrics.TasksCompleted + h.metrics.TasksFailed
	if n > 1 {
		h.metrics.AverageProcessingTime =
			(h.metrics.AverageProcessingTime*float64(n-1) + seconds) / float64(n)
		return
	}
	h.metrics.AverageProcessingTime = seconds
}

// Status returns a point-in-time copy of the agent's identity, lifecycle state
// and metrics.
func (h *Handle) Status() core.StatusSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return core.StatusSnapshot{
		AgentID:      h.id,
		Name:         h.agent.Name(),
		Description:  h.agent.Description(),
		Status:       h.status,
		Capabilities: h.agent.Capabilities(),
		CreatedAt:    h.created,
		Metrics:      h.metrics,
	}
}

// ResetMetrics zeroes all counters and clears last activity. Lifecycle status
// is untouched.
func (h *Handle) ResetMetrics() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.metrics = core.Metrics{}
}
