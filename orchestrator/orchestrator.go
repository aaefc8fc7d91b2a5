package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vidyasetu/agentcore/agent"
	"github.com/vidyasetu/agentcore/core"
	"github.com/vidyasetu/agentcore/internal/util"
	"github.com/vidyasetu/agentcore/logging"
	"github.com/vidyasetu/agentcore/results"
)

// Options configure an Orchestrator.
type Options struct {
	// ResultStore receives every successful task envelope, keyed by task id.
	// Defaults to the in-memory store.
	ResultStore core.ResultStore

	// Logger provides structured logging. Defaults to NoOpLogger.
	Logger logging.Logger

	// PollInterval is the sleep between background loop iterations.
	// Defaults to 1s.
	PollInterval time.Duration

	// ErrorBackoff is the sleep after a background iteration fails.
	// Defaults to 5s.
	ErrorBackoff time.Duration

	// ResultMaxAge is the age past which swept results are evicted.
	// Defaults to 24h.
	ResultMaxAge time.Duration
}

// Orchestrator is the registry, router and background processor for a set of
// agents. All public methods are safe for concurrent use; per-agent metric
// safety is handled inside agent.Handle.
type Orchestrator struct {
	store        core.ResultStore
	logger       logging.Logger
	pollInterval time.Duration
	errorBackoff time.Duration
	resultMaxAge time.Duration

	mu      sync.RWMutex
	handles map[string]*agent.Handle

	queueMu sync.Mutex
	queue   []queuedTask

	loopMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type queuedTask struct {
	agentName string
	task      core.Task
}

// New constructs an Orchestrator with optional overrides.
func New(optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		ResultStore:  results.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
		PollInterval: time.Second,
		ErrorBackoff: 5 * time.Second,
		ResultMaxAge: 24 * time.Hour,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Orchestrator{
		store:        opts.ResultStore,
		logger:       opts.Logger,
		pollInterval: opts.PollInterval,
		errorBackoff: opts.ErrorBackoff,
		resultMaxAge: opts.ResultMaxAge,
		handles:      make(map[string]*agent.Handle),
	}
}

// Register adds an agent under its name, wrapping it in a fresh Handle. A
// second registration under an existing name replaces the first, metrics and
// all; last registration wins.
func (o *Orchestrator) Register(a core.Agent) {
	handle := agent.NewHandle(a, o.logger)
	o.mu.Lock()
	o.handles[a.Name()] = handle
	o.mu.Unlock()
	o.logger.Info("registered agent", "agent", a.Name())
}

// Unregister removes the named agent. Removing an unknown name is a no-op.
func (o *Orchestrator) Unregister(name string) {
	o.mu.Lock()
	_, existed := o.handles[name]
	delete(o.handles, name)
	o.mu.Unlock()
	if existed {
		o.logger.Info("unregistered agent", "agent", name)
	}
}

// Handle returns the executor wrapping the named agent.
func (o *Orchestrator) Handle(name string) (*agent.Handle, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	h, ok := o.handles[name]
	return h, ok
}

// AgentCount reports the number of registered agents.
func (o *Orchestrator) AgentCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.handles)
}

// AgentStatus returns a point-in-time snapshot of every registered agent,
// keyed by name. Snapshots are taken one agent at a time and are not
// transactionally consistent with tasks running concurrently.
func (o *Orchestrator) AgentStatus() map[string]core.StatusSnapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	status := make(map[string]core.StatusSnapshot, len(o.handles))
	for name, h := range o.handles {
		status[name] = h.Status()
	}
	return status
}

// AgentsByCapability returns every registered agent declaring the capability.
func (o *Orchestrator) AgentsByCapability(capability core.Capability) []core.Agent {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var agents []core.Agent
	for _, h := range o.handles {
		for _, c := range h.Agent().Capabilities() {
			if c == capability {
				agents = append(agents, h.Agent())
				break
			}
		}
	}
	return agents
}

// FindAgentByCapability returns one agent declaring the capability. Absence is
// reported through the boolean, not an error.
func (o *Orchestrator) FindAgentByCapability(capability core.Capability) (core.Agent, bool) {
	agents := o.AgentsByCapability(capability)
	if len(agents) == 0 {
		return nil, false
	}
	return agents[0], true
}

// ExecuteTask routes one task to the named agent and returns its envelope.
// An unregistered name yields a failure envelope, never an error or panic.
// Successful envelopes are cached in the result store; a store failure is
// logged but does not fail the task.
func (o *Orchestrator) ExecuteTask(ctx context.Context, agentName string, task core.Task) core.TaskResult {
	h, ok := o.Handle(agentName)
	if !ok {
		o.logger.Warn("task for unknown agent", "agent", agentName, "task_type", task.Type)
		return core.TaskResult{
			Success:   false,
			TaskID:    util.NewID(),
			AgentName: agentName,
			Error:     fmt.Sprintf("agent %s not found", agentName),
			Timestamp: time.Now(),
		}
	}

	result := h.Execute(ctx, task)
	if result.Success {
		if err := o.store.Put(result); err != nil {
			o.logger.Error("failed to cache task result",
				"agent", agentName, "task_id", result.TaskID, "error", err)
		}
	}
	return result
}

// Result returns the cached envelope for a task id.
func (o *Orchestrator) Result(taskID string) (core.TaskResult, error) {
	return o.store.Get(taskID)
}

// SweepResults evicts cached envelopes older than maxAge, returning the
// eviction count. The background loop calls this with the configured
// ResultMaxAge; it is exported for manual housekeeping.
func (o *Orchestrator) SweepResults(maxAge time.Duration) (int, error) {
	return o.store.Sweep(maxAge)
}
