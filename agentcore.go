// Package agentcore provides a high-level façade over the orchestrator and
// its agents, enabling quick assembly of the learning platform's agent layer.
// Most applications interact with this package by:
//  1. Creating an AgentCore via New() (optionally overriding the result store
//     and logger)
//  2. Registering agents (the stock LanguageAgent and SpeechAgent, or custom
//     core.Agent implementations)
//  3. Executing tasks and workflows, and starting the background loop for
//     queued processing and result-cache housekeeping
//
// Defaults are safe for local development and tests: an in-memory result
// store and a no-op logger. Production deployments typically supply the Redis
// result store and a structured logger.
package agentcore

import (
	"context"
	"time"

	"github.com/vidyasetu/agentcore/core"
	"github.com/vidyasetu/agentcore/logging"
	"github.com/vidyasetu/agentcore/orchestrator"
	"github.com/vidyasetu/agentcore/results"
)

// Options configure the AgentCore instance.
type Options struct {
	// ResultStore receives successful task envelopes (defaults to in-memory).
	ResultStore core.ResultStore

	// Logger is used across the orchestrator and executors (defaults to NoOp).
	Logger logging.Logger

	// PollInterval, ErrorBackoff and ResultMaxAge tune the background loop;
	// zero values take the orchestrator defaults (1s, 5s, 24h).
	PollInterval time.Duration
	ErrorBackoff time.Duration
	ResultMaxAge time.Duration
}

// AgentCore is the high-level façade aggregating the orchestrator.
type AgentCore struct {
	orch *orchestrator.Orchestrator
}

// New creates an AgentCore with optional overrides.
func New(optFns ...func(o *Options)) *AgentCore {
	opts := Options{
		ResultStore: results.NewInMemoryStore(),
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	orch := orchestrator.New(func(o *orchestrator.Options) {
		o.ResultStore = opts.ResultStore
		o.Logger = opts.Logger
		if opts.PollInterval > 0 {
			o.PollInterval = opts.PollInterval
		}
		if opts.ErrorBackoff > 0 {
			o.ErrorBackoff = opts.ErrorBackoff
		}
		if opts.ResultMaxAge > 0 {
			o.ResultMaxAge = opts.ResultMaxAge
		}
	})

	return &AgentCore{orch: orch}
}

// Orchestrator exposes the underlying orchestrator for advanced use.
func (c *AgentCore) Orchestrator() *orchestrator.Orchestrator { return c.orch }

// RegisterAgent adds an agent to the registry.
func (c *AgentCore) RegisterAgent(a core.Agent) { c.orch.Register(a) }

// ExecuteTask routes one task to the named agent and returns its envelope.
func (c *AgentCore) ExecuteTask(ctx context.Context, agentName string, task core.Task) core.TaskResult {
	return c.orch.ExecuteTask(ctx, agentName, task)
}

// ExecuteWorkflow runs an ordered list of steps with inter-step context
// propagation, returning the envelopes produced.
func (c *AgentCore) ExecuteWorkflow(ctx context.Context, steps []orchestrator.WorkflowStep) []core.TaskResult {
	return c.orch.ExecuteWorkflow(ctx, steps)
}

// Start launches the background queue-drain and cache-sweep loop.
func (c *AgentCore) Start() { c.orch.Start() }

// Close stops the background loop and waits for it to exit.
func (c *AgentCore) Close() { c.orch.Close() }
