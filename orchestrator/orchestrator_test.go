package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/agentcore/agent"
	"github.com/vidyasetu/agentcore/core"
	"github.com/vidyasetu/agentcore/results"
)

// scriptedAgent is a configurable core.Agent for orchestrator tests.
type scriptedAgent struct {
	agent.Base
	process func(ctx context.Context, task core.Task) (any, error)
}

func newScriptedAgent(name, description string, capability core.Capability,
	process func(ctx context.Context, task core.Task) (any, error)) *scriptedAgent {
	return &scriptedAgent{
		Base:    agent.NewBaseWithDescription(name, description, capability),
		process: process,
	}
}

func (s *scriptedAgent) Process(ctx context.Context, task core.Task) (any, error) {
	return s.process(ctx, task)
}

func echoAgent(name string) *scriptedAgent {
	return newScriptedAgent(name, "echoes its input", core.CapabilityFocus,
		func(_ context.Context, task core.Task) (any, error) {
			return task.Input, nil
		})
}

func failingAgent(name, msg string) *scriptedAgent {
	return newScriptedAgent(name, "always fails", core.CapabilityFocus,
		func(context.Context, core.Task) (any, error) {
			return nil, errors.New(msg)
		})
}

func TestOrchestrator_ExecuteTask_Success(t *testing.T) {
	o := New()
	o.Register(echoAgent("Echo"))

	result := o.ExecuteTask(context.Background(), "Echo", core.Task{
		Type:  "echo",
		Input: map[string]any{"k": "v"},
	})

	assert.True(t, result.Success)
	assert.Equal(t, "Echo", result.AgentName)
	assert.Equal(t, map[string]any{"k": "v"}, result.Result)
}

func TestOrchestrator_ExecuteTask_AgentNotFound(t *testing.T) {
	o := New()

	var result core.TaskResult
	require.NotPanics(t, func() {
		result = o.ExecuteTask(context.Background(), "Ghost", core.Task{Type: "anything"})
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Ghost")
	assert.Contains(t, result.Error, "not found")
	assert.NotEmpty(t, result.TaskID)
	assert.False(t, result.Timestamp.IsZero())
}

func TestOrchestrator_ExecuteTask_CachesSuccessfulResults(t *testing.T) {
	store := results.NewInMemoryStore()
	o := New(func(opts *Options) { opts.ResultStore = store })
	o.Register(echoAgent("Echo"))
	o.Register(failingAgent("Broken", "nope"))

	ok := o.ExecuteTask(context.Background(), "Echo", core.Task{Type: "echo"})
	bad := o.ExecuteTask(context.Background(), "Broken", core.Task{Type: "work"})

	cached, err := o.Result(ok.TaskID)
	require.NoError(t, err)
	assert.Equal(t, ok.TaskID, cached.TaskID)

	_, err = o.Result(bad.TaskID)
	assert.ErrorIs(t, err, results.ErrNotFound)
}

func TestOrchestrator_Register_DuplicateNameReplaces(t *testing.T) {
	o := New()
	o.Register(newScriptedAgent("X", "first", core.CapabilityFocus,
		func(context.Context, core.Task) (any, error) { return 1, nil }))
	o.Register(newScriptedAgent("X", "second", core.CapabilityFocus,
		func(context.Context, core.Task) (any, error) { return 2, nil }))

	assert.Equal(t, 1, o.AgentCount())

	status := o.AgentStatus()
	require.Contains(t, status, "X")
	assert.Equal(t, "second", status["X"].Description)

	result := o.ExecuteTask(context.Background(), "X", core.Task{})
	assert.Equal(t, 2, result.Result)
}

func TestOrchestrator_Unregister(t *testing.T) {
	o := New()
	o.Register(echoAgent("Echo"))

	o.Unregister("Echo")
	assert.Equal(t, 0, o.AgentCount())

	// Unknown names are a no-op, not an error.
	require.NotPanics(t, func() { o.Unregister("Ghost") })

	result := o.ExecuteTask(context.Background(), "Echo", core.Task{})
	assert.False(t, result.Success)
}

func TestOrchestrator_AgentStatus(t *testing.T) {
	o := New()
	o.Register(echoAgent("A"))
	o.Register(failingAgent("B", "bad"))

	o.ExecuteTask(context.Background(), "A", core.Task{})
	o.ExecuteTask(context.Background(), "B", core.Task{})

	status := o.AgentStatus()
	require.Len(t, status, 2)
	assert.Equal(t, 1, status["A"].Metrics.TasksCompleted)
	assert.Equal(t, core.StatusIdle, status["A"].Status)
	assert.Equal(t, 1, status["B"].Metrics.TasksFailed)
	assert.Equal(t, core.StatusError, status["B"].Status)
}

func TestOrchestrator_CapabilityQueries(t *testing.T) {
	o := New()
	o.Register(newScriptedAgent("Translator", "translates", core.CapabilityTranslation,
		func(context.Context, core.Task) (any, error) { return nil, nil }))
	o.Register(echoAgent("Echo"))

	found, ok := o.FindAgentByCapability(core.CapabilityTranslation)
	require.True(t, ok)
	assert.Equal(t, "Translator", found.Name())

	_, ok = o.FindAgentByCapability(core.CapabilitySpeech)
	assert.False(t, ok)

	assert.Len(t, o.AgentsByCapability(core.CapabilityFocus), 1)
	assert.Empty(t, o.AgentsByCapability(core.CapabilityOffline))
}

func TestOrchestrator_ThreeFailures(t *testing.T) {
	o := New()
	o.Register(failingAgent("Boomer", "boom"))

	var last core.TaskResult
	for i := 0; i < 3; i++ {
		last = o.ExecuteTask(context.Background(), "Boomer", core.Task{Type: core.TaskType(fmt.Sprintf("t%d", i))})
	}

	status := o.AgentStatus()["Boomer"]
	assert.Equal(t, 3, status.Metrics.TasksFailed)
	assert.Equal(t, 0, status.Metrics.TasksCompleted)
	assert.Equal(t, "boom", last.Error)
}
