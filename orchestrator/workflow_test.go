package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidyasetu/agentcore/core"
)

func TestExecuteWorkflow_ThreadsResultsBetweenSteps(t *testing.T) {
	o := New()

	var seenByB map[string]any
	o.Register(newScriptedAgent("A", "produces", core.CapabilityFocus,
		func(context.Context, core.Task) (any, error) {
			return "a-output", nil
		}))
	o.Register(newScriptedAgent("B", "consumes", core.CapabilityFocus,
		func(_ context.Context, task core.Task) (any, error) {
			seenByB = task.Context
			return "b-output", nil
		}))

	envelopes := o.ExecuteWorkflow(context.Background(), []WorkflowStep{
		{Agent: "A", Task: core.Task{Type: "produce"}},
		{Agent: "B", Task: core.Task{Type: "consume"}},
	})

	require.Len(t, envelopes, 2)
	assert.True(t, envelopes[0].Success)
	assert.True(t, envelopes[1].Success)
	require.NotNil(t, seenByB)
	assert.Equal(t, "a-output", seenByB["A_result"])
}

func TestExecuteWorkflow_RequiredFailureStopsRun(t *testing.T) {
	o := New()

	executed := false
	o.Register(failingAgent("Broken", "step failed"))
	o.Register(newScriptedAgent("Next", "should not run", core.CapabilityFocus,
		func(context.Context, core.Task) (any, error) {
			executed = true
			return nil, nil
		}))

	envelopes := o.ExecuteWorkflow(context.Background(), []WorkflowStep{
		{Agent: "Broken", Task: core.Task{Type: "work"}},
		{Agent: "Next", Task: core.Task{Type: "work"}},
	})

	require.Len(t, envelopes, 1)
	assert.False(t, envelopes[0].Success)
	assert.Equal(t, "step failed", envelopes[0].Error)
	assert.False(t, executed, "steps after a failed required step must not run")
}

func TestExecuteWorkflow_OptionalFailureContinues(t *testing.T) {
	o := New()

	o.Register(failingAgent("Flaky", "best effort"))
	o.Register(echoAgent("Echo"))

	var seenByEcho map[string]any
	o.Register(newScriptedAgent("Last", "inspects context", core.CapabilityFocus,
		func(_ context.Context, task core.Task) (any, error) {
			seenByEcho = task.Context
			return nil, nil
		}))

	envelopes := o.ExecuteWorkflow(context.Background(), []WorkflowStep{
		{Agent: "Flaky", Task: core.Task{Type: "enrich"}, Optional: true},
		{Agent: "Echo", Task: core.Task{Type: "echo", Input: map[string]any{"n": 1}}},
		{Agent: "Last", Task: core.Task{Type: "inspect"}},
	})

	require.Len(t, envelopes, 3)
	assert.False(t, envelopes[0].Success)
	assert.True(t, envelopes[1].Success)
	assert.True(t, envelopes[2].Success)

	// Failed steps contribute nothing to the workflow context.
	require.NotNil(t, seenByEcho)
	assert.NotContains(t, seenByEcho, "Flaky_result")
	assert.Contains(t, seenByEcho, "Echo_result")
}

func TestExecuteWorkflow_MissingAgentIsAFailedStep(t *testing.T) {
	o := New()
	o.Register(echoAgent("Echo"))

	envelopes := o.ExecuteWorkflow(context.Background(), []WorkflowStep{
		{Agent: "Ghost", Task: core.Task{Type: "anything"}},
		{Agent: "Echo", Task: core.Task{Type: "echo"}},
	})

	require.Len(t, envelopes, 1)
	assert.False(t, envelopes[0].Success)
	assert.Contains(t, envelopes[0].Error, "not found")
}

func TestExecuteWorkflow_Empty(t *testing.T) {
	o := New()
	envelopes := o.ExecuteWorkflow(context.Background(), nil)
	assert.Empty(t, envelopes)
}

func TestExecuteWorkflow_StepsSeeContextSnapshot(t *testing.T) {
	o := New()

	o.Register(newScriptedAgent("First", "mutates its context", core.CapabilityFocus,
		func(_ context.Context, task core.Task) (any, error) {
			// Writes into the step's own context copy must not leak forward.
			task.Context["tampered"] = true
			return "first", nil
		}))

	var seenBySecond map[string]any
	o.Register(newScriptedAgent("Second", "inspects context", core.CapabilityFocus,
		func(_ context.Context, task core.Task) (any, error) {
			seenBySecond = task.Context
			return "second", nil
		}))

	o.ExecuteWorkflow(context.Background(), []WorkflowStep{
		{Agent: "First", Task: core.Task{Type: "t"}},
		{Agent: "Second", Task: core.Task{Type: "t"}},
	})

	require.NotNil(t, seenBySecond)
	assert.NotContains(t, seenBySecond, "tampered")
	assert.Equal(t, "first", seenBySecond["First_result"])
}
