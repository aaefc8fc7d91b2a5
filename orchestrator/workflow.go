package orchestrator

import (
	"context"

	"github.com/vidyasetu/agentcore/core"
)

// WorkflowStep names one agent invocation within a workflow. Steps are
// required by default; set Optional to let the workflow continue past a
// failure of this step.
type WorkflowStep struct {
	Agent    string
	Task     core.Task
	Optional bool
}

// ExecuteWorkflow runs the steps strictly in order, threading an accumulated
// context between them: before each step, the results of all prior successful
// steps are injected into the step's Task.Context under "<agent_name>_result"
// keys; after a successful step, its result joins the context.
//
// A failing required step stops the run; remaining steps are discarded. A
// failing optional step does not halt the run. The returned slice always
// contains the envelopes produced so far, even on early termination, and the
// method never returns an error.
func (o *Orchestrator) ExecuteWorkflow(ctx context.Context, steps []WorkflowStep) []core.TaskResult {
	envelopes := make([]core.TaskResult, 0, len(steps))
	workflowCtx := make(map[string]any)

	for _, step := range steps {
		task := step.Task
		task.Context = snapshotContext(workflowCtx)

		result := o.ExecuteTask(ctx, step.Agent, task)
		envelopes = append(envelopes, result)

		if result.Success {
			workflowCtx[step.Agent+"_result"] = result.Result
			continue
		}
		if !step.Optional {
			o.logger.Error("required workflow step failed",
				"agent", step.Agent, "task_type", step.Task.Type, "error", result.Error)
			break
		}
		o.logger.Warn("optional workflow step failed",
			"agent", step.Agent, "task_type", step.Task.Type, "error", result.Error)
	}

	return envelopes
}

// snapshotContext copies the accumulated context so a step sees the state as
// of its start, unaffected by later additions.
func snapshotContext(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
