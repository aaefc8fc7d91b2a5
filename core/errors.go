package core

import "fmt"

// UnknownTaskTypeError is returned by an agent's Process when the task names
// an operation outside the agent's declared set. The executor converts it into
// a failure envelope like any other processing error; the type exists so tests
// and callers inspecting envelopes can match on it with errors.As.
type UnknownTaskTypeError struct {
	Agent string
	Type  TaskType
}

func (e *UnknownTaskTypeError) Error() string {
	return fmt.Sprintf("agent %s: unknown task type %q", e.Agent, e.Type)
}

// NewUnknownTaskTypeError constructs an UnknownTaskTypeError for the agent and
// offending task type.
func NewUnknownTaskTypeError(agent string, taskType TaskType) *UnknownTaskTypeError {
	return &UnknownTaskTypeError{Agent: agent, Type: taskType}
}
