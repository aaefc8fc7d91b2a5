package results

import "fmt"

var (
	// ErrNotFound is returned when no envelope exists for the given task id
	// in the underlying store.
	ErrNotFound = fmt.Errorf("task result not found")
)
