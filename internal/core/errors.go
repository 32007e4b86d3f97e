package core

import "fmt"

// UnsupportedWorkflowError is returned when Execute is asked for a request
// type it has no pipeline for. It is raised before any state is built.
type UnsupportedWorkflowError struct {
	RequestType string
}

func (e *UnsupportedWorkflowError) Error() string {
	return fmt.Sprintf("unsupported workflow type: %q", e.RequestType)
}

// ValidationError represents a pre-execution input validation failure.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
