package llm

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks collaborator failures the analysis can proceed
// without. Callers degrade to deterministic results when they see it.
var ErrUnavailable = errors.New("llm unavailable")

// ResponseError represents an unusable response from the model
type ResponseError struct {
	Task    string
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Task, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Task, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
