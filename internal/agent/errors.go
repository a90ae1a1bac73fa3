package agent

import "errors"

var (
	// ErrGenerationFailed wraps a failed or timed out model call.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrEmptyResponse means the model answered with no text.
	ErrEmptyResponse   = errors.New("empty model response")
	ErrEmptyTask       = errors.New("task is empty")
	ErrHandlerNotFound = errors.New("no handler for category")
)
