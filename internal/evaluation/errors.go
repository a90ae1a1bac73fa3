package evaluation

import "errors"

var (
	ErrEmptyTask     = errors.New("task is required")
	ErrEmptyOutput   = errors.New("output is required")
	ErrInvalidRating = errors.New("rating must be an integer from 1 to 10")
	ErrJudgeFailed   = errors.New("judge generation failed")
)
