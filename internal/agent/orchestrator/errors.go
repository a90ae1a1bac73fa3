package orchestrator

import "errors"

// ErrMaxSteps means the model kept calling tools and never gave a final answer.
var ErrMaxSteps = errors.New("no final answer within step limit")
