package router

import "errors"

var (
	ErrEncoderUnavailable = errors.New("router: encoder unavailable")
	ErrEmptyCatalog       = errors.New("router: catalog is empty")
	ErrDuplicatePhrase    = errors.New("router: duplicate catalog phrase")
	ErrInvalidThreshold   = errors.New("router: threshold must be within [-1, 1)")
	ErrNoEncoder          = errors.New("router: encoder is required")
	ErrNoGenerator        = errors.New("router: generator is required")
)
