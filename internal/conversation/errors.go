package conversation

import "errors"

var (
	ErrEmptyUserID = errors.New("user id is required")
	ErrInvalidRole = errors.New("role must be user or assistant")
)
