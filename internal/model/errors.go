package model

import "errors"

var ErrUnknownCategory = errors.New("unknown category")
