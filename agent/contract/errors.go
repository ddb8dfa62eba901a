package contract

import "errors"

var (
	ErrEmptyTopic     = errors.New("topic is empty")
	ErrNoAnswer       = errors.New("no usable answer")
	ErrLookup         = errors.New("instant answer lookup failed")
	ErrLocaleMissing  = errors.New("locale vocabulary is missing")
	ErrValidation     = errors.New("validation failed")
	ErrHostEmitFailed = errors.New("host emit failed")
)
