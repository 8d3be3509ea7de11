package logs

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrSlotTaken  = errors.New("meal slot already logged")
)
