package recipes

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("recipe not found")
)
