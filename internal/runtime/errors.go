package runtime

import "errors"

var (
	ErrRuntime       = errors.New("runtime error")
	ErrImageNotFound = errors.New("image not found")
)
