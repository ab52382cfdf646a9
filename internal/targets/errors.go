package targets

import "errors"

var (
	ErrConfig        = errors.New("config error")
	ErrUnknownTarget = errors.New("unknown target")
	ErrNoImage       = errors.New("target has no image")
)
