package position

import "errors"

var (
	ErrPositionNotFound   = errors.New("position not found")
	ErrPositionNameExists = errors.New("position name already exists")
)
