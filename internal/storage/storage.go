package storage

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrCreateFailed = errors.New("failed to create")
)
