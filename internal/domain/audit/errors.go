package audit

import "errors"

var (
	ErrNotFound     = errors.New("audit not found")
	ErrInvalidInput = errors.New("audit input is invalid")
)
