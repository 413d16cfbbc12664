package documents

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("document not found")
	ErrUnsupportedType = errors.New("unsupported file type")
)
