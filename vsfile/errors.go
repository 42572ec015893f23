package vsfile

import "errors"

var (
	// ErrInvalidArgument indicates a blank required string argument
	ErrInvalidArgument = errors.New("argument is null, empty, or whitespace")

	// ErrNotFound indicates the file or directory does not exist
	ErrNotFound = errors.New("file or directory not found")

	// ErrWrongExtension indicates the file extension does not match its kind
	ErrWrongExtension = errors.New("unexpected file extension")
)
