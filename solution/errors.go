package solution

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfInput indicates a read past the end of the line source
	ErrEndOfInput = errors.New("no more input")

	// ErrNotFound indicates the solution file does not exist
	ErrNotFound = errors.New("solution file not found")

	// ErrWrongExtension indicates the file is not a .sln file
	ErrWrongExtension = errors.New("not a .sln file")

	// ErrMalformedSolutionFile indicates no valid header was found in the first two lines
	ErrMalformedSolutionFile = errors.New("no solution header found")

	// ErrMalformedHeader indicates the header version suffix is unparseable
	ErrMalformedHeader = errors.New("malformed solution header")

	// ErrMalformedProjectReference indicates an unterminated or malformed Project block
	ErrMalformedProjectReference = errors.New("malformed project reference")
)

// ParseError represents an error during solution file parsing
type ParseError struct {
	// FilePath is the path to the file being parsed (may be empty for in-memory input)
	FilePath string

	// Line is the line number where the error occurred
	Line int

	// Message describes what went wrong
	Message string

	// Err is the sentinel error this parse failure belongs to
	Err error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	switch {
	case e.FilePath != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.FilePath, e.Line, e.Message)
	case e.FilePath != "":
		return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	default:
		return e.Message
	}
}

// Unwrap supports errors.Is matching against the sentinel errors
func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseError builds a ParseError positioned at the reader's current line
func parseError(r LineReader, sentinel error, format string, args ...any) *ParseError {
	return &ParseError{
		Line:    r.Line(),
		Message: fmt.Sprintf(format, args...),
		Err:     sentinel,
	}
}
