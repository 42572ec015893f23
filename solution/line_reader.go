package solution

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LineReader provides forward-only, single-pass access to a line-based
// text source. Callers are expected to check HasMore before ReadLine;
// reading past exhaustion returns ErrEndOfInput.
type LineReader interface {
	// HasMore reports whether another line can be read
	HasMore() bool

	// ReadLine returns the next line without its line terminator
	ReadLine() (string, error)

	// Line returns the number of the most recently read line (1-based, 0 before the first read)
	Line() int
}

// StringLineReader reads lines from an in-memory string.
// Both \n and \r\n are treated as line separators.
type StringLineReader struct {
	lines []string
	pos   int
}

// NewStringLineReader creates a line reader over the given text
func NewStringLineReader(text string) *StringLineReader {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	return &StringLineReader{lines: strings.Split(normalized, "\n")}
}

// HasMore implements LineReader.HasMore
func (r *StringLineReader) HasMore() bool {
	return r.pos < len(r.lines)
}

// ReadLine implements LineReader.ReadLine
func (r *StringLineReader) ReadLine() (string, error) {
	if r.pos >= len(r.lines) {
		return "", ErrEndOfInput
	}
	line := r.lines[r.pos]
	r.pos++
	return line, nil
}

// Line implements LineReader.Line
func (r *StringLineReader) Line() int {
	return r.pos
}

// FileLineReader reads lines from an on-disk text file using the
// platform line-reading primitive, so behavior matches native text-file
// semantics. The reader owns the file handle; Close releases it.
type FileLineReader struct {
	file    *os.File
	scanner *bufio.Scanner
	next    string
	hasNext bool
	line    int
}

// OpenFileLineReader opens path for forward-only line reading
func OpenFileLineReader(path string) (*FileLineReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open solution file: %w", err)
	}

	r := &FileLineReader{
		file:    file,
		scanner: bufio.NewScanner(file),
	}
	r.advance()
	return r, nil
}

// HasMore implements LineReader.HasMore
func (r *FileLineReader) HasMore() bool {
	return r.hasNext
}

// ReadLine implements LineReader.ReadLine
func (r *FileLineReader) ReadLine() (string, error) {
	if !r.hasNext {
		return "", ErrEndOfInput
	}
	line := r.next
	r.line++
	r.advance()
	return line, nil
}

// Line implements LineReader.Line
func (r *FileLineReader) Line() int {
	return r.line
}

// advance buffers the next line so HasMore can answer without consuming
func (r *FileLineReader) advance() {
	r.hasNext = r.scanner.Scan()
	if r.hasNext {
		r.next = r.scanner.Text()
	}
}

// Close releases the underlying file handle
func (r *FileLineReader) Close() error {
	return r.file.Close()
}

// Err returns any I/O error encountered while scanning
func (r *FileLineReader) Err() error {
	return r.scanner.Err()
}
