package edl

import (
	"errors"
	"fmt"
)

var (
	ErrFileAccess    = errors.New("edl file access error")
	ErrMalformedLine = errors.New("malformed edl line")
)

// FileAccessError reports an EDL file that could not be opened or read.
type FileAccessError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() []error {
	return []error{ErrFileAccess, e.Err}
}

// MalformedLineError describes a REEL line that was skipped because it broke
// the clip naming contract. Line is 1-based; zero when the caller supplied
// lines without positions.
type MalformedLineError struct {
	Line   int
	Text   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

func (e *MalformedLineError) Unwrap() error {
	return ErrMalformedLine
}
