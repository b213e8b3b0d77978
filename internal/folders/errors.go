package folders

import (
	"errors"
	"fmt"

	"edlparser/internal/edl"
)

var (
	ErrDirectoryCreation = errors.New("directory creation error")
	ErrInvalidComponent  = errors.New("invalid path component")
	ErrNotDirectory      = errors.New("path exists and is not a directory")
)

// DirectoryCreationError reports one directory that could not be ensured for
// a record.
type DirectoryCreationError struct {
	Path   string
	Record edl.ClipRecord
	Err    error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("create directory %s for clip %s: %v", e.Path, e.Record.ClipName, e.Err)
}

func (e *DirectoryCreationError) Unwrap() []error {
	return []error{ErrDirectoryCreation, e.Err}
}
