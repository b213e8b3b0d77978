package preflight

import (
	"errors"
	"fmt"
)

// ErrCheckFailed marks errors produced from failed preflight results.
var ErrCheckFailed = errors.New("preflight check failed")

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Err converts a failed result into an error wrapping ErrCheckFailed.
func (r Result) Err() error {
	if r.Passed {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", ErrCheckFailed, r.Name, r.Detail)
}

// RunAll checks every EDL input for readability and, when base is not empty,
// the output directory for read/write access.
func RunAll(inputs []string, base string) []Result {
	results := make([]Result, 0, len(inputs)+1)
	for _, path := range inputs {
		results = append(results, CheckFileReadable("EDL file", path))
	}
	if base != "" {
		results = append(results, CheckDirectoryAccess("Base directory", base))
	}
	return results
}

// FirstFailure returns the error of the first failed result, or nil.
func FirstFailure(results []Result) error {
	for _, r := range results {
		if err := r.Err(); err != nil {
			return err
		}
	}
	return nil
}
