package types

import "fmt"

// PathError reports a missing required file or directory, or a failure to
// create one. Every error of this class is fatal: the pipeline terminates
// before any output is written.
type PathError struct {
	Path string
	Op   string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s was not found", e.Op, e.Path)
}

func (e *PathError) Unwrap() error { return e.Err }

// NewMissingPathError reports a required file or directory that does not exist.
func NewMissingPathError(kind, path string) *PathError {
	return &PathError{Path: path, Op: "the " + kind}
}

// NewCreateDirError reports a directory creation failure.
func NewCreateDirError(path string, err error) *PathError {
	return &PathError{Path: path, Op: "error creating the directory", Err: err}
}
