package cucumber

import "fmt"

// MissingInputError reports that the run document does not exist.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("run document not found: %s", e.Path)
}

// MalformedInputError reports a run document that exists but cannot be used.
type MalformedInputError struct {
	Path string
	Err  error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed run document %s: %v", e.Path, e.Err)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
