package loader

import "fmt"

// LoadFailed reports a source that could not be read or parsed. Callers skip
// the source and continue with the rest of the run.
type LoadFailed struct {
	Path string
	Err  error
}

func (e *LoadFailed) Error() string {
	return fmt.Sprintf("could not load %s: %v", e.Path, e.Err)
}

func (e *LoadFailed) Unwrap() error { return e.Err }

// EmptySource reports a source with no usable columns or tables.
type EmptySource struct {
	Path string
}

func (e *EmptySource) Error() string {
	return fmt.Sprintf("no usable data in %s", e.Path)
}
