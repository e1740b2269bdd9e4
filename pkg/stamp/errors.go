package stamp

import "fmt"

// ConfigError reports an invalid user-supplied parameter. It is detected at
// the boundary, before any state is mutated or any file is written.
type ConfigError struct {
	Param  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// ResourceError reports an unreadable or undecodable input (the document or
// the stamp image). It is fatal to the run.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// CollaboratorError reports a failed call into the paged-document engine
// during a splice. Step names the operation that failed so the user can tell
// which part of the assembly went wrong.
type CollaboratorError struct {
	Step string
	Err  error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("page assembly failed at %s: %v", e.Step, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }
