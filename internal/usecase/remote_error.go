package usecase

import "fmt"

// RemoteError reports a persistence-layer failure, verbatim, with enough
// context (entity, record id, attempted action) for the caller to build a
// user-facing message. The use cases never retry or reconcile: a failed
// call leaves local state exactly as it was.
type RemoteError struct {
	Action string
	Entity string
	ID     string
	Err    error
}

func (e *RemoteError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s %s failed: %v", e.Action, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s %s %s failed: %v", e.Action, e.Entity, e.ID, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func remoteErr(action, entity, id string, err error) *RemoteError {
	return &RemoteError{Action: action, Entity: entity, ID: id, Err: err}
}
