package task

import (
	"errors"
	"fmt"
)

// ErrPrecondition marks caller errors: adding a task with an empty ID or
// title, or reusing an existing ID. Wrapped errors match with errors.Is.
var ErrPrecondition = errors.New("precondition violated")

// MalformedRecordError reports a stored task record with a required field
// missing or unparseable. Required fields are never silently defaulted.
type MalformedRecordError struct {
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed task record: field %q %s", e.Field, e.Reason)
}

// StorageCorruptionError reports that the stored blob under a key does not
// parse as a valid record array. Load propagates it instead of discarding
// data; falling back to an empty collection is the caller's call.
type StorageCorruptionError struct {
	Key string
	Err error
}

func (e *StorageCorruptionError) Error() string {
	return fmt.Sprintf("stored data under key %q is corrupt: %v", e.Key, e.Err)
}

func (e *StorageCorruptionError) Unwrap() error { return e.Err }

// StorageIOError reports a read or write failure of the underlying blob
// store. The store does not retry; retry policy belongs to the caller.
type StorageIOError struct {
	Op  string // "read" or "write"
	Key string
	Err error
}

func (e *StorageIOError) Error() string {
	return fmt.Sprintf("storage %s failed for key %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageIOError) Unwrap() error { return e.Err }
