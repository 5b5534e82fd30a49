package errors

import (
	"fmt"
)

// StorageErr is raised when persistence medium is unreachable or rejects read/write
type StorageErr struct {
	Op  string
	Err error
}

func (e *StorageErr) Error() string {
	return fmt.Sprintf("storage failed to %s - %v", e.Op, e.Err)
}

func (e *StorageErr) Unwrap() error {
	return e.Err
}

// NewStorageErr wraps err raised by storage during op
func NewStorageErr(op string, err error) error {
	return &StorageErr{Op: op, Err: err}
}
