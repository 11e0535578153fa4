package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrInputTooLarge = stderrors.New("input too large")
	ErrInvalidHash   = stderrors.New("invalid hash")
)

type HashError struct {
	Op  string
	Err error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("sha1 %s: %v", e.Op, e.Err)
}

func (e *HashError) Unwrap() error {
	return e.Err
}

func NewHashError(op string, err error) *HashError {
	return &HashError{
		Op:  op,
		Err: err,
	}
}
