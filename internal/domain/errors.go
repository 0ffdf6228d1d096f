package domain

import (
	"errors"
	"fmt"
)

// Domain errors returned by the vocabulary core
var (
	ErrNotFound         = errors.New("word not found")
	ErrEmptyVocabulary  = errors.New("no words to quiz")
	ErrNoActiveQuestion = errors.New("no active question")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidWord      = errors.New("invalid word")
)

// StoreError wraps a failure of the underlying store
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err, keeping domain errors untouched
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is makes every StoreError match ErrStoreUnavailable
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}
