package sift

import (
	"errors"
	"fmt"

	"github.com/sift-go/sift/query"
)

var (
	// ErrSyntax is wrapped around every query syntax error. The underlying
	// *query.SyntaxError with offset and parser stage can be accessed via
	// errors.As.
	ErrSyntax = errors.New("invalid query syntax")

	// ErrNoColumns is returned when a builder declares no columns.
	ErrNoColumns = errors.New("at least one column is required")
)

// UnknownFieldError indicates a query referenced a field that was not
// declared as a column. This is a user error, not a programmer error: query
// text comes from end users.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Field)
}

// DuplicateColumnError indicates a builder declared the same column twice.
type DuplicateColumnError struct {
	Name string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicate column %q", e.Name)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	var se *query.SyntaxError
	if errors.As(err, &se) {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return err
}
