package errors

import (
	"errors"
	"fmt"
)

// ParseError indicates the input holds no usable lines.
type ParseError struct {
	Reason string
}

func NewParseError(reason string) *ParseError {
	return &ParseError{Reason: reason}
}

func NewEmptyInputError() *ParseError {
	return NewParseError("input contains no data")
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Reason)
}

// IsParseError checks if the error is a ParseError.
func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

// NoTableLoadedError indicates a clause was requested before any table was loaded.
type NoTableLoadedError struct{}

func NewNoTableLoadedError() *NoTableLoadedError {
	return &NoTableLoadedError{}
}

func (e *NoTableLoadedError) Error() string {
	return "no table loaded"
}

func IsNoTableLoadedError(err error) bool {
	var e *NoTableLoadedError
	return errors.As(err, &e)
}

// NoColumnSelectedError indicates the selected column is missing or does not
// exist in the table header.
type NoColumnSelectedError struct {
	Column string
}

func NewNoColumnSelectedError(column string) *NoColumnSelectedError {
	return &NoColumnSelectedError{Column: column}
}

func (e *NoColumnSelectedError) Error() string {
	if e.Column == "" {
		return "no column selected"
	}
	return fmt.Sprintf("column %q not found", e.Column)
}

func IsNoColumnSelectedError(err error) bool {
	var e *NoColumnSelectedError
	return errors.As(err, &e)
}

// EmptyColumnValuesError indicates the selected column has no usable values.
type EmptyColumnValuesError struct {
	Column string
}

func NewEmptyColumnValuesError(column string) *EmptyColumnValuesError {
	return &EmptyColumnValuesError{Column: column}
}

func (e *EmptyColumnValuesError) Error() string {
	return fmt.Sprintf("no values found in column %q", e.Column)
}

func IsEmptyColumnValuesError(err error) bool {
	var e *EmptyColumnValuesError
	return errors.As(err, &e)
}

// UnsupportedOperatorError indicates an operator outside IN, NOT IN, LIKE, NOT LIKE.
type UnsupportedOperatorError struct {
	Operator string
}

func NewUnsupportedOperatorError(op string) *UnsupportedOperatorError {
	return &UnsupportedOperatorError{Operator: op}
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator: %q", e.Operator)
}

func IsUnsupportedOperatorError(err error) bool {
	var e *UnsupportedOperatorError
	return errors.As(err, &e)
}

// UnsupportedFormatError indicates a file whose extension no reader handles.
type UnsupportedFormatError struct {
	Name string
	Hint string
}

func NewUnsupportedFormatError(name string, hint ...string) *UnsupportedFormatError {
	e := &UnsupportedFormatError{Name: name}
	if len(hint) > 0 {
		e.Hint = hint[0]
	}
	return e
}

func (e *UnsupportedFormatError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("unsupported file format: %s: %s", e.Name, e.Hint)
	}
	return fmt.Sprintf("unsupported file format: %s", e.Name)
}

func IsUnsupportedFormatError(err error) bool {
	var e *UnsupportedFormatError
	return errors.As(err, &e)
}

// ResourceNotFoundError indicates a resource was not found.
type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func NewResourceNotFoundError(kind string, id ...string) *ResourceNotFoundError {
	e := &ResourceNotFoundError{Kind: kind}
	if len(id) > 0 {
		e.ID = id[0]
	}
	return e
}

func NewWorkspaceNotFoundError(id string) *ResourceNotFoundError {
	return NewResourceNotFoundError("workspace", id)
}

func (e *ResourceNotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Kind)
	}
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// WarehouseError wraps a failure reported by the warehouse while running a source query.
type WarehouseError struct {
	err error
}

func NewWarehouseError(err error) *WarehouseError {
	return &WarehouseError{err: err}
}

func (e *WarehouseError) Error() string {
	return fmt.Sprintf("warehouse query failed: %s", e.err)
}

func (e *WarehouseError) Unwrap() error {
	return e.err
}

func IsWarehouseError(err error) bool {
	var e *WarehouseError
	return errors.As(err, &e)
}

// IsUserError reports whether err was caused by the request content rather than by the system.
func IsUserError(err error) bool {
	return IsParseError(err) ||
		IsNoTableLoadedError(err) ||
		IsNoColumnSelectedError(err) ||
		IsEmptyColumnValuesError(err) ||
		IsUnsupportedOperatorError(err) ||
		IsUnsupportedFormatError(err)
}
