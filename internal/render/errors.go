package render

import "fmt"

// UnsupportedFeatureError indicates a query feature not supported by the
// dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// UnsupportedMigrationError indicates a schema operation the dialect cannot
// perform, permanently. It is distinct from UnsupportedFeatureError so that
// callers can tell "this query needs rewriting" apart from "this schema
// change needs a table rebuild".
type UnsupportedMigrationError struct {
	Operation string
	Dialect   string
	Table     string
	Hint      string
}

func (e UnsupportedMigrationError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s", e.Dialect, e.Operation)
	if e.Table != "" {
		msg += fmt.Sprintf(" on table %s", e.Table)
	}
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// NewUnsupportedMigrationError creates a new unsupported migration error.
func NewUnsupportedMigrationError(dialect, operation, table string, hint ...string) error {
	err := UnsupportedMigrationError{Operation: operation, Dialect: dialect, Table: table}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// UnsupportedTypeError indicates a logical column type with no mapping in
// the dialect's type system.
type UnsupportedTypeError struct {
	Type    string
	Dialect string
	Column  string
	Hint    string
}

func (e UnsupportedTypeError) Error() string {
	msg := fmt.Sprintf("%s: type %s", e.Dialect, e.Type)
	if e.Column != "" {
		msg += fmt.Sprintf(" (column %s)", e.Column)
	}
	msg += " has no dialect mapping"
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// NewUnsupportedTypeError creates a new unsupported type error.
func NewUnsupportedTypeError(dialect, typeName, column string, hint ...string) error {
	err := UnsupportedTypeError{Type: typeName, Dialect: dialect, Column: column}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// TypeMismatchError indicates an expression whose result type cannot be
// assigned or compared to the target column under the dialect's rules.
type TypeMismatchError struct {
	Dialect  string
	Column   string
	Expected string
	Actual   string
	Hint     string
}

func (e TypeMismatchError) Error() string {
	msg := fmt.Sprintf("%s: expression yields %s but column %s requires %s", e.Dialect, e.Actual, e.Column, e.Expected)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// NewTypeMismatchError creates a new type mismatch error.
func NewTypeMismatchError(dialect, column, expected, actual string, hint ...string) error {
	err := TypeMismatchError{Dialect: dialect, Column: column, Expected: expected, Actual: actual}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// UnsupportedCombinationError indicates operands that are individually valid
// but cannot be combined, such as interval arithmetic on a column whose type
// does not select a function family.
type UnsupportedCombinationError struct {
	Dialect   string
	Operation string
	Detail    string
	Hint      string
}

func (e UnsupportedCombinationError) Error() string {
	msg := fmt.Sprintf("%s: %s cannot be applied to %s", e.Dialect, e.Operation, e.Detail)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}

// NewUnsupportedCombinationError creates a new unsupported combination error.
func NewUnsupportedCombinationError(dialect, operation, detail string, hint ...string) error {
	err := UnsupportedCombinationError{Dialect: dialect, Operation: operation, Detail: detail}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}
