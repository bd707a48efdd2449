package render

import (
	"errors"
	"testing"
)

func TestUnsupportedFeatureError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UnsupportedFeatureError
		expected string
	}{
		{
			name: "without hint",
			err: UnsupportedFeatureError{
				Feature: "SELECT ... FOR UPDATE",
				Dialect: "Spanner",
			},
			expected: "Spanner: SELECT ... FOR UPDATE is not supported",
		},
		{
			name: "with hint",
			err: UnsupportedFeatureError{
				Feature: "ILIKE",
				Dialect: "Spanner",
				Hint:    "use REGEXP_CONTAINS with a case-insensitive pattern",
			},
			expected: "Spanner: ILIKE is not supported: use REGEXP_CONTAINS with a case-insensitive pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNewUnsupportedFeatureError(t *testing.T) {
	err := NewUnsupportedFeatureError("Spanner", "ORDER BY RANDOM")
	var ufErr UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatal("expected UnsupportedFeatureError")
	}
	if ufErr.Dialect != "Spanner" {
		t.Errorf("Dialect = %q, want %q", ufErr.Dialect, "Spanner")
	}
	if ufErr.Feature != "ORDER BY RANDOM" {
		t.Errorf("Feature = %q, want %q", ufErr.Feature, "ORDER BY RANDOM")
	}
}

func TestUnsupportedMigrationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UnsupportedMigrationError
		expected string
	}{
		{
			name: "with table and hint",
			err: UnsupportedMigrationError{
				Operation: "RENAME COLUMN",
				Dialect:   "Spanner",
				Table:     "users",
				Hint:      "add a new column and backfill",
			},
			expected: "Spanner: cannot RENAME COLUMN on table users: add a new column and backfill",
		},
		{
			name: "bare",
			err: UnsupportedMigrationError{
				Operation: "ALTER PRIMARY KEY",
				Dialect:   "Spanner",
			},
			expected: "Spanner: cannot ALTER PRIMARY KEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUnsupportedTypeError_Error(t *testing.T) {
	err := UnsupportedTypeError{
		Type:    "decimal",
		Dialect: "Spanner",
		Column:  "price",
		Hint:    "store as FLOAT64 or STRING",
	}
	expected := "Spanner: type decimal (column price) has no dialect mapping: store as FLOAT64 or STRING"
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestTypeMismatchError_Error(t *testing.T) {
	err := TypeMismatchError{
		Dialect:  "Spanner",
		Column:   "quantity",
		Expected: "INT64",
		Actual:   "FLOAT64",
		Hint:     "division always returns FLOAT64",
	}
	expected := "Spanner: expression yields FLOAT64 but column quantity requires INT64: division always returns FLOAT64"
	if got := err.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestUnsupportedCombinationError_Error(t *testing.T) {
	err := NewUnsupportedCombinationError("Spanner", "interval arithmetic", "a column of unknown type")
	var ucErr UnsupportedCombinationError
	if !errors.As(err, &ucErr) {
		t.Fatal("expected UnsupportedCombinationError")
	}
	expected := "Spanner: interval arithmetic cannot be applied to a column of unknown type"
	if got := ucErr.Error(); got != expected {
		t.Errorf("Error() = %q, want %q", got, expected)
	}
}

func TestCatalog(t *testing.T) {
	c := Catalog{
		FeatureILike:         {Supported: false, Substitute: "REGEXP_CONTAINS"},
		FeatureOrderByRandom: {Supported: false},
	}

	if c.Supports(FeatureILike) {
		t.Error("ILIKE should be unsupported")
	}
	if got := c.SubstituteFor(FeatureILike); got != "REGEXP_CONTAINS" {
		t.Errorf("SubstituteFor(ILIKE) = %q, want REGEXP_CONTAINS", got)
	}
	if got := c.SubstituteFor(FeatureOrderByRandom); got != "" {
		t.Errorf("SubstituteFor(ORDER BY RANDOM) = %q, want empty", got)
	}
	// Features absent from the catalog are supported.
	if !c.Supports(FeatureRightJoin) {
		t.Error("uncatalogued feature should be supported")
	}
}
