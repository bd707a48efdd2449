package spanql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/spanql/internal/types"
)

// TryF creates a validated field reference, returning an error if invalid.
// Fields created without a schema carry no type information; use an instance
// created with NewFromDBML to get typed fields.
func TryF(name string) (types.Field, error) {
	if !isValidSQLIdentifier(name) {
		return types.Field{}, fmt.Errorf("invalid field name: %s", name)
	}
	return types.Field{Name: name}, nil
}

// F creates a validated field reference.
func F(name string) types.Field {
	f, err := TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// TryFT creates a validated field reference with a declared column type.
func TryFT(name string, colType types.ColumnType) (types.Field, error) {
	f, err := TryF(name)
	if err != nil {
		return types.Field{}, err
	}
	f.Type = colType
	return f, nil
}

// FT creates a validated field reference with a declared column type.
func FT(name string, colType types.ColumnType) types.Field {
	f, err := TryFT(name, colType)
	if err != nil {
		panic(err)
	}
	return f
}

// isValidTableAlias checks if a string is a valid single-letter table alias.
func isValidTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}

// isValidSQLIdentifier checks if a string is a valid SQL identifier.
// Only allows alphanumeric characters and underscores, must start with letter
// or underscore.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	// Must start with letter or underscore
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	// Rest must be alphanumeric or underscore
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	// Check for SQL injection patterns
	lower := strings.ToLower(s)

	suspiciousPatterns := []string{
		";", "--", "/*", "*/", "'", "\"", "`", "\\",
		" or ", " and ", "drop table", "delete from",
		"insert into", "update set", "select ",
		"union all", "union select",
	}

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(lower, pattern) {
			return false
		}
	}

	// Reject if it contains spaces
	if strings.Contains(s, " ") {
		return false
	}

	return true
}
