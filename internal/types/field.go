package types

// ColumnType is the logical type of a column, independent of the SQL type
// name a dialect maps it to.
type ColumnType string

const (
	TypeUnknown   ColumnType = ""
	TypeInt       ColumnType = "int"
	TypeFloat     ColumnType = "float"
	TypeString    ColumnType = "string"
	TypeBool      ColumnType = "bool"
	TypeBytes     ColumnType = "bytes"
	TypeTimestamp ColumnType = "timestamp"
	TypeDate      ColumnType = "date"

	// TypeDecimal exists in the abstract type set so schema sources that
	// declare arbitrary-precision columns can be represented and rejected
	// by dialects that have no such type.
	TypeDecimal ColumnType = "decimal"
)

// Field represents a validated field reference.
// Type is populated when the field was resolved against a schema; fields
// built without a schema carry TypeUnknown.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
type Field struct {
	Name  string     // The field name (required)
	Table string     // Optional table/alias prefix
	Type  ColumnType // Declared column type, if known
}

// GetName returns the field name.
func (f Field) GetName() string {
	return f.Name
}

// GetTable returns the table/alias prefix.
func (f Field) GetTable() string {
	return f.Table
}

// WithTable returns a copy of the field with a table/alias prefix.
func (f Field) WithTable(tableOrAlias string) Field {
	f.Table = tableOrAlias
	return f
}
