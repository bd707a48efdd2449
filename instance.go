package spanql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/spanql/internal/types"
)

// SpanQL represents an instance of the query builder with a specific DBML schema.
// Fields resolved through an instance carry their declared column type, which
// dialect renderers use for temporal function selection and assignment checks.
type SpanQL struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables     map[string]*dbml.Table
	fields     map[string]map[string]*dbml.Column // table -> field -> column
	tableNames []string                           // sorted, for deterministic field lookup
}

// NewFromDBML creates a new SpanQL instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*SpanQL, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	a := &SpanQL{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	// Build indexes for fast validation
	for _, table := range project.Tables {
		a.tables[table.Name] = table
		a.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			a.fields[table.Name][col.Name] = col
		}
		a.tableNames = append(a.tableNames, table.Name)
	}
	sort.Strings(a.tableNames)

	return a, nil
}

// mapColumnType converts a DBML column type to the logical type set.
// Unrecognized types map to TypeUnknown; renderers then refuse operations
// that need a type, rather than guessing one.
func mapColumnType(dbmlType string) types.ColumnType {
	base := strings.ToLower(dbmlType)
	if idx := strings.IndexByte(base, '('); idx != -1 {
		base = base[:idx]
	}
	switch base {
	case "int", "integer", "bigint", "smallint", "serial", "bigserial":
		return types.TypeInt
	case "float", "double", "real", "float8", "double_precision":
		return types.TypeFloat
	case "varchar", "char", "text", "string":
		return types.TypeString
	case "bool", "boolean":
		return types.TypeBool
	case "bytes", "bytea", "blob", "binary", "varbinary":
		return types.TypeBytes
	case "timestamp", "timestamptz", "datetime":
		return types.TypeTimestamp
	case "date":
		return types.TypeDate
	case "numeric", "decimal":
		return types.TypeDecimal
	default:
		return types.TypeUnknown
	}
}

// validateTable checks if a table exists in the schema.
func (a *SpanQL) validateTable(name string) error {
	if _, ok := a.tables[name]; !ok {
		return fmt.Errorf("table '%s' not found in schema", name)
	}
	return nil
}

// lookupColumn finds a column by field name across all tables. Tables are
// scanned in sorted name order so the same schema always resolves a field
// the same way.
func (a *SpanQL) lookupColumn(fieldName string) (*dbml.Column, bool) {
	for _, tableName := range a.tableNames {
		if col, ok := a.fields[tableName][fieldName]; ok {
			return col, true
		}
	}
	return nil, false
}

// validateTableOrAlias validates both table names and aliases.
func (a *SpanQL) validateTableOrAlias(tableOrAlias string) error {
	if isValidTableAlias(tableOrAlias) {
		return nil
	}
	if err := a.validateTable(tableOrAlias); err == nil {
		return nil
	}
	return fmt.Errorf("WithTable requires single-letter alias (a-z) or valid table name, got: %s", tableOrAlias)
}

// TryF creates a validated field reference, returning an error if invalid.
// The field carries the column type declared in the schema.
func (a *SpanQL) TryF(name string) (types.Field, error) {
	col, ok := a.lookupColumn(name)
	if !ok {
		return types.Field{}, fmt.Errorf("invalid field: field '%s' not found in schema", name)
	}
	return types.Field{Name: name, Type: mapColumnType(col.Type)}, nil
}

// F creates a validated field reference.
func (a *SpanQL) F(name string) types.Field {
	f, err := a.TryF(name)
	if err != nil {
		panic(err)
	}
	return f
}

// TryFT creates a validated field reference scoped to one table, for schemas
// where the same field name appears in several tables with different types.
func (a *SpanQL) TryFT(tableName, fieldName string) (types.Field, error) {
	if err := a.validateTable(tableName); err != nil {
		return types.Field{}, fmt.Errorf("invalid field: %w", err)
	}
	col, ok := a.fields[tableName][fieldName]
	if !ok {
		return types.Field{}, fmt.Errorf("invalid field: field '%s' not found in table '%s'", fieldName, tableName)
	}
	return types.Field{Name: fieldName, Type: mapColumnType(col.Type)}, nil
}

// FT creates a validated field reference scoped to one table.
func (a *SpanQL) FT(tableName, fieldName string) types.Field {
	f, err := a.TryFT(tableName, fieldName)
	if err != nil {
		panic(err)
	}
	return f
}

// TryT creates a validated table reference, returning an error if invalid.
func (a *SpanQL) TryT(name string, alias ...string) (types.Table, error) {
	if err := a.validateTable(name); err != nil {
		return types.Table{}, fmt.Errorf("invalid table: %w", err)
	}

	var tableAlias string
	if len(alias) > 0 {
		if len(alias) > 1 {
			return types.Table{}, fmt.Errorf("only one alias allowed")
		}
		tableAlias = alias[0]
		if !isValidTableAlias(tableAlias) {
			return types.Table{}, fmt.Errorf("alias must be single lowercase letter (a-z), got: %s", tableAlias)
		}
	}

	return types.Table{Name: name, Alias: tableAlias}, nil
}

// T creates a validated table reference.
func (a *SpanQL) T(name string, alias ...string) types.Table {
	t, err := a.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryP creates a validated parameter reference, returning an error if invalid.
func (*SpanQL) TryP(name string) (types.Param, error) {
	if !isValidSQLIdentifier(name) {
		return types.Param{}, fmt.Errorf("invalid parameter name: %s", name)
	}
	return types.Param{Name: name}, nil
}

// P creates a validated parameter reference.
func (a *SpanQL) P(name string) types.Param {
	p, err := a.TryP(name)
	if err != nil {
		panic(err)
	}
	return p
}

// TryC creates a validated condition, returning an error if invalid.
func (a *SpanQL) TryC(field types.Field, op types.Operator, param types.Param) (types.Condition, error) {
	if _, ok := a.lookupColumn(field.Name); !ok {
		return types.Condition{}, fmt.Errorf("field '%s' not found in schema", field.Name)
	}
	return types.Condition{
		Field:    field,
		Operator: op,
		Value:    param,
	}, nil
}

// C creates a validated condition.
func (a *SpanQL) C(field types.Field, op types.Operator, param types.Param) types.Condition {
	c, err := a.TryC(field, op, param)
	if err != nil {
		panic(err)
	}
	return c
}

// TryNull creates a NULL condition, returning an error if invalid.
func (a *SpanQL) TryNull(field types.Field) (types.Condition, error) {
	if _, ok := a.lookupColumn(field.Name); !ok {
		return types.Condition{}, fmt.Errorf("field '%s' not found in schema", field.Name)
	}
	return types.Condition{
		Field:    field,
		Operator: types.IsNull,
	}, nil
}

// Null creates a NULL condition.
func (a *SpanQL) Null(field types.Field) types.Condition {
	c, err := a.TryNull(field)
	if err != nil {
		panic(err)
	}
	return c
}

// TryNotNull creates a NOT NULL condition, returning an error if invalid.
func (a *SpanQL) TryNotNull(field types.Field) (types.Condition, error) {
	if _, ok := a.lookupColumn(field.Name); !ok {
		return types.Condition{}, fmt.Errorf("field '%s' not found in schema", field.Name)
	}
	return types.Condition{
		Field:    field,
		Operator: types.IsNotNull,
	}, nil
}

// NotNull creates a NOT NULL condition.
func (a *SpanQL) NotNull(field types.Field) types.Condition {
	c, err := a.TryNotNull(field)
	if err != nil {
		panic(err)
	}
	return c
}

// TryAnd creates an AND condition group, returning an error if invalid.
func (*SpanQL) TryAnd(conditions ...types.ConditionItem) (types.ConditionGroup, error) {
	if len(conditions) == 0 {
		return types.ConditionGroup{}, fmt.Errorf("AND requires at least one condition")
	}
	return types.ConditionGroup{
		Logic:      types.AND,
		Conditions: conditions,
	}, nil
}

// And creates an AND condition group.
func (a *SpanQL) And(conditions ...types.ConditionItem) types.ConditionGroup {
	g, err := a.TryAnd(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

// TryOr creates an OR condition group, returning an error if invalid.
func (*SpanQL) TryOr(conditions ...types.ConditionItem) (types.ConditionGroup, error) {
	if len(conditions) == 0 {
		return types.ConditionGroup{}, fmt.Errorf("OR requires at least one condition")
	}
	return types.ConditionGroup{
		Logic:      types.OR,
		Conditions: conditions,
	}, nil
}

// Or creates an OR condition group.
func (a *SpanQL) Or(conditions ...types.ConditionItem) types.ConditionGroup {
	g, err := a.TryOr(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

// WithTable creates a new Field with a table/alias prefix, validated against the schema.
func (a *SpanQL) WithTable(field types.Field, tableOrAlias string) types.Field {
	f, err := a.TryWithTable(field, tableOrAlias)
	if err != nil {
		panic(err)
	}
	return f
}

// TryWithTable creates a new Field with a table/alias prefix, returning an error if invalid.
func (a *SpanQL) TryWithTable(field types.Field, tableOrAlias string) (types.Field, error) {
	if err := a.validateTableOrAlias(tableOrAlias); err != nil {
		return types.Field{}, err
	}
	return types.Field{
		Name:  field.Name,
		Table: tableOrAlias,
		Type:  field.Type,
	}, nil
}

// Project returns the underlying DBML project.
func (a *SpanQL) Project() *dbml.Project {
	return a.project
}
