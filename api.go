// Package spanql provides a type-safe query and schema compiler targeting
// Cloud Spanner's GoogleSQL dialect.
//
// The package generates an Abstract Syntax Tree (AST) from fluent builder
// calls, then compiles it to SQL with named parameters (@name) compatible
// with the Spanner client libraries and database/sql named arguments.
// Schema validation is available through DBML integration.
//
// # Basic Usage
//
// Queries can be built directly using the package-level builder functions:
//
//	import "github.com/zoobzio/spanql/spanner"
//
//	query := spanql.Select(table).
//		Fields(field1, field2).
//		Where(condition).
//		OrderBy(field1, spanql.ASC).
//		Limit(10)
//
//	result, err := query.Render(spanner.New())
//	// result.SQL: SELECT `field1`, `field2` FROM `table` WHERE ... ORDER BY `field1` ASC LIMIT 10
//	// result.RequiredParams: []string{"param_name", ...}
//
// # Compile-Time Rejection
//
// The dialect has no ILIKE, no % operator, no VARIANCE/STDDEV, no SELECT FOR
// UPDATE, and a restricted DDL surface. The compiler rejects these before any
// SQL is produced, returning structured errors that carry the feature name
// and a hint about the supported substitute.
//
// # Schema-Validated Usage
//
// For compile-time safety, create a SpanQL instance from a DBML schema:
//
//	instance, err := spanql.NewFromDBML(project)
//	if err != nil {
//		return err
//	}
//
//	// These panic if the field/table doesn't exist in the schema
//	users := instance.T("users")
//	email := instance.F("email")
//
// Fields resolved through an instance carry their declared column type,
// which the compiler uses to pick temporal function families and to catch
// assignment type mismatches.
//
// # Output Format
//
// All queries use named parameters (`@param_name`). Identifiers are quoted
// with backticks to handle reserved words.
package spanql

import (
	"github.com/zoobzio/spanql/internal/render"
	"github.com/zoobzio/spanql/internal/types"
)

// AST represents the abstract syntax tree for a query.
// This is re-exported from internal/types for use by consumers.
type AST = types.AST

// QueryResult contains the compiled SQL and required parameters.
type QueryResult = types.QueryResult

// Operation represents the type of query operation.
type Operation = types.Operation

// Re-export operation constants for public API.
const (
	OpSelect = types.OpSelect
	OpInsert = types.OpInsert
	OpUpdate = types.OpUpdate
	OpDelete = types.OpDelete
	OpCount  = types.OpCount
)

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// Operator represents query comparison and arithmetic operators.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	// Basic comparison operators.
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE

	// Extended operators.
	IN        = types.IN
	NotIn     = types.NotIn
	LIKE      = types.LIKE
	NotLike   = types.NotLike
	ILIKE     = types.ILIKE
	NotILike  = types.NotILike
	IsNull    = types.IsNull
	IsNotNull = types.IsNotNull
	EXISTS    = types.EXISTS
	NotExists = types.NotExists

	// Arithmetic operators, used inside value expressions.
	Add      = types.Add
	Subtract = types.Sub
	Mul      = types.Mul
	Div = types.Div
	Mod = types.Mod
)

// Field represents a validated field reference.
type Field = types.Field

// Table represents a validated table reference.
type Table = types.Table

// Param represents a named parameter reference.
type Param = types.Param

// ConditionItem represents either a single condition or a group of conditions.
type ConditionItem = types.ConditionItem

// Condition represents a simple field/operator/parameter comparison.
type Condition = types.Condition

// ConditionGroup represents grouped conditions with AND/OR logic.
type ConditionGroup = types.ConditionGroup

// FieldComparison represents a comparison between two fields.
type FieldComparison = types.FieldComparison

// ExpressionCondition compares a field against an arithmetic expression.
type ExpressionCondition = types.ExpressionCondition

// SubqueryCondition represents a condition that uses a subquery.
type SubqueryCondition = types.SubqueryCondition

// Subquery represents a nested query.
type Subquery = types.Subquery

// AggregateFunc represents SQL aggregate functions.
type AggregateFunc = types.AggregateFunc

// Re-export aggregate function constants for public API.
const (
	AggSum           = types.AggSum
	AggAvg           = types.AggAvg
	AggMin           = types.AggMin
	AggMax           = types.AggMax
	AggCountField    = types.AggCountField
	AggCountDistinct = types.AggCountDistinct
	AggVariance      = types.AggVariance
	AggStdDev        = types.AggStdDev
)

// Operand is one side of a binary arithmetic expression.
type Operand = types.Operand

// Arithmetic represents a binary arithmetic expression.
type Arithmetic = types.Arithmetic

// FieldExpression represents a field with an optional aggregate, arithmetic,
// or temporal expression, for use in SELECT lists.
type FieldExpression = types.FieldExpression

// TemporalArithmetic represents interval addition or subtraction on a
// date- or timestamp-typed field.
type TemporalArithmetic = types.TemporalArithmetic

// TemporalUnit is the granularity of an interval in temporal arithmetic.
type TemporalUnit = types.TemporalUnit

// Re-export temporal unit constants for public API.
const (
	UnitNanosecond  = types.UnitNanosecond
	UnitMicrosecond = types.UnitMicrosecond
	UnitMillisecond = types.UnitMillisecond
	UnitSecond      = types.UnitSecond
	UnitMinute      = types.UnitMinute
	UnitHour        = types.UnitHour
	UnitDay         = types.UnitDay
	UnitWeek        = types.UnitWeek
	UnitMonth       = types.UnitMonth
	UnitQuarter     = types.UnitQuarter
	UnitYear        = types.UnitYear
)

// ColumnType is the logical type of a column, independent of the SQL type
// name a dialect maps it to.
type ColumnType = types.ColumnType

// Re-export column type constants for public API.
const (
	TypeUnknown   = types.TypeUnknown
	TypeInt       = types.TypeInt
	TypeFloat     = types.TypeFloat
	TypeString    = types.TypeString
	TypeBool      = types.TypeBool
	TypeBytes     = types.TypeBytes
	TypeTimestamp = types.TypeTimestamp
	TypeDate      = types.TypeDate
	TypeDecimal   = types.TypeDecimal
)

// Schema operation types, re-exported for schema sources.
type (
	SchemaOp        = types.SchemaOp
	ColumnSpec      = types.ColumnSpec
	Constraint      = types.Constraint
	ConstraintKind  = types.ConstraintKind
	CreateTable     = types.CreateTable
	DropTable       = types.DropTable
	AddColumn       = types.AddColumn
	DropColumn      = types.DropColumn
	AlterColumnType = types.AlterColumnType
	RenameTable     = types.RenameTable
	RenameColumn    = types.RenameColumn
	AddConstraint   = types.AddConstraint
	DropConstraint  = types.DropConstraint
	CreateIndex     = types.CreateIndex
	DropIndex       = types.DropIndex
)

// Re-export constraint kind constants for public API.
const (
	ConstraintCheck      = types.ConstraintCheck
	ConstraintForeignKey = types.ConstraintForeignKey
	ConstraintUnique     = types.ConstraintUnique
	ConstraintPrimaryKey = types.ConstraintPrimaryKey
)

// Structured rejection errors, re-exported so callers can match them with
// errors.As without importing internal packages.
type (
	UnsupportedFeatureError     = render.UnsupportedFeatureError
	UnsupportedMigrationError   = render.UnsupportedMigrationError
	UnsupportedTypeError        = render.UnsupportedTypeError
	TypeMismatchError           = render.TypeMismatchError
	UnsupportedCombinationError = render.UnsupportedCombinationError
)
