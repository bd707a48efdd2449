package spanql

import (
	"fmt"

	"github.com/zoobzio/spanql/internal/types"
)

// Helper functions for creating field expressions.

// Sum creates a SUM aggregate expression.
func Sum(field types.Field) types.FieldExpression {
	return types.FieldExpression{
		Field:     field,
		Aggregate: types.AggSum,
	}
}

// Avg creates an AVG aggregate expression.
func Avg(field types.Field) types.FieldExpression {
	return types.FieldExpression{
		Field:     field,
		Aggregate: types.AggAvg,
	}
}

// Min creates a MIN aggregate expression.
func Min(field types.Field) types.FieldExpression {
	return types.FieldExpression{
		Field:     field,
		Aggregate: types.AggMin,
	}
}

// Max creates a MAX aggregate expression.
func Max(field types.Field) types.FieldExpression {
	return types.FieldExpression{
		Field:     field,
		Aggregate: types.AggMax,
	}
}

// CountField creates a COUNT aggregate expression for a specific field.
func CountField(field types.Field) types.FieldExpression {
	return types.FieldExpression{
		Field:     field,
		Aggregate: types.AggCountField,
	}
}

// CountDistinct creates a COUNT(DISTINCT) aggregate expression.
func CountDistinct(field types.Field) types.FieldExpression {
	return types.FieldExpression{
		Field:     field,
		Aggregate: types.AggCountDistinct,
	}
}

// Variance creates a VARIANCE aggregate expression. Dialects without the
// function reject it at compile time.
func Variance(field types.Field) types.FieldExpression {
	return types.FieldExpression{
		Field:     field,
		Aggregate: types.AggVariance,
	}
}

// StdDev creates a STDDEV aggregate expression. Dialects without the
// function reject it at compile time.
func StdDev(field types.Field) types.FieldExpression {
	return types.FieldExpression{
		Field:     field,
		Aggregate: types.AggStdDev,
	}
}

// CF creates a field comparison condition.
func CF(left types.Field, op types.Operator, right types.Field) types.FieldComparison {
	return types.FieldComparison{
		LeftField:  left,
		Operator:   op,
		RightField: right,
	}
}

// Fld wraps a field as an arithmetic operand.
func Fld(f types.Field) types.Operand {
	return types.Operand{Field: &f}
}

// Val wraps a parameter as an arithmetic operand.
func Val(p types.Param) types.Operand {
	return types.Operand{Param: &p}
}

// NullVal is the literal NULL arithmetic operand. Arithmetic on NULL never
// compiles; the dialect rejects it with a type mismatch.
func NullVal() types.Operand {
	p := types.NullParam()
	return types.Operand{Param: &p}
}

// Arith creates a binary arithmetic expression. The operator must be one of
// +, -, *, /, %.
func Arith(left types.Operand, op types.Operator, right types.Operand) types.Arithmetic {
	if !op.IsArithmetic() {
		panic(fmt.Errorf("operator %s is not arithmetic", op))
	}
	return types.Arithmetic{
		Left:  left,
		Op:    op,
		Right: right,
	}
}

// CE creates a condition comparing a field against an arithmetic expression,
// e.g. price = cost + @markup.
func CE(field types.Field, op types.Operator, expr types.Arithmetic) types.ExpressionCondition {
	if op.IsArithmetic() {
		panic(fmt.Errorf("operator %s is arithmetic, not a comparison", op))
	}
	return types.ExpressionCondition{
		Field:    field,
		Operator: op,
		Expr:     expr,
	}
}

// Calc wraps an arithmetic expression for use in a SELECT list.
func Calc(expr types.Arithmetic) types.FieldExpression {
	return types.FieldExpression{Arith: &expr}
}

// AddInterval creates interval addition on a date- or timestamp-typed field.
// The function family (DATE_ADD vs TIMESTAMP_ADD) is chosen by the dialect
// from the field's declared type.
func AddInterval(field types.Field, amount types.Param, unit types.TemporalUnit) types.TemporalArithmetic {
	return types.TemporalArithmetic{
		Field:  field,
		Op:     types.TemporalAdd,
		Amount: amount,
		Unit:   unit,
	}
}

// SubInterval creates interval subtraction on a date- or timestamp-typed field.
func SubInterval(field types.Field, amount types.Param, unit types.TemporalUnit) types.TemporalArithmetic {
	return types.TemporalArithmetic{
		Field:  field,
		Op:     types.TemporalSub,
		Amount: amount,
		Unit:   unit,
	}
}

// Temporal wraps temporal arithmetic for use in a SELECT list.
func Temporal(expr types.TemporalArithmetic) types.FieldExpression {
	return types.FieldExpression{Field: expr.Field, Temporal: &expr}
}

// CSub creates a subquery condition with a field.
func CSub(field types.Field, op types.Operator, subquery types.Subquery) types.SubqueryCondition {
	switch op {
	case types.IN, types.NotIn:
		// Valid operators that require a field
	default:
		panic(fmt.Errorf("operator %s cannot be used with CSub - use CSubExists for EXISTS/NOT EXISTS", op))
	}

	return types.SubqueryCondition{
		Field:    &field,
		Operator: op,
		Subquery: subquery,
	}
}

// CSubExists creates an EXISTS/NOT EXISTS subquery condition.
func CSubExists(op types.Operator, subquery types.Subquery) types.SubqueryCondition {
	switch op {
	case types.EXISTS, types.NotExists:
		// Valid operators
	default:
		panic(fmt.Errorf("CSubExists only accepts EXISTS or NOT EXISTS, got %s", op))
	}

	return types.SubqueryCondition{
		Field:    nil,
		Operator: op,
		Subquery: subquery,
	}
}

// Sub creates a subquery from a builder.
func Sub(builder *Builder) types.Subquery {
	ast, err := builder.Build()
	if err != nil {
		panic(fmt.Errorf("failed to build subquery: %w", err))
	}
	return types.Subquery{AST: ast}
}

// As adds an alias to a field expression.
func As(expr types.FieldExpression, alias string) types.FieldExpression {
	if !isValidSQLIdentifier(alias) {
		panic(fmt.Errorf("invalid alias '%s': must be alphanumeric/underscore, start with letter/underscore, and contain no SQL keywords", alias))
	}
	expr.Alias = alias
	return expr
}
