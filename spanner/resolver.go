package spanner

import (
	"fmt"

	"github.com/zoobzio/spanql/internal/render"
	"github.com/zoobzio/spanql/internal/types"
)

// sqlTypeName maps a logical column type to its GoogleSQL name. The bool
// result is false for types the dialect cannot express.
func sqlTypeName(t types.ColumnType) (string, bool) {
	switch t {
	case types.TypeInt:
		return "INT64", true
	case types.TypeFloat:
		return "FLOAT64", true
	case types.TypeString:
		return "STRING", true
	case types.TypeBool:
		return "BOOL", true
	case types.TypeBytes:
		return "BYTES", true
	case types.TypeTimestamp:
		return "TIMESTAMP", true
	case types.TypeDate:
		return "DATE", true
	default:
		return "", false
	}
}

// dateUnits are the interval units DATE_ADD/DATE_SUB accept.
var dateUnits = map[types.TemporalUnit]bool{
	types.UnitDay:     true,
	types.UnitWeek:    true,
	types.UnitMonth:   true,
	types.UnitQuarter: true,
	types.UnitYear:    true,
}

// timestampUnits are the interval units TIMESTAMP_ADD/TIMESTAMP_SUB accept.
var timestampUnits = map[types.TemporalUnit]bool{
	types.UnitNanosecond:  true,
	types.UnitMicrosecond: true,
	types.UnitMillisecond: true,
	types.UnitSecond:      true,
	types.UnitMinute:      true,
	types.UnitHour:        true,
	types.UnitDay:         true,
}

// resolveTemporalFunction picks the GoogleSQL function for interval
// arithmetic from the field's declared type. DATE and TIMESTAMP have
// disjoint function families, so an untyped field is rejected rather than
// guessed at.
func resolveTemporalFunction(expr *types.TemporalArithmetic) (string, error) {
	var family string
	var validUnits map[types.TemporalUnit]bool

	switch expr.Field.Type {
	case types.TypeDate:
		family = "DATE"
		validUnits = dateUnits
	case types.TypeTimestamp:
		family = "TIMESTAMP"
		validUnits = timestampUnits
	default:
		return "", render.NewUnsupportedCombinationError(dialectName,
			"interval arithmetic",
			fmt.Sprintf("column %s of undeclared type", expr.Field.Name),
			"resolve the field through a schema so DATE_ADD or TIMESTAMP_ADD can be chosen")
	}

	if !validUnits[expr.Unit] {
		return "", render.NewUnsupportedCombinationError(dialectName,
			fmt.Sprintf("INTERVAL unit %s", expr.Unit),
			fmt.Sprintf("%s column %s", family, expr.Field.Name))
	}

	if expr.Op == types.TemporalSub {
		return family + "_SUB", nil
	}
	return family + "_ADD", nil
}

// arithmeticResultType computes the result type of a binary arithmetic
// expression, as far as the operand types allow. Division always yields
// FLOAT64 in GoogleSQL regardless of operand types. Parameters carry no
// type, so expressions over parameters resolve to TypeUnknown and pass.
func arithmeticResultType(expr *types.Arithmetic) types.ColumnType {
	if expr.Op == types.Div {
		return types.TypeFloat
	}

	left := operandType(expr.Left)
	right := operandType(expr.Right)
	if left == types.TypeFloat || right == types.TypeFloat {
		return types.TypeFloat
	}
	if left == types.TypeInt && right == types.TypeInt {
		return types.TypeInt
	}
	return types.TypeUnknown
}

func operandType(o types.Operand) types.ColumnType {
	if o.Field != nil {
		return o.Field.Type
	}
	return types.TypeUnknown
}

// validateArithmetic rejects expressions that can never evaluate to a usable
// value. The literal NULL is the only literal the tree can carry, and
// arithmetic on NULL is always NULL, so a NULL operand is reported as a type
// mismatch against the target column before any SQL is produced.
func validateArithmetic(expr *types.Arithmetic, targetColumn string) error {
	if !expr.Op.IsArithmetic() {
		return fmt.Errorf("operator %s is not arithmetic", expr.Op)
	}
	if expr.Left.IsNull() || expr.Right.IsNull() {
		return render.NewTypeMismatchError(dialectName, targetColumn,
			"a non-NULL operand", "NULL",
			"arithmetic on NULL always yields NULL; use IS NULL instead")
	}
	return nil
}

// validateAssignment checks that an arithmetic expression can be assigned or
// compared to the target field. GoogleSQL does not coerce FLOAT64 to INT64.
func validateAssignment(target types.Field, expr *types.Arithmetic) error {
	if err := validateArithmetic(expr, target.Name); err != nil {
		return err
	}

	result := arithmeticResultType(expr)
	if target.Type == types.TypeInt && result == types.TypeFloat {
		hint := "cast the expression or use a FLOAT64 column"
		if expr.Op == types.Div {
			hint = "division always returns FLOAT64"
		}
		return render.NewTypeMismatchError(dialectName, target.Name,
			"INT64", "FLOAT64", hint)
	}
	return nil
}
