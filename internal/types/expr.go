package types

// AggregateFunc represents SQL aggregate functions.
// The set is the abstract one: dialects that lack a function reject it at
// compile time rather than dropping it from the type.
type AggregateFunc string

const (
	AggSum           AggregateFunc = "SUM"
	AggAvg           AggregateFunc = "AVG"
	AggMin           AggregateFunc = "MIN"
	AggMax           AggregateFunc = "MAX"
	AggCountField    AggregateFunc = "COUNT"
	AggCountDistinct AggregateFunc = "COUNT_DISTINCT"
	AggVariance      AggregateFunc = "VARIANCE"
	AggStdDev        AggregateFunc = "STDDEV"
)

// Operand is one side of a binary arithmetic expression: a field, a named
// parameter, or the literal NULL marker.
type Operand struct {
	Field *Field
	Param *Param
}

// IsNull reports whether the operand is the literal NULL marker.
func (o Operand) IsNull() bool {
	return o.Param != nil && o.Param.Null
}

// Arithmetic represents a binary arithmetic expression.
type Arithmetic struct {
	Left  Operand
	Op    Operator
	Right Operand
}

// TemporalOp selects between interval addition and subtraction.
type TemporalOp string

const (
	TemporalAdd TemporalOp = "add"
	TemporalSub TemporalOp = "sub"
)

// TemporalUnit is the granularity of an interval in temporal arithmetic.
type TemporalUnit string

const (
	UnitNanosecond  TemporalUnit = "NANOSECOND"
	UnitMicrosecond TemporalUnit = "MICROSECOND"
	UnitMillisecond TemporalUnit = "MILLISECOND"
	UnitSecond      TemporalUnit = "SECOND"
	UnitMinute      TemporalUnit = "MINUTE"
	UnitHour        TemporalUnit = "HOUR"
	UnitDay         TemporalUnit = "DAY"
	UnitWeek        TemporalUnit = "WEEK"
	UnitMonth       TemporalUnit = "MONTH"
	UnitQuarter     TemporalUnit = "QUARTER"
	UnitYear        TemporalUnit = "YEAR"
)

// TemporalArithmetic represents interval addition or subtraction on a
// date- or timestamp-typed field. The function family is not chosen here:
// the dialect resolves it from the field's declared type.
type TemporalArithmetic struct {
	Field  Field
	Op     TemporalOp
	Amount Param
	Unit   TemporalUnit
}

// FieldExpression represents a field with an optional aggregate function,
// arithmetic expression, or temporal arithmetic, for use in SELECT lists.
type FieldExpression struct {
	Field     Field
	Aggregate AggregateFunc
	Arith     *Arithmetic
	Temporal  *TemporalArithmetic
	Alias     string
}

// ExprAssignment assigns the result of an expression to a column in an
// UPDATE statement.
type ExprAssignment struct {
	Field    Field
	Arith    *Arithmetic
	Temporal *TemporalArithmetic
}
