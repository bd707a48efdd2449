package types

// Condition represents a simple comparison between a field and a parameter.
// Values are always parameters (or the NULL marker), never literals.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
type Condition struct {
	Field    Field
	Operator Operator
	Value    Param
}

// ConditionItem represents either a single condition or a group of conditions.
type ConditionItem interface {
	IsConditionItem()
}

// LogicOperator represents how conditions are combined.
type LogicOperator string

const (
	AND LogicOperator = "AND"
	OR  LogicOperator = "OR"
)

// ConditionGroup represents grouped conditions with AND/OR logic.
type ConditionGroup struct {
	Logic      LogicOperator
	Conditions []ConditionItem
}

// FieldComparison represents a comparison between two fields.
type FieldComparison struct {
	LeftField  Field
	Operator   Operator
	RightField Field
}

// ExpressionCondition compares a field against the result of a binary
// arithmetic expression, e.g. price = cost + @markup.
type ExpressionCondition struct {
	Field    Field
	Operator Operator
	Expr     Arithmetic
}

// SubqueryCondition represents a condition that uses a subquery.
type SubqueryCondition struct {
	Subquery Subquery
	Field    *Field
	Operator Operator
}

// Subquery represents a nested query.
type Subquery struct {
	AST *AST
}

// MaxSubqueryDepth bounds subquery nesting.
const MaxSubqueryDepth = 3

func (Condition) IsConditionItem()           {}
func (ConditionGroup) IsConditionItem()      {}
func (FieldComparison) IsConditionItem()     {}
func (ExpressionCondition) IsConditionItem() {}
func (SubqueryCondition) IsConditionItem()   {}
