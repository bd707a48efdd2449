package types

// Operator represents query comparison and arithmetic operators.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	IN        Operator = "IN"
	NotIn     Operator = "NOT IN"
	LIKE      Operator = "LIKE"
	NotLike   Operator = "NOT LIKE"
	ILIKE     Operator = "ILIKE"
	NotILike  Operator = "NOT ILIKE"
	IsNull    Operator = "IS NULL"
	IsNotNull Operator = "IS NOT NULL"
	EXISTS    Operator = "EXISTS"
	NotExists Operator = "NOT EXISTS"

	// Binary arithmetic operators, used inside value expressions.
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
	Mod Operator = "%"
)

// IsArithmetic reports whether the operator is a binary arithmetic operator.
func (op Operator) IsArithmetic() bool {
	switch op {
	case Add, Sub, Mul, Div, Mod:
		return true
	}
	return false
}

// IsComparison reports whether the operator compares two values.
func (op Operator) IsComparison() bool {
	switch op {
	case EQ, NE, GT, GE, LT, LE:
		return true
	}
	return false
}
