package types

// Param represents a named parameter reference in a query.
// All user values enter queries through parameters; the only literal the
// AST can carry is NULL, marked with the Null flag.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
type Param struct {
	Name string
	Null bool
}

// NullParam returns the literal NULL marker.
func NullParam() Param {
	return Param{Null: true}
}

// IsNull reports whether the parameter is the literal NULL marker.
func (p Param) IsNull() bool {
	return p.Null
}

// GetName returns the parameter name.
func (p Param) GetName() string {
	return p.Name
}
