package types

import "fmt"

// Operation represents the type of query operation.
type Operation string

const (
	OpSelect Operation = "SELECT"
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
	OpCount  Operation = "COUNT"
)

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// OrderBy represents an ORDER BY term. Random marks ordering by a random
// value instead of a field; dialects without such a function reject it.
type OrderBy struct {
	Field     Field
	Direction Direction
	Random    bool
}

// JoinType represents the type of SQL join.
type JoinType string

const (
	InnerJoin JoinType = "INNER JOIN"
	LeftJoin  JoinType = "LEFT JOIN"
	RightJoin JoinType = "RIGHT JOIN"
	FullJoin  JoinType = "FULL JOIN"
	CrossJoin JoinType = "CROSS JOIN"
)

// Join represents a SQL JOIN clause.
type Join struct {
	On    ConditionItem
	Table Table
	Type  JoinType
}

// AST represents the abstract syntax tree for a query, before any dialect
// has seen it. It is exported from the internal package so dialect packages
// can compile it, but external users cannot import this package.
//
//nolint:govet // fieldalignment: logical grouping is preferred over memory optimization
type AST struct {
	Operation        Operation
	Target           Table
	Fields           []Field
	FieldExpressions []FieldExpression
	WhereClause      ConditionItem
	Joins            []Join
	GroupBy          []Field
	Having           []Condition
	Ordering         []OrderBy
	Limit            *int
	Offset           *int
	Updates          map[Field]Param  // For UPDATE operations
	ExprUpdates      []ExprAssignment // For UPDATE ... SET col = expr
	Values           []map[Field]Param
	Distinct         bool
}

// Validate performs structural validation on the AST. Dialect capability
// checks happen later, in the dialect renderer.
func (ast *AST) Validate() error {
	if ast.Target.Name == "" {
		return fmt.Errorf("target table is required")
	}

	switch ast.Operation {
	case OpSelect:
		// Fields are optional (defaults to *).
	case OpInsert:
		if len(ast.Values) == 0 {
			return fmt.Errorf("INSERT requires at least one value set")
		}
		if len(ast.Values) > 1 {
			firstKeys := make(map[Field]bool)
			for k := range ast.Values[0] {
				firstKeys[k] = true
			}
			for i, valueSet := range ast.Values[1:] {
				if len(valueSet) != len(firstKeys) {
					return fmt.Errorf("value set %d has different number of fields", i+1)
				}
				for k := range valueSet {
					if !firstKeys[k] {
						return fmt.Errorf("value set %d has different fields", i+1)
					}
				}
			}
		}
	case OpUpdate:
		if len(ast.Updates) == 0 && len(ast.ExprUpdates) == 0 {
			return fmt.Errorf("UPDATE requires at least one field to update")
		}
		if ast.Distinct || len(ast.Joins) > 0 || len(ast.GroupBy) > 0 {
			return fmt.Errorf("UPDATE cannot have SELECT features like DISTINCT, JOIN, or GROUP BY")
		}
	case OpDelete:
		if ast.Distinct || len(ast.Joins) > 0 || len(ast.GroupBy) > 0 {
			return fmt.Errorf("DELETE cannot have SELECT features like DISTINCT, JOIN, or GROUP BY")
		}
	case OpCount:
		// COUNT can have JOINs and WHERE but no field list.
	default:
		return fmt.Errorf("unsupported operation: %s", ast.Operation)
	}

	// HAVING requires GROUP BY.
	if len(ast.Having) > 0 && len(ast.GroupBy) == 0 {
		return fmt.Errorf("HAVING requires GROUP BY")
	}

	for _, j := range ast.Joins {
		if j.Type == CrossJoin && j.On != nil {
			return fmt.Errorf("CROSS JOIN cannot have ON clause")
		}
		if j.Type != CrossJoin && j.On == nil {
			return fmt.Errorf("%s requires ON clause", j.Type)
		}
	}

	return nil
}
