package spanql

import (
	"fmt"

	"github.com/zoobzio/spanql/internal/types"
)

// and creates an AND condition group (internal helper for builder).
func and(conditions ...types.ConditionItem) types.ConditionGroup {
	return types.ConditionGroup{
		Logic:      types.AND,
		Conditions: conditions,
	}
}

// c creates a simple condition (internal helper for builder).
func c(f types.Field, op types.Operator, p types.Param) types.Condition {
	return types.Condition{
		Field:    f,
		Operator: op,
		Value:    p,
	}
}

// Builder provides a fluent API for constructing queries.
type Builder struct {
	ast *types.AST
	err error
}

// GetAST returns the internal AST.
func (b *Builder) GetAST() *types.AST {
	return b.ast
}

// GetError returns the internal error (for use by provider packages).
func (b *Builder) GetError() error {
	return b.err
}

// SetError sets the internal error (for use by provider packages).
func (b *Builder) SetError(err error) {
	b.err = err
}

// Select creates a new SELECT query builder.
func Select(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpSelect,
			Target:    t,
		},
	}
}

// Insert creates a new INSERT query builder.
func Insert(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpInsert,
			Target:    t,
		},
	}
}

// Update creates a new UPDATE query builder.
func Update(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpUpdate,
			Target:    t,
			Updates:   make(map[types.Field]types.Param),
		},
	}
}

// Delete creates a new DELETE query builder.
func Delete(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpDelete,
			Target:    t,
		},
	}
}

// Count creates a new COUNT query builder.
func Count(t types.Table) *Builder {
	return &Builder{
		ast: &types.AST{
			Operation: types.OpCount,
			Target:    t,
		},
	}
}

// Fields sets the fields to select.
func (b *Builder) Fields(fields ...types.Field) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("Fields() can only be used with SELECT queries")
		return b
	}
	b.ast.Fields = fields
	return b
}

// Where sets or adds conditions.
func (b *Builder) Where(condition types.ConditionItem) *Builder {
	if b.err != nil {
		return b
	}

	if b.ast.WhereClause == nil {
		b.ast.WhereClause = condition
	} else {
		// If there's already a where clause, combine with AND
		b.ast.WhereClause = and(b.ast.WhereClause, condition)
	}

	return b
}

// WhereField is a convenience method for simple field conditions.
func (b *Builder) WhereField(f types.Field, op types.Operator, p types.Param) *Builder {
	return b.Where(c(f, op, p))
}

// Set adds a field update for UPDATE queries.
func (b *Builder) Set(f types.Field, p types.Param) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpUpdate {
		b.err = fmt.Errorf("Set() can only be used with UPDATE queries")
		return b
	}
	if b.ast.Updates == nil {
		b.ast.Updates = make(map[types.Field]types.Param)
	}
	b.ast.Updates[f] = p
	return b
}

// SetExpr assigns the result of an arithmetic expression to a field for
// UPDATE queries, e.g. SET price = price * @factor.
func (b *Builder) SetExpr(f types.Field, expr types.Arithmetic) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpUpdate {
		b.err = fmt.Errorf("SetExpr() can only be used with UPDATE queries")
		return b
	}
	b.ast.ExprUpdates = append(b.ast.ExprUpdates, types.ExprAssignment{
		Field: f,
		Arith: &expr,
	})
	return b
}

// SetTemporal assigns the result of interval arithmetic to a field for
// UPDATE queries, e.g. SET expires_at = expires_at + 30 days.
func (b *Builder) SetTemporal(f types.Field, expr types.TemporalArithmetic) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpUpdate {
		b.err = fmt.Errorf("SetTemporal() can only be used with UPDATE queries")
		return b
	}
	b.ast.ExprUpdates = append(b.ast.ExprUpdates, types.ExprAssignment{
		Field:    f,
		Temporal: &expr,
	})
	return b
}

// Value adds a single field-value pair for INSERT queries.
// Multiple calls to Value() build up a single row to insert.
// Call NextRow() to finalize the current row and start a new one.
func (b *Builder) Value(f types.Field, p types.Param) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpInsert {
		b.err = fmt.Errorf("Value() can only be used with INSERT queries")
		return b
	}
	if b.ast.Values == nil {
		b.ast.Values = []map[types.Field]types.Param{}
	}
	// If there are no value sets yet, create the first one
	if len(b.ast.Values) == 0 {
		b.ast.Values = append(b.ast.Values, make(map[types.Field]types.Param))
	}
	// Add to the last value set
	lastIdx := len(b.ast.Values) - 1
	b.ast.Values[lastIdx][f] = p
	return b
}

// NextRow finalizes the current row and starts a new one for INSERT queries.
func (b *Builder) NextRow() *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpInsert {
		b.err = fmt.Errorf("NextRow() can only be used with INSERT queries")
		return b
	}
	if b.ast.Values == nil {
		b.ast.Values = []map[types.Field]types.Param{}
	}
	// Add a new empty map for the next row
	b.ast.Values = append(b.ast.Values, make(map[types.Field]types.Param))
	return b
}

// OrderBy adds ordering.
func (b *Builder) OrderBy(f types.Field, direction types.Direction) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Ordering = append(b.ast.Ordering, types.OrderBy{
		Field:     f,
		Direction: direction,
	})
	return b
}

// OrderRandom orders results randomly. Dialects without a random ordering
// function reject the query at compile time.
func (b *Builder) OrderRandom() *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Ordering = append(b.ast.Ordering, types.OrderBy{Random: true})
	return b
}

// Limit sets the limit.
func (b *Builder) Limit(limit int) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Limit = &limit
	return b
}

// Offset sets the offset.
func (b *Builder) Offset(offset int) *Builder {
	if b.err != nil {
		return b
	}
	b.ast.Offset = &offset
	return b
}

// Distinct sets the DISTINCT flag for SELECT queries.
func (b *Builder) Distinct() *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("DISTINCT can only be used with SELECT queries")
		return b
	}
	b.ast.Distinct = true
	return b
}

// Join adds an INNER JOIN.
func (b *Builder) Join(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin(types.InnerJoin, table, on)
}

// InnerJoin adds an INNER JOIN.
func (b *Builder) InnerJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin(types.InnerJoin, table, on)
}

// LeftJoin adds a LEFT JOIN.
func (b *Builder) LeftJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin(types.LeftJoin, table, on)
}

// RightJoin adds a RIGHT JOIN.
func (b *Builder) RightJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin(types.RightJoin, table, on)
}

// FullJoin adds a FULL JOIN.
func (b *Builder) FullJoin(table types.Table, on types.ConditionItem) *Builder {
	return b.addJoin(types.FullJoin, table, on)
}

// CrossJoin adds a CROSS JOIN (no ON clause needed).
func (b *Builder) CrossJoin(table types.Table) *Builder {
	return b.addJoin(types.CrossJoin, table, nil)
}

// addJoin is a helper to add joins.
func (b *Builder) addJoin(joinType types.JoinType, table types.Table, on types.ConditionItem) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect && b.ast.Operation != types.OpCount {
		b.err = fmt.Errorf("JOIN can only be used with SELECT or COUNT queries")
		return b
	}
	if joinType == types.CrossJoin && on != nil {
		b.err = fmt.Errorf("CROSS JOIN cannot have ON clause")
		return b
	}
	if joinType != types.CrossJoin && on == nil {
		b.err = fmt.Errorf("%s requires ON clause", joinType)
		return b
	}

	join := types.Join{
		Type:  joinType,
		Table: table,
		On:    on,
	}

	b.ast.Joins = append(b.ast.Joins, join)
	return b
}

// GroupBy adds GROUP BY fields.
func (b *Builder) GroupBy(fields ...types.Field) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("GROUP BY can only be used with SELECT queries")
		return b
	}
	b.ast.GroupBy = append(b.ast.GroupBy, fields...)
	return b
}

// Having adds HAVING conditions.
func (b *Builder) Having(conditions ...types.Condition) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("HAVING can only be used with SELECT queries")
		return b
	}
	if len(b.ast.GroupBy) == 0 {
		b.err = fmt.Errorf("HAVING requires GROUP BY")
		return b
	}
	b.ast.Having = append(b.ast.Having, conditions...)
	return b
}

// SelectExpr adds a field expression (aggregate, arithmetic, temporal) to SELECT.
func (b *Builder) SelectExpr(expr types.FieldExpression) *Builder {
	if b.err != nil {
		return b
	}
	if b.ast.Operation != types.OpSelect {
		b.err = fmt.Errorf("SelectExpr can only be used with SELECT queries")
		return b
	}
	b.ast.FieldExpressions = append(b.ast.FieldExpressions, expr)
	return b
}

// Build returns the constructed AST or an error.
func (b *Builder) Build() (*types.AST, error) {
	if b.err != nil {
		return nil, b.err
	}

	// Validate the AST
	if err := b.ast.Validate(); err != nil {
		return nil, err
	}

	return b.ast, nil
}

// MustBuild returns the AST or panics on error.
func (b *Builder) MustBuild() *types.AST {
	ast, err := b.Build()
	if err != nil {
		panic(err)
	}
	return ast
}

// Render builds the AST and compiles it with the given dialect renderer.
func (b *Builder) Render(r Renderer) (*QueryResult, error) {
	ast, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(ast)
}

// MustRender builds and compiles the AST or panics on error.
func (b *Builder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}
