// Package spanner provides the Cloud Spanner GoogleSQL dialect renderer for spanql.
//
// Queries compile to SQL with @name parameters and backtick-quoted
// identifiers. Features GoogleSQL cannot express are rejected with
// structured errors before any SQL is produced; where a mechanical
// substitute exists (MOD for %, LIMIT for bare OFFSET, UNIQUE INDEX for
// unique constraints) the renderer applies it instead.
package spanner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/spanql/internal/render"
	"github.com/zoobzio/spanql/internal/types"
)

// countStarSQL is the SQL for COUNT(*) aggregate.
const countStarSQL = "COUNT(*)"

// renderContext tracks rendering state for parameter namespacing and depth limiting.
type renderContext struct {
	usedParams    map[string]bool
	paramCallback func(types.Param) string
	paramPrefix   string
	depth         int
}

// newRenderContext creates a new render context.
func newRenderContext(paramCallback func(types.Param) string) *renderContext {
	return &renderContext{
		depth:         0,
		paramPrefix:   "",
		usedParams:    make(map[string]bool),
		paramCallback: paramCallback,
	}
}

// withSubquery creates a child context for rendering a subquery.
func (ctx *renderContext) withSubquery() (*renderContext, error) {
	if ctx.depth >= types.MaxSubqueryDepth {
		return nil, fmt.Errorf("maximum subquery depth (%d) exceeded", types.MaxSubqueryDepth)
	}

	return &renderContext{
		depth:         ctx.depth + 1,
		paramPrefix:   fmt.Sprintf("sq%d_", ctx.depth+1),
		usedParams:    ctx.usedParams,
		paramCallback: ctx.paramCallback,
	}, nil
}

// addParam adds a parameter with proper namespacing.
func (ctx *renderContext) addParam(param types.Param) string {
	if ctx.paramPrefix != "" {
		param = types.Param{Name: ctx.paramPrefix + param.Name}
	}
	return ctx.paramCallback(param)
}

// Renderer implements the Cloud Spanner GoogleSQL dialect renderer. Every
// feature rejection and substitution is driven by the capability catalog the
// renderer carries, so catalog entries are load-bearing, not documentation.
type Renderer struct {
	catalog render.Catalog
}

// New creates a new Spanner renderer backed by the dialect catalog.
func New() *Renderer {
	return &Renderer{catalog: catalog}
}

// Render converts an AST to a QueryResult with GoogleSQL.
func (r *Renderer) Render(ast *types.AST) (*types.QueryResult, error) {
	// Validate unsupported features
	if err := r.validateAST(ast); err != nil {
		return nil, err
	}

	if err := ast.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AST: %w", err)
	}

	var sql strings.Builder
	var params []string
	usedParams := make(map[string]bool)

	addParam := func(param types.Param) string {
		placeholder := "@" + param.Name
		if !usedParams[param.Name] {
			params = append(params, param.Name)
			usedParams[param.Name] = true
		}
		return placeholder
	}

	ctx := newRenderContext(addParam)

	switch ast.Operation {
	case types.OpSelect:
		if err := r.renderSelect(ast, &sql, ctx); err != nil {
			return nil, err
		}
	case types.OpInsert:
		if err := r.renderInsert(ast, &sql, ctx); err != nil {
			return nil, err
		}
	case types.OpUpdate:
		if err := r.renderUpdate(ast, &sql, ctx); err != nil {
			return nil, err
		}
	case types.OpDelete:
		if err := r.renderDelete(ast, &sql, ctx); err != nil {
			return nil, err
		}
	case types.OpCount:
		if err := r.renderCount(ast, &sql, ctx); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported operation: %s", ast.Operation)
	}

	return &types.QueryResult{
		SQL:            sql.String(),
		RequiredParams: params,
	}, nil
}

// validateAST checks the AST against the capability catalog.
func (r *Renderer) validateAST(ast *types.AST) error {
	for i := range ast.Ordering {
		if ast.Ordering[i].Random && !r.catalog.Supports(render.FeatureOrderByRandom) {
			return render.NewUnsupportedFeatureError(dialectName, string(render.FeatureOrderByRandom),
				"order by a stored random key column instead")
		}
	}

	if ast.WhereClause != nil {
		if err := r.validateCondition(ast.WhereClause); err != nil {
			return err
		}
	}

	for _, join := range ast.Joins {
		if err := r.validateJoinType(join.Type); err != nil {
			return err
		}
		if join.On != nil {
			if err := r.validateCondition(join.On); err != nil {
				return err
			}
		}
	}

	for _, having := range ast.Having {
		if err := r.validateCondition(having); err != nil {
			return err
		}
	}

	for i := range ast.FieldExpressions {
		if err := r.validateFieldExpression(&ast.FieldExpressions[i]); err != nil {
			return err
		}
	}

	for i := range ast.ExprUpdates {
		if err := r.validateAssignmentExpr(&ast.ExprUpdates[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateCondition recursively checks conditions for unsupported features.
func (r *Renderer) validateCondition(cond types.ConditionItem) error {
	switch c := cond.(type) {
	case types.Condition:
		return r.validateOperator(c.Operator)
	case types.ConditionGroup:
		for _, sub := range c.Conditions {
			if err := r.validateCondition(sub); err != nil {
				return err
			}
		}
	case types.FieldComparison:
		return r.validateOperator(c.Operator)
	case types.ExpressionCondition:
		if err := r.validateOperator(c.Operator); err != nil {
			return err
		}
		return validateArithmetic(&c.Expr, c.Field.Name)
	case types.SubqueryCondition:
		if err := r.validateOperator(c.Operator); err != nil {
			return err
		}
		if c.Subquery.AST != nil {
			if err := r.validateAST(c.Subquery.AST); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateJoinType checks a join kind against the catalog. Unsupported joins
// are rejected, never rewritten to another kind.
func (r *Renderer) validateJoinType(jt types.JoinType) error {
	var feature render.Feature
	switch jt {
	case types.RightJoin:
		feature = render.FeatureRightJoin
	case types.FullJoin:
		feature = render.FeatureFullJoin
	default:
		return nil
	}
	if !r.catalog.Supports(feature) {
		return render.NewUnsupportedFeatureError(dialectName, string(feature))
	}
	return nil
}

// validateOperator checks a condition operator against the catalog.
func (r *Renderer) validateOperator(op types.Operator) error {
	switch op {
	case types.ILIKE, types.NotILike:
		if !r.catalog.Supports(render.FeatureILike) {
			return render.NewUnsupportedFeatureError(dialectName, string(render.FeatureILike),
				"use "+r.catalog.SubstituteFor(render.FeatureILike))
		}
	}
	return nil
}

// validateFieldExpression checks SELECT-list expressions.
func (r *Renderer) validateFieldExpression(expr *types.FieldExpression) error {
	switch expr.Aggregate {
	case types.AggVariance:
		if !r.catalog.Supports(render.FeatureVariance) {
			return render.NewUnsupportedFeatureError(dialectName, string(render.FeatureVariance),
				"compute variance client-side from SUM and COUNT")
		}
	case types.AggStdDev:
		if !r.catalog.Supports(render.FeatureStdDev) {
			return render.NewUnsupportedFeatureError(dialectName, string(render.FeatureStdDev),
				"compute the deviation client-side from SUM and COUNT")
		}
	}
	if expr.Arith != nil {
		target := expr.Alias
		if target == "" {
			target = expr.Field.Name
		}
		if err := validateArithmetic(expr.Arith, target); err != nil {
			return err
		}
	}
	if expr.Temporal != nil {
		if _, err := resolveTemporalFunction(expr.Temporal); err != nil {
			return err
		}
	}
	return nil
}

// validateAssignmentExpr checks UPDATE SET expressions against their target
// column type.
func (r *Renderer) validateAssignmentExpr(assign *types.ExprAssignment) error {
	if assign.Arith != nil {
		return validateAssignment(assign.Field, assign.Arith)
	}
	if assign.Temporal != nil {
		_, err := resolveTemporalFunction(assign.Temporal)
		return err
	}
	return fmt.Errorf("assignment to %s has no expression", assign.Field.Name)
}

func (r *Renderer) renderSelect(ast *types.AST, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("SELECT ")

	if ast.Distinct {
		sql.WriteString("DISTINCT ")
	}

	if len(ast.Fields) == 0 && len(ast.FieldExpressions) == 0 {
		sql.WriteString("*")
	} else {
		var selections []string

		for _, field := range ast.Fields {
			selections = append(selections, r.renderField(field))
		}

		for i := range ast.FieldExpressions {
			exprStr, err := r.renderFieldExpression(&ast.FieldExpressions[i], ctx)
			if err != nil {
				return err
			}
			selections = append(selections, exprStr)
		}

		sql.WriteString(strings.Join(selections, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(r.renderTable(ast.Target))

	for _, join := range ast.Joins {
		sql.WriteString(" ")
		sql.WriteString(string(join.Type))
		sql.WriteString(" ")
		sql.WriteString(r.renderTable(join.Table))
		if join.Type != types.CrossJoin {
			sql.WriteString(" ON ")
			if err := r.renderCondition(join.On, sql, ctx); err != nil {
				return err
			}
		}
	}

	if ast.WhereClause != nil {
		sql.WriteString(" WHERE ")
		if err := r.renderCondition(ast.WhereClause, sql, ctx); err != nil {
			return err
		}
	}

	if len(ast.GroupBy) > 0 {
		sql.WriteString(" GROUP BY ")
		var groupFields []string
		for _, field := range ast.GroupBy {
			groupFields = append(groupFields, r.renderField(field))
		}
		sql.WriteString(strings.Join(groupFields, ", "))
	}

	if len(ast.Having) > 0 {
		sql.WriteString(" HAVING ")
		for i, cond := range ast.Having {
			if i > 0 {
				sql.WriteString(" AND ")
			}
			if err := r.renderCondition(cond, sql, ctx); err != nil {
				return err
			}
		}
	}

	if len(ast.Ordering) > 0 {
		sql.WriteString(" ORDER BY ")
		var orderParts []string
		for i := range ast.Ordering {
			order := &ast.Ordering[i]
			orderParts = append(orderParts, fmt.Sprintf("%s %s", r.renderField(order.Field), order.Direction))
		}
		sql.WriteString(strings.Join(orderParts, ", "))
	}

	r.renderLimitOffset(ast, sql)

	return nil
}

// renderLimitOffset emits LIMIT/OFFSET. GoogleSQL requires LIMIT whenever
// OFFSET is present, so a bare OFFSET gets the catalog's substitute, the
// maximum INT64 as its limit.
func (r *Renderer) renderLimitOffset(ast *types.AST, sql *strings.Builder) {
	switch {
	case ast.Limit != nil:
		fmt.Fprintf(sql, " LIMIT %d", *ast.Limit)
	case ast.Offset != nil && !r.catalog.Supports(render.FeatureOffsetSansLimit):
		sql.WriteString(" " + r.catalog.SubstituteFor(render.FeatureOffsetSansLimit))
	}
	if ast.Offset != nil {
		fmt.Fprintf(sql, " OFFSET %d", *ast.Offset)
	}
}

func (r *Renderer) renderInsert(ast *types.AST, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("INSERT INTO ")
	sql.WriteString(r.renderTable(ast.Target))

	if len(ast.Values) == 0 {
		return fmt.Errorf("INSERT requires at least one value set")
	}

	fieldObjs := make([]types.Field, 0, len(ast.Values[0]))
	for field := range ast.Values[0] {
		fieldObjs = append(fieldObjs, field)
	}

	sort.Slice(fieldObjs, func(i, j int) bool {
		return fieldObjs[i].Name < fieldObjs[j].Name
	})

	fields := make([]string, 0, len(fieldObjs))
	for _, field := range fieldObjs {
		fields = append(fields, r.quoteIdentifier(field.Name))
	}

	sql.WriteString(" (")
	sql.WriteString(strings.Join(fields, ", "))
	sql.WriteString(") VALUES ")

	valueSets := make([]string, 0, len(ast.Values))
	for _, valueSet := range ast.Values {
		var values []string
		for _, field := range fieldObjs {
			param := valueSet[field]
			if param.IsNull() {
				values = append(values, "NULL")
			} else {
				values = append(values, ctx.addParam(param))
			}
		}
		valueSets = append(valueSets, "("+strings.Join(values, ", ")+")")
	}
	sql.WriteString(strings.Join(valueSets, ", "))

	return nil
}

func (r *Renderer) renderUpdate(ast *types.AST, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("UPDATE ")
	sql.WriteString(r.renderTable(ast.Target))
	sql.WriteString(" SET ")

	updateFields := make([]types.Field, 0, len(ast.Updates))
	for field := range ast.Updates {
		updateFields = append(updateFields, field)
	}

	sort.Slice(updateFields, func(i, j int) bool {
		return updateFields[i].Name < updateFields[j].Name
	})

	updates := make([]string, 0, len(ast.Updates)+len(ast.ExprUpdates))
	for _, field := range updateFields {
		param := ast.Updates[field]
		if param.IsNull() {
			updates = append(updates, fmt.Sprintf("%s = NULL", r.quoteIdentifier(field.Name)))
		} else {
			updates = append(updates, fmt.Sprintf("%s = %s", r.quoteIdentifier(field.Name), ctx.addParam(param)))
		}
	}

	for i := range ast.ExprUpdates {
		assign := &ast.ExprUpdates[i]
		exprStr, err := r.renderAssignmentExpr(assign, ctx)
		if err != nil {
			return err
		}
		updates = append(updates, fmt.Sprintf("%s = %s", r.quoteIdentifier(assign.Field.Name), exprStr))
	}

	sql.WriteString(strings.Join(updates, ", "))

	if ast.WhereClause != nil {
		sql.WriteString(" WHERE ")
		if err := r.renderCondition(ast.WhereClause, sql, ctx); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) renderDelete(ast *types.AST, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("DELETE FROM ")
	sql.WriteString(r.renderTable(ast.Target))

	if ast.WhereClause != nil {
		sql.WriteString(" WHERE ")
		if err := r.renderCondition(ast.WhereClause, sql, ctx); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) renderCount(ast *types.AST, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("SELECT " + countStarSQL + " FROM ")
	sql.WriteString(r.renderTable(ast.Target))

	for _, join := range ast.Joins {
		sql.WriteString(" ")
		sql.WriteString(string(join.Type))
		sql.WriteString(" ")
		sql.WriteString(r.renderTable(join.Table))
		if join.Type != types.CrossJoin {
			sql.WriteString(" ON ")
			if err := r.renderCondition(join.On, sql, ctx); err != nil {
				return err
			}
		}
	}

	if ast.WhereClause != nil {
		sql.WriteString(" WHERE ")
		if err := r.renderCondition(ast.WhereClause, sql, ctx); err != nil {
			return err
		}
	}

	return nil
}

// quoteIdentifier quotes a GoogleSQL identifier with backticks.
func (r *Renderer) quoteIdentifier(name string) string {
	return "`" + name + "`"
}

func (r *Renderer) renderTable(table types.Table) string {
	quotedName := r.quoteIdentifier(table.Name)
	if table.Alias != "" {
		return fmt.Sprintf("%s %s", quotedName, table.Alias)
	}
	return quotedName
}

func (r *Renderer) renderField(field types.Field) string {
	quotedName := r.quoteIdentifier(field.Name)
	if field.Table != "" {
		return fmt.Sprintf("%s.%s", field.Table, quotedName)
	}
	return quotedName
}

func (r *Renderer) renderCondition(cond types.ConditionItem, sql *strings.Builder, ctx *renderContext) error {
	switch c := cond.(type) {
	case types.Condition:
		return r.renderSimpleCondition(c, sql, ctx)

	case types.ConditionGroup:
		sql.WriteString("(")
		for i, sub := range c.Conditions {
			if i > 0 {
				sql.WriteString(" ")
				sql.WriteString(string(c.Logic))
				sql.WriteString(" ")
			}
			if err := r.renderCondition(sub, sql, ctx); err != nil {
				return err
			}
		}
		sql.WriteString(")")
		return nil

	case types.FieldComparison:
		fmt.Fprintf(sql, "%s %s %s", r.renderField(c.LeftField), c.Operator, r.renderField(c.RightField))
		return nil

	case types.ExpressionCondition:
		exprStr, err := r.renderArithmetic(&c.Expr, ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(sql, "%s %s %s", r.renderField(c.Field), c.Operator, exprStr)
		return nil

	case types.SubqueryCondition:
		return r.renderSubqueryCondition(c, sql, ctx)

	default:
		return fmt.Errorf("unsupported condition type: %T", cond)
	}
}

func (r *Renderer) renderSimpleCondition(c types.Condition, sql *strings.Builder, ctx *renderContext) error {
	field := r.renderField(c.Field)

	switch c.Operator {
	case types.IsNull:
		sql.WriteString(field + " IS NULL")
		return nil
	case types.IsNotNull:
		sql.WriteString(field + " IS NOT NULL")
		return nil
	}

	// NULL as a comparison value folds into IS NULL / IS NOT NULL; no other
	// operator has defined semantics against NULL.
	if c.Value.IsNull() {
		switch c.Operator {
		case types.EQ:
			sql.WriteString(field + " IS NULL")
			return nil
		case types.NE:
			sql.WriteString(field + " IS NOT NULL")
			return nil
		default:
			return fmt.Errorf("operator %s cannot compare against NULL", c.Operator)
		}
	}

	// IN binds an array parameter, which GoogleSQL consumes through UNNEST.
	switch c.Operator {
	case types.IN:
		fmt.Fprintf(sql, "%s IN UNNEST(%s)", field, ctx.addParam(c.Value))
		return nil
	case types.NotIn:
		fmt.Fprintf(sql, "%s NOT IN UNNEST(%s)", field, ctx.addParam(c.Value))
		return nil
	}

	fmt.Fprintf(sql, "%s %s %s", field, c.Operator, ctx.addParam(c.Value))
	return nil
}

func (r *Renderer) renderSubqueryCondition(c types.SubqueryCondition, sql *strings.Builder, ctx *renderContext) error {
	if c.Subquery.AST == nil {
		return fmt.Errorf("subquery condition has no query")
	}

	subCtx, err := ctx.withSubquery()
	if err != nil {
		return err
	}

	switch c.Operator {
	case types.EXISTS, types.NotExists:
		sql.WriteString(string(c.Operator))
		sql.WriteString(" (")
		if err := r.renderSelect(c.Subquery.AST, sql, subCtx); err != nil {
			return err
		}
		sql.WriteString(")")
		return nil
	case types.IN, types.NotIn:
		if c.Field == nil {
			return fmt.Errorf("%s subquery requires a field", c.Operator)
		}
		fmt.Fprintf(sql, "%s %s (", r.renderField(*c.Field), c.Operator)
		if err := r.renderSelect(c.Subquery.AST, sql, subCtx); err != nil {
			return err
		}
		sql.WriteString(")")
		return nil
	default:
		return fmt.Errorf("operator %s cannot be used with subqueries", c.Operator)
	}
}

// renderArithmetic renders a binary arithmetic expression. The % operator
// has no GoogleSQL spelling and rewrites to MOD() per the catalog.
func (r *Renderer) renderArithmetic(expr *types.Arithmetic, ctx *renderContext) (string, error) {
	left, err := r.renderOperand(expr.Left, ctx)
	if err != nil {
		return "", err
	}
	right, err := r.renderOperand(expr.Right, ctx)
	if err != nil {
		return "", err
	}

	if expr.Op == types.Mod && !r.catalog.Supports(render.FeatureModuloOperator) {
		return fmt.Sprintf("MOD(%s, %s)", left, right), nil
	}
	return fmt.Sprintf("(%s %s %s)", left, expr.Op, right), nil
}

func (r *Renderer) renderOperand(o types.Operand, ctx *renderContext) (string, error) {
	switch {
	case o.Field != nil:
		return r.renderField(*o.Field), nil
	case o.Param != nil && o.Param.IsNull():
		return "NULL", nil
	case o.Param != nil:
		return ctx.addParam(*o.Param), nil
	default:
		return "", fmt.Errorf("empty arithmetic operand")
	}
}

// renderTemporal renders interval arithmetic, choosing the DATE or
// TIMESTAMP function family from the field's declared type.
func (r *Renderer) renderTemporal(expr *types.TemporalArithmetic, ctx *renderContext) (string, error) {
	fn, err := resolveTemporalFunction(expr)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s(%s, INTERVAL %s %s)",
		fn, r.renderField(expr.Field), ctx.addParam(expr.Amount), expr.Unit), nil
}

func (r *Renderer) renderAssignmentExpr(assign *types.ExprAssignment, ctx *renderContext) (string, error) {
	switch {
	case assign.Arith != nil:
		if err := validateAssignment(assign.Field, assign.Arith); err != nil {
			return "", err
		}
		return r.renderArithmetic(assign.Arith, ctx)
	case assign.Temporal != nil:
		return r.renderTemporal(assign.Temporal, ctx)
	default:
		return "", fmt.Errorf("assignment to %s has no expression", assign.Field.Name)
	}
}

func (r *Renderer) renderAggregateExpression(aggregate types.AggregateFunc, field types.Field) string {
	switch aggregate {
	case types.AggCountField:
		if field.Name == "" {
			return countStarSQL
		}
		return fmt.Sprintf("COUNT(%s)", r.renderField(field))
	case types.AggCountDistinct:
		return fmt.Sprintf("COUNT(DISTINCT %s)", r.renderField(field))
	case types.AggSum:
		return fmt.Sprintf("SUM(%s)", r.renderField(field))
	case types.AggAvg:
		return fmt.Sprintf("AVG(%s)", r.renderField(field))
	case types.AggMin:
		return fmt.Sprintf("MIN(%s)", r.renderField(field))
	case types.AggMax:
		return fmt.Sprintf("MAX(%s)", r.renderField(field))
	default:
		return r.renderField(field)
	}
}

func (r *Renderer) renderFieldExpression(expr *types.FieldExpression, ctx *renderContext) (string, error) {
	var result string

	switch {
	case expr.Arith != nil:
		arithStr, err := r.renderArithmetic(expr.Arith, ctx)
		if err != nil {
			return "", err
		}
		result = arithStr
	case expr.Temporal != nil:
		temporalStr, err := r.renderTemporal(expr.Temporal, ctx)
		if err != nil {
			return "", err
		}
		result = temporalStr
	case expr.Aggregate != "":
		result = r.renderAggregateExpression(expr.Aggregate, expr.Field)
	default:
		result = r.renderField(expr.Field)
	}

	if expr.Alias != "" {
		result += " AS " + r.quoteIdentifier(expr.Alias)
	}

	return result, nil
}
