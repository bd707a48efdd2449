package spanner

import (
	"fmt"
	"strings"

	"github.com/zoobzio/spanql/internal/render"
	"github.com/zoobzio/spanql/internal/types"
)

// RenderSchema compiles a schema operation to DDL statements. One operation
// may produce several statements: unique constraints have no DDL spelling
// in GoogleSQL and compile to CREATE UNIQUE INDEX statements alongside the
// table. Statements are applied in order; Spanner DDL is not atomic, so a
// failure leaves earlier statements in place.
func (r *Renderer) RenderSchema(op types.SchemaOp) ([]string, error) {
	if err := op.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema operation: %w", err)
	}

	switch o := op.(type) {
	case types.CreateTable:
		return r.renderCreateTable(o)
	case types.DropTable:
		return []string{"DROP TABLE " + r.quoteIdentifier(o.Table)}, nil
	case types.AddColumn:
		return r.renderAddColumn(o)
	case types.DropColumn:
		return []string{fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s",
			r.quoteIdentifier(o.Table), r.quoteIdentifier(o.Column))}, nil
	case types.AlterColumnType:
		return nil, render.NewUnsupportedMigrationError(dialectName,
			string(render.FeatureAlterColumnType), o.Table,
			"add a new column, backfill it, and drop the old one")
	case types.RenameTable:
		return nil, render.NewUnsupportedMigrationError(dialectName,
			string(render.FeatureRenameTable), o.Old,
			"create a new table and copy the rows")
	case types.RenameColumn:
		return nil, render.NewUnsupportedMigrationError(dialectName,
			string(render.FeatureRenameColumn), o.Table,
			"add a new column, backfill it, and drop the old one")
	case types.AddConstraint:
		return r.renderAddConstraint(o)
	case types.DropConstraint:
		return []string{fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s",
			r.quoteIdentifier(o.Table), r.quoteIdentifier(o.Name))}, nil
	case types.CreateIndex:
		return []string{r.renderCreateIndex(o.Name, o.Table, o.Columns, o.Unique, o.NullFiltered)}, nil
	case types.DropIndex:
		return []string{"DROP INDEX " + r.quoteIdentifier(o.Name)}, nil
	default:
		return nil, fmt.Errorf("unsupported schema operation: %T", op)
	}
}

// RenderSchemaBatch compiles a sequence of schema operations to a flat list
// of DDL statements, stopping at the first operation that does not compile.
// Compilation is pure; nothing is applied.
func (r *Renderer) RenderSchemaBatch(ops ...types.SchemaOp) ([]string, error) {
	var all []string
	for _, op := range ops {
		stmts, err := r.RenderSchema(op)
		if err != nil {
			return all, err
		}
		all = append(all, stmts...)
	}
	return all, nil
}

// columnSQLType maps a column spec to its GoogleSQL type. STRING and BYTES
// carry a length; zero means MAX.
func (r *Renderer) columnSQLType(spec types.ColumnSpec) (string, error) {
	name, ok := sqlTypeName(spec.Type)
	if !ok {
		hint := "no GoogleSQL equivalent"
		if spec.Type == types.TypeDecimal {
			hint = "store as " + r.catalog.SubstituteFor(render.FeatureDecimalType)
		}
		return "", render.NewUnsupportedTypeError(dialectName, string(spec.Type), spec.Name, hint)
	}

	if spec.Type == types.TypeString || spec.Type == types.TypeBytes {
		if spec.Size > 0 {
			return fmt.Sprintf("%s(%d)", name, spec.Size), nil
		}
		return name + "(MAX)", nil
	}
	return name, nil
}

func (r *Renderer) renderColumnSpec(spec types.ColumnSpec) (string, error) {
	sqlType, err := r.columnSQLType(spec)
	if err != nil {
		return "", err
	}

	col := r.quoteIdentifier(spec.Name) + " " + sqlType
	if !spec.Nullable {
		col += " NOT NULL"
	}
	if spec.Default != "" {
		col += " DEFAULT (" + spec.Default + ")"
	}
	return col, nil
}

func (r *Renderer) renderCreateTable(op types.CreateTable) ([]string, error) {
	defs := make([]string, 0, len(op.Columns)+len(op.Constraints))
	for _, spec := range op.Columns {
		col, err := r.renderColumnSpec(spec)
		if err != nil {
			return nil, err
		}
		defs = append(defs, col)
	}

	// Unique constraints become indexes, emitted after the table.
	var indexes []string
	for _, con := range op.Constraints {
		switch con.Kind {
		case types.ConstraintForeignKey:
			defs = append(defs, r.renderForeignKey(op.Table, con))
		case types.ConstraintUnique:
			indexes = append(indexes, r.renderUniqueConstraintIndex(op.Table, con))
		case types.ConstraintCheck:
			return nil, render.NewUnsupportedFeatureError(dialectName,
				string(render.FeatureCheckConstraint),
				"enforce the invariant in application code")
		case types.ConstraintPrimaryKey:
			return nil, render.NewUnsupportedMigrationError(dialectName,
				string(render.FeatureAlterPrimaryKey), op.Table,
				"declare the primary key on the table itself")
		}
	}

	pk := make([]string, 0, len(op.PrimaryKey))
	for _, col := range op.PrimaryKey {
		pk = append(pk, r.quoteIdentifier(col))
	}

	stmt := fmt.Sprintf("CREATE TABLE %s (%s) PRIMARY KEY (%s)",
		r.quoteIdentifier(op.Table),
		strings.Join(defs, ", "),
		strings.Join(pk, ", "))

	return append([]string{stmt}, indexes...), nil
}

// renderForeignKey renders a foreign key constraint. Spanner accepts
// referential actions only on interleaved tables, so any declared ON DELETE
// action is elided and enforcement falls to the application.
func (r *Renderer) renderForeignKey(table string, con types.Constraint) string {
	name := con.Name
	if name == "" {
		name = fmt.Sprintf("fk_%s_%s", table, strings.Join(con.Columns, "_"))
	}

	cols := make([]string, 0, len(con.Columns))
	for _, c := range con.Columns {
		cols = append(cols, r.quoteIdentifier(c))
	}
	refCols := make([]string, 0, len(con.RefColumns))
	for _, c := range con.RefColumns {
		refCols = append(refCols, r.quoteIdentifier(c))
	}

	return fmt.Sprintf("CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
		r.quoteIdentifier(name),
		strings.Join(cols, ", "),
		r.quoteIdentifier(con.RefTable),
		strings.Join(refCols, ", "))
}

func (r *Renderer) renderUniqueConstraintIndex(table string, con types.Constraint) string {
	name := con.Name
	if name == "" {
		name = fmt.Sprintf("idx_%s_%s_uniq", table, strings.Join(con.Columns, "_"))
	}
	return r.renderCreateIndex(name, table, con.Columns, true, false)
}

func (r *Renderer) renderCreateIndex(name, table string, columns []string, unique, nullFiltered bool) string {
	var sql strings.Builder
	sql.WriteString("CREATE ")
	if unique {
		sql.WriteString("UNIQUE ")
	}
	if nullFiltered {
		sql.WriteString("NULL_FILTERED ")
	}
	sql.WriteString("INDEX ")
	sql.WriteString(r.quoteIdentifier(name))
	sql.WriteString(" ON ")
	sql.WriteString(r.quoteIdentifier(table))

	cols := make([]string, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, r.quoteIdentifier(c))
	}
	sql.WriteString(" (")
	sql.WriteString(strings.Join(cols, ", "))
	sql.WriteString(")")

	return sql.String()
}

func (r *Renderer) renderAddColumn(op types.AddColumn) ([]string, error) {
	col, err := r.renderColumnSpec(op.Column)
	if err != nil {
		return nil, err
	}
	return []string{fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s",
		r.quoteIdentifier(op.Table), col)}, nil
}

func (r *Renderer) renderAddConstraint(op types.AddConstraint) ([]string, error) {
	switch op.Constraint.Kind {
	case types.ConstraintForeignKey:
		return []string{fmt.Sprintf("ALTER TABLE %s ADD %s",
			r.quoteIdentifier(op.Table), r.renderForeignKey(op.Table, op.Constraint))}, nil
	case types.ConstraintUnique:
		return []string{r.renderUniqueConstraintIndex(op.Table, op.Constraint)}, nil
	case types.ConstraintCheck:
		return nil, render.NewUnsupportedFeatureError(dialectName,
			string(render.FeatureCheckConstraint),
			"enforce the invariant in application code")
	case types.ConstraintPrimaryKey:
		return nil, render.NewUnsupportedMigrationError(dialectName,
			string(render.FeatureAlterPrimaryKey), op.Table,
			"primary keys are fixed at table creation")
	default:
		return nil, fmt.Errorf("unknown constraint kind: %s", op.Constraint.Kind)
	}
}
