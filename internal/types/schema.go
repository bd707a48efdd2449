package types

import "fmt"

// ColumnSpec describes a column in a schema operation.
// Size applies to string/bytes columns; zero means the dialect maximum.
// Default, when non-empty, is a dialect expression rendered verbatim inside
// the column's DEFAULT clause.
type ColumnSpec struct {
	Name     string
	Type     ColumnType
	Size     int
	Nullable bool
	Default  string
}

// ConstraintKind enumerates the constraint kinds a schema source can declare.
type ConstraintKind string

const (
	ConstraintCheck      ConstraintKind = "check"
	ConstraintForeignKey ConstraintKind = "foreign_key"
	ConstraintUnique     ConstraintKind = "unique"
	ConstraintPrimaryKey ConstraintKind = "primary_key"
)

// ReferentialAction is the ON DELETE/ON UPDATE action declared on a foreign
// key. Dialects that cannot express an action decide whether to elide or
// reject it.
type ReferentialAction string

const (
	NoAction ReferentialAction = ""
	Cascade  ReferentialAction = "CASCADE"
	SetNull  ReferentialAction = "SET NULL"
)

// Constraint describes a table constraint.
type Constraint struct {
	Kind       ConstraintKind
	Name       string
	Columns    []string
	RefTable   string
	RefColumns []string
	OnDelete   ReferentialAction
	Expr       string // check expression, for ConstraintCheck
}

// SchemaOp is the closed set of schema operations. Each operation compiles
// independently; there is no atomic multi-operation unit.
type SchemaOp interface {
	isSchemaOp()
	Validate() error
}

// CreateTable creates a table with its columns, primary key, and any
// table-level constraints.
type CreateTable struct {
	Table       string
	Columns     []ColumnSpec
	PrimaryKey  []string
	Constraints []Constraint
}

// DropTable drops a table.
type DropTable struct {
	Table string
}

// AddColumn adds a column to an existing table.
type AddColumn struct {
	Table  string
	Column ColumnSpec
}

// DropColumn removes a column from a table.
type DropColumn struct {
	Table  string
	Column string
}

// AlterColumnType changes a column's type. Dialects that cannot change
// column types reject this operation permanently.
type AlterColumnType struct {
	Table   string
	Column  string
	OldType ColumnType
	NewType ColumnType
}

// RenameTable renames a table.
type RenameTable struct {
	Old string
	New string
}

// RenameColumn renames a column.
type RenameColumn struct {
	Table string
	Old   string
	New   string
}

// AddConstraint adds a table constraint.
type AddConstraint struct {
	Table      string
	Constraint Constraint
}

// DropConstraint removes a named constraint.
type DropConstraint struct {
	Table string
	Name  string
}

// CreateIndex creates a secondary index.
type CreateIndex struct {
	Name         string
	Table        string
	Columns      []string
	Unique       bool
	NullFiltered bool
}

// DropIndex drops a secondary index.
type DropIndex struct {
	Name string
}

func (CreateTable) isSchemaOp()     {}
func (DropTable) isSchemaOp()       {}
func (AddColumn) isSchemaOp()       {}
func (DropColumn) isSchemaOp()      {}
func (AlterColumnType) isSchemaOp() {}
func (RenameTable) isSchemaOp()     {}
func (RenameColumn) isSchemaOp()    {}
func (AddConstraint) isSchemaOp()   {}
func (DropConstraint) isSchemaOp()  {}
func (CreateIndex) isSchemaOp()     {}
func (DropIndex) isSchemaOp()       {}

// Validate checks structural completeness of the operation.
func (op CreateTable) Validate() error {
	if op.Table == "" {
		return fmt.Errorf("CREATE TABLE requires a table name")
	}
	if len(op.Columns) == 0 {
		return fmt.Errorf("CREATE TABLE %s requires at least one column", op.Table)
	}
	if len(op.PrimaryKey) == 0 {
		return fmt.Errorf("CREATE TABLE %s requires a primary key", op.Table)
	}
	seen := make(map[string]bool, len(op.Columns))
	for _, c := range op.Columns {
		if c.Name == "" {
			return fmt.Errorf("CREATE TABLE %s has a column without a name", op.Table)
		}
		if seen[c.Name] {
			return fmt.Errorf("CREATE TABLE %s declares column %s twice", op.Table, c.Name)
		}
		seen[c.Name] = true
	}
	for _, pk := range op.PrimaryKey {
		if !seen[pk] {
			return fmt.Errorf("CREATE TABLE %s: primary key column %s is not declared", op.Table, pk)
		}
	}
	return nil
}

func (op DropTable) Validate() error {
	if op.Table == "" {
		return fmt.Errorf("DROP TABLE requires a table name")
	}
	return nil
}

func (op AddColumn) Validate() error {
	if op.Table == "" || op.Column.Name == "" {
		return fmt.Errorf("ADD COLUMN requires a table and column name")
	}
	return nil
}

func (op DropColumn) Validate() error {
	if op.Table == "" || op.Column == "" {
		return fmt.Errorf("DROP COLUMN requires a table and column name")
	}
	return nil
}

func (op AlterColumnType) Validate() error {
	if op.Table == "" || op.Column == "" {
		return fmt.Errorf("ALTER COLUMN requires a table and column name")
	}
	return nil
}

func (op RenameTable) Validate() error {
	if op.Old == "" || op.New == "" {
		return fmt.Errorf("RENAME TABLE requires both names")
	}
	return nil
}

func (op RenameColumn) Validate() error {
	if op.Table == "" || op.Old == "" || op.New == "" {
		return fmt.Errorf("RENAME COLUMN requires a table and both column names")
	}
	return nil
}

func (op AddConstraint) Validate() error {
	if op.Table == "" {
		return fmt.Errorf("ADD CONSTRAINT requires a table name")
	}
	c := op.Constraint
	switch c.Kind {
	case ConstraintCheck:
		if c.Expr == "" {
			return fmt.Errorf("check constraint on %s requires an expression", op.Table)
		}
	case ConstraintForeignKey:
		if len(c.Columns) == 0 || c.RefTable == "" || len(c.RefColumns) == 0 {
			return fmt.Errorf("foreign key on %s requires columns and a referenced table", op.Table)
		}
		if len(c.Columns) != len(c.RefColumns) {
			return fmt.Errorf("foreign key on %s has mismatched column counts", op.Table)
		}
	case ConstraintUnique, ConstraintPrimaryKey:
		if len(c.Columns) == 0 {
			return fmt.Errorf("%s constraint on %s requires columns", c.Kind, op.Table)
		}
	default:
		return fmt.Errorf("unknown constraint kind: %s", c.Kind)
	}
	return nil
}

func (op DropConstraint) Validate() error {
	if op.Table == "" || op.Name == "" {
		return fmt.Errorf("DROP CONSTRAINT requires a table and constraint name")
	}
	return nil
}

func (op CreateIndex) Validate() error {
	if op.Name == "" || op.Table == "" || len(op.Columns) == 0 {
		return fmt.Errorf("CREATE INDEX requires a name, table, and columns")
	}
	return nil
}

func (op DropIndex) Validate() error {
	if op.Name == "" {
		return fmt.Errorf("DROP INDEX requires an index name")
	}
	return nil
}
