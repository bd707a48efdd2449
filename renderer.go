package spanql

import "github.com/zoobzio/spanql/internal/types"

// Renderer defines the interface for SQL dialect-specific query compilation.
// Implementations convert an AST to dialect-specific SQL with named
// parameters, rejecting features the dialect cannot express before any SQL
// is produced.
type Renderer interface {
	// Render converts an AST to a QueryResult with dialect-specific SQL.
	Render(ast *types.AST) (*types.QueryResult, error)
}

// SchemaRenderer compiles schema operations to DDL statements. A single
// operation may compile to several statements (a CREATE TABLE with unique
// constraints also emits CREATE UNIQUE INDEX statements); they are applied
// in order, without atomicity.
type SchemaRenderer interface {
	// RenderSchema converts a schema operation to DDL statements.
	RenderSchema(op types.SchemaOp) ([]string, error)
}
