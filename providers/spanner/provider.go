// Package spanner executes compiled queries and DDL against a Cloud Spanner
// database through database/sql, using the go-sql-spanner driver.
package spanner

import (
	"context"
	"database/sql"
	"fmt"

	// Registers the "spanner" database/sql driver.
	_ "github.com/googleapis/go-sql-spanner"

	"github.com/zoobzio/spanql"
	dialect "github.com/zoobzio/spanql/spanner"
)

// Provider binds compiled queries to a live database. The zero value is not
// usable; create one with Open or NewProvider.
type Provider struct {
	db       *sql.DB
	renderer *dialect.Renderer
	keys     dialect.KeyGenerator
}

// Option configures a Provider.
type Option func(*Provider)

// WithKeyGenerator sets the generator used by InsertWithKey. The default
// draws uniform random 63-bit keys.
func WithKeyGenerator(g dialect.KeyGenerator) Option {
	return func(p *Provider) {
		p.keys = g
	}
}

// Open connects to a Spanner database. The DSN is a full database path,
// e.g. "projects/p/instances/i/databases/d".
func Open(dsn string, opts ...Option) (*Provider, error) {
	db, err := sql.Open("spanner", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening spanner database: %w", err)
	}
	return NewProvider(db, opts...), nil
}

// NewProvider wraps an existing database handle.
func NewProvider(db *sql.DB, opts ...Option) *Provider {
	p := &Provider{
		db:       db,
		renderer: dialect.New(),
		keys:     dialect.NewRandomKeyGenerator(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DB returns the underlying database handle.
func (p *Provider) DB() *sql.DB {
	return p.db
}

// Close closes the underlying database handle.
func (p *Provider) Close() error {
	return p.db.Close()
}

// bindParams matches the compiled query's required parameters against the
// supplied arguments, in placeholder order. Every required parameter must be
// present; extras are ignored.
func bindParams(result *spanql.QueryResult, args map[string]any) ([]any, error) {
	bound := make([]any, 0, len(result.RequiredParams))
	for _, name := range result.RequiredParams {
		value, ok := args[name]
		if !ok {
			return nil, fmt.Errorf("missing value for parameter %q", name)
		}
		bound = append(bound, sql.Named(name, value))
	}
	return bound, nil
}

// Query compiles the builder and runs it, binding args by parameter name.
func (p *Provider) Query(ctx context.Context, b *spanql.Builder, args map[string]any) (*sql.Rows, error) {
	result, err := b.Render(p.renderer)
	if err != nil {
		return nil, err
	}
	bound, err := bindParams(result, args)
	if err != nil {
		return nil, err
	}
	return p.db.QueryContext(ctx, result.SQL, bound...)
}

// QueryRow compiles the builder and runs it, expecting at most one row.
func (p *Provider) QueryRow(ctx context.Context, b *spanql.Builder, args map[string]any) (*sql.Row, error) {
	result, err := b.Render(p.renderer)
	if err != nil {
		return nil, err
	}
	bound, err := bindParams(result, args)
	if err != nil {
		return nil, err
	}
	return p.db.QueryRowContext(ctx, result.SQL, bound...), nil
}

// Exec compiles the builder and executes it as a mutation.
func (p *Provider) Exec(ctx context.Context, b *spanql.Builder, args map[string]any) (sql.Result, error) {
	result, err := b.Render(p.renderer)
	if err != nil {
		return nil, err
	}
	bound, err := bindParams(result, args)
	if err != nil {
		return nil, err
	}
	return p.db.ExecContext(ctx, result.SQL, bound...)
}

// InsertWithKey executes an INSERT after generating a primary key value and
// adding it to args under keyParam. The builder must bind the key column to
// a parameter of that name. The generated key is returned so callers can
// reference the new row.
func (p *Provider) InsertWithKey(ctx context.Context, b *spanql.Builder, keyParam string, args map[string]any) (uint64, error) {
	key := p.keys.Generate()

	merged := make(map[string]any, len(args)+1)
	for k, v := range args {
		merged[k] = v
	}
	merged[keyParam] = int64(key)

	if _, err := p.Exec(ctx, b, merged); err != nil {
		return 0, err
	}
	return key, nil
}

// Count compiles a COUNT builder and returns the result.
func (p *Provider) Count(ctx context.Context, b *spanql.Builder, args map[string]any) (int64, error) {
	row, err := p.QueryRow(ctx, b, args)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ApplyDDL compiles schema operations and applies their statements in
// order. Spanner DDL is not atomic: on failure the count of statements that
// did execute is returned alongside the error, so callers know how far the
// migration got.
func (p *Provider) ApplyDDL(ctx context.Context, ops ...spanql.SchemaOp) (int, error) {
	applied := 0
	for _, op := range ops {
		stmts, err := p.renderer.RenderSchema(op)
		if err != nil {
			return applied, err
		}
		for _, stmt := range stmts {
			if _, err := p.db.ExecContext(ctx, stmt); err != nil {
				return applied, fmt.Errorf("applying %q: %w", stmt, err)
			}
			applied++
		}
	}
	return applied, nil
}
