package spanner

import (
	"errors"
	"testing"

	"github.com/zoobzio/spanql/internal/render"
	"github.com/zoobzio/spanql/internal/types"
)

func TestRenderSchema_CreateTable(t *testing.T) {
	r := New()
	op := types.CreateTable{
		Table: "users",
		Columns: []types.ColumnSpec{
			{Name: "id", Type: types.TypeInt},
			{Name: "email", Type: types.TypeString, Size: 255},
			{Name: "bio", Type: types.TypeString, Nullable: true},
			{Name: "created_at", Type: types.TypeTimestamp},
		},
		PrimaryKey: []string{"id"},
	}

	stmts, err := r.RenderSchema(op)
	if err != nil {
		t.Fatalf("RenderSchema() error = %v", err)
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}

	expected := "CREATE TABLE `users` (`id` INT64 NOT NULL, `email` STRING(255) NOT NULL, `bio` STRING(MAX), `created_at` TIMESTAMP NOT NULL) PRIMARY KEY (`id`)"
	if stmts[0] != expected {
		t.Errorf("DDL = %q, want %q", stmts[0], expected)
	}
}

func TestRenderSchema_CreateTableWithDefault(t *testing.T) {
	r := New()
	op := types.CreateTable{
		Table: "events",
		Columns: []types.ColumnSpec{
			{Name: "id", Type: types.TypeInt},
			{Name: "recorded_at", Type: types.TypeTimestamp, Default: "CURRENT_TIMESTAMP()"},
		},
		PrimaryKey: []string{"id"},
	}

	stmts, err := r.RenderSchema(op)
	if err != nil {
		t.Fatalf("RenderSchema() error = %v", err)
	}

	expected := "CREATE TABLE `events` (`id` INT64 NOT NULL, `recorded_at` TIMESTAMP NOT NULL DEFAULT (CURRENT_TIMESTAMP())) PRIMARY KEY (`id`)"
	if stmts[0] != expected {
		t.Errorf("DDL = %q, want %q", stmts[0], expected)
	}
}

func TestRenderSchema_UniqueBecomesIndex(t *testing.T) {
	r := New()
	op := types.CreateTable{
		Table: "users",
		Columns: []types.ColumnSpec{
			{Name: "id", Type: types.TypeInt},
			{Name: "email", Type: types.TypeString, Size: 255},
		},
		PrimaryKey: []string{"id"},
		Constraints: []types.Constraint{
			{Kind: types.ConstraintUnique, Columns: []string{"email"}},
		},
	}

	stmts, err := r.RenderSchema(op)
	if err != nil {
		t.Fatalf("RenderSchema() error = %v", err)
	}
	if len(stmts) != 2 {
		t.Fatalf("got %d statements, want 2", len(stmts))
	}

	expectedIndex := "CREATE UNIQUE INDEX `idx_users_email_uniq` ON `users` (`email`)"
	if stmts[1] != expectedIndex {
		t.Errorf("index DDL = %q, want %q", stmts[1], expectedIndex)
	}
}

func TestRenderSchema_ForeignKeyElidesOnDelete(t *testing.T) {
	r := New()
	op := types.CreateTable{
		Table: "posts",
		Columns: []types.ColumnSpec{
			{Name: "id", Type: types.TypeInt},
			{Name: "user_id", Type: types.TypeInt},
		},
		PrimaryKey: []string{"id"},
		Constraints: []types.Constraint{
			{
				Kind:       types.ConstraintForeignKey,
				Name:       "fk_posts_user",
				Columns:    []string{"user_id"},
				RefTable:   "users",
				RefColumns: []string{"id"},
				OnDelete:   types.Cascade,
			},
		},
	}

	stmts, err := r.RenderSchema(op)
	if err != nil {
		t.Fatalf("RenderSchema() error = %v", err)
	}

	expected := "CREATE TABLE `posts` (`id` INT64 NOT NULL, `user_id` INT64 NOT NULL, CONSTRAINT `fk_posts_user` FOREIGN KEY (`user_id`) REFERENCES `users` (`id`)) PRIMARY KEY (`id`)"
	if stmts[0] != expected {
		t.Errorf("DDL = %q, want %q", stmts[0], expected)
	}
}

func TestRenderSchema_CheckConstraintRejected(t *testing.T) {
	r := New()
	op := types.CreateTable{
		Table: "products",
		Columns: []types.ColumnSpec{
			{Name: "id", Type: types.TypeInt},
			{Name: "price", Type: types.TypeFloat},
		},
		PrimaryKey: []string{"id"},
		Constraints: []types.Constraint{
			{Kind: types.ConstraintCheck, Expr: "price > 0"},
		},
	}

	_, err := r.RenderSchema(op)
	var ufErr render.UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatalf("expected UnsupportedFeatureError, got %v", err)
	}
	if ufErr.Feature != string(render.FeatureCheckConstraint) {
		t.Errorf("Feature = %q, want %q", ufErr.Feature, render.FeatureCheckConstraint)
	}
}

func TestRenderSchema_AddCheckConstraintRejected(t *testing.T) {
	r := New()
	op := types.AddConstraint{
		Table: "products",
		Constraint: types.Constraint{
			Kind: types.ConstraintCheck,
			Expr: "price > 0",
		},
	}

	_, err := r.RenderSchema(op)
	var ufErr render.UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatalf("expected UnsupportedFeatureError, got %v", err)
	}
	if ufErr.Feature != string(render.FeatureCheckConstraint) {
		t.Errorf("Feature = %q, want %q", ufErr.Feature, render.FeatureCheckConstraint)
	}
}

func TestRenderSchema_DecimalRejected(t *testing.T) {
	r := New()
	op := types.CreateTable{
		Table: "ledger",
		Columns: []types.ColumnSpec{
			{Name: "id", Type: types.TypeInt},
			{Name: "amount", Type: types.TypeDecimal},
		},
		PrimaryKey: []string{"id"},
	}

	_, err := r.RenderSchema(op)
	var utErr render.UnsupportedTypeError
	if !errors.As(err, &utErr) {
		t.Fatalf("expected UnsupportedTypeError, got %v", err)
	}
	if utErr.Column != "amount" {
		t.Errorf("Column = %q, want amount", utErr.Column)
	}
}

func TestRenderSchema_AddColumn(t *testing.T) {
	r := New()
	op := types.AddColumn{
		Table:  "users",
		Column: types.ColumnSpec{Name: "nickname", Type: types.TypeString, Size: 64, Nullable: true},
	}

	stmts, err := r.RenderSchema(op)
	if err != nil {
		t.Fatalf("RenderSchema() error = %v", err)
	}

	expected := "ALTER TABLE `users` ADD COLUMN `nickname` STRING(64)"
	if stmts[0] != expected {
		t.Errorf("DDL = %q, want %q", stmts[0], expected)
	}
}

func TestRenderSchema_DropColumn(t *testing.T) {
	r := New()
	stmts, err := r.RenderSchema(types.DropColumn{Table: "users", Column: "nickname"})
	if err != nil {
		t.Fatalf("RenderSchema() error = %v", err)
	}
	expected := "ALTER TABLE `users` DROP COLUMN `nickname`"
	if stmts[0] != expected {
		t.Errorf("DDL = %q, want %q", stmts[0], expected)
	}
}

func TestRenderSchema_RenamesRejected(t *testing.T) {
	r := New()

	_, err := r.RenderSchema(types.RenameTable{Old: "users", New: "accounts"})
	var umErr render.UnsupportedMigrationError
	if !errors.As(err, &umErr) {
		t.Fatalf("RenameTable: expected UnsupportedMigrationError, got %v", err)
	}

	_, err = r.RenderSchema(types.RenameColumn{Table: "users", Old: "name", New: "full_name"})
	if !errors.As(err, &umErr) {
		t.Fatalf("RenameColumn: expected UnsupportedMigrationError, got %v", err)
	}
}

func TestRenderSchema_AlterColumnTypeRejected(t *testing.T) {
	r := New()
	op := types.AlterColumnType{
		Table:   "users",
		Column:  "age",
		OldType: types.TypeInt,
		NewType: types.TypeFloat,
	}

	_, err := r.RenderSchema(op)
	var umErr render.UnsupportedMigrationError
	if !errors.As(err, &umErr) {
		t.Fatalf("expected UnsupportedMigrationError, got %v", err)
	}
}

func TestRenderSchema_NullFilteredIndex(t *testing.T) {
	r := New()
	op := types.CreateIndex{
		Name:         "idx_users_email",
		Table:        "users",
		Columns:      []string{"email"},
		Unique:       true,
		NullFiltered: true,
	}

	stmts, err := r.RenderSchema(op)
	if err != nil {
		t.Fatalf("RenderSchema() error = %v", err)
	}

	expected := "CREATE UNIQUE NULL_FILTERED INDEX `idx_users_email` ON `users` (`email`)"
	if stmts[0] != expected {
		t.Errorf("DDL = %q, want %q", stmts[0], expected)
	}
}

func TestRenderSchema_DropIndex(t *testing.T) {
	r := New()
	stmts, err := r.RenderSchema(types.DropIndex{Name: "idx_users_email"})
	if err != nil {
		t.Fatalf("RenderSchema() error = %v", err)
	}
	if stmts[0] != "DROP INDEX `idx_users_email`" {
		t.Errorf("DDL = %q", stmts[0])
	}
}

func TestRenderSchema_AddForeignKeyConstraint(t *testing.T) {
	r := New()
	op := types.AddConstraint{
		Table: "orders",
		Constraint: types.Constraint{
			Kind:       types.ConstraintForeignKey,
			Columns:    []string{"customer_id"},
			RefTable:   "customers",
			RefColumns: []string{"id"},
		},
	}

	stmts, err := r.RenderSchema(op)
	if err != nil {
		t.Fatalf("RenderSchema() error = %v", err)
	}

	expected := "ALTER TABLE `orders` ADD CONSTRAINT `fk_orders_customer_id` FOREIGN KEY (`customer_id`) REFERENCES `customers` (`id`)"
	if stmts[0] != expected {
		t.Errorf("DDL = %q, want %q", stmts[0], expected)
	}
}

func TestRenderSchemaBatch(t *testing.T) {
	r := New()

	stmts, err := r.RenderSchemaBatch(
		types.CreateTable{
			Table: "users",
			Columns: []types.ColumnSpec{
				{Name: "id", Type: types.TypeInt},
				{Name: "email", Type: types.TypeString, Size: 255},
			},
			PrimaryKey: []string{"id"},
			Constraints: []types.Constraint{
				{Kind: types.ConstraintUnique, Columns: []string{"email"}},
			},
		},
		types.CreateIndex{Name: "idx_users_email", Table: "users", Columns: []string{"email"}},
	)
	if err != nil {
		t.Fatalf("RenderSchemaBatch() error = %v", err)
	}
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(stmts))
	}
}

func TestRenderSchemaBatch_StopsAtRejection(t *testing.T) {
	r := New()

	stmts, err := r.RenderSchemaBatch(
		types.DropIndex{Name: "idx_old"},
		types.RenameTable{Old: "users", New: "accounts"},
		types.DropIndex{Name: "idx_never_reached"},
	)
	var umErr render.UnsupportedMigrationError
	if !errors.As(err, &umErr) {
		t.Fatalf("expected UnsupportedMigrationError, got %v", err)
	}
	if len(stmts) != 1 {
		t.Errorf("got %d statements before rejection, want 1", len(stmts))
	}
}

func TestCatalogQueries(t *testing.T) {
	if Supports("ILIKE") {
		t.Error("ILIKE should be unsupported")
	}
	if Supports("CHECK constraint") {
		t.Error("CHECK constraint should be unsupported")
	}
	// Absent from the catalog means supported.
	if !Supports("LEFT JOIN") {
		t.Error("LEFT JOIN should be supported")
	}
	if got := SubstituteFor("% operator"); got != "MOD()" {
		t.Errorf("SubstituteFor(%% operator) = %q, want MOD()", got)
	}
	if got := SubstituteFor("ORDER BY RANDOM"); got != "" {
		t.Errorf("SubstituteFor(ORDER BY RANDOM) = %q, want empty", got)
	}
}

func TestRenderSchema_AddPrimaryKeyRejected(t *testing.T) {
	r := New()
	op := types.AddConstraint{
		Table: "users",
		Constraint: types.Constraint{
			Kind:    types.ConstraintPrimaryKey,
			Columns: []string{"id"},
		},
	}

	_, err := r.RenderSchema(op)
	var umErr render.UnsupportedMigrationError
	if !errors.As(err, &umErr) {
		t.Fatalf("expected UnsupportedMigrationError, got %v", err)
	}
}
