// Package verify cross-checks plan targets against a live database schema.
package verify

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/planguard/planguard/plan/ast"
	"github.com/planguard/planguard/plan/diagnostics"
)

// Schema is the subset of an introspected database schema the linter needs:
// table names and their column names.
type Schema struct {
	Tables map[string]Table
}

// Table represents one introspected table.
type Table struct {
	Name    string
	Columns map[string]bool
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{Tables: make(map[string]Table)}
}

// AddTable registers a table with its columns.
func (s *Schema) AddTable(name string, columns ...string) {
	table := Table{Name: name, Columns: make(map[string]bool, len(columns))}
	for _, col := range columns {
		table.Columns[col] = true
	}
	s.Tables[name] = table
}

// HasTable reports whether the schema contains the table.
func (s *Schema) HasTable(name string) bool {
	_, ok := s.Tables[name]
	return ok
}

// HasColumn reports whether the table contains the column.
func (s *Schema) HasColumn(table, column string) bool {
	t, ok := s.Tables[table]
	return ok && t.Columns[column]
}

// Introspector reads table and column names from a database.
type Introspector interface {
	Introspect(ctx context.Context) (*Schema, error)
}

// DB wraps a database connection with a provider-specific introspector.
type DB struct {
	conn         *sql.DB
	introspector Introspector
}

// Open connects to the database behind the URL. The driver is picked from
// the URL scheme: postgres:// and postgresql:// use lib/pq, mysql:// uses
// go-sql-driver, everything file-based falls back to sqlite3.
func Open(databaseURL string) (*DB, error) {
	provider := DetectProvider(databaseURL)

	dsn := databaseURL
	if provider == "mysql" {
		// go-sql-driver does not accept URL-style DSNs with a scheme.
		dsn = strings.TrimPrefix(dsn, "mysql://")
	}
	if provider == "sqlite3" {
		dsn = strings.TrimPrefix(dsn, "sqlite://")
		dsn = strings.TrimPrefix(dsn, "file:")
	}

	conn, err := sql.Open(provider, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{conn: conn}
	switch provider {
	case "postgres":
		db.introspector = &postgresIntrospector{conn: conn}
	case "mysql":
		db.introspector = &mysqlIntrospector{conn: conn}
	default:
		db.introspector = &sqliteIntrospector{conn: conn}
	}
	return db, nil
}

// Introspect reads the current database schema.
func (db *DB) Introspect(ctx context.Context) (*Schema, error) {
	return db.introspector.Introspect(ctx)
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// DetectProvider maps a connection URL to a registered sql driver name.
// PostgreSQL's driver registers as "postgres", SQLite's as "sqlite3".
func DetectProvider(databaseURL string) string {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return "postgres"
	case strings.HasPrefix(databaseURL, "mysql://"), strings.Contains(databaseURL, "@tcp("):
		return "mysql"
	default:
		return "sqlite3"
	}
}

// Check compares plan targets against the introspected schema and returns
// one warning per mismatch, in plan order. Warnings never fail a lint run;
// a live schema can be ahead of or behind the plan author's snapshot.
func Check(plan *ast.Plan, schema *Schema) []diagnostics.PlanWarning {
	var warnings []diagnostics.PlanWarning

	for _, op := range plan.Operations {
		if !schema.HasTable(op.Entity) {
			warnings = append(warnings, diagnostics.NewUnknownEntityWarning(op.Entity, op.Span))
			continue
		}

		switch op.Kind {
		case ast.KindAddColumn:
			if schema.HasColumn(op.Entity, op.Field) {
				warnings = append(warnings, diagnostics.NewFieldExistsWarning(op.Entity, op.Field, op.Span))
			}
		case ast.KindDropColumn, ast.KindRenameColumn:
			if !schema.HasColumn(op.Entity, op.Field) {
				warnings = append(warnings, diagnostics.NewUnknownFieldWarning(op.Entity, op.Field, op.Span))
			}
		case ast.KindAddConstraint, ast.KindDropTable:
			// Constraint names are not columns and drop-table has no field.
		}
	}

	return warnings
}
