package verify

import (
	"context"
	"database/sql"
	"fmt"
)

// sqliteIntrospector reads table and column names from SQLite.
type sqliteIntrospector struct {
	conn *sql.DB
}

func (i *sqliteIntrospector) Introspect(ctx context.Context) (*Schema, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`

	rows, err := i.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to introspect tables: %w", err)
	}
	defer rows.Close()

	var tableNames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table row: %w", err)
		}
		tableNames = append(tableNames, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table rows: %w", err)
	}

	schema := NewSchema()
	for _, tableName := range tableNames {
		columns, err := i.introspectColumns(ctx, tableName)
		if err != nil {
			return nil, err
		}
		schema.AddTable(tableName, columns...)
	}

	return schema, nil
}

// introspectColumns reads all columns for a table using PRAGMA
func (i *sqliteIntrospector) introspectColumns(ctx context.Context, tableName string) ([]string, error) {
	query := fmt.Sprintf("PRAGMA table_info(%q)", tableName)

	rows, err := i.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to introspect columns of %s: %w", tableName, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid        int
			name       string
			colType    string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultVal, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}
