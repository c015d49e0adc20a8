package verify

import (
	"context"
	"database/sql"
	"fmt"
)

// postgresIntrospector reads table and column names from PostgreSQL.
type postgresIntrospector struct {
	conn *sql.DB
}

func (i *postgresIntrospector) Introspect(ctx context.Context) (*Schema, error) {
	query := `
		SELECT table_name, column_name
		FROM information_schema.columns
		WHERE table_schema = 'public'
		ORDER BY table_name, ordinal_position`

	rows, err := i.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to introspect columns: %w", err)
	}
	defer rows.Close()

	schema := NewSchema()
	for rows.Next() {
		var tableName, columnName string
		if err := rows.Scan(&tableName, &columnName); err != nil {
			return nil, fmt.Errorf("failed to scan column row: %w", err)
		}
		table, ok := schema.Tables[tableName]
		if !ok {
			schema.AddTable(tableName)
			table = schema.Tables[tableName]
		}
		table.Columns[columnName] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read column rows: %w", err)
	}

	return schema, nil
}
