package seeder

import (
	"context"
	"fmt"
	"strings"

	"grad-match/internal/database"
)

// EnsureTableColumns fails when the table is missing any of columns, listing
// every missing one.
func EnsureTableColumns(ctx context.Context, db database.Querier, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	var missing []string
	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			missing = append(missing, table+"."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("schema mismatch: missing columns %s", strings.Join(missing, ", "))
	}
	return nil
}
