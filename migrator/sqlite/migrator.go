package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// migrationFiles holds the employee role tables and the vacation table
//
//go:embed sql/*.sql
var migrationFiles embed.FS

// Migrate applies every pending migration in version order
func Migrate(db *sql.DB) error {
	m := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := m.Migrate(migrationFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate staff desk schema: %w", err)
	}

	return nil
}
