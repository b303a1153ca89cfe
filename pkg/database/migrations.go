package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on problem statements
// and final solutions from the session list page.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_sessions_problem_statement_gin
		ON sessions USING gin(to_tsvector('english', problem_statement))`)
	if err != nil {
		return fmt.Errorf("failed to create problem_statement GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_sessions_final_solution_gin
		ON sessions USING gin(to_tsvector('english', COALESCE(final_solution, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create final_solution GIN index: %w", err)
	}

	return nil
}
