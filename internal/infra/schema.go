// README: Startup schema initialization for the Postgres-backed stores.
package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitSchema creates the tables the module stores expect. It is idempotent
// and runs once at startup so local instances need no migration tooling.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	if db == nil {
		return errors.New("init schema: db is nil")
	}

	createFavoritesQuery := `
	CREATE TABLE IF NOT EXISTS favorites (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		pickup_address TEXT NOT NULL,
		pickup_lat DOUBLE PRECISION NOT NULL,
		pickup_lng DOUBLE PRECISION NOT NULL,
		dest_address TEXT NOT NULL,
		dest_lat DOUBLE PRECISION NOT NULL,
		dest_lng DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	createHistoryQuery := `
	CREATE TABLE IF NOT EXISTS search_history (
		id TEXT PRIMARY KEY,
		pickup_address TEXT NOT NULL,
		pickup_lat DOUBLE PRECISION NOT NULL,
		pickup_lng DOUBLE PRECISION NOT NULL,
		dest_address TEXT NOT NULL,
		dest_lat DOUBLE PRECISION NOT NULL,
		dest_lng DOUBLE PRECISION NOT NULL,
		estimates JSONB NOT NULL,
		searched_at TIMESTAMPTZ NOT NULL
	);
	`

	createHistoryIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_search_history_searched_at
	ON search_history (searched_at DESC);
	`

	createPrefsQuery := `
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	createProfileQuery := `
	CREATE TABLE IF NOT EXISTS profile (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		photo_url TEXT,
		language TEXT NOT NULL
	);
	`

	createReportsQuery := `
	CREATE TABLE IF NOT EXISTS fare_reports (
		id BIGSERIAL PRIMARY KEY,
		service_id TEXT NOT NULL,
		pickup_lat DOUBLE PRECISION NOT NULL,
		pickup_lng DOUBLE PRECISION NOT NULL,
		dest_lat DOUBLE PRECISION NOT NULL,
		dest_lng DOUBLE PRECISION NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		actual_fare DOUBLE PRECISION NOT NULL,
		estimated_fare DOUBLE PRECISION NOT NULL,
		note TEXT,
		reported_at TIMESTAMPTZ NOT NULL
	);
	`

	createReportsIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_fare_reports_service_id
	ON fare_reports (service_id);
	`

	statements := []string{
		createFavoritesQuery,
		createHistoryQuery,
		createHistoryIndexQuery,
		createPrefsQuery,
		createProfileQuery,
		createReportsQuery,
		createReportsIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	return nil
}
