// README: Search history store backed by PostgreSQL; estimates land in a JSONB column.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farecast/internal/modules/estimate"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Insert(ctx context.Context, search *RouteSearch) error {
	payload, err := json.Marshal(search.Estimates)
	if err != nil {
		return fmt.Errorf("history insert: marshal estimates: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO search_history (
			id, pickup_address, pickup_lat, pickup_lng,
			dest_address, dest_lat, dest_lng,
			estimates, searched_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		string(search.ID),
		search.Pickup.Address, search.Pickup.Lat, search.Pickup.Lng,
		search.Destination.Address, search.Destination.Lat, search.Destination.Lng,
		payload,
		search.SearchedAt,
	)
	if err != nil {
		return fmt.Errorf("history insert: %w", err)
	}
	return nil
}

// TrimToNewest deletes every row except the n most recent.
func (s *PGStore) TrimToNewest(ctx context.Context, n int) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM search_history
		WHERE id NOT IN (
			SELECT id FROM search_history
			ORDER BY searched_at DESC
			LIMIT $1
		)`, n)
	if err != nil {
		return fmt.Errorf("history trim: %w", err)
	}
	return nil
}

func (s *PGStore) ListRecent(ctx context.Context, limit int) ([]RouteSearch, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, pickup_address, pickup_lat, pickup_lng,
		       dest_address, dest_lat, dest_lng,
		       estimates, searched_at
		FROM search_history
		ORDER BY searched_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}
	defer rows.Close()
	return scanSearches(rows)
}

func (s *PGStore) ListByRoute(ctx context.Context, pickupAddr, destAddr string, limit int) ([]RouteSearch, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, pickup_address, pickup_lat, pickup_lng,
		       dest_address, dest_lat, dest_lng,
		       estimates, searched_at
		FROM search_history
		WHERE pickup_address = $1 AND dest_address = $2
		ORDER BY searched_at DESC
		LIMIT $3`, pickupAddr, destAddr, limit)
	if err != nil {
		return nil, fmt.Errorf("history list by route: %w", err)
	}
	defer rows.Close()
	return scanSearches(rows)
}

func (s *PGStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM search_history`); err != nil {
		return fmt.Errorf("history clear: %w", err)
	}
	return nil
}

func scanSearches(rows pgx.Rows) ([]RouteSearch, error) {
	var out []RouteSearch
	for rows.Next() {
		var rs RouteSearch
		var payload []byte
		err := rows.Scan(
			&rs.ID,
			&rs.Pickup.Address, &rs.Pickup.Lat, &rs.Pickup.Lng,
			&rs.Destination.Address, &rs.Destination.Lat, &rs.Destination.Lng,
			&payload, &rs.SearchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("history scan: %w", err)
		}
		if err := json.Unmarshal(payload, &rs.Estimates); err != nil {
			// Corrupt estimate payloads degrade to an entry without quotes
			// rather than failing the whole read.
			rs.Estimates = []estimate.PriceEstimate{}
		}
		out = append(out, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history rows: %w", err)
	}
	return out, nil
}
