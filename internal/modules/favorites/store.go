// README: Favorites store backed by PostgreSQL.
package favorites

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"farecast/internal/types"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Insert(ctx context.Context, f *Favorite) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO favorites (
			id, name,
			pickup_address, pickup_lat, pickup_lng,
			dest_address, dest_lat, dest_lng,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		string(f.ID), f.Name,
		f.Pickup.Address, f.Pickup.Lat, f.Pickup.Lng,
		f.Destination.Address, f.Destination.Lat, f.Destination.Lng,
		f.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("favorites insert: %w", err)
	}
	return nil
}

func (s *PGStore) Delete(ctx context.Context, id types.ID) (bool, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, string(id))
	if err != nil {
		return false, fmt.Errorf("favorites delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PGStore) List(ctx context.Context) ([]Favorite, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name,
		       pickup_address, pickup_lat, pickup_lng,
		       dest_address, dest_lat, dest_lng,
		       created_at
		FROM favorites
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("favorites list: %w", err)
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		err := rows.Scan(
			&f.ID, &f.Name,
			&f.Pickup.Address, &f.Pickup.Lat, &f.Pickup.Lng,
			&f.Destination.Address, &f.Destination.Lat, &f.Destination.Lng,
			&f.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("favorites scan: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("favorites rows: %w", err)
	}
	return out, nil
}

func (s *PGStore) ExistsByAddresses(ctx context.Context, pickupAddr, destAddr string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM favorites
			WHERE pickup_address = $1 AND dest_address = $2
		)`, pickupAddr, destAddr).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("favorites exists: %w", err)
	}
	return exists, nil
}
