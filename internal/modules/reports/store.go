// README: Fare report store backed by PostgreSQL; rollups computed in SQL.
package reports

import (
	"context"
	"database/sql"
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

func (s *PGStore) Insert(ctx context.Context, r *FareReport) error {
	var note *string
	if r.Note != "" {
		note = &r.Note
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO fare_reports (
			service_id, pickup_lat, pickup_lng, dest_lat, dest_lng,
			distance_km, actual_fare, estimated_fare, note, reported_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		string(r.ServiceID),
		r.Pickup.Lat, r.Pickup.Lng, r.Destination.Lat, r.Destination.Lng,
		r.DistanceKm, r.ActualFare, r.EstimatedFare, note, r.ReportedAt)
	if err := row.Scan(&r.ID); err != nil {
		return fmt.Errorf("reports insert: %w", err)
	}
	return nil
}

func (s *PGStore) ListByService(ctx context.Context, serviceID types.ID, limit int) ([]FareReport, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, service_id, pickup_lat, pickup_lng, dest_lat, dest_lng,
		       distance_km, actual_fare, estimated_fare, note, reported_at
		FROM fare_reports
		WHERE service_id = $1
		ORDER BY reported_at DESC
		LIMIT $2`, string(serviceID), limit)
	if err != nil {
		return nil, fmt.Errorf("reports list: %w", err)
	}
	defer rows.Close()

	var out []FareReport
	for rows.Next() {
		var r FareReport
		var note sql.NullString
		err := rows.Scan(
			&r.ID, &r.ServiceID,
			&r.Pickup.Lat, &r.Pickup.Lng, &r.Destination.Lat, &r.Destination.Lng,
			&r.DistanceKm, &r.ActualFare, &r.EstimatedFare, &note, &r.ReportedAt)
		if err != nil {
			return nil, fmt.Errorf("reports scan: %w", err)
		}
		r.Note = note.String
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reports rows: %w", err)
	}
	return out, nil
}

func (s *PGStore) CountByService(ctx context.Context) (map[types.ID]int, error) {
	rows, err := s.db.Query(ctx, `
		SELECT service_id, COUNT(*)
		FROM fare_reports
		GROUP BY service_id`)
	if err != nil {
		return nil, fmt.Errorf("reports count: %w", err)
	}
	defer rows.Close()

	out := map[types.ID]int{}
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("reports count scan: %w", err)
		}
		out[types.ID(id)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reports count rows: %w", err)
	}
	return out, nil
}

func (s *PGStore) AccuracyByService(ctx context.Context) ([]ServiceAccuracy, error) {
	rows, err := s.db.Query(ctx, `
		SELECT service_id,
		       COUNT(*),
		       AVG(ABS(actual_fare - estimated_fare)),
		       AVG(actual_fare)
		FROM fare_reports
		GROUP BY service_id
		ORDER BY service_id`)
	if err != nil {
		return nil, fmt.Errorf("reports accuracy: %w", err)
	}
	defer rows.Close()

	var out []ServiceAccuracy
	for rows.Next() {
		var a ServiceAccuracy
		if err := rows.Scan(&a.ServiceID, &a.ReportCount, &a.MeanAbsoluteError, &a.MeanActualFare); err != nil {
			return nil, fmt.Errorf("reports accuracy scan: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reports accuracy rows: %w", err)
	}
	return out, nil
}
