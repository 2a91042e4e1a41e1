// README: Profile store backed by PostgreSQL.
package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Get(ctx context.Context) (User, bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, email, phone, photo_url, language
		FROM profile
		WHERE id = $1`, localProfileID)

	var u User
	var phone, photoURL sql.NullString
	err := row.Scan(&u.ID, &u.Name, &u.Email, &phone, &photoURL, &u.Language)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, fmt.Errorf("profile get: %w", err)
	}
	u.Phone = phone.String
	u.PhotoURL = photoURL.String
	return u, true, nil
}

func (s *PGStore) Upsert(ctx context.Context, u *User) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO profile (id, name, email, phone, photo_url, language)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			photo_url = EXCLUDED.photo_url,
			language = EXCLUDED.language`,
		string(u.ID), u.Name, u.Email, nullable(u.Phone), nullable(u.PhotoURL), u.Language)
	if err != nil {
		return fmt.Errorf("profile upsert: %w", err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
