// README: Profile service; one local profile, created on first save.
package profile

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrNotFound   = errors.New("no profile saved")
	ErrBadRequest = errors.New("profile needs a name and a valid email")
)

// localProfileID keys the single profile row.
const localProfileID = "local"

type Store interface {
	Get(ctx context.Context) (User, bool, error)
	Upsert(ctx context.Context, u *User) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context) (User, error) {
	u, ok, err := s.store.Get(ctx)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

// Save creates or replaces the local profile.
func (s *Service) Save(ctx context.Context, u User) error {
	if strings.TrimSpace(u.Name) == "" || !strings.Contains(u.Email, "@") {
		return ErrBadRequest
	}
	if u.Language == "" {
		u.Language = "en"
	}
	u.ID = localProfileID
	return s.store.Upsert(ctx, &u)
}
