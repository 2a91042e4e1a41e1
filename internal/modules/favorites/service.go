// README: Favorites service; save, remove by ID, exact address-pair lookup.
package favorites

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"farecast/internal/types"
)

var (
	ErrNotFound   = errors.New("favorite not found")
	ErrBadRequest = errors.New("favorite missing pickup or destination")
)

type Store interface {
	Insert(ctx context.Context, f *Favorite) error
	Delete(ctx context.Context, id types.ID) (bool, error)
	List(ctx context.Context) ([]Favorite, error)
	ExistsByAddresses(ctx context.Context, pickupAddr, destAddr string) (bool, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Save pins a route. The favorite's ID and creation time are assigned here;
// an empty name defaults to "pickup → destination".
func (s *Service) Save(ctx context.Context, f Favorite) (types.ID, error) {
	if f.Pickup.Address == "" || f.Destination.Address == "" {
		return "", ErrBadRequest
	}
	if strings.TrimSpace(f.Name) == "" {
		f.Name = f.Pickup.Address + " → " + f.Destination.Address
	}
	f.ID = types.ID(uuid.NewString())
	f.CreatedAt = time.Now().UTC()
	if err := s.store.Insert(ctx, &f); err != nil {
		return "", err
	}
	return f.ID, nil
}

// Remove deletes the favorite with the given ID. Removing an unknown ID is
// ErrNotFound; other entries are never touched.
func (s *Service) Remove(ctx context.Context, id types.ID) error {
	removed, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Favorite, error) {
	return s.store.List(ctx)
}

// IsFavorite reports whether a favorite exists whose pickup and destination
// addresses both match exactly (case-sensitive). Coordinates are ignored;
// address text is the identity key throughout the app.
func (s *Service) IsFavorite(ctx context.Context, pickupAddr, destAddr string) (bool, error) {
	return s.store.ExistsByAddresses(ctx, pickupAddr, destAddr)
}
