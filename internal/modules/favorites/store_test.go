// README: DB-backed favorites store tests; skipped without FARECAST_TEST_DSN.
package favorites

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"farecast/internal/infra"
	"farecast/internal/types"
)

func setupTestStore(t *testing.T) *PGStore {
	t.Helper()

	dsn := os.Getenv("FARECAST_TEST_DSN")
	if dsn == "" {
		t.Skip("FARECAST_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := infra.InitSchema(ctx, db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE favorites"); err != nil {
		t.Fatalf("truncate favorites: %v", err)
	}
	return NewStore(db)
}

func TestPGStore_InsertListDelete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	fav := &Favorite{
		ID:   "fav-1",
		Name: "Home to Work",
		Pickup: types.Location{
			Address: "Yaba, Lagos", Lat: 6.5095, Lng: 3.3711,
		},
		Destination: types.Location{
			Address: "Victoria Island, Lagos", Lat: 6.4281, Lng: 3.4219,
		},
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := store.Insert(ctx, fav); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d favorites, want 1", len(got))
	}
	if got[0].ID != fav.ID || got[0].Pickup.Address != fav.Pickup.Address {
		t.Errorf("round trip mismatch: %+v", got[0])
	}

	exists, err := store.ExistsByAddresses(ctx, fav.Pickup.Address, fav.Destination.Address)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("expected route to be favorited")
	}
	// Address identity is the exact string.
	exists, err = store.ExistsByAddresses(ctx, "yaba, lagos", fav.Destination.Address)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Error("lowercased pickup must not match")
	}

	removed, err := store.Delete(ctx, fav.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !removed {
		t.Error("expected delete to report a removed row")
	}
	removed, err = store.Delete(ctx, fav.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if removed {
		t.Error("second delete must be a no-op")
	}
}
