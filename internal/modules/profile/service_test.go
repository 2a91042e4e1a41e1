package profile

import (
	"context"
	"errors"
	"testing"
)

type memStore struct {
	u   *User
	err error
}

func (m *memStore) Get(ctx context.Context) (User, bool, error) {
	if m.err != nil {
		return User{}, false, m.err
	}
	if m.u == nil {
		return User{}, false, nil
	}
	return *m.u, true, nil
}

func (m *memStore) Upsert(ctx context.Context, u *User) error {
	if m.err != nil {
		return m.err
	}
	m.u = u
	return nil
}

func TestGet_NoProfile(t *testing.T) {
	svc := NewService(&memStore{})
	if _, err := svc.Get(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSaveAndGet(t *testing.T) {
	svc := NewService(&memStore{})
	ctx := context.Background()

	err := svc.Save(ctx, User{Name: "Ade", Email: "ade@example.com", Phone: "+2348012345678"})
	if err != nil {
		t.Fatal(err)
	}

	u, err := svc.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != "local" {
		t.Errorf("profile ID = %q, want local", u.ID)
	}
	if u.Language != "en" {
		t.Errorf("language not defaulted: %q", u.Language)
	}
}

func TestSave_Validation(t *testing.T) {
	svc := NewService(&memStore{})
	ctx := context.Background()

	cases := []User{
		{Name: "", Email: "a@b.c"},
		{Name: "  ", Email: "a@b.c"},
		{Name: "Ade", Email: "not-an-email"},
	}
	for _, u := range cases {
		if err := svc.Save(ctx, u); !errors.Is(err, ErrBadRequest) {
			t.Errorf("Save(%+v) = %v, want ErrBadRequest", u, err)
		}
	}
}
