package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "helpdesk.json")
	store, err := InitializeLocalStore(path, LocalSeed{
		AdminUsername: "admin",
		AdminName:     "Administrator",
		AdminHash:     "$2a$10$stub",
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("InitializeLocalStore() error = %v", err)
	}
	return store
}

func testTicket(id string, createdAt time.Time) *domain.Ticket {
	return &domain.Ticket{
		ID:               id,
		UserID:           "user-1",
		CustomerName:     "Loja A",
		AnalystName:      "Carlos",
		SupportStartTime: createdAt,
		Status:           domain.TicketStatusOpen,
		Priority:         domain.TicketPriorityMedium,
		CreatedAt:        createdAt,
	}
}

func TestLocalStoreCreateVisibleInList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	if err := store.Create(ctx, testTicket("a", base)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := store.Create(ctx, testTicket("b", base.Add(time.Hour))); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tickets, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("len(tickets) = %d, want 2", len(tickets))
	}
	if tickets[0].ID != "b" || tickets[1].ID != "a" {
		t.Fatalf("order = [%s %s], want newest first", tickets[0].ID, tickets[1].ID)
	}
}

func TestLocalStoreUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created := testTicket("a", time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))
	if err := store.Create(ctx, created); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	created.Status = domain.TicketStatusClosed
	created.AnalystAction = "replaced card reader"
	if err := store.Update(ctx, created); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	tickets, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if tickets[0].Status != domain.TicketStatusClosed || tickets[0].AnalystAction != "replaced card reader" {
		t.Fatalf("updated ticket = %+v", tickets[0])
	}

	missing := testTicket("ghost", time.Now())
	if err := store.Update(ctx, missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLocalStoreDeleteIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b"} {
		if err := store.Create(ctx, testTicket(id, base)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		base = base.Add(time.Minute)
	}

	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, "a"); err != nil {
		t.Fatalf("second Delete() error = %v, want nil", err)
	}

	tickets, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tickets) != 1 || tickets[0].ID != "b" {
		t.Fatalf("remaining tickets = %+v, want only b", tickets)
	}
}

func TestLocalStoreSeedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "helpdesk.json")
	seed := LocalSeed{AdminUsername: "admin", AdminName: "Administrator", AdminHash: "hash-1"}

	store, err := InitializeLocalStore(path, seed, zap.NewNop())
	if err != nil {
		t.Fatalf("InitializeLocalStore() error = %v", err)
	}
	if err := store.SetHash(context.Background(), "admin", "hash-2"); err != nil {
		t.Fatalf("SetHash() error = %v", err)
	}

	// a second bootstrap against the same document must not re-seed
	reopened, err := InitializeLocalStore(path, seed, zap.NewNop())
	if err != nil {
		t.Fatalf("InitializeLocalStore() reopen error = %v", err)
	}
	profiles, err := reopened.ListProfiles(context.Background())
	if err != nil {
		t.Fatalf("ListProfiles() error = %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("len(profiles) = %d, want 1", len(profiles))
	}
	hash, err := reopened.GetHash(context.Background(), "admin")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}
	if hash != "hash-2" {
		t.Fatalf("hash = %q, want hash-2 preserved across reopen", hash)
	}
}

func TestLocalStoreDeleteProfileRemovesCredential(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	profile := &domain.UserProfile{
		ID:       "p-1",
		Username: "carlos",
		Name:     "Carlos",
		Nivel:    domain.AccessLevelAnalista,
	}
	if err := store.Upsert(ctx, profile); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := store.SetHash(ctx, "carlos", "hash"); err != nil {
		t.Fatalf("SetHash() error = %v", err)
	}

	if err := store.DeleteProfile(ctx, "p-1"); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}
	if _, err := store.GetHash(ctx, "carlos"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetHash() after delete error = %v, want ErrNotFound", err)
	}
}
