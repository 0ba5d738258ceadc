package repository

import (
	"context"
	"errors"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// ErrNotFound is returned when a record id does not exist in the store.
var ErrNotFound = errors.New("record not found")

// TicketStore is the persistence contract shared by the remote and the demo
// backend. List returns tickets ordered by creation time descending. Delete
// is idempotent. Concurrent writers are last-write-wins; callers refresh
// their view with a fresh List after every committed mutation, the store
// pushes no change notifications.
type TicketStore interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	List(ctx context.Context) ([]domain.Ticket, error)
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id string) error
}

// ProfileStore persists technician/admin profiles.
type ProfileStore interface {
	GetByID(ctx context.Context, id string) (*domain.UserProfile, error)
	GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error)
	List(ctx context.Context) ([]domain.UserProfile, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) error
	Delete(ctx context.Context, id string) error
}

// CredentialStore keeps login secrets keyed by username. The remote variant
// delegates to the identity table; the demo variant keeps hashes in the local
// document next to the profiles.
type CredentialStore interface {
	GetHash(ctx context.Context, username string) (string, error)
	SetHash(ctx context.Context, username, hash string) error
	Delete(ctx context.Context, username string) error
}
