package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/ticket"
)

// localDocument is the single flat document the demo store persists. Tickets
// are kept as camelCase records so the document stays readable and matches
// what the local mapper produces.
type localDocument struct {
	Tickets     []ticket.LocalRecord `json:"tickets"`
	Profiles    []localProfile       `json:"profiles"`
	Credentials map[string]string    `json:"credentials"`
}

type localProfile struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	Name               string `json:"name"`
	Nivel              string `json:"nivel"`
	MustChangePassword bool   `json:"mustChangePassword"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

// LocalStore is the demo-mode backend: one JSON document on disk standing in
// for the remote database. It implements TicketStore, ProfileStore and
// CredentialStore. All access goes through a single mutex; the document on
// disk is the sole source of truth and is rewritten on every mutation.
type LocalStore struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
	doc    localDocument
}

// LocalSeed describes the account created when the demo document does not
// exist yet. Seeding happens here, explicitly at bootstrap, never as a side
// effect of first read.
type LocalSeed struct {
	AdminUsername string
	AdminName     string
	AdminHash     string
}

// InitializeLocalStore opens (or creates and seeds) the demo document at
// path and returns a store handle.
func InitializeLocalStore(path string, seed LocalSeed, logger *zap.Logger) (*LocalStore, error) {
	store := &LocalStore{path: path, logger: logger}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &store.doc); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		store.doc = localDocument{Credentials: map[string]string{}}
		store.seed(seed)
		if err := store.flush(); err != nil {
			return nil, err
		}
		logger.Info("demo store created", zap.String("path", path))
	default:
		return nil, err
	}

	if store.doc.Credentials == nil {
		store.doc.Credentials = map[string]string{}
	}
	return store, nil
}

func (s *LocalStore) seed(seed LocalSeed) {
	if seed.AdminUsername == "" {
		return
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	s.doc.Profiles = append(s.doc.Profiles, localProfile{
		ID:                 uuid.NewString(),
		Username:           seed.AdminUsername,
		Name:               seed.AdminName,
		Nivel:              string(domain.AccessLevelAdmin),
		MustChangePassword: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	s.doc.Credentials[seed.AdminUsername] = seed.AdminHash
}

func (s *LocalStore) flush() error {
	raw, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

// Create appends a ticket record and persists the document.
func (s *LocalStore) Create(_ context.Context, t *domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Tickets = append(s.doc.Tickets, ticket.ToLocalRecord(t))
	return s.flush()
}

// List returns all tickets ordered by creation time descending.
func (s *LocalStore) List(_ context.Context) ([]domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.Ticket, 0, len(s.doc.Tickets))
	for _, record := range s.doc.Tickets {
		result = append(result, *ticket.FromLocalRecord(record))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// Update replaces the record with a matching id.
func (s *LocalStore) Update(_ context.Context, t *domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.doc.Tickets {
		if id, _ := record["id"].(string); id == t.ID {
			s.doc.Tickets[i] = ticket.ToLocalRecord(t)
			return s.flush()
		}
	}
	return ErrNotFound
}

// Delete removes the record with the given id; deleting an absent id is a
// no-op.
func (s *LocalStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.doc.Tickets {
		if recordID, _ := record["id"].(string); recordID == id {
			s.doc.Tickets = append(s.doc.Tickets[:i], s.doc.Tickets[i+1:]...)
			return s.flush()
		}
	}
	return nil
}

// GetByID returns the profile with the given id.
func (s *LocalStore) GetByID(_ context.Context, id string) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, profile := range s.doc.Profiles {
		if profile.ID == id {
			return profileFromLocal(profile), nil
		}
	}
	return nil, ErrNotFound
}

// GetByUsername returns the profile with the given login name.
func (s *LocalStore) GetByUsername(_ context.Context, username string) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, profile := range s.doc.Profiles {
		if profile.Username == username {
			return profileFromLocal(profile), nil
		}
	}
	return nil, ErrNotFound
}

// ListProfiles returns all profiles ordered by username.
func (s *LocalStore) ListProfiles(_ context.Context) ([]domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.UserProfile, 0, len(s.doc.Profiles))
	for _, profile := range s.doc.Profiles {
		result = append(result, *profileFromLocal(profile))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result, nil
}

// Upsert inserts or replaces a profile keyed by id.
func (s *LocalStore) Upsert(_ context.Context, profile *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	record := localProfile{
		ID:                 profile.ID,
		Username:           profile.Username,
		Name:               profile.Name,
		Nivel:              string(profile.Nivel),
		MustChangePassword: profile.MustChangePassword,
		CreatedAt:          now.Format(time.RFC3339Nano),
		UpdatedAt:          now.Format(time.RFC3339Nano),
	}
	for i, existing := range s.doc.Profiles {
		if existing.ID == profile.ID {
			record.CreatedAt = existing.CreatedAt
			s.doc.Profiles[i] = record
			profile.UpdatedAt = now
			return s.flush()
		}
	}
	s.doc.Profiles = append(s.doc.Profiles, record)
	profile.CreatedAt = now
	profile.UpdatedAt = now
	return s.flush()
}

// DeleteProfile removes a profile and its paired credential. Unlike the
// remote variant, the demo store can fully delete the identity.
func (s *LocalStore) DeleteProfile(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, profile := range s.doc.Profiles {
		if profile.ID == id {
			delete(s.doc.Credentials, profile.Username)
			s.doc.Profiles = append(s.doc.Profiles[:i], s.doc.Profiles[i+1:]...)
			return s.flush()
		}
	}
	return nil
}

// GetHash returns the stored password hash for a username.
func (s *LocalStore) GetHash(_ context.Context, username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, ok := s.doc.Credentials[username]
	if !ok {
		return "", ErrNotFound
	}
	return hash, nil
}

// SetHash stores a password hash for a username.
func (s *LocalStore) SetHash(_ context.Context, username, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Credentials[username] = hash
	return s.flush()
}

// DeleteHash removes the credential for a username.
func (s *LocalStore) DeleteHash(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.doc.Credentials, username)
	return s.flush()
}

// Profiles returns the ProfileStore view of the demo document.
func (s *LocalStore) Profiles() ProfileStore {
	return localProfiles{s}
}

// Credentials returns the CredentialStore view of the demo document.
func (s *LocalStore) Credentials() CredentialStore {
	return localCredentials{s}
}

type localProfiles struct{ store *LocalStore }

func (p localProfiles) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	return p.store.GetByID(ctx, id)
}

func (p localProfiles) GetByUsername(ctx context.Context, username string) (*domain.UserProfile, error) {
	return p.store.GetByUsername(ctx, username)
}

func (p localProfiles) List(ctx context.Context) ([]domain.UserProfile, error) {
	return p.store.ListProfiles(ctx)
}

func (p localProfiles) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	return p.store.Upsert(ctx, profile)
}

func (p localProfiles) Delete(ctx context.Context, id string) error {
	return p.store.DeleteProfile(ctx, id)
}

type localCredentials struct{ store *LocalStore }

func (c localCredentials) GetHash(ctx context.Context, username string) (string, error) {
	return c.store.GetHash(ctx, username)
}

func (c localCredentials) SetHash(ctx context.Context, username, hash string) error {
	return c.store.SetHash(ctx, username, hash)
}

func (c localCredentials) Delete(ctx context.Context, username string) error {
	return c.store.DeleteHash(ctx, username)
}

func profileFromLocal(record localProfile) *domain.UserProfile {
	profile := &domain.UserProfile{
		ID:                 record.ID,
		Username:           record.Username,
		Name:               record.Name,
		Nivel:              domain.AccessLevel(record.Nivel),
		MustChangePassword: record.MustChangePassword,
	}
	if parsed, err := time.Parse(time.RFC3339Nano, record.CreatedAt); err == nil {
		profile.CreatedAt = parsed
	}
	if parsed, err := time.Parse(time.RFC3339Nano, record.UpdatedAt); err == nil {
		profile.UpdatedAt = parsed
	}
	return profile
}
