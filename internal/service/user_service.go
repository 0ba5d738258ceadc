package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// UserService manages technician/admin accounts.
type UserService struct {
	profiles    repository.ProfileStore
	credentials repository.CredentialStore
	dispatcher  events.Dispatcher
	bcryptCost  int
	minPassword int

	// demoMode controls whether deleting a profile also removes the paired
	// credential. The remote identity record cannot be fully deleted through
	// this service; that asymmetry is deliberate and documented.
	demoMode bool
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	Profiles    repository.ProfileStore
	Credentials repository.CredentialStore
	Dispatcher  events.Dispatcher
	BcryptCost  int
	MinPassword int
	DemoMode    bool
}

// ProvisionResult reports both provisioning outcomes explicitly rather than
// pretending the two-step create is atomic.
type ProvisionResult struct {
	Profile         *domain.UserProfile
	IdentityCreated bool
	ProfileCreated  bool
}

// NewUserService builds the service.
func NewUserService(deps UserDependencies) *UserService {
	cost := deps.BcryptCost
	if cost <= 0 {
		cost = 12
	}
	minPassword := deps.MinPassword
	if minPassword <= 0 {
		minPassword = 6
	}
	return &UserService{
		profiles:    deps.Profiles,
		credentials: deps.Credentials,
		dispatcher:  deps.Dispatcher,
		bcryptCost:  cost,
		minPassword: minPassword,
		demoMode:    deps.DemoMode,
	}
}

// ProvisionUser creates the credential and then the profile. When the second
// step fails the credential is left in place and the partial result is
// returned alongside the error; a later profile upsert retry is the expected
// recovery.
func (s *UserService) ProvisionUser(ctx context.Context, username, name, password string, nivel domain.AccessLevel) (*ProvisionResult, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	name = strings.TrimSpace(name)
	if username == "" || name == "" {
		return nil, apperrors.NewValidationError("username and name required", nil)
	}
	if len(password) < s.minPassword {
		return nil, apperrors.NewValidationError("password too short", map[string]any{"min_length": s.minPassword})
	}
	if !domain.ValidAccessLevel(nivel) {
		return nil, apperrors.NewValidationError("unknown access level", map[string]any{"nivel": nivel})
	}
	if _, err := s.profiles.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewConflict("username already taken", map[string]any{"username": username})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	result := &ProvisionResult{}
	if err := s.credentials.SetHash(ctx, username, hash); err != nil {
		return result, apperrors.NewPersistenceError(err)
	}
	result.IdentityCreated = true

	profile := &domain.UserProfile{
		ID:       uuid.NewString(),
		Username: username,
		Name:     name,
		Nivel:    nivel,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		// recoverable inconsistency: identity exists without a profile
		return result, apperrors.NewPersistenceError(err)
	}
	result.ProfileCreated = true
	result.Profile = profile

	s.publishProvisioned(ctx, result, username)
	return result, nil
}

// ListProfiles returns all profiles.
func (s *UserService) ListProfiles(ctx context.Context) ([]domain.UserProfile, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return profiles, nil
}

// DeleteProfile removes a profile. In demo mode the paired credential is
// removed too; against the remote backend the identity record survives.
func (s *UserService) DeleteProfile(ctx context.Context, id string) error {
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return apperrors.MapError(err)
	}
	if err := s.profiles.Delete(ctx, id); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	if s.demoMode {
		if err := s.credentials.Delete(ctx, profile.Username); err != nil {
			return apperrors.NewPersistenceError(err)
		}
	}
	return nil
}

// ResetPassword sets a new password for a user and forces a change at next
// login.
func (s *UserService) ResetPassword(ctx context.Context, id, newPassword string) error {
	if len(newPassword) < s.minPassword {
		return apperrors.NewValidationError("password too short", map[string]any{"min_length": s.minPassword})
	}
	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := s.credentials.SetHash(ctx, profile.Username, hash); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	profile.MustChangePassword = true
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

func (s *UserService) publishProvisioned(ctx context.Context, result *ProvisionResult, username string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventUserProvisioned,
		ActorID:   username,
		Timestamp: time.Now(),
		Payload: events.UserProvisionedPayload{
			Username:        username,
			IdentityCreated: result.IdentityCreated,
			ProfileCreated:  result.ProfileCreated,
		},
	})
}
