package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// AuthService implements the session-provider contract: signIn issues a
// token, the auth middleware resolves it back to a profile, signOut is a
// stateless no-op.
type AuthService struct {
	profiles    repository.ProfileStore
	credentials repository.CredentialStore
	tokenMgr    *auth.TokenManager
	bcryptCost  int
	minPassword int
}

// AuthDependencies encapsulates store requirements for the auth service.
type AuthDependencies struct {
	Profiles    repository.ProfileStore
	Credentials repository.CredentialStore
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		profiles:    deps.Profiles,
		credentials: deps.Credentials,
		tokenMgr:    auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost:  cfg.Auth.BcryptCost,
		minPassword: cfg.Auth.MinPasswordLength,
	}
}

// TokenManager exposes the token manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// SignIn authenticates a username/password pair and issues a session token.
func (s *AuthService) SignIn(ctx context.Context, username, password string) (*domain.UserProfile, string, time.Time, error) {
	username = strings.TrimSpace(strings.ToLower(username))

	profile, err := s.profiles.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}

	hash, err := s.credentials.GetHash(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(hash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(profile)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return profile, token, expiresAt, nil
}

// SignOut is a no-op for the stateless token approach.
func (s *AuthService) SignOut(_ context.Context, _ string) error {
	return nil
}

// ChangePassword verifies the current password, stores the new hash and
// clears the forced-change flag.
func (s *AuthService) ChangePassword(ctx context.Context, profileID, current, next string) error {
	if len(next) < s.minPassword {
		return apperrors.NewValidationError("password too short", map[string]any{"min_length": s.minPassword})
	}

	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return apperrors.MapError(err)
	}
	hash, err := s.credentials.GetHash(ctx, profile.Username)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := auth.ComparePassword(hash, current); err != nil {
		return apperrors.NewUnauthorized("current password incorrect")
	}

	newHash, err := auth.HashPassword(next, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	if err := s.credentials.SetHash(ctx, profile.Username, newHash); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	if profile.MustChangePassword {
		profile.MustChangePassword = false
		if err := s.profiles.Upsert(ctx, profile); err != nil {
			return apperrors.NewPersistenceError(err)
		}
	}
	return nil
}
