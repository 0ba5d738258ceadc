package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// SignInRequest payload.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResponse payload.
type SignInResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Profile   ProfileResponse `json:"profile"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ProvisionUserRequest payload for admin account creation.
type ProvisionUserRequest struct {
	Username string             `json:"username"`
	Name     string             `json:"name"`
	Password string             `json:"password"`
	Nivel    domain.AccessLevel `json:"nivel"`
}

// ProvisionUserResponse reports both provisioning outcomes.
type ProvisionUserResponse struct {
	IdentityCreated bool             `json:"identity_created"`
	ProfileCreated  bool             `json:"profile_created"`
	Profile         *ProfileResponse `json:"profile,omitempty"`
}

// ResetPasswordRequest payload for admin resets.
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ProfileResponse payload.
type ProfileResponse struct {
	ID                 string             `json:"id"`
	Username           string             `json:"username"`
	Name               string             `json:"name"`
	Nivel              domain.AccessLevel `json:"nivel"`
	MustChangePassword bool               `json:"must_change_password"`
	CreatedAt          time.Time          `json:"created_at"`
}

// ProfileFromDomain converts a profile for responses.
func ProfileFromDomain(profile *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:                 profile.ID,
		Username:           profile.Username,
		Name:               profile.Name,
		Nivel:              profile.Nivel,
		MustChangePassword: profile.MustChangePassword,
		CreatedAt:          profile.CreatedAt,
	}
}
