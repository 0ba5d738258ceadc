package auth

import (
	"testing"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	profile := &domain.UserProfile{
		ID:       "profile-1",
		Username: "maria",
		Name:     "Maria Souza",
		Nivel:    domain.AccessLevelAdmin,
	}

	token, expiresAt, err := tm.GenerateToken(profile)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("GenerateToken() expiresAt = %v, want future time", expiresAt)
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.SubjectID != profile.ID {
		t.Errorf("claims.SubjectID = %q, want %q", claims.SubjectID, profile.ID)
	}
	if claims.Username != profile.Username {
		t.Errorf("claims.Username = %q, want %q", claims.Username, profile.Username)
	}
	if claims.Nivel != domain.AccessLevelAdmin {
		t.Errorf("claims.Nivel = %q, want %q", claims.Nivel, domain.AccessLevelAdmin)
	}
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)
	other := NewTokenManager("other-secret", 60)

	profile := &domain.UserProfile{ID: "profile-1", Username: "maria", Nivel: domain.AccessLevelAnalista}
	token, _, err := other.GenerateToken(profile)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: token},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tm.ParseToken(tc.token); err == nil {
				t.Fatal("ParseToken() error = nil, want error")
			}
		})
	}
}
