package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// staticProfiles serves a single fixed profile for transport tests.
type staticProfiles struct {
	profile *domain.UserProfile
}

func (s staticProfiles) GetByID(_ context.Context, id string) (*domain.UserProfile, error) {
	if s.profile != nil && s.profile.ID == id {
		return s.profile, nil
	}
	return nil, repository.ErrNotFound
}

func (s staticProfiles) GetByUsername(_ context.Context, username string) (*domain.UserProfile, error) {
	if s.profile != nil && s.profile.Username == username {
		return s.profile, nil
	}
	return nil, repository.ErrNotFound
}

func (s staticProfiles) List(context.Context) ([]domain.UserProfile, error) {
	if s.profile == nil {
		return nil, nil
	}
	return []domain.UserProfile{*s.profile}, nil
}

func (s staticProfiles) Upsert(context.Context, *domain.UserProfile) error { return nil }

func (s staticProfiles) Delete(context.Context, string) error { return nil }

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newGuardedApp(t *testing.T, profile *domain.UserProfile) (*fiber.App, *auth.TokenManager) {
	t.Helper()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)

	tokens := auth.NewTokenManager("test-secret", 60)
	middleware := auth.NewAuthMiddleware(tokens, staticProfiles{profile: profile})

	app.Get("/admin/ping", middleware.Handle, auth.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": "pong"})
	})
	return app, tokens
}

func decodeError(t *testing.T, resp *http.Response) errorEnvelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode body %q: %v", body, err)
	}
	return envelope
}

func TestAdminRouteRejectsUnauthenticated(t *testing.T) {
	app, _ := newGuardedApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/ping", nil))
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
	if envelope := decodeError(t, resp); envelope.Error.Code != "UNAUTHORIZED" {
		t.Fatalf("error.code = %q, want UNAUTHORIZED", envelope.Error.Code)
	}
}

func TestAdminRouteRejectsAnalista(t *testing.T) {
	profile := &domain.UserProfile{
		ID:       "profile-1",
		Username: "joao",
		Name:     "Joao Lima",
		Nivel:    domain.AccessLevelAnalista,
	}
	app, tokens := newGuardedApp(t, profile)

	token, _, err := tokens.GenerateToken(profile)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}
	if envelope := decodeError(t, resp); envelope.Error.Code != "FORBIDDEN" {
		t.Fatalf("error.code = %q, want FORBIDDEN", envelope.Error.Code)
	}
}

func TestAdminRouteAdmitsAdmin(t *testing.T) {
	profile := &domain.UserProfile{
		ID:       "profile-2",
		Username: "maria",
		Name:     "Maria Souza",
		Nivel:    domain.AccessLevelAdmin,
	}
	app, tokens := newGuardedApp(t, profile)

	token, _, err := tokens.GenerateToken(profile)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
