package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// UsersHandler exposes the admin account-management endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Provision handles POST /admin/users. Both provisioning outcomes are
// reported; a partial result with identity_created=true means the profile
// upsert should be retried.
func (h *UsersHandler) Provision(c *fiber.Ctx) error {
	var req dto.ProvisionUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.users.ProvisionUser(c.Context(), req.Username, req.Name, req.Password, req.Nivel)
	if err != nil {
		if result != nil && result.IdentityCreated {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    domainErr.Code,
					"message": domainErr.Message,
				},
				"data": dto.ProvisionUserResponse{
					IdentityCreated: result.IdentityCreated,
					ProfileCreated:  result.ProfileCreated,
				},
			})
		}
		return err
	}

	resp := dto.ProvisionUserResponse{
		IdentityCreated: result.IdentityCreated,
		ProfileCreated:  result.ProfileCreated,
	}
	if result.Profile != nil {
		profile := dto.ProfileFromDomain(result.Profile)
		resp.Profile = &profile
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": resp})
}

// List handles GET /admin/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	profiles, err := h.users.ListProfiles(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		items = append(items, dto.ProfileFromDomain(&profiles[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Delete handles DELETE /admin/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.DeleteProfile(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// ResetPassword handles POST /admin/users/:id/reset-password.
func (h *UsersHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.users.ResetPassword(c.Context(), c.Params("id"), req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"reset": true}})
}
