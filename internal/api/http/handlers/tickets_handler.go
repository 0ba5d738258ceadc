package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/internal/ticket"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := service.TicketCreateInput{
		CustomerName:        req.CustomerName,
		LocationName:        req.LocationName,
		TaskID:              req.TaskID,
		ServiceRequest:      req.ServiceRequest,
		Hostname:            req.Hostname,
		Subject:             req.Subject,
		AnalystName:         req.AnalystName,
		SupportStartTime:    req.SupportStartTime,
		SupportEndTime:      req.SupportEndTime,
		Description:         req.Description,
		AnalystAction:       req.AnalystAction,
		IsDueCall:           req.IsDueCall,
		UsedACFS:            req.UsedACFS,
		HasInkStaining:      req.HasInkStaining,
		PartReplaced:        req.PartReplaced,
		PartDescription:     req.PartDescription,
		TagVLDD:             req.TagVLDD,
		TagNLVDD:            req.TagNLVDD,
		IsEscalated:         req.IsEscalated,
		RequestAISuggestion: req.RequestAISuggestion,
	}
	created, err := h.service.CreateTicket(c.Context(), principal.Profile.ID, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.TicketFromDomain(created)})
}

// ListTickets GET /tickets.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	tickets, err := h.service.ListTickets(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.TicketFromDomain(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListPendingEscalations GET /tickets/pending-escalations.
func (h *TicketsHandler) ListPendingEscalations(c *fiber.Ctx) error {
	tickets, err := h.service.ListPendingEscalations(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.TicketFromDomain(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	found, err := h.service.GetTicket(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketFromDomain(found)})
}

// ValidateTicket POST /tickets/:id/validate.
func (h *TicketsHandler) ValidateTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.ValidateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	input := ticket.ValidationInput{
		TaskID:            req.TaskID,
		Hostname:          req.Hostname,
		ServiceRequest:    req.ServiceRequest,
		AnalystAction:     req.AnalystAction,
		TestWithCard:      req.TestWithCard,
		SICWithdrawal:     req.SICWithdrawal,
		SICDeposit:        req.SICDeposit,
		SICSensors:        req.SICSensors,
		SICSmartPower:     req.SICSmartPower,
		ClientWitnessName: req.ClientWitnessName,
		ClientWitnessID:   req.ClientWitnessID,
	}
	validated, err := h.service.ValidateTicket(c.Context(), c.Params("id"), input, principal.Profile.Name)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketFromDomain(validated)})
}

// CloseTicket POST /tickets/:id/close.
func (h *TicketsHandler) CloseTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return apperrors.NewUnauthorized("user required")
	}
	closed, err := h.service.CloseTicket(c.Context(), c.Params("id"), principal.Profile.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.TicketFromDomain(closed)})
}

// DeleteTicket DELETE /tickets/:id.
func (h *TicketsHandler) DeleteTicket(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Profile == nil {
		return apperrors.NewUnauthorized("user required")
	}
	if err := h.service.DeleteTicket(c.Context(), c.Params("id"), principal.Profile.ID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
