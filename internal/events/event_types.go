package events

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated   EventType = "ticket_created"
	EventTicketEscalated EventType = "ticket_escalated"
	EventTicketValidated EventType = "ticket_validated"
	EventTicketClosed    EventType = "ticket_closed"
	EventTicketDeleted   EventType = "ticket_deleted"
	EventUserProvisioned EventType = "user_provisioned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	CustomerName string                `json:"customer_name"`
	Subject      string                `json:"subject"`
	Status       domain.TicketStatus   `json:"status"`
	Priority     domain.TicketPriority `json:"priority"`
	IsEscalated  bool                  `json:"is_escalated"`
}

// TicketValidatedPayload payload.
type TicketValidatedPayload struct {
	ValidatedBy string    `json:"validated_by"`
	ValidatedAt time.Time `json:"validated_at"`
}

// TicketClosedPayload payload.
type TicketClosedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
}

// UserProvisionedPayload reports both provisioning outcomes explicitly; the
// identity and the profile are created in separate steps and either can fail
// on its own.
type UserProvisionedPayload struct {
	Username        string `json:"username"`
	IdentityCreated bool   `json:"identity_created"`
	ProfileCreated  bool   `json:"profile_created"`
}
