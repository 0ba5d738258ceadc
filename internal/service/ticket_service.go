package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/helpdesk-service/internal/classifier"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/ticket"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// SnapshotCache holds the last successful list result. Implementations must
// treat writes as best effort; a missing snapshot only costs a store read.
type SnapshotCache interface {
	StoreSnapshot(ctx context.Context, tickets []domain.Ticket)
	LoadSnapshot(ctx context.Context) ([]domain.Ticket, bool)
	Invalidate(ctx context.Context)
}

// TicketService coordinates the ticket workflows: derivation, lifecycle,
// persistence and the snapshot refresh that follows every committed write.
type TicketService struct {
	store      repository.TicketStore
	cache      SnapshotCache
	classifier classifier.Classifier
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Store      repository.TicketStore
	Cache      SnapshotCache
	Classifier classifier.Classifier
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes the creation form payload.
type TicketCreateInput struct {
	CustomerName     string
	LocationName     string
	TaskID           string
	ServiceRequest   string
	Hostname         string
	Subject          string
	AnalystName      string
	SupportStartTime time.Time
	SupportEndTime   *time.Time
	Description      string
	AnalystAction    string
	IsDueCall        bool
	UsedACFS         bool
	HasInkStaining   bool
	PartReplaced     bool
	PartDescription  string
	TagVLDD          bool
	TagNLVDD         bool
	IsEscalated      bool

	// RequestAISuggestion asks the classifier for an advisory triage before
	// resolution; a failed classification degrades to the manual-only branch.
	RequestAISuggestion bool
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		store:      deps.Store,
		cache:      deps.Cache,
		classifier: deps.Classifier,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket derives priority/escalation and initial status, persists the
// ticket, and refreshes the list snapshot. Classification is best effort and
// never blocks creation.
func (s *TicketService) CreateTicket(ctx context.Context, userID string, input TicketCreateInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperrors.NewValidationError("customer_name required", nil)
	}
	if input.SupportStartTime.IsZero() {
		return nil, apperrors.NewValidationError("support_start_time required", nil)
	}

	var classification *domain.Classification
	if input.RequestAISuggestion && s.classifier != nil {
		classification = s.classifier.Classify(ctx, input.Description)
	}

	resolution := ticket.Resolve(input.IsEscalated, classification)

	t := &domain.Ticket{
		ID:               uuid.NewString(),
		UserID:           userID,
		CustomerName:     strings.TrimSpace(input.CustomerName),
		LocationName:     strings.TrimSpace(input.LocationName),
		TaskID:           strings.TrimSpace(input.TaskID),
		ServiceRequest:   strings.TrimSpace(input.ServiceRequest),
		Hostname:         strings.TrimSpace(input.Hostname),
		Subject:          strings.TrimSpace(input.Subject),
		AnalystName:      strings.TrimSpace(input.AnalystName),
		SupportStartTime: input.SupportStartTime,
		SupportEndTime:   input.SupportEndTime,
		Description:      strings.TrimSpace(input.Description),
		AnalystAction:    strings.TrimSpace(input.AnalystAction),
		IsDueCall:        input.IsDueCall,
		UsedACFS:         input.UsedACFS,
		HasInkStaining:   input.HasInkStaining,
		PartReplaced:     input.PartReplaced,
		PartDescription:  strings.TrimSpace(input.PartDescription),
		TagVLDD:          input.TagVLDD,
		TagNLVDD:         input.TagNLVDD,
		Status:           ticket.InitialStatus(input.SupportEndTime),
		Priority:         resolution.Priority,
		IsEscalated:      resolution.IsEscalated,
		CreatedAt:        time.Now().UTC(),
	}
	if classification != nil {
		t.AISuggestedSolution = classification.SuggestedSolution
	}
	ticket.NormalizeParts(t)

	if err := s.store.Create(ctx, t); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	s.refreshSnapshot(ctx)

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: t.ID,
		ActorID:  userID,
		Payload: events.TicketCreatedPayload{
			CustomerName: t.CustomerName,
			Subject:      t.Subject,
			Status:       t.Status,
			Priority:     t.Priority,
			IsEscalated:  t.IsEscalated,
		},
	})
	if t.IsEscalated {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketEscalated,
			TicketID: t.ID,
			ActorID:  userID,
		})
	}
	return t, nil
}

// ListTickets returns all tickets newest first, preferring the snapshot.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	if s.cache != nil {
		if tickets, ok := s.cache.LoadSnapshot(ctx); ok {
			return tickets, nil
		}
	}
	tickets, err := s.store.List(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	if s.cache != nil {
		s.cache.StoreSnapshot(ctx, tickets)
	}
	return tickets, nil
}

// ListPendingEscalations returns escalated tickets still awaiting validation.
func (s *TicketService) ListPendingEscalations(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.ListTickets(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]domain.Ticket, 0)
	for _, t := range tickets {
		if ticket.EligibleForValidation(&t) {
			pending = append(pending, t)
		}
	}
	return pending, nil
}

// GetTicket fetches one ticket by id from the current list.
func (s *TicketService) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	tickets, err := s.ListTickets(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		if tickets[i].ID == id {
			return &tickets[i], nil
		}
	}
	return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
}

// ValidateTicket completes the escalate-and-validate workflow. The in-memory
// transition is only committed when the store update succeeds.
func (s *TicketService) ValidateTicket(ctx context.Context, id string, input ticket.ValidationInput, validatedBy string) (*domain.Ticket, error) {
	t, err := s.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ticket.CompleteValidation(t, input, validatedBy, time.Now().UTC()); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), map[string]any{"id": id})
	}
	if err := s.store.Update(ctx, t); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	s.refreshSnapshot(ctx)

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketValidated,
		TicketID: t.ID,
		ActorID:  validatedBy,
		Payload: events.TicketValidatedPayload{
			ValidatedBy: t.ValidatedBy,
			ValidatedAt: *t.ValidatedAt,
		},
	})
	return t, nil
}

// CloseTicket moves a ticket straight to CLOSED without the validation
// workflow.
func (s *TicketService) CloseTicket(ctx context.Context, id, actorID string) (*domain.Ticket, error) {
	t, err := s.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := t.Status
	if err := ticket.Close(t); err != nil {
		return nil, apperrors.NewConflict(err.Error(), map[string]any{"id": id})
	}
	if err := s.store.Update(ctx, t); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	s.refreshSnapshot(ctx)

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketClosed,
		TicketID: t.ID,
		ActorID:  actorID,
		Payload:  events.TicketClosedPayload{OldStatus: oldStatus},
	})
	return t, nil
}

// DeleteTicket removes a ticket entirely; deleting an absent id succeeds.
func (s *TicketService) DeleteTicket(ctx context.Context, id, actorID string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	s.refreshSnapshot(ctx)

	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: id,
		ActorID:  actorID,
	})
	return nil
}

// refreshSnapshot re-reads the store after a committed mutation. A failed
// re-read only drops the snapshot; the mutation already succeeded.
func (s *TicketService) refreshSnapshot(ctx context.Context) {
	if s.cache == nil {
		return
	}
	tickets, err := s.store.List(ctx)
	if err != nil {
		s.cache.Invalidate(ctx)
		return
	}
	s.cache.StoreSnapshot(ctx, tickets)
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
