package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketEvent("TicketCreated"))
	n.dispatcher.Subscribe(events.EventTicketEscalated, n.handleTicketEvent("TicketEscalated"))
	n.dispatcher.Subscribe(events.EventTicketValidated, n.handleTicketEvent("TicketValidated"))
	n.dispatcher.Subscribe(events.EventTicketClosed, n.handleTicketEvent("TicketClosed"))
	n.dispatcher.Subscribe(events.EventTicketDeleted, n.handleTicketEvent("TicketDeleted"))
	n.dispatcher.Subscribe(events.EventUserProvisioned, n.handleUserProvisioned)
}

func (n *NotificationService) handleTicketEvent(label string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logger.Info(label, zap.String("ticket_id", event.TicketID), zap.Any("payload", event.Payload))
		n.sendWebhookNotificationStub(ctx, event)
		return nil
	}
}

func (n *NotificationService) handleUserProvisioned(ctx context.Context, event events.Event) error {
	n.logger.Info("UserProvisioned", zap.String("actor", event.ActorID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)))
}
