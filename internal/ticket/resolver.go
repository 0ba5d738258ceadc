package ticket

import "github.com/spec-kit/helpdesk-service/internal/domain"

// Resolution is the derived priority/escalation pair for a new ticket.
type Resolution struct {
	Priority    domain.TicketPriority
	IsEscalated bool
}

// Resolve derives final priority and escalation from the manual escalation
// flag and an optional classifier result. Manual escalation always dominates:
// an explicitly escalated ticket is CRITICAL no matter what the classifier
// recommended. Without any classification the priority defaults to MEDIUM.
//
// Resolve is pure and never fails; a malformed recommended priority is
// treated the same as a missing classification.
func Resolve(manualEscalated bool, classification *domain.Classification) Resolution {
	escalated := manualEscalated
	if classification != nil && classification.EscalationRecommended {
		escalated = true
	}
	if escalated {
		return Resolution{Priority: domain.TicketPriorityCritical, IsEscalated: true}
	}
	if classification != nil && domain.ValidPriority(classification.RecommendedPriority) {
		return Resolution{Priority: classification.RecommendedPriority}
	}
	return Resolution{Priority: domain.TicketPriorityMedium}
}
