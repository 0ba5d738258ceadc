package ticket

import (
	"errors"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// ErrClosedTicket is returned by transitions attempted on a CLOSED ticket.
var ErrClosedTicket = errors.New("ticket is closed")

// ErrNotEligibleForValidation is returned when the validation workflow is
// applied to a ticket that is not escalated or already finished.
var ErrNotEligibleForValidation = errors.New("ticket not eligible for validation")

// allowedTransitions lists the reachable next states per status. IN_PROGRESS
// is a declared state with exits but no operation currently produces it.
var allowedTransitions = map[domain.TicketStatus][]domain.TicketStatus{
	domain.TicketStatusOpen:       {domain.TicketStatusResolved, domain.TicketStatusClosed},
	domain.TicketStatusInProgress: {domain.TicketStatusResolved, domain.TicketStatusClosed},
	domain.TicketStatusResolved:   {domain.TicketStatusClosed},
	domain.TicketStatusClosed:     {},
}

// CanTransition reports whether moving from current to next is allowed.
func CanTransition(current, next domain.TicketStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// InitialStatus computes the status assigned at creation: a ticket logged
// after the fact with a known support end time is already closed-out work.
func InitialStatus(supportEndTime *time.Time) domain.TicketStatus {
	if supportEndTime != nil && !supportEndTime.IsZero() {
		return domain.TicketStatusResolved
	}
	return domain.TicketStatusOpen
}

// EligibleForValidation reports whether the escalate-and-validate workflow
// may start for the ticket.
func EligibleForValidation(t *domain.Ticket) bool {
	if !t.IsEscalated {
		return false
	}
	return t.Status != domain.TicketStatusResolved && t.Status != domain.TicketStatusClosed
}

// ValidationInput carries the fields captured during the validation workflow.
// Identifier fields may be corrected at validation time.
type ValidationInput struct {
	TaskID            string
	Hostname          string
	ServiceRequest    string
	AnalystAction     string
	TestWithCard      bool
	SICWithdrawal     bool
	SICDeposit        bool
	SICSensors        bool
	SICSmartPower     bool
	ClientWitnessName string
	ClientWitnessID   string
}

// CompleteValidation applies the validation workflow to an eligible escalated
// ticket: the SIC checklist and witness data are recorded, identifiers may be
// re-edited, and the ticket moves to RESOLVED with validation stamps. The
// ticket is mutated in memory only; persistence is the caller's problem.
func CompleteValidation(t *domain.Ticket, in ValidationInput, validatedBy string, now time.Time) error {
	if !EligibleForValidation(t) {
		return ErrNotEligibleForValidation
	}
	if in.TaskID != "" {
		t.TaskID = in.TaskID
	}
	if in.Hostname != "" {
		t.Hostname = in.Hostname
	}
	if in.ServiceRequest != "" {
		t.ServiceRequest = in.ServiceRequest
	}
	if in.AnalystAction != "" {
		t.AnalystAction = in.AnalystAction
	}
	t.TestWithCard = in.TestWithCard
	t.SICWithdrawal = in.SICWithdrawal
	t.SICDeposit = in.SICDeposit
	t.SICSensors = in.SICSensors
	t.SICSmartPower = in.SICSmartPower
	t.ClientWitnessName = in.ClientWitnessName
	t.ClientWitnessID = in.ClientWitnessID
	t.ValidatedBy = validatedBy
	validatedAt := now
	t.ValidatedAt = &validatedAt
	t.Status = domain.TicketStatusResolved
	return nil
}

// Close moves any non-CLOSED ticket directly to CLOSED without touching the
// validation-stage fields. CLOSED is terminal.
func Close(t *domain.Ticket) error {
	if t.Status == domain.TicketStatusClosed {
		return ErrClosedTicket
	}
	t.Status = domain.TicketStatusClosed
	return nil
}

// NormalizeParts clears the part description when no part was replaced.
func NormalizeParts(t *domain.Ticket) {
	if !t.PartReplaced {
		t.PartDescription = ""
	}
}
