package ticket

import (
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestInitialStatus(t *testing.T) {
	endTime := time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		supportEndTime *time.Time
		want           domain.TicketStatus
	}{
		{name: "no end time opens the ticket", want: domain.TicketStatusOpen},
		{name: "zero end time opens the ticket", supportEndTime: &time.Time{}, want: domain.TicketStatusOpen},
		{name: "known end time resolves immediately", supportEndTime: &endTime, want: domain.TicketStatusResolved},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := InitialStatus(testCase.supportEndTime)
			if got != testCase.want {
				t.Fatalf("InitialStatus() = %s, want %s", got, testCase.want)
			}
		})
	}
}

func TestCloseIsTerminal(t *testing.T) {
	ticket := &domain.Ticket{Status: domain.TicketStatusOpen}
	if err := Close(ticket); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if ticket.Status != domain.TicketStatusClosed {
		t.Fatalf("status = %s, want CLOSED", ticket.Status)
	}

	if err := Close(ticket); !errors.Is(err, ErrClosedTicket) {
		t.Fatalf("Close() on closed ticket error = %v, want ErrClosedTicket", err)
	}

	for next := range allowedTransitions {
		if CanTransition(domain.TicketStatusClosed, next) {
			t.Fatalf("CanTransition(CLOSED, %s) = true, want false", next)
		}
	}
}

func TestCloseFromResolved(t *testing.T) {
	ticket := &domain.Ticket{Status: domain.TicketStatusResolved}
	if err := Close(ticket); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if ticket.Status != domain.TicketStatusClosed {
		t.Fatalf("status = %s, want CLOSED", ticket.Status)
	}
}

func TestCompleteValidation(t *testing.T) {
	now := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
	ticket := &domain.Ticket{
		Status:      domain.TicketStatusOpen,
		IsEscalated: true,
		TaskID:      "T-100",
		Hostname:    "atm-01",
	}

	input := ValidationInput{
		TaskID:            "T-200",
		TestWithCard:      true,
		SICWithdrawal:     true,
		SICSensors:        true,
		ClientWitnessName: "Maria Souza",
		ClientWitnessID:   "12345",
	}
	if err := CompleteValidation(ticket, input, "admin", now); err != nil {
		t.Fatalf("CompleteValidation() error = %v", err)
	}

	if ticket.Status != domain.TicketStatusResolved {
		t.Fatalf("status = %s, want RESOLVED", ticket.Status)
	}
	if ticket.ValidatedAt == nil || !ticket.ValidatedAt.Equal(now) {
		t.Fatalf("validatedAt = %v, want %v", ticket.ValidatedAt, now)
	}
	if ticket.ValidatedBy != "admin" {
		t.Fatalf("validatedBy = %q, want admin", ticket.ValidatedBy)
	}
	if ticket.TaskID != "T-200" {
		t.Fatalf("taskId = %q, want re-edited value", ticket.TaskID)
	}
	if ticket.Hostname != "atm-01" {
		t.Fatalf("hostname = %q, want original kept when input empty", ticket.Hostname)
	}
	if !ticket.SICWithdrawal || !ticket.SICSensors || ticket.SICDeposit {
		t.Fatalf("SIC checklist not applied: %+v", ticket)
	}

	if EligibleForValidation(ticket) {
		t.Fatal("validated ticket still eligible for validation")
	}
}

func TestCompleteValidationEligibility(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name    string
		ticket  domain.Ticket
		wantErr bool
	}{
		{
			name:   "escalated open ticket is eligible",
			ticket: domain.Ticket{Status: domain.TicketStatusOpen, IsEscalated: true},
		},
		{
			name:    "non-escalated ticket is rejected",
			ticket:  domain.Ticket{Status: domain.TicketStatusOpen},
			wantErr: true,
		},
		{
			name:    "resolved ticket is rejected",
			ticket:  domain.Ticket{Status: domain.TicketStatusResolved, IsEscalated: true},
			wantErr: true,
		},
		{
			name:    "closed ticket is rejected",
			ticket:  domain.Ticket{Status: domain.TicketStatusClosed, IsEscalated: true},
			wantErr: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			err := CompleteValidation(&testCase.ticket, ValidationInput{}, "admin", now)
			if (err != nil) != testCase.wantErr {
				t.Fatalf("CompleteValidation() error = %v, wantErr %v", err, testCase.wantErr)
			}
		})
	}
}

func TestNormalizeParts(t *testing.T) {
	ticket := &domain.Ticket{PartReplaced: false, PartDescription: "dispenser belt"}
	NormalizeParts(ticket)
	if ticket.PartDescription != "" {
		t.Fatalf("partDescription = %q, want cleared", ticket.PartDescription)
	}

	ticket = &domain.Ticket{PartReplaced: true, PartDescription: "dispenser belt"}
	NormalizeParts(ticket)
	if ticket.PartDescription != "dispenser belt" {
		t.Fatalf("partDescription = %q, want kept", ticket.PartDescription)
	}
}
