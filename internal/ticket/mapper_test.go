package ticket

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func sampleTicket() *domain.Ticket {
	start := time.Date(2026, 5, 10, 8, 15, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	validated := start.Add(2 * time.Hour)
	return &domain.Ticket{
		ID:                  "5f3c1f0e-8a1d-4c6a-9a11-0f43cf01a001",
		UserID:              "user-1",
		CustomerName:        "Loja A",
		LocationName:        "Centro",
		TaskID:              "T-4711",
		ServiceRequest:      "SR-99",
		Hostname:            "atm-centro-02",
		Subject:             "Dispenser jam",
		AnalystName:         "Carlos",
		SupportStartTime:    start,
		SupportEndTime:      &end,
		Description:         "Notes refused during withdrawal",
		AnalystAction:       "Cleared jam, ran dispense test",
		IsDueCall:           true,
		UsedACFS:            true,
		HasInkStaining:      false,
		PartReplaced:        true,
		PartDescription:     "pick roller",
		TagVLDD:             true,
		TagNLVDD:            false,
		TestWithCard:        true,
		SICWithdrawal:       true,
		SICDeposit:          false,
		SICSensors:          true,
		SICSmartPower:       true,
		ClientWitnessName:   "Maria Souza",
		ClientWitnessID:     "887700",
		ValidatedBy:         "admin",
		ValidatedAt:         &validated,
		AISuggestedSolution: "Replace pick roller and retest",
		Status:              domain.TicketStatusResolved,
		Priority:            domain.TicketPriorityCritical,
		IsEscalated:         true,
		CreatedAt:           start.Add(-time.Minute),
	}
}

func TestRemoteRowRoundTrip(t *testing.T) {
	original := sampleTicket()

	restored, err := FromRemoteRow(ToRemoteRow(original))
	if err != nil {
		t.Fatalf("FromRemoteRow() error = %v", err)
	}
	if diff := cmp.Diff(original, restored); diff != "" {
		t.Fatalf("remote round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoteRowRoundTripOpenTicket(t *testing.T) {
	original := sampleTicket()
	original.SupportEndTime = nil
	original.ValidatedAt = nil
	original.ValidatedBy = ""
	original.Status = domain.TicketStatusOpen

	row := ToRemoteRow(original)
	if row.ValidatedAt != nil {
		t.Fatalf("validated_at = %v, want omitted for unvalidated ticket", *row.ValidatedAt)
	}

	restored, err := FromRemoteRow(row)
	if err != nil {
		t.Fatalf("FromRemoteRow() error = %v", err)
	}
	if diff := cmp.Diff(original, restored); diff != "" {
		t.Fatalf("remote round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRemoteRowRejectsBadTimestamp(t *testing.T) {
	row := ToRemoteRow(sampleTicket())
	bad := "yesterday afternoon"
	row.ValidatedAt = &bad

	if _, err := FromRemoteRow(row); err == nil {
		t.Fatal("FromRemoteRow() with malformed validated_at succeeded, want error")
	}
}

func TestLocalRecordRoundTrip(t *testing.T) {
	original := sampleTicket()

	restored := FromLocalRecord(ToLocalRecord(original))
	if diff := cmp.Diff(original, restored); diff != "" {
		t.Fatalf("local round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromLocalRecordDefensiveTimestamps(t *testing.T) {
	record := ToLocalRecord(sampleTicket())
	record["supportEndTime"] = "not-a-timestamp"

	restored := FromLocalRecord(record)
	if restored.SupportEndTime != nil {
		t.Fatalf("supportEndTime = %v, want unset for unparseable value", restored.SupportEndTime)
	}
	if record["supportEndTime"] != "not-a-timestamp" {
		t.Fatalf("record key rewritten to %v, want raw string preserved", record["supportEndTime"])
	}
	if restored.CustomerName != "Loja A" {
		t.Fatalf("customerName = %q, other fields must survive a bad timestamp", restored.CustomerName)
	}
}
