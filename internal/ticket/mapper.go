package ticket

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// RemoteRow mirrors the remote table layout. Column names are fixed; they
// must match the backend schema exactly for interoperability.
type RemoteRow struct {
	ID                  string                `json:"id"`
	UserID              string                `json:"user_id"`
	CustomerName        string                `json:"customer_name"`
	LocationName        string                `json:"location_name"`
	TaskID              string                `json:"task_id"`
	ServiceRequest      string                `json:"service_request"`
	Hostname            string                `json:"hostname"`
	Subject             string                `json:"subject"`
	AnalystName         string                `json:"analyst_name"`
	SupportStartTime    time.Time             `json:"support_start_time"`
	SupportEndTime      *time.Time            `json:"support_end_time,omitempty"`
	Description         string                `json:"description"`
	AnalystAction       string                `json:"analyst_action"`
	IsDueCall           bool                  `json:"is_due_call"`
	UsedACFS            bool                  `json:"used_acfs"`
	HasInkStaining      bool                  `json:"has_ink_staining"`
	PartReplaced        bool                  `json:"part_replaced"`
	PartDescription     string                `json:"part_description"`
	TagVLDD             bool                  `json:"tag_vldd"`
	TagNLVDD            bool                  `json:"tag_nlvdd"`
	TestWithCard        bool                  `json:"test_with_card"`
	SICWithdrawal       bool                  `json:"sic_withdrawal"`
	SICDeposit          bool                  `json:"sic_deposit"`
	SICSensors          bool                  `json:"sic_sensors"`
	SICSmartPower       bool                  `json:"sic_smart_power"`
	ClientWitnessName   string                `json:"client_witness_name"`
	ClientWitnessID     string                `json:"client_witness_id"`
	ValidatedBy         string                `json:"validated_by"`
	ValidatedAt         *string               `json:"validated_at,omitempty"`
	AISuggestedSolution string                `json:"ai_suggested_solution"`
	Status              domain.TicketStatus   `json:"status"`
	Priority            domain.TicketPriority `json:"priority"`
	IsEscalated         bool                  `json:"is_escalated"`
	CreatedAt           time.Time             `json:"created_at"`
}

// LocalRecord is the flat camelCase shape used by the demo store. Timestamps
// are carried as RFC3339 strings the way the browser-storage document keeps
// them.
type LocalRecord map[string]any

// ToRemoteRow converts a Ticket to its remote column representation.
// validated_at serializes to RFC3339 or is omitted when unset.
func ToRemoteRow(t *domain.Ticket) RemoteRow {
	row := RemoteRow{
		ID:                  t.ID,
		UserID:              t.UserID,
		CustomerName:        t.CustomerName,
		LocationName:        t.LocationName,
		TaskID:              t.TaskID,
		ServiceRequest:      t.ServiceRequest,
		Hostname:            t.Hostname,
		Subject:             t.Subject,
		AnalystName:         t.AnalystName,
		SupportStartTime:    t.SupportStartTime,
		SupportEndTime:      t.SupportEndTime,
		Description:         t.Description,
		AnalystAction:       t.AnalystAction,
		IsDueCall:           t.IsDueCall,
		UsedACFS:            t.UsedACFS,
		HasInkStaining:      t.HasInkStaining,
		PartReplaced:        t.PartReplaced,
		PartDescription:     t.PartDescription,
		TagVLDD:             t.TagVLDD,
		TagNLVDD:            t.TagNLVDD,
		TestWithCard:        t.TestWithCard,
		SICWithdrawal:       t.SICWithdrawal,
		SICDeposit:          t.SICDeposit,
		SICSensors:          t.SICSensors,
		SICSmartPower:       t.SICSmartPower,
		ClientWitnessName:   t.ClientWitnessName,
		ClientWitnessID:     t.ClientWitnessID,
		ValidatedBy:         t.ValidatedBy,
		AISuggestedSolution: t.AISuggestedSolution,
		Status:              t.Status,
		Priority:            t.Priority,
		IsEscalated:         t.IsEscalated,
		CreatedAt:           t.CreatedAt,
	}
	if t.ValidatedAt != nil {
		formatted := t.ValidatedAt.UTC().Format(time.RFC3339Nano)
		row.ValidatedAt = &formatted
	}
	return row
}

// FromRemoteRow converts a remote row back to the canonical Ticket. An
// unparseable validated_at is rejected loudly rather than coerced.
func FromRemoteRow(row RemoteRow) (*domain.Ticket, error) {
	t := &domain.Ticket{
		ID:                  row.ID,
		UserID:              row.UserID,
		CustomerName:        row.CustomerName,
		LocationName:        row.LocationName,
		TaskID:              row.TaskID,
		ServiceRequest:      row.ServiceRequest,
		Hostname:            row.Hostname,
		Subject:             row.Subject,
		AnalystName:         row.AnalystName,
		SupportStartTime:    row.SupportStartTime,
		SupportEndTime:      row.SupportEndTime,
		Description:         row.Description,
		AnalystAction:       row.AnalystAction,
		IsDueCall:           row.IsDueCall,
		UsedACFS:            row.UsedACFS,
		HasInkStaining:      row.HasInkStaining,
		PartReplaced:        row.PartReplaced,
		PartDescription:     row.PartDescription,
		TagVLDD:             row.TagVLDD,
		TagNLVDD:            row.TagNLVDD,
		TestWithCard:        row.TestWithCard,
		SICWithdrawal:       row.SICWithdrawal,
		SICDeposit:          row.SICDeposit,
		SICSensors:          row.SICSensors,
		SICSmartPower:       row.SICSmartPower,
		ClientWitnessName:   row.ClientWitnessName,
		ClientWitnessID:     row.ClientWitnessID,
		ValidatedBy:         row.ValidatedBy,
		AISuggestedSolution: row.AISuggestedSolution,
		Status:              row.Status,
		Priority:            row.Priority,
		IsEscalated:         row.IsEscalated,
		CreatedAt:           row.CreatedAt,
	}
	if row.ValidatedAt != nil {
		parsed, err := time.Parse(time.RFC3339Nano, *row.ValidatedAt)
		if err != nil {
			return nil, err
		}
		t.ValidatedAt = &parsed
	}
	return t, nil
}

// ToLocalRecord converts a Ticket to the flat camelCase record stored by the
// demo backend. Keys keep their in-memory names; timestamps serialize as
// RFC3339 strings; unset optional timestamps are omitted.
func ToLocalRecord(t *domain.Ticket) LocalRecord {
	record := LocalRecord{
		"id":                  t.ID,
		"userId":              t.UserID,
		"customerName":        t.CustomerName,
		"locationName":        t.LocationName,
		"taskId":              t.TaskID,
		"serviceRequest":      t.ServiceRequest,
		"hostname":            t.Hostname,
		"subject":             t.Subject,
		"analystName":         t.AnalystName,
		"supportStartTime":    t.SupportStartTime.UTC().Format(time.RFC3339Nano),
		"description":         t.Description,
		"analystAction":       t.AnalystAction,
		"isDueCall":           t.IsDueCall,
		"usedACFS":            t.UsedACFS,
		"hasInkStaining":      t.HasInkStaining,
		"partReplaced":        t.PartReplaced,
		"partDescription":     t.PartDescription,
		"tagVLDD":             t.TagVLDD,
		"tagNLVDD":            t.TagNLVDD,
		"testWithCard":        t.TestWithCard,
		"sicWithdrawal":       t.SICWithdrawal,
		"sicDeposit":          t.SICDeposit,
		"sicSensors":          t.SICSensors,
		"sicSmartPower":       t.SICSmartPower,
		"clientWitnessName":   t.ClientWitnessName,
		"clientWitnessId":     t.ClientWitnessID,
		"validatedBy":         t.ValidatedBy,
		"aiSuggestedSolution": t.AISuggestedSolution,
		"status":              string(t.Status),
		"priority":            string(t.Priority),
		"isEscalated":         t.IsEscalated,
		"createdAt":           t.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if t.SupportEndTime != nil {
		record["supportEndTime"] = t.SupportEndTime.UTC().Format(time.RFC3339Nano)
	}
	if t.ValidatedAt != nil {
		record["validatedAt"] = t.ValidatedAt.UTC().Format(time.RFC3339Nano)
	}
	return record
}

// FromLocalRecord converts a flat record back to a Ticket. Timestamp keys
// that fail to parse are left untouched in the record and the corresponding
// Ticket field stays unset; the round trip never fails on bad local data.
func FromLocalRecord(record LocalRecord) *domain.Ticket {
	t := &domain.Ticket{
		ID:                  stringKey(record, "id"),
		UserID:              stringKey(record, "userId"),
		CustomerName:        stringKey(record, "customerName"),
		LocationName:        stringKey(record, "locationName"),
		TaskID:              stringKey(record, "taskId"),
		ServiceRequest:      stringKey(record, "serviceRequest"),
		Hostname:            stringKey(record, "hostname"),
		Subject:             stringKey(record, "subject"),
		AnalystName:         stringKey(record, "analystName"),
		Description:         stringKey(record, "description"),
		AnalystAction:       stringKey(record, "analystAction"),
		IsDueCall:           boolKey(record, "isDueCall"),
		UsedACFS:            boolKey(record, "usedACFS"),
		HasInkStaining:      boolKey(record, "hasInkStaining"),
		PartReplaced:        boolKey(record, "partReplaced"),
		PartDescription:     stringKey(record, "partDescription"),
		TagVLDD:             boolKey(record, "tagVLDD"),
		TagNLVDD:            boolKey(record, "tagNLVDD"),
		TestWithCard:        boolKey(record, "testWithCard"),
		SICWithdrawal:       boolKey(record, "sicWithdrawal"),
		SICDeposit:          boolKey(record, "sicDeposit"),
		SICSensors:          boolKey(record, "sicSensors"),
		SICSmartPower:       boolKey(record, "sicSmartPower"),
		ClientWitnessName:   stringKey(record, "clientWitnessName"),
		ClientWitnessID:     stringKey(record, "clientWitnessId"),
		ValidatedBy:         stringKey(record, "validatedBy"),
		AISuggestedSolution: stringKey(record, "aiSuggestedSolution"),
		Status:              domain.TicketStatus(stringKey(record, "status")),
		Priority:            domain.TicketPriority(stringKey(record, "priority")),
		IsEscalated:         boolKey(record, "isEscalated"),
	}
	if parsed, ok := timeKey(record, "supportStartTime"); ok {
		t.SupportStartTime = parsed
	}
	if parsed, ok := timeKey(record, "supportEndTime"); ok {
		t.SupportEndTime = &parsed
	}
	if parsed, ok := timeKey(record, "validatedAt"); ok {
		t.ValidatedAt = &parsed
	}
	if parsed, ok := timeKey(record, "createdAt"); ok {
		t.CreatedAt = parsed
	}
	return t
}

func stringKey(record LocalRecord, key string) string {
	if val, ok := record[key].(string); ok {
		return val
	}
	return ""
}

func boolKey(record LocalRecord, key string) bool {
	if val, ok := record[key].(bool); ok {
		return val
	}
	return false
}

func timeKey(record LocalRecord, key string) (time.Time, bool) {
	raw, ok := record[key].(string)
	if !ok || raw == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
