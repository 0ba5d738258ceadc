package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	CustomerName        string     `json:"customer_name"`
	LocationName        string     `json:"location_name"`
	TaskID              string     `json:"task_id"`
	ServiceRequest      string     `json:"service_request"`
	Hostname            string     `json:"hostname"`
	Subject             string     `json:"subject"`
	AnalystName         string     `json:"analyst_name"`
	SupportStartTime    time.Time  `json:"support_start_time"`
	SupportEndTime      *time.Time `json:"support_end_time"`
	Description         string     `json:"description"`
	AnalystAction       string     `json:"analyst_action"`
	IsDueCall           bool       `json:"is_due_call"`
	UsedACFS            bool       `json:"used_acfs"`
	HasInkStaining      bool       `json:"has_ink_staining"`
	PartReplaced        bool       `json:"part_replaced"`
	PartDescription     string     `json:"part_description"`
	TagVLDD             bool       `json:"tag_vldd"`
	TagNLVDD            bool       `json:"tag_nlvdd"`
	IsEscalated         bool       `json:"is_escalated"`
	RequestAISuggestion bool       `json:"request_ai_suggestion"`
}

// ValidateTicketRequest payload for the escalation validation workflow.
type ValidateTicketRequest struct {
	TaskID            string `json:"task_id"`
	Hostname          string `json:"hostname"`
	ServiceRequest    string `json:"service_request"`
	AnalystAction     string `json:"analyst_action"`
	TestWithCard      bool   `json:"test_with_card"`
	SICWithdrawal     bool   `json:"sic_withdrawal"`
	SICDeposit        bool   `json:"sic_deposit"`
	SICSensors        bool   `json:"sic_sensors"`
	SICSmartPower     bool   `json:"sic_smart_power"`
	ClientWitnessName string `json:"client_witness_name"`
	ClientWitnessID   string `json:"client_witness_id"`
}

// TicketResponse carries the full ticket in the remote field naming.
type TicketResponse struct {
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
	ValidatedBy         string                `json:"validated_by,omitempty"`
	ValidatedAt         *time.Time            `json:"validated_at,omitempty"`
	AISuggestedSolution string                `json:"ai_suggested_solution,omitempty"`
	Status              domain.TicketStatus   `json:"status"`
	Priority            domain.TicketPriority `json:"priority"`
	IsEscalated         bool                  `json:"is_escalated"`
	CreatedAt           time.Time             `json:"created_at"`
}

// TicketFromDomain converts a domain ticket for responses.
func TicketFromDomain(t *domain.Ticket) TicketResponse {
	return TicketResponse{
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
		ValidatedAt:         t.ValidatedAt,
		AISuggestedSolution: t.AISuggestedSolution,
		Status:              t.Status,
		Priority:            t.Priority,
		IsEscalated:         t.IsEscalated,
		CreatedAt:           t.CreatedAt,
	}
}
