package domain

import "time"

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "LOW"
	TicketPriorityMedium   TicketPriority = "MEDIUM"
	TicketPriorityHigh     TicketPriority = "HIGH"
	TicketPriorityCritical TicketPriority = "CRITICAL"
)

// ValidStatus reports whether s is a known ticket status.
func ValidStatus(s TicketStatus) bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known ticket priority.
func ValidPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// Ticket is the canonical record for one support session. The same shape is
// used regardless of which store backs it; conversion to the remote column
// layout or the local flat record happens in the mapper.
type Ticket struct {
	ID     string
	UserID string

	CustomerName   string
	LocationName   string
	TaskID         string
	ServiceRequest string
	Hostname       string
	Subject        string

	AnalystName      string
	SupportStartTime time.Time
	SupportEndTime   *time.Time

	Description   string
	AnalystAction string

	IsDueCall       bool
	UsedACFS        bool
	HasInkStaining  bool
	PartReplaced    bool
	PartDescription string
	TagVLDD         bool
	TagNLVDD        bool

	// Validation-stage fields, populated only when an escalated ticket goes
	// through the validation workflow.
	TestWithCard      bool
	SICWithdrawal     bool
	SICDeposit        bool
	SICSensors        bool
	SICSmartPower     bool
	ClientWitnessName string
	ClientWitnessID   string
	ValidatedBy       string
	ValidatedAt       *time.Time

	AISuggestedSolution string
	Status              TicketStatus
	Priority            TicketPriority
	IsEscalated         bool
	CreatedAt           time.Time
}

// Classification is the advisory result of the external AI classifier. A nil
// *Classification means no suggestion was available and the resolver falls
// back to its manual-only branch.
type Classification struct {
	SuggestedSolution     string         `json:"suggested_solution"`
	RecommendedPriority   TicketPriority `json:"recommended_priority"`
	EscalationRecommended bool           `json:"is_escalation_recommended"`
}
