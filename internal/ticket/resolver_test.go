package ticket

import (
	"testing"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestResolve(t *testing.T) {
	testCases := []struct {
		name            string
		manualEscalated bool
		classification  *domain.Classification
		want            Resolution
	}{
		{
			name: "no input defaults to medium",
			want: Resolution{Priority: domain.TicketPriorityMedium},
		},
		{
			name:            "manual escalation forces critical",
			manualEscalated: true,
			want:            Resolution{Priority: domain.TicketPriorityCritical, IsEscalated: true},
		},
		{
			name:            "manual escalation dominates low recommendation",
			manualEscalated: true,
			classification: &domain.Classification{
				RecommendedPriority:   domain.TicketPriorityLow,
				EscalationRecommended: false,
			},
			want: Resolution{Priority: domain.TicketPriorityCritical, IsEscalated: true},
		},
		{
			name: "classifier escalation recommendation forces critical",
			classification: &domain.Classification{
				RecommendedPriority:   domain.TicketPriorityLow,
				EscalationRecommended: true,
			},
			want: Resolution{Priority: domain.TicketPriorityCritical, IsEscalated: true},
		},
		{
			name: "classifier priority adopted without escalation",
			classification: &domain.Classification{
				RecommendedPriority: domain.TicketPriorityHigh,
			},
			want: Resolution{Priority: domain.TicketPriorityHigh},
		},
		{
			name: "malformed classifier priority falls back to medium",
			classification: &domain.Classification{
				RecommendedPriority: domain.TicketPriority("WHENEVER"),
			},
			want: Resolution{Priority: domain.TicketPriorityMedium},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := Resolve(testCase.manualEscalated, testCase.classification)
			if got != testCase.want {
				t.Fatalf("Resolve() = %+v, want %+v", got, testCase.want)
			}
		})
	}
}

func TestResolveManualAlwaysCritical(t *testing.T) {
	priorities := []domain.TicketPriority{
		domain.TicketPriorityLow,
		domain.TicketPriorityMedium,
		domain.TicketPriorityHigh,
		domain.TicketPriorityCritical,
	}
	for _, priority := range priorities {
		for _, recommended := range []bool{true, false} {
			got := Resolve(true, &domain.Classification{
				RecommendedPriority:   priority,
				EscalationRecommended: recommended,
			})
			if got.Priority != domain.TicketPriorityCritical || !got.IsEscalated {
				t.Fatalf("Resolve(true, {%s,%v}) = %+v, want CRITICAL escalated", priority, recommended, got)
			}
		}
	}
}
