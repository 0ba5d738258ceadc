package classifier

import (
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func TestParseClassification(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    *domain.Classification
	}{
		{
			name:    "plain json",
			content: `{"suggested_solution":"reseat cassette","recommended_priority":"HIGH","is_escalation_recommended":true}`,
			want: &domain.Classification{
				SuggestedSolution:     "reseat cassette",
				RecommendedPriority:   domain.TicketPriorityHigh,
				EscalationRecommended: true,
			},
		},
		{
			name:    "fenced json",
			content: "```json\n{\"suggested_solution\":\"reboot\",\"recommended_priority\":\"LOW\",\"is_escalation_recommended\":false}\n```",
			want: &domain.Classification{
				SuggestedSolution:   "reboot",
				RecommendedPriority: domain.TicketPriorityLow,
			},
		},
		{
			name:    "unknown priority is treated as no classification",
			content: `{"suggested_solution":"x","recommended_priority":"WHENEVER","is_escalation_recommended":false}`,
			want:    nil,
		},
		{
			name:    "garbage is treated as no classification",
			content: "sorry, I cannot help with that",
			want:    nil,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := parseClassification(testCase.content, zap.NewNop())
			if testCase.want == nil {
				if got != nil {
					t.Fatalf("parseClassification() = %+v, want nil", got)
				}
				return
			}
			if got == nil || *got != *testCase.want {
				t.Fatalf("parseClassification() = %+v, want %+v", got, testCase.want)
			}
		})
	}
}
