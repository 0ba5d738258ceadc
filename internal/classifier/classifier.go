package classifier

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
)

const systemPrompt = `You triage ATM support tickets. Given the problem description, reply with a
single JSON object: {"suggested_solution": string, "recommended_priority":
"LOW"|"MEDIUM"|"HIGH"|"CRITICAL", "is_escalation_recommended": bool}. No
other text.`

// Classifier asks the model for an advisory triage of a problem description.
// Every failure mode (disabled, transport error, malformed reply) yields a
// nil Classification; the caller always proceeds without one.
type Classifier interface {
	Classify(ctx context.Context, text string) *domain.Classification
}

type aiClassifier struct {
	client openai.Client
	model  string
	cfg    config.ClassifierConfig
	logger *zap.Logger
}

// New builds the AI-backed classifier. With no API key configured the
// returned classifier is a permanent no-op.
func New(cfg config.ClassifierConfig, logger *zap.Logger) Classifier {
	if cfg.APIKey == "" {
		logger.Info("classifier disabled; no API key configured")
		return disabledClassifier{}
	}
	return &aiClassifier{
		client: openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:  cfg.Model,
		cfg:    cfg,
		logger: logger,
	}
}

func (c *aiClassifier) Classify(ctx context.Context, text string) *domain.Classification {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	completion, err := c.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
	})
	if err != nil {
		c.logger.Warn("classification call failed", zap.Error(err))
		return nil
	}
	if len(completion.Choices) == 0 {
		c.logger.Warn("classification returned no choices")
		return nil
	}

	return parseClassification(completion.Choices[0].Message.Content, c.logger)
}

func parseClassification(content string, logger *zap.Logger) *domain.Classification {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var result domain.Classification
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &result); err != nil {
		logger.Warn("classification reply not parseable", zap.Error(err))
		return nil
	}
	if !domain.ValidPriority(result.RecommendedPriority) {
		logger.Warn("classification reply carried unknown priority",
			zap.String("priority", string(result.RecommendedPriority)))
		return nil
	}
	return &result
}

type disabledClassifier struct{}

func (disabledClassifier) Classify(context.Context, string) *domain.Classification {
	return nil
}
