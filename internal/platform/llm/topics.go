package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/padsala/padsala-api/internal/generation"
)

const topicSystemPrompt = "You are a syllabus assistant for university exam preparation. " +
	"Answer only with JSON matching the requested schema."

var topicPrompt = template.Must(template.New("topics").Parse(
	`List between {{.Min}} and {{.Max}} study topics for the course "{{.Subject}}".
Order them the way a student should revise them before the exam.
Each topic is a short title of at most six words. Do not number them.`))

// topicSchema is the structure requested from the model.
var topicSchema = &Schema{
	Name:        "study_topics",
	Description: "Ordered study topics for one subject",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topics": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": generation.MinTopics,
				"maxItems": generation.MaxTopics,
			},
		},
		"required":             []string{"topics"},
		"additionalProperties": false,
	},
}

// TopicGenerator asks a Provider for study topics.
type TopicGenerator struct {
	provider Provider
	timeout  time.Duration
	logger   *slog.Logger
}

var _ generation.TopicGenerator = (*TopicGenerator)(nil)

// NewTopicGenerator creates a TopicGenerator. A zero timeout leaves the
// caller's deadline in charge.
func NewTopicGenerator(provider Provider, timeout time.Duration, logger *slog.Logger) (*TopicGenerator, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: provider cannot be nil", generation.ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicGenerator{
		provider: provider,
		timeout:  timeout,
		logger:   logger.With("component", "topic_generator", "model", provider.ModelID()),
	}, nil
}

// GenerateTopics implements generation.TopicGenerator.
func (g *TopicGenerator) GenerateTopics(ctx context.Context, subject string) ([]string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, generation.ErrEmptySubject
	}

	var prompt bytes.Buffer
	err := topicPrompt.Execute(&prompt, struct {
		Subject  string
		Min, Max int
	}{subject, generation.MinTopics, generation.MaxTopics})
	if err != nil {
		return nil, fmt.Errorf("%w: render prompt: %v", generation.ErrGenerationFailed, err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := g.provider.Generate(ctx, Request{
		System:      topicSystemPrompt,
		Messages:    []Message{{Role: RoleUser, Content: prompt.String()}},
		Schema:      topicSchema,
		MaxTokens:   512,
		Temperature: 0.3,
	})
	if err != nil {
		g.logger.WarnContext(ctx, "topic generation failed",
			"subject", subject,
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		var invalid *ErrInvalidResponse
		if errors.As(err, &invalid) {
			return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
		}
		return nil, fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	var payload struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidResponse, err)
	}

	topics := make([]string, 0, len(payload.Topics))
	seen := make(map[string]bool, len(payload.Topics))
	for _, t := range payload.Topics {
		t = strings.TrimSpace(t)
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		topics = append(topics, t)
	}
	if len(topics) < generation.MinTopics {
		return nil, fmt.Errorf("%w: only %d usable topics", generation.ErrInvalidResponse, len(topics))
	}

	g.logger.DebugContext(ctx, "generated topics",
		"subject", subject,
		"count", len(topics),
		"input_tokens", resp.Usage.InputTokens,
		"output_tokens", resp.Usage.OutputTokens,
		"duration_ms", time.Since(start).Milliseconds())
	return topics, nil
}
