package generation

import (
	"context"
	"strings"
)

// TopicGenerator produces an ordered list of study topics for a subject.
type TopicGenerator interface {
	GenerateTopics(ctx context.Context, subject string) ([]string, error)
}

// Topic list bounds requested from generators.
const (
	MinTopics = 3
	MaxTopics = 8
)

// KeywordTopics is the offline TopicGenerator. It matches the subject name
// against a few broad keywords and never fails for a non-empty subject.
type KeywordTopics struct{}

var _ TopicGenerator = KeywordTopics{}

type keywordRule struct {
	keywords []string
	topics   []string
}

// Rules are checked in order; the first match wins.
var keywordRules = []keywordRule{
	{
		keywords: []string{"math"},
		topics:   []string{"Limit & Continuity", "Derivatives", "Integration", "Matrices", "Exam Practice"},
	},
	{
		keywords: []string{"program", "code", "java", "python", " c "},
		topics:   []string{"Syntax & Variables", "Control Logic", "Loops", "Functions/Methods", "Debugging"},
	},
	{
		keywords: []string{"account"},
		topics:   []string{"Ledger Posting", "Financial Statements", "Cash Flow", "Auditing", "Revision"},
	},
	{
		keywords: []string{"physics"},
		topics:   []string{"Mechanics", "Thermodynamics", "Optics", "Electrostatics", "Mock Exam"},
	},
}

var defaultTopics = []string{"Introduction", "Core Concepts", "Practical Application", "Case Studies", "Final Review"}

// GenerateTopics implements TopicGenerator.
func (KeywordTopics) GenerateTopics(_ context.Context, subject string) ([]string, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, ErrEmptySubject
	}

	// Padding lets " c " match a subject that is exactly "C".
	name := " " + strings.ToLower(strings.TrimSpace(subject)) + " "
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return append([]string(nil), rule.topics...), nil
			}
		}
	}
	return append([]string(nil), defaultTopics...), nil
}

// Chain tries each generator in order and returns the first non-empty
// result. The last error is returned when every generator fails.
type Chain []TopicGenerator

var _ TopicGenerator = Chain(nil)

// GenerateTopics implements TopicGenerator.
func (c Chain) GenerateTopics(ctx context.Context, subject string) ([]string, error) {
	var lastErr error
	for _, g := range c {
		topics, err := g.GenerateTopics(ctx, subject)
		if err != nil {
			lastErr = err
			continue
		}
		if len(topics) > 0 {
			return topics, nil
		}
	}
	if lastErr == nil {
		lastErr = ErrGenerationFailed
	}
	return nil, lastErr
}
