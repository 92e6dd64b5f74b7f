package mocks

import (
	"context"

	"github.com/padsala/padsala-api/internal/generation"
	"github.com/stretchr/testify/mock"
)

// TopicGenerator is a testify mock of generation.TopicGenerator.
type TopicGenerator struct {
	mock.Mock
}

var _ generation.TopicGenerator = (*TopicGenerator)(nil)

func (m *TopicGenerator) GenerateTopics(ctx context.Context, subject string) ([]string, error) {
	args := m.Called(ctx, subject)
	if topics, ok := args.Get(0).([]string); ok {
		return topics, args.Error(1)
	}
	return nil, args.Error(1)
}
