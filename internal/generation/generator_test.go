package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordTopics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		subject string
		first   string
	}{
		{"Engineering Mathematics I", "Limit & Continuity"},
		{"Computer Programming", "Syntax & Variables"},
		{"Object Oriented Programming in Java", "Syntax & Variables"},
		{"C", "Syntax & Variables"},
		{"Financial Accounting", "Ledger Posting"},
		{"Applied Physics", "Mechanics"},
		{"Engineering Drawing", "Introduction"},
		{"Chemistry", "Introduction"},
	}

	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			topics, err := KeywordTopics{}.GenerateTopics(context.Background(), tt.subject)
			require.NoError(t, err)
			require.Len(t, topics, 5)
			assert.Equal(t, tt.first, topics[0])
		})
	}

	_, err := KeywordTopics{}.GenerateTopics(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestKeywordTopics_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first, err := KeywordTopics{}.GenerateTopics(context.Background(), "Physics")
	require.NoError(t, err)
	first[0] = "mutated"

	second, err := KeywordTopics{}.GenerateTopics(context.Background(), "Physics")
	require.NoError(t, err)
	assert.Equal(t, "Mechanics", second[0])
}

type stubGenerator struct {
	topics []string
	err    error
	calls  int
}

func (s *stubGenerator) GenerateTopics(context.Context, string) ([]string, error) {
	s.calls++
	return s.topics, s.err
}

func TestChain(t *testing.T) {
	t.Parallel()

	failing := &stubGenerator{err: errors.New("quota")}
	empty := &stubGenerator{}
	good := &stubGenerator{topics: []string{"Optics"}}
	unused := &stubGenerator{topics: []string{"never"}}

	topics, err := Chain{failing, empty, good, unused}.GenerateTopics(context.Background(), "Physics")
	require.NoError(t, err)
	assert.Equal(t, []string{"Optics"}, topics)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, empty.calls)
	assert.Equal(t, 0, unused.calls)

	_, err = Chain{failing}.GenerateTopics(context.Background(), "Physics")
	assert.EqualError(t, err, "quota")

	_, err = Chain{}.GenerateTopics(context.Background(), "Physics")
	assert.ErrorIs(t, err, ErrGenerationFailed)
}
