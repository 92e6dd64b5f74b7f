package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresMasteryStore_GetMap(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresMasteryStore(db, nil)
	userID := uuid.New()

	mock.ExpectQuery(`FROM topic_mastery\s+WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"subject", "topic", "mastery_score"}).
			AddRow("Physics", "Optics", 30).
			AddRow("Physics", "Waves", 80).
			AddRow("Chemistry", "Polymers", 55))

	mastery, err := s.GetMap(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.MasteryMap{
		"Physics":   {"Optics": 30, "Waves": 80},
		"Chemistry": {"Polymers": 55},
	}, mastery)
}

func TestPostgresMasteryStore_GetMapEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresMasteryStore(db, nil)

	mock.ExpectQuery(`FROM topic_mastery`).
		WillReturnRows(sqlmock.NewRows([]string{"subject", "topic", "mastery_score"}))

	mastery, err := s.GetMap(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, mastery)
	assert.Empty(t, mastery)
}

func TestPostgresMasteryStore_GetForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresMasteryStore(db, nil)
	userID := uuid.New()

	// Existing topic: the seed insert is a no-op and the row is locked.
	mock.ExpectExec(`INSERT INTO topic_mastery .* ON CONFLICT \(user_id, subject, topic\) DO NOTHING`).
		WithArgs(userID, "Physics", "Optics", domain.NeutralMasteryScore).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT mastery_score\s+FROM topic_mastery\s+WHERE user_id = \$1 AND subject = \$2 AND topic = \$3\s+FOR UPDATE`).
		WithArgs(userID, "Physics", "Optics").
		WillReturnRows(sqlmock.NewRows([]string{"mastery_score"}).AddRow(42))

	// New topic: the seed row is created and then locked.
	mock.ExpectExec(`ON CONFLICT \(user_id, subject, topic\) DO NOTHING`).
		WithArgs(userID, "Physics", "Waves", domain.NeutralMasteryScore).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(userID, "Physics", "Waves").
		WillReturnRows(sqlmock.NewRows([]string{"mastery_score"}).AddRow(domain.NeutralMasteryScore))

	score, found, err := s.GetForUpdate(context.Background(), userID, "Physics", "Optics")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 42, score)

	score, found, err = s.GetForUpdate(context.Background(), userID, "Physics", "Waves")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, domain.NeutralMasteryScore, score)
}

func TestPostgresMasteryStore_GetForUpdateUnknownUser(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresMasteryStore(db, nil)

	mock.ExpectExec(`INSERT INTO topic_mastery`).WillReturnError(pgError(foreignKeyViolationCode))

	_, _, err := s.GetForUpdate(context.Background(), uuid.New(), "Physics", "Optics")
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestPostgresMasteryStore_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresMasteryStore(db, nil)
	userID := uuid.New()

	mock.ExpectExec(`ON CONFLICT \(user_id, subject, topic\)`).
		WithArgs(userID, "Physics", "Optics", 64).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Upsert(context.Background(), userID, "Physics", "Optics", 64))
	assert.ErrorIs(t, s.Upsert(context.Background(), userID, "Physics", "Optics", 101), store.ErrInvalidEntity)
	assert.ErrorIs(t, s.Upsert(context.Background(), userID, "Physics", "Optics", -1), store.ErrInvalidEntity)
}
