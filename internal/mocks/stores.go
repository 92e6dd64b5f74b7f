package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// UserStore is a testify mock of store.UserStore. WithTx returns the mock
// itself unless an expectation supplies another store.
type UserStore struct {
	mock.Mock
}

var _ store.UserStore = (*UserStore)(nil)

func (m *UserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserStore) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserStore) WithTx(*sql.Tx) store.UserStore {
	return m
}

// ScheduleStore is a testify mock of store.ScheduleStore.
type ScheduleStore struct {
	mock.Mock
}

var _ store.ScheduleStore = (*ScheduleStore)(nil)

func (m *ScheduleStore) Create(ctx context.Context, schedule *domain.SavedSchedule) error {
	return m.Called(ctx, schedule).Error(0)
}

func (m *ScheduleStore) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SavedSchedule, error) {
	args := m.Called(ctx, userID, id)
	if s, ok := args.Get(0).(*domain.SavedSchedule); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SavedSchedule, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]*domain.SavedSchedule); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ScheduleStore) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *ScheduleStore) WithTx(*sql.Tx) store.ScheduleStore {
	return m
}

// SyllabusStore is a testify mock of store.SyllabusStore.
type SyllabusStore struct {
	mock.Mock
}

var _ store.SyllabusStore = (*SyllabusStore)(nil)

func (m *SyllabusStore) Tree(ctx context.Context) (domain.SyllabusTree, error) {
	args := m.Called(ctx)
	if tree, ok := args.Get(0).(domain.SyllabusTree); ok {
		return tree, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SyllabusStore) Chapters(ctx context.Context, path domain.SyllabusPath) ([]string, error) {
	args := m.Called(ctx, path)
	if chapters, ok := args.Get(0).([]string); ok {
		return chapters, args.Error(1)
	}
	return nil, args.Error(1)
}

// MasteryStore is a testify mock of store.MasteryStore.
type MasteryStore struct {
	mock.Mock
}

var _ store.MasteryStore = (*MasteryStore)(nil)

func (m *MasteryStore) GetMap(ctx context.Context, userID uuid.UUID) (domain.MasteryMap, error) {
	args := m.Called(ctx, userID)
	if mm, ok := args.Get(0).(domain.MasteryMap); ok {
		return mm, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MasteryStore) GetForUpdate(ctx context.Context, userID uuid.UUID, subject, topic string) (int, bool, error) {
	args := m.Called(ctx, userID, subject, topic)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MasteryStore) Upsert(ctx context.Context, userID uuid.UUID, subject, topic string, score int) error {
	return m.Called(ctx, userID, subject, topic, score).Error(0)
}

func (m *MasteryStore) WithTx(*sql.Tx) store.MasteryStore {
	return m
}

// SessionStore is a testify mock of store.SessionStore.
type SessionStore struct {
	mock.Mock
}

var _ store.SessionStore = (*SessionStore)(nil)

func (m *SessionStore) Create(ctx context.Context, session *domain.StudySession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionStore) WithTx(*sql.Tx) store.SessionStore {
	return m
}
