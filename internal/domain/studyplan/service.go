package studyplan

import (
	"context"
	"time"

	"github.com/padsala/padsala-api/internal/domain"
)

// Scheduler is the planning surface used by the application services.
type Scheduler interface {
	// Generate builds a complete plan or fails without a partial result.
	Generate(
		ctx context.Context,
		exams []domain.ExamSpec,
		opts domain.PlanOptions,
		mastery domain.MasteryMap,
	) (*domain.StudyPlan, error)

	// ReplanDay rebuilds one day's timetable.
	ReplanDay(subject, focus string, hours int, opts domain.PlanOptions) ([]domain.TimetableBlock, error)

	// Today is the current calendar day in the planner's zone.
	Today() time.Time
}

var _ Scheduler = (*Planner)(nil)
