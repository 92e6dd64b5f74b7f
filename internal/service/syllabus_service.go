package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/domain/calendar"
	"github.com/padsala/padsala-api/internal/generation"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/redact"
	"github.com/padsala/padsala-api/internal/store"
)

// ChapterOrigin says where a chapter list came from.
type ChapterOrigin string

// Chapter list origins.
const (
	OriginSyllabus  ChapterOrigin = "syllabus"
	OriginGenerated ChapterOrigin = "generated"
)

// ChapterList is the result of a chapter lookup.
type ChapterList struct {
	Chapters []string      `json:"chapters"`
	Origin   ChapterOrigin `json:"source"`
}

// Metadata is what the planning wizard loads first.
type Metadata struct {
	Syllabus domain.SyllabusTree `json:"universities"`
	TodayBS  string              `json:"today_bs"`
}

// DayClock reports the current calendar day in the planner's zone.
// studyplan.Planner satisfies it.
type DayClock interface {
	Today() time.Time
}

// SyllabusService serves the seeded syllabus.
type SyllabusService interface {
	// Metadata returns the syllabus tree and today's alternate-calendar date.
	Metadata(ctx context.Context) (*Metadata, error)

	// Chapters returns the subject's chapters. When the syllabus has none,
	// topics are produced by the configured generator instead.
	Chapters(ctx context.Context, path domain.SyllabusPath) (*ChapterList, error)
}

type syllabusServiceImpl struct {
	syllabus store.SyllabusStore
	topics   generation.TopicGenerator
	conv     calendar.Converter
	clock    DayClock
	logger   *slog.Logger
}

// NewSyllabusService creates a SyllabusService.
func NewSyllabusService(
	syllabus store.SyllabusStore,
	topics generation.TopicGenerator,
	conv calendar.Converter,
	clock DayClock,
	logger *slog.Logger,
) (SyllabusService, error) {
	switch {
	case syllabus == nil:
		return nil, missing("syllabus store")
	case topics == nil:
		return nil, missing("topic generator")
	case conv == nil:
		return nil, missing("calendar converter")
	case clock == nil:
		return nil, missing("clock")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &syllabusServiceImpl{
		syllabus: syllabus,
		topics:   topics,
		conv:     conv,
		clock:    clock,
		logger:   logger.With(slog.String("component", "syllabus_service")),
	}, nil
}

// Metadata implements SyllabusService.Metadata.
func (s *syllabusServiceImpl) Metadata(ctx context.Context) (*Metadata, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tree, err := s.syllabus.Tree(ctx)
	if err != nil {
		log.Error("failed to load syllabus tree", redact.Attr(err))
		return nil, NewServiceError("syllabus", "metadata", "failed to load syllabus", err)
	}

	// An out-of-table date leaves today_bs empty; the wizard still works.
	today, err := s.conv.ToAlt(s.clock.Today())
	if err != nil {
		log.Warn("failed to convert today's date", redact.Attr(err))
		today = ""
	}

	return &Metadata{Syllabus: tree, TodayBS: today}, nil
}

// Chapters implements SyllabusService.Chapters.
func (s *syllabusServiceImpl) Chapters(ctx context.Context, path domain.SyllabusPath) (*ChapterList, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	path = path.Trimmed()
	if path.Subject == "" {
		return nil, ErrEmptySubject
	}

	if path.HasProgram() {
		chapters, err := s.syllabus.Chapters(ctx, path)
		if err != nil {
			log.Error("failed to look up chapters",
				redact.Attr(err),
				slog.String("subject", path.Subject))
			return nil, NewServiceError("syllabus", "chapters", "failed to look up chapters", err)
		}
		if len(chapters) > 0 {
			return &ChapterList{Chapters: chapters, Origin: OriginSyllabus}, nil
		}
	}

	topics, err := s.topics.GenerateTopics(ctx, path.Subject)
	if err != nil {
		log.Error("failed to generate topics",
			redact.Attr(err),
			slog.String("subject", path.Subject))
		return nil, NewServiceError("syllabus", "chapters", "failed to generate topics", err)
	}

	log.Debug("generated chapters for unknown subject",
		slog.String("subject", path.Subject),
		slog.Int("count", len(topics)))
	return &ChapterList{Chapters: topics, Origin: OriginGenerated}, nil
}
