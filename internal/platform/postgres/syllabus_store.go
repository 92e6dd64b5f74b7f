package postgres

import (
	"context"
	"log/slog"

	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/padsala/padsala-api/internal/redact"
	"github.com/padsala/padsala-api/internal/store"
)

// PostgresSyllabusStore implements store.SyllabusStore over the seeded
// university tables.
type PostgresSyllabusStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.SyllabusStore = (*PostgresSyllabusStore)(nil)

// NewPostgresSyllabusStore creates a syllabus store.
func NewPostgresSyllabusStore(db store.DBTX, logger *slog.Logger) *PostgresSyllabusStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSyllabusStore{
		db:     db,
		logger: logger.With(slog.String("component", "syllabus_store")),
	}
}

// Tree implements store.SyllabusStore.
func (s *PostgresSyllabusStore) Tree(ctx context.Context) (domain.SyllabusTree, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT u.name, f.name, c.name, se.name, su.name
		FROM subjects su
		JOIN semesters se ON se.id = su.semester_id
		JOIN courses c ON c.id = se.course_id
		JOIN faculties f ON f.id = c.faculty_id
		JOIN universities u ON u.id = f.university_id
		ORDER BY u.id, f.id, c.id, se.id, su.id
	`)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load syllabus tree",
			redact.Attr(err))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tree := domain.SyllabusTree{}
	for rows.Next() {
		var p domain.SyllabusPath
		if err := rows.Scan(&p.University, &p.Faculty, &p.Course, &p.Semester, &p.Subject); err != nil {
			return nil, MapError(err)
		}
		tree.AddSubject(p)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return tree, nil
}

// Chapters implements store.SyllabusStore.
func (s *PostgresSyllabusStore) Chapters(ctx context.Context, path domain.SyllabusPath) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ch.name
		FROM chapters ch
		JOIN subjects su ON su.id = ch.subject_id
		JOIN semesters se ON se.id = su.semester_id
		JOIN courses c ON c.id = se.course_id
		JOIN faculties f ON f.id = c.faculty_id
		JOIN universities u ON u.id = f.university_id
		WHERE u.name = $1 AND f.name = $2 AND c.name = $3 AND se.name = $4 AND su.name = $5
		ORDER BY ch.position
	`, path.University, path.Faculty, path.Course, path.Semester, path.Subject)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load chapters",
			redact.Attr(err),
			slog.String("subject", path.Subject))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	chapters := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, MapError(err)
		}
		chapters = append(chapters, name)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return chapters, nil
}
