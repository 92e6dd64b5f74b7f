package store

import (
	"context"

	"github.com/padsala/padsala-api/internal/domain"
)

// SyllabusStore reads the seeded university syllabus. It is read-only.
type SyllabusStore interface {
	// Tree returns every university down to subject level. Chapter lists
	// are left empty.
	Tree(ctx context.Context) (domain.SyllabusTree, error)

	// Chapters returns the chapters of the subject at path, in seed order.
	// An unknown path yields an empty slice and no error.
	Chapters(ctx context.Context, path domain.SyllabusPath) ([]string, error)
}
