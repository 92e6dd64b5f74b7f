package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSyllabusStore_Tree(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresSyllabusStore(db, nil)

	const pou = "Purbanchal University (PoU)"
	mock.ExpectQuery(`FROM subjects su`).
		WillReturnRows(sqlmock.NewRows([]string{"u", "f", "c", "se", "su"}).
			AddRow(pou, "Engineering", "B.E. Computer", "1st Sem", "Engineering Physics").
			AddRow(pou, "Engineering", "B.E. Computer", "1st Sem", "Engineering Mathematics I").
			AddRow(pou, "Science & Technology", "BIT", "1st Sem", "Mathematics"))

	tree, err := s.Tree(context.Background())
	require.NoError(t, err)

	subjects := tree[pou]["Engineering"]["B.E. Computer"]["1st Sem"]
	assert.Len(t, subjects, 2)
	assert.Equal(t, []string{}, subjects["Engineering Physics"])
	assert.Contains(t, tree[pou]["Science & Technology"]["BIT"]["1st Sem"], "Mathematics")
}

func TestPostgresSyllabusStore_Chapters(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresSyllabusStore(db, nil)

	path := domain.SyllabusPath{
		University: "Purbanchal University (PoU)",
		Faculty:    "Engineering",
		Course:     "B.E. Computer",
		Semester:   "1st Sem",
		Subject:    "Engineering Physics",
	}
	mock.ExpectQuery(`ORDER BY ch.position`).
		WithArgs(path.University, path.Faculty, path.Course, path.Semester, path.Subject).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Optics").AddRow("Electrostatics").AddRow("Magnetism"))

	chapters, err := s.Chapters(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Optics", "Electrostatics", "Magnetism"}, chapters)
}

func TestPostgresSyllabusStore_ChaptersUnknownSubject(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresSyllabusStore(db, nil)

	mock.ExpectQuery(`FROM chapters ch`).WillReturnRows(sqlmock.NewRows([]string{"name"}))

	chapters, err := s.Chapters(context.Background(), domain.SyllabusPath{Subject: "Astrology"})
	require.NoError(t, err)
	assert.Empty(t, chapters)
}

func TestPostgresSyllabusStore_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresSyllabusStore(db, nil)

	mock.ExpectQuery(`FROM subjects su`).WillReturnError(errors.New("relation does not exist"))

	_, err := s.Tree(context.Background())
	assert.EqualError(t, err, "relation does not exist")
}
