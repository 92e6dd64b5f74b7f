package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExamSpec_Normalized(t *testing.T) {
	t.Parallel()

	in := ExamSpec{
		Name:     "  Physics ",
		Date:     " 2083-01-04",
		Chapters: []string{"Optics", "  ", " Waves "},
	}

	out := in.Normalized()

	assert.Equal(t, "Physics", out.Name)
	assert.Equal(t, "2083-01-04", out.Date)
	assert.Equal(t, DefaultDifficulty, out.Difficulty)
	assert.Equal(t, []string{"Optics", "Waves"}, out.Chapters)

	out.Chapters[0] = "changed"
	assert.Equal(t, "Optics", in.Chapters[0])
}

func TestExamSpec_NormalizedKeepsValidDifficulty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DifficultyHard, ExamSpec{Name: "x", Difficulty: DifficultyHard}.Normalized().Difficulty)
	assert.Equal(t, DifficultyMedium, ExamSpec{Name: "x", Difficulty: 7}.Normalized().Difficulty)
}

func TestDifficulty_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "easy", DifficultyEasy.String())
	assert.Equal(t, "hard", DifficultyHard.String())
	assert.Equal(t, "unknown", Difficulty(0).String())
}

func TestSubjectNames(t *testing.T) {
	t.Parallel()

	got := SubjectNames([]ExamSpec{{Name: "Maths"}, {Name: "Physics"}, {Name: "Maths"}})
	assert.Equal(t, []string{"Maths", "Physics"}, got)
}
