package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/domain/studyplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const physicsYAML = `
exams:
  - name: Physics
    date: "2083-01-04"
    difficulty: 2
    chapters: [Mechanics, Optics]
mastery:
  - subject: Physics
    topic: Optics
    score: 35
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func baseOptions(path string) generateOptions {
	return generateOptions{
		examsPath:        path,
		now:              "2026-04-14",
		utcOffsetMinutes: 345,
		maxHorizonDays:   1096,
		logLevel:         "error",
	}
}

func TestLoadPlanFile(t *testing.T) {
	t.Parallel()

	f, err := loadPlanFile(writeFile(t, "exams.yaml", physicsYAML+"daily_hours: 6\n"))
	require.NoError(t, err)

	require.Len(t, f.Exams, 1)
	assert.Equal(t, "Physics", f.Exams[0].Name)
	assert.Equal(t, "2083-01-04", f.Exams[0].Date)
	assert.Equal(t, domain.DifficultyMedium, f.Exams[0].Difficulty)
	assert.Equal(t, []string{"Mechanics", "Optics"}, f.Exams[0].Chapters)

	assert.Equal(t, 6, f.Options.DailyHours)
	assert.Equal(t, domain.DefaultSessionMins, f.Options.SessionMins)
	assert.Equal(t, domain.DefaultBreakMins, f.Options.BreakMins)
	assert.Equal(t, domain.DefaultStartTime, f.Options.StartTime)

	assert.Equal(t, domain.MasteryMap{"Physics": {"Optics": 35}}, f.masteryMap())
}

func TestLoadPlanFile_UnquotedDates(t *testing.T) {
	t.Parallel()

	// 2083-02-10 parses as a YAML timestamp; 2083-02-32 is a valid BS date
	// that does not, so it stays a string.
	content := `
exams:
  - name: Physics
    date: 2083-02-10
  - name: Chemistry
    date: 2083-02-32
`
	f, err := loadPlanFile(writeFile(t, "exams.yaml", content))
	require.NoError(t, err)
	require.Len(t, f.Exams, 2)
	assert.Equal(t, "2083-02-10", f.Exams[0].Date)
	assert.Equal(t, "2083-02-32", f.Exams[1].Date)
}

func TestRunGenerate_UnquotedDate(t *testing.T) {
	t.Parallel()

	content := "exams:\n  - name: Physics\n    date: 2083-01-04\n"
	opts := baseOptions(writeFile(t, "exams.yaml", content))
	opts.asJSON = true

	var out, errOut bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), opts, &out, &errOut))

	var plan domain.StudyPlan
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	require.Len(t, plan.Days, 4)
	assert.True(t, plan.Days[3].IsExamDay)
}

func TestLoadPlanFile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"no exams", "daily_hours: 6\n"},
		{"exam without date", "exams:\n  - name: Physics\n"},
		{"score out of range", "exams:\n  - {name: Physics, date: \"2083-01-04\"}\nmastery:\n  - {subject: Physics, topic: Optics, score: 120}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadPlanFile(writeFile(t, "exams.yaml", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := loadPlanFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunGenerate_JSON(t *testing.T) {
	t.Parallel()

	opts := baseOptions(writeFile(t, "exams.yaml", physicsYAML))
	opts.asJSON = true

	var out, errOut bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), opts, &out, &errOut))

	var plan domain.StudyPlan
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	require.Len(t, plan.Days, 4)
	assert.Equal(t, "2026-04-14", plan.Days[0].Date)
	assert.Equal(t, "2083-01-01", plan.Days[0].AltDate)
	assert.Equal(t, domain.DayToday, plan.Days[0].Status)
	assert.True(t, plan.Days[3].IsExamDay)
	assert.Equal(t, []string{"Physics"}, plan.Summary.SubjectsCovered)
}

func TestRunGenerate_JSONFile(t *testing.T) {
	t.Parallel()

	content := `{"exams":[{"name":"Chemistry","date":"2083-01-03"}],"start_time":"07:00"}`
	opts := baseOptions(writeFile(t, "exams.json", content))
	opts.asJSON = true

	var out, errOut bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), opts, &out, &errOut))

	var plan domain.StudyPlan
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	require.Len(t, plan.Days, 3)
	require.NotEmpty(t, plan.Days[0].Tasks)
	assert.True(t, strings.HasPrefix(plan.Days[0].Tasks[0].Time, "07:00"))
}

func TestRunGenerate_Text(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), baseOptions(writeFile(t, "exams.yaml", physicsYAML)), &out, &errOut))

	text := out.String()
	assert.Contains(t, text, "Study plan")
	assert.Contains(t, text, "2083-01-01")
	assert.Contains(t, text, "2026-04-14")
	assert.Contains(t, text, "Physics")
	assert.Contains(t, text, "EXAM")
}

func TestRunGenerate_Errors(t *testing.T) {
	t.Parallel()

	t.Run("bad now", func(t *testing.T) {
		opts := baseOptions(writeFile(t, "exams.yaml", physicsYAML))
		opts.now = "14/04/2026"
		err := runGenerate(context.Background(), opts, &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "--now")
	})

	t.Run("exam already past", func(t *testing.T) {
		opts := baseOptions(writeFile(t, "exams.yaml", physicsYAML))
		opts.now = "2026-05-01"
		err := runGenerate(context.Background(), opts, &bytes.Buffer{}, &bytes.Buffer{})
		var noExams *studyplan.NoExamsError
		assert.ErrorAs(t, err, &noExams)
	})

	t.Run("horizon too long", func(t *testing.T) {
		opts := baseOptions(writeFile(t, "exams.yaml", physicsYAML))
		opts.maxHorizonDays = 2
		err := runGenerate(context.Background(), opts, &bytes.Buffer{}, &bytes.Buffer{})
		assert.ErrorIs(t, err, studyplan.ErrHorizonTooLong)
	})
}

func TestGenerateCmd_RequiresExams(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"generate"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	assert.Error(t, cmd.Execute())
}
