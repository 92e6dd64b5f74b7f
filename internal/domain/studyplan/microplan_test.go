package studyplan

import (
	"strings"
	"testing"

	"github.com/padsala/padsala-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireContiguous checks that blocks follow each other without gaps and
// that their minutes add up to the span between first start and last end.
func requireContiguous(t *testing.T, blocks []domain.TimetableBlock) {
	t.Helper()
	require.NotEmpty(t, blocks)

	first, _ := splitLabel(t, blocks[0].Time)
	elapsed := 0
	cursor := first
	for _, b := range blocks {
		start, end := splitLabel(t, b.Time)
		require.Equal(t, cursor%minutesPerDay, start, "block %q starts off the clock", b.Activity)
		require.Equal(t, (start+b.Minutes)%minutesPerDay, end, "block %q label/minutes mismatch", b.Activity)
		cursor = start + b.Minutes
		elapsed += b.Minutes
	}
	assert.Equal(t, domain.TotalMinutes(blocks), elapsed)
}

func splitLabel(t *testing.T, label string) (int, int) {
	t.Helper()
	from, to, ok := strings.Cut(label, " - ")
	require.True(t, ok, label)
	start, err := ParseClock(from)
	require.NoError(t, err)
	end, err := ParseClock(to)
	require.NoError(t, err)
	return start, end
}

func kinds(blocks []domain.TimetableBlock) []domain.BlockKind {
	out := make([]domain.BlockKind, len(blocks))
	for i, b := range blocks {
		out[i] = b.Kind
	}
	return out
}

func TestBuildDay_DefaultEightHours(t *testing.T) {
	t.Parallel()

	blocks, err := BuildDay(DayRequest{
		Subject:     "Physics",
		Focus:       "Optics",
		Hours:       8,
		SessionMins: 90,
		BreakMins:   15,
		StartTime:   "06:00",
	}, nil)
	require.NoError(t, err)

	want := []domain.TimetableBlock{
		{Time: "06:00 - 07:30", Activity: "Deep Work: Concepts: Optics", Kind: domain.BlockStudy, Minutes: 90},
		{Time: "07:30 - 07:45", Activity: "Micro-Break (20-20-20 Rule)", Kind: domain.BlockBreak, Minutes: 15},
		{Time: "07:45 - 09:15", Activity: "Active Recall Session: Optics", Kind: domain.BlockStudy, Minutes: 90},
		{Time: "09:15 - 10:15", Activity: "Full Reset (Walk/Nap/Shower)", Kind: domain.BlockFullBreak, Minutes: 60},
		{Time: "10:15 - 11:45", Activity: "Past Paper Sprint: Optics", Kind: domain.BlockStudy, Minutes: 90},
		{Time: "11:45 - 12:00", Activity: "Micro-Break (20-20-20 Rule)", Kind: domain.BlockBreak, Minutes: 15},
		{Time: "12:00 - 13:30", Activity: "Feynman Technique Review: Optics", Kind: domain.BlockStudy, Minutes: 90},
		{Time: "13:30 - 14:30", Activity: "Full Reset (Walk/Nap/Shower)", Kind: domain.BlockFullBreak, Minutes: 60},
		{Time: "14:30 - 16:00", Activity: "Deep Work: Concepts: Optics", Kind: domain.BlockStudy, Minutes: 90},
		{Time: "16:00 - 16:15", Activity: "Micro-Break (20-20-20 Rule)", Kind: domain.BlockBreak, Minutes: 15},
		{Time: "16:15 - 16:45", Activity: "Active Recall Session: Optics", Kind: domain.BlockStudy, Minutes: 30},
		{Time: "16:45 - 17:00", Activity: "Daily Reflection & Tomorrow's Goal", Kind: domain.BlockBuffer, Minutes: 15},
	}
	assert.Equal(t, want, blocks)
	requireContiguous(t, blocks)
}

func TestBuildDay_MealsOnTriggerHour(t *testing.T) {
	t.Parallel()

	blocks, err := BuildDay(DayRequest{
		Focus:       "Limits",
		Hours:       1,
		SessionMins: 30,
		BreakMins:   0,
		StartTime:   "07:30",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []domain.BlockKind{
		domain.BlockStudy, domain.BlockMeal, domain.BlockStudy, domain.BlockBuffer,
	}, kinds(blocks))
	assert.Equal(t, "08:00 - 08:45", blocks[1].Time)
	assert.Equal(t, "Breakfast & Hydration", blocks[1].Activity)
	assert.Equal(t, 45, blocks[1].Minutes)
	requireContiguous(t, blocks)
}

func TestBuildDay_EachMealAtMostOnce(t *testing.T) {
	t.Parallel()

	blocks, err := BuildDay(DayRequest{
		Focus:       "Loops",
		Hours:       12,
		SessionMins: 30,
		BreakMins:   5,
		StartTime:   "07:55",
	}, nil)
	require.NoError(t, err)
	requireContiguous(t, blocks)

	meals := map[string]int{}
	studied := 0
	for _, b := range blocks {
		switch b.Kind {
		case domain.BlockMeal:
			meals[b.Activity]++
		case domain.BlockStudy:
			studied += b.Minutes
		}
	}
	for activity, n := range meals {
		assert.Equal(t, 1, n, activity)
	}
	assert.Equal(t, 12*60, studied)
}

func TestBuildDay_NoBreakfastWhenDoneEarly(t *testing.T) {
	t.Parallel()

	blocks, err := BuildDay(DayRequest{
		Focus:       "Optics",
		Hours:       1,
		SessionMins: 90,
		BreakMins:   15,
		StartTime:   "06:00",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []domain.TimetableBlock{
		{Time: "06:00 - 07:00", Activity: "Deep Work: Concepts: Optics", Kind: domain.BlockStudy, Minutes: 60},
		{Time: "07:00 - 07:15", Activity: "Daily Reflection & Tomorrow's Goal", Kind: domain.BlockBuffer, Minutes: 15},
	}, blocks)
}

func TestBuildDay_WrapsPastMidnight(t *testing.T) {
	t.Parallel()

	blocks, err := BuildDay(DayRequest{
		Focus:       "Ledger Posting",
		Hours:       2,
		SessionMins: 60,
		BreakMins:   15,
		StartTime:   "23:00",
	}, nil)
	require.NoError(t, err)

	require.Len(t, blocks, 4)
	assert.Equal(t, "23:00 - 00:00", blocks[0].Time)
	assert.Equal(t, "00:00 - 00:15", blocks[1].Time)
	assert.Equal(t, "00:15 - 01:15", blocks[2].Time)
	assert.Equal(t, "01:15 - 01:30", blocks[3].Time)
	requireContiguous(t, blocks)
}

func TestBuildDay_RestDay(t *testing.T) {
	t.Parallel()

	for _, hours := range []int{0, -3} {
		blocks, err := BuildDay(DayRequest{Subject: "Physics", Hours: hours, StartTime: "not a time"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []domain.TimetableBlock{{
			Time:     "00:00 - 23:59",
			Activity: "HOLIDAY / REST DAY",
			Kind:     domain.BlockBreak,
			Minutes:  1440,
		}}, blocks)
	}
}

func TestExamDayTemplate(t *testing.T) {
	t.Parallel()

	blocks, err := BuildDay(DayRequest{Subject: "Physics", ExamDay: true, Hours: 3, StartTime: "bogus"}, nil)
	require.NoError(t, err)
	require.Len(t, blocks, 5)

	assert.Equal(t, "Final Formula Polish: Physics", blocks[0].Activity)
	assert.Equal(t, []int{90, 60, 180, 90, 120}, []int{
		blocks[0].Minutes, blocks[1].Minutes, blocks[2].Minutes, blocks[3].Minutes, blocks[4].Minutes,
	})
	assert.Equal(t, []domain.BlockKind{
		domain.BlockStudy, domain.BlockBreak, domain.BlockExam, domain.BlockFullBreak, domain.BlockStudy,
	}, kinds(blocks))

	// The shared template must not be modified by a previous call.
	again := ExamDayTemplate("Maths")
	assert.Equal(t, "Final Formula Polish: Maths", again[0].Activity)
}

func TestBuildDay_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     DayRequest
		wantErr error
	}{
		{"bad start", DayRequest{Hours: 2, SessionMins: 60, StartTime: "6am"}, ErrTimeFormat},
		{"zero session", DayRequest{Hours: 2, SessionMins: 0, StartTime: "06:00"}, ErrInvalidOption},
		{"negative break", DayRequest{Hours: 2, SessionMins: 60, BreakMins: -1, StartTime: "06:00"}, ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := BuildDay(tt.req, nil)
			assert.Nil(t, blocks)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseClock(t *testing.T) {
	t.Parallel()

	valid := map[string]int{"06:00": 360, "6:00": 360, " 23:59 ": 1439, "00:00": 0}
	for in, want := range valid {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "6", "24:00", "06:60", "ab:cd", "06:0", "+6:00", "06:-1", "006:00"} {
		_, err := ParseClock(in)
		var tErr *TimeFormatError
		require.ErrorAs(t, err, &tErr, in)
		assert.Equal(t, in, tErr.Value)
		assert.Equal(t, "start_time", tErr.Field())
	}
}
