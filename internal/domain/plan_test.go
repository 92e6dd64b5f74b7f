package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()

	zone := time.FixedZone("NPT", 345*60)
	today := time.Date(2026, 4, 14, 23, 30, 0, 0, zone)

	tests := []struct {
		name string
		day  time.Time
		want DayStatus
	}{
		{"yesterday", time.Date(2026, 4, 13, 0, 0, 0, 0, zone), DayCompleted},
		{"same day different clock", time.Date(2026, 4, 14, 0, 0, 0, 0, zone), DayToday},
		{"tomorrow", time.Date(2026, 4, 15, 0, 0, 0, 0, zone), DayUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.day, today))
		})
	}
}

func TestStudyPlan_RefreshStatus(t *testing.T) {
	t.Parallel()

	plan := StudyPlan{Days: []DayPlan{
		{Date: "2026-04-14", Status: DayToday},
		{Date: "2026-04-15", Status: DayUpcoming},
		{Date: "garbage", Status: DayUpcoming},
	}}

	plan.RefreshStatus(time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, DayCompleted, plan.Days[0].Status)
	assert.Equal(t, DayToday, plan.Days[1].Status)
	assert.Equal(t, DayUpcoming, plan.Days[2].Status)
}

func TestTotalMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TotalMinutes(nil))
	assert.Equal(t, 105, TotalMinutes([]TimetableBlock{{Minutes: 90}, {Minutes: 15}}))
}
