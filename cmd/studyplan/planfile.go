package main

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/spf13/viper"
)

// masteryEntry is one mastery score. Scores are listed rather than nested
// because viper folds map keys to lower case and subject names must keep
// their case.
type masteryEntry struct {
	Subject string `mapstructure:"subject" validate:"required"`
	Topic   string `mapstructure:"topic"   validate:"required"`
	Score   int    `mapstructure:"score"   validate:"min=0,max=100"`
}

// planFile is the exam file layout:
//
//	exams:
//	  - name: Physics
//	    date: 2083-02-10
//	    difficulty: 3
//	    chapters: [Mechanics, Optics]
//	mastery:
//	  - {subject: Physics, topic: Optics, score: 35}
//	daily_hours: 6
//	start_time: "07:00"
type planFile struct {
	Exams   []domain.ExamSpec  `mapstructure:"exams"   validate:"required,min=1,dive"`
	Mastery []masteryEntry     `mapstructure:"mastery" validate:"dive"`
	Options domain.PlanOptions `mapstructure:",squash"`
}

func (f *planFile) masteryMap() domain.MasteryMap {
	if len(f.Mastery) == 0 {
		return nil
	}
	m := domain.MasteryMap{}
	for _, e := range f.Mastery {
		m.Set(e.Subject, e.Topic, e.Score)
	}
	return m
}

// loadPlanFile reads path with viper. The format follows the extension.
func loadPlanFile(path string) (*planFile, error) {
	v := viper.New()
	v.SetConfigFile(path)

	defaults := domain.DefaultPlanOptions()
	v.SetDefault("daily_hours", defaults.DailyHours)
	v.SetDefault("session_mins", defaults.SessionMins)
	v.SetDefault("break_mins", defaults.BreakMins)
	v.SetDefault("start_time", defaults.StartTime)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read exam file: %w", err)
	}

	var f planFile
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		timeToDateString(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&f, hook); err != nil {
		return nil, fmt.Errorf("decode exam file: %w", err)
	}
	if err := validator.New().Struct(&f); err != nil {
		return nil, fmt.Errorf("invalid exam file: %w", err)
	}
	return &f, nil
}

// timeToDateString turns YAML timestamps back into YYYY-MM-DD strings. An
// unquoted exam date that also happens to be a valid Gregorian date reaches
// the decoder as a time.Time.
func timeToDateString() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data any) (any, error) {
		t, ok := data.(time.Time)
		if !ok || to.Kind() != reflect.String {
			return data, nil
		}
		return t.Format(domain.ISODateLayout), nil
	}
}
