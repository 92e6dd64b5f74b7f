package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/padsala/padsala-api/internal/config"
	"github.com/padsala/padsala-api/internal/domain"
	"github.com/padsala/padsala-api/internal/domain/calendar"
	"github.com/padsala/padsala-api/internal/domain/studyplan"
	"github.com/padsala/padsala-api/internal/platform/logger"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	examsPath        string
	now              string
	asJSON           bool
	utcOffsetMinutes int
	maxHorizonDays   int
	logLevel         string
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan from an exam file",
		Example: `  studyplan generate --exams exams.yaml
  studyplan generate --exams exams.json --now 2026-04-14 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.examsPath, "exams", "", "exam file (YAML or JSON)")
	flags.StringVar(&opts.now, "now", "", "treat this Gregorian date (YYYY-MM-DD) as today")
	flags.BoolVar(&opts.asJSON, "json", false, "print the plan as JSON")
	flags.IntVar(&opts.utcOffsetMinutes, "utc-offset-minutes", 345, "zone offset used to decide today")
	flags.IntVar(&opts.maxHorizonDays, "max-horizon-days", 1096, "longest plan accepted, in days")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level for diagnostics on stderr")
	_ = cmd.MarkFlagRequired("exams")

	return cmd
}

func runGenerate(ctx context.Context, opts generateOptions, out, errOut io.Writer) error {
	log, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: opts.logLevel}, errOut)
	if err != nil {
		return err
	}

	file, err := loadPlanFile(opts.examsPath)
	if err != nil {
		return err
	}

	loc := time.FixedZone("planner", opts.utcOffsetMinutes*60)
	clock, err := clockFor(opts.now, loc)
	if err != nil {
		return err
	}

	conv := calendar.NewBikramSambat()
	planner := studyplan.NewPlanner(conv, clock,
		studyplan.WithLocation(loc),
		studyplan.WithMaxHorizonDays(opts.maxHorizonDays),
		studyplan.WithLogger(log),
	)

	plan, err := planner.Generate(ctx, file.Exams, file.Options, file.masteryMap())
	if err != nil {
		return fmt.Errorf("generate plan: %w", err)
	}
	log.Debug("plan generated", slog.Int("days", plan.Summary.TotalDays))

	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(plan)
	}
	_, err = io.WriteString(out, renderPlan(plan))
	return err
}

// clockFor pins today to now when it is set.
func clockFor(now string, loc *time.Location) (studyplan.Clock, error) {
	if now == "" {
		return studyplan.SystemClock{}, nil
	}
	day, err := time.ParseInLocation(domain.ISODateLayout, now, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid --now %q: expected YYYY-MM-DD", now)
	}
	return studyplan.FixedClock{T: day}, nil
}

