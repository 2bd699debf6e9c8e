package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"later-reminder/config"
	"later-reminder/internal/classify"
	"later-reminder/internal/profile"
	"later-reminder/internal/scheduling"
	gcalRepo "later-reminder/internal/scheduling/repository/gcal"
	remindRepo "later-reminder/internal/scheduling/repository/remind"
	"later-reminder/internal/scheduling/usecase"
	"later-reminder/pkg/datemath"
	"later-reminder/pkg/gcalendar"
	"later-reminder/pkg/log"
	"later-reminder/pkg/remindctl"
)

type cliOptions struct {
	input string
	title string

	calendarID string
	from       string
	to         string
	list       string

	dueTime      string
	fixedSpacing int
	profilePath  string

	eventTypes      []string
	summaryKeywords []string
	workKeywords    []string
	allDayOnly      bool

	apply   bool
	verbose bool
}

func main() {
	var opts cliOptions

	rootCmd := &cobra.Command{
		Use:   "later",
		Short: "Schedule a reminder on your next free day",
		Long: `later turns a free-text "do this later" note into one reminder,
scheduled on the next free day found in your Google Calendar at a time
that does not crowd your existing reminders. Each applied run refines a
small local profile of your typical task length and spacing.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.input, "input", "", `note text, e.g. "あとで レポートを書く"`)
	flags.StringVar(&opts.title, "title", "", "explicit reminder title (overrides extraction from --input)")
	flags.StringVar(&opts.calendarID, "calendar-id", "", "calendar to scan (default from config)")
	flags.StringVar(&opts.from, "from", "", "search range start, YYYY-MM-DD (default today)")
	flags.StringVar(&opts.to, "to", "", "search range end, YYYY-MM-DD (default start + range_days)")
	flags.StringVar(&opts.list, "list", "", "reminder list name")
	flags.StringVar(&opts.dueTime, "due-time", "", "preferred time of day, HH:MM")
	flags.IntVar(&opts.fixedSpacing, "fixed-spacing", 0, "fixed spacing in minutes (bypasses learning)")
	flags.StringVar(&opts.profilePath, "profile", "", "learning profile path")
	flags.StringSliceVar(&opts.eventTypes, "event-types", nil, "calendar event types counted as holiday")
	flags.StringSliceVar(&opts.summaryKeywords, "summary-keywords", nil, "summary keywords counted as holiday")
	flags.StringSliceVar(&opts.workKeywords, "work-keywords", nil, "summary keywords marking a work day")
	flags.BoolVar(&opts.allDayOnly, "all-day-only", false, "only all-day events count as holiday")
	flags.BoolVar(&opts.apply, "apply", false, "create the reminder (default is a dry run)")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts cliOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := "error"
	if opts.verbose {
		level = "debug"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     "console",
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	cal, err := datemath.New(cfg.Scheduling.Timezone)
	if err != nil {
		cal = datemath.NewLocal()
	}

	if cfg.GoogleCalendar.CredentialsPath == "" {
		return fmt.Errorf("google_calendar.credentials_path is required")
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		return fmt.Errorf("google calendar unavailable (run `go run scripts/gcal-auth/main.go` first): %w", err)
	}

	remindClient := remindctl.NewClient(cfg.Remindctl.Bin)

	profilePath := opts.profilePath
	if profilePath == "" {
		profilePath = cfg.Scheduling.ProfilePath
	}
	profiles := profile.NewStore(profilePath, logger)

	calRepo := gcalRepo.New(logger, calendarClient, cal)
	remRepo := remindRepo.New(logger, remindClient)

	uc := usecase.New(logger, calRepo, remRepo, profiles, cal, usecase.Config{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		DueTime:    cfg.Scheduling.DueTime,
		RangeDays:  cfg.Scheduling.RangeDays,
		Rules: classify.Rules{
			EventTypes:      cfg.Scheduling.EventTypes,
			SummaryKeywords: cfg.Scheduling.SummaryKeywords,
			WorkKeywords:    cfg.Scheduling.WorkKeywords,
			AllDayOnly:      cfg.Scheduling.AllDayOnly,
		},
		Now: time.Now,
	})

	input := scheduling.PlanInput{
		Input:               opts.input,
		Title:               opts.title,
		CalendarID:          opts.calendarID,
		FromDay:             opts.from,
		ToDay:               opts.to,
		List:                opts.list,
		DueTime:             opts.dueTime,
		FixedSpacingMinutes: opts.fixedSpacing,
		EventTypes:          opts.eventTypes,
		SummaryKeywords:     opts.summaryKeywords,
		WorkKeywords:        opts.workKeywords,
		AllDayOnly:          opts.allDayOnly,
	}

	var plan scheduling.Plan
	if opts.apply {
		plan, err = uc.Apply(ctx, input)
	} else {
		plan, err = uc.Plan(ctx, input)
	}
	if err != nil {
		printError(err)
		return err
	}

	printPlan(plan, opts.apply)
	return nil
}
