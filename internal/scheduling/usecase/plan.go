package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"later-reminder/internal/classify"
	"later-reminder/internal/profile"
	"later-reminder/internal/scheduling"
	"later-reminder/internal/scheduling/repository"
	"later-reminder/pkg/datemath"
)

// Plan computes a scheduling plan without committing anything.
func (uc *implUseCase) Plan(ctx context.Context, input scheduling.PlanInput) (scheduling.Plan, error) {
	plan, _, err := uc.computePlan(ctx, input)
	return plan, err
}

// computePlan runs the full pipeline up to the commit decision and
// hands back the loaded profile so Apply can evolve it.
func (uc *implUseCase) computePlan(ctx context.Context, input scheduling.PlanInput) (scheduling.Plan, profile.Profile, error) {
	var none scheduling.Plan

	title, err := extractTitle(input.Title, input.Input)
	if err != nil {
		return none, profile.Profile{}, err
	}

	if input.FixedSpacingMinutes < 0 {
		return none, profile.Profile{}, scheduling.ErrInvalidSpacing
	}

	today := uc.cal.Today(uc.cfg.Now())
	fromDay, toDay, err := uc.resolveRange(input, today)
	if err != nil {
		return none, profile.Profile{}, err
	}

	dueTime := input.DueTime
	if dueTime == "" {
		dueTime = uc.cfg.DueTime
	}
	preferredMinute, err := datemath.ParseClock(dueTime)
	if err != nil {
		return none, profile.Profile{}, err
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.cfg.CalendarID
	}

	rules := uc.mergeRules(input)

	events, err := uc.calRepo.ListEvents(ctx, repository.ListEventsOptions{
		CalendarID: calendarID,
		FromDay:    fromDay,
		ToDay:      toDay,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Plan: failed to list calendar events: %v", err)
		return none, profile.Profile{}, fmt.Errorf("failed to list calendar events: %w", err)
	}

	freeDay, found := uc.selectFreeDay(ctx, events, rules, fromDay, toDay, today)
	if !found {
		return none, profile.Profile{}, fmt.Errorf("%w (%s..%s)", scheduling.ErrNoFreeDay, fromDay, toDay)
	}

	if err := uc.remRepo.EnsureAuthorized(ctx); err != nil {
		return none, profile.Profile{}, err
	}
	if err := uc.ensureListExists(ctx, input.List); err != nil {
		return none, profile.Profile{}, err
	}

	reminders, err := uc.remRepo.ListReminders(ctx, repository.ListRemindersOptions{List: input.List})
	if err != nil {
		uc.l.Errorf(ctx, "Plan: failed to list reminders: %v", err)
		return none, profile.Profile{}, fmt.Errorf("failed to list reminders: %w", err)
	}

	prof, repaired := uc.profiles.Load(ctx)
	var warnings []string
	if repaired {
		warnings = append(warnings, "learning profile was unreadable and has been reset to defaults")
	}

	estimated := estimateMinutes(title + " " + input.Input)
	gap := deriveGapMinutes(prof, estimated, input.FixedSpacingMinutes)
	dueDateTime := uc.resolveDueSlot(freeDay, preferredMinute, reminders, gap)
	duplicate := uc.hasDuplicate(reminders, title, freeDay)

	plan := scheduling.Plan{
		RunID:            uuid.NewString(),
		Title:            title,
		FreeDay:          freeDay,
		DueDateTime:      dueDateTime,
		EstimatedMinutes: estimated,
		GapMinutes:       gap,
		List:             input.List,
		Duplicate:        duplicate,
		Warnings:         warnings,
	}
	plan.Notes = buildNotes(input.Input, plan)

	uc.l.Infof(ctx, "Plan: run=%s title=%q day=%s due=%q estimate=%d gap=%d duplicate=%t",
		plan.RunID, title, freeDay, dueDateTime, estimated, gap, duplicate)

	return plan, prof, nil
}

func (uc *implUseCase) resolveRange(input scheduling.PlanInput, today string) (string, string, error) {
	fromDay := input.FromDay
	if fromDay == "" {
		fromDay = today
	} else if _, err := uc.cal.ParseDay(fromDay); err != nil {
		return "", "", err
	}

	toDay := input.ToDay
	if toDay == "" {
		var err error
		toDay, err = uc.cal.AddDays(fromDay, uc.cfg.RangeDays)
		if err != nil {
			return "", "", err
		}
	} else if _, err := uc.cal.ParseDay(toDay); err != nil {
		return "", "", err
	}

	if fromDay > toDay {
		return "", "", fmt.Errorf("%w (%s..%s)", scheduling.ErrInvalidRange, fromDay, toDay)
	}
	return fromDay, toDay, nil
}

func (uc *implUseCase) mergeRules(input scheduling.PlanInput) classify.Rules {
	rules := uc.cfg.Rules
	if len(input.EventTypes) > 0 {
		rules.EventTypes = input.EventTypes
	}
	if len(input.SummaryKeywords) > 0 {
		rules.SummaryKeywords = input.SummaryKeywords
	}
	if len(input.WorkKeywords) > 0 {
		rules.WorkKeywords = input.WorkKeywords
	}
	if input.AllDayOnly {
		rules.AllDayOnly = true
	}
	return rules.Normalized()
}

func (uc *implUseCase) ensureListExists(ctx context.Context, listName string) error {
	if listName == "" {
		return nil
	}

	names, err := uc.remRepo.ListNames(ctx)
	if err != nil {
		return fmt.Errorf("failed to list reminder lists: %w", err)
	}
	wanted := strings.ToLower(listName)
	for _, name := range names {
		if strings.ToLower(name) == wanted {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (available: %s)", scheduling.ErrListNotFound, listName, strings.Join(names, ", "))
}

func buildNotes(input string, plan scheduling.Plan) string {
	lines := []string{
		"自動追加: 「あとで」入力",
	}
	if input != "" {
		lines = append(lines, fmt.Sprintf("入力: %s", input))
	}
	lines = append(lines,
		fmt.Sprintf("休み日: %s", plan.FreeDay),
		fmt.Sprintf("追加時刻: %s", plan.DueDateTime),
		fmt.Sprintf("想定所要時間: %d分", plan.EstimatedMinutes),
		fmt.Sprintf("調整間隔: %d分", plan.GapMinutes),
	)
	return strings.Join(lines, "\n")
}
