package usecase

import (
	"context"

	"later-reminder/internal/scheduling"
	"later-reminder/internal/scheduling/repository"
)

// Apply computes the plan and, unless a duplicate exists, creates the
// reminder and folds the run into the learning profile. A profile save
// failure downgrades to a warning; the reminder is already committed
// at that point.
func (uc *implUseCase) Apply(ctx context.Context, input scheduling.PlanInput) (scheduling.Plan, error) {
	plan, prof, err := uc.computePlan(ctx, input)
	if err != nil {
		return scheduling.Plan{}, err
	}

	if plan.Duplicate {
		uc.l.Infof(ctx, "Apply: run=%s duplicate found, skipping create", plan.RunID)
		return plan, nil
	}

	err = uc.remRepo.CreateReminder(ctx, repository.CreateReminderOptions{
		Title:       plan.Title,
		DueDateTime: plan.DueDateTime,
		List:        plan.List,
		Notes:       plan.Notes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Apply: run=%s failed to create reminder: %v", plan.RunID, err)
		return scheduling.Plan{}, err
	}
	plan.Committed = true

	now := uc.cfg.Now()
	next := prof.Apply(plan.EstimatedMinutes, plan.GapMinutes, plan.DueDateTime, now)
	if err := uc.profiles.Save(ctx, next); err != nil {
		uc.l.Warnf(ctx, "Apply: run=%s reminder created but profile save failed: %v", plan.RunID, err)
		plan.Warnings = append(plan.Warnings, "reminder created, but the learning profile could not be saved")
	}

	uc.l.Infof(ctx, "Apply: run=%s committed due=%q list=%q", plan.RunID, plan.DueDateTime, plan.List)
	return plan, nil
}
