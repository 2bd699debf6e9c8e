package scheduling

import "context"

// UseCase is the business logic interface for the scheduling domain.
type UseCase interface {
	// Plan computes a scheduling plan without committing anything:
	// free-day selection, duration estimate, spacing, slot resolution,
	// and duplicate detection.
	Plan(ctx context.Context, input PlanInput) (Plan, error)

	// Apply computes the same plan and, unless a duplicate was found,
	// creates the reminder and folds the run into the learning profile.
	Apply(ctx context.Context, input PlanInput) (Plan, error)
}
