package in

import (
	"context"

	"gakuplan/internal/modules/strategy/dto"
)

// Usecase manages the long-term plan: promoting current recommendations
// into it and scheduling the promoted steps.
type Usecase interface {
	List(ctx context.Context) (dto.PlanOutput, error)
	Promote(ctx context.Context, solutionIndex int) (dto.PlanOutput, error)
	ToggleMonth(ctx context.Context, itemIndex, month int) (dto.PlanOutput, error)
	SetWeekly(ctx context.Context, itemIndex int, weekly bool) (dto.PlanOutput, error)
	Remove(ctx context.Context, itemIndex int) (dto.PlanOutput, error)
	Clear(ctx context.Context) (dto.PlanOutput, error)
}
