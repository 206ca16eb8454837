package in

import (
	"context"

	"gakuplan/internal/modules/strategy/dto"
	strategyin "gakuplan/internal/modules/strategy/port/in"
)

type CLIHandler struct {
	usecase strategyin.Usecase
}

func NewCLIHandler(usecase strategyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) (dto.PlanOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Promote(ctx context.Context, solutionIndex int) (dto.PlanOutput, error) {
	return h.usecase.Promote(ctx, solutionIndex)
}

func (h CLIHandler) ToggleMonth(ctx context.Context, itemIndex, month int) (dto.PlanOutput, error) {
	return h.usecase.ToggleMonth(ctx, itemIndex, month)
}

func (h CLIHandler) SetWeekly(ctx context.Context, itemIndex int, weekly bool) (dto.PlanOutput, error) {
	return h.usecase.SetWeekly(ctx, itemIndex, weekly)
}

func (h CLIHandler) Remove(ctx context.Context, itemIndex int) (dto.PlanOutput, error) {
	return h.usecase.Remove(ctx, itemIndex)
}

func (h CLIHandler) Clear(ctx context.Context) (dto.PlanOutput, error) {
	return h.usecase.Clear(ctx)
}
