package in

import (
	"context"

	"gakuplan/internal/modules/review/dto"
	reviewin "gakuplan/internal/modules/review/port/in"
)

type CLIHandler struct {
	usecase reviewin.Usecase
}

func NewCLIHandler(usecase reviewin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ResetToRetry(ctx context.Context) (dto.CycleOutput, error) {
	return h.usecase.ResetToRetry(ctx)
}

func (h CLIHandler) History(ctx context.Context) ([]dto.CycleOutput, error) {
	return h.usecase.History(ctx)
}

func (h CLIHandler) Reindex(ctx context.Context) error {
	return h.usecase.Reindex(ctx)
}
