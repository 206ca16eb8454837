package in

import (
	"context"

	"gakuplan/internal/modules/catalog/dto"
	catalogin "gakuplan/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListSubjects(ctx context.Context) ([]dto.SubjectOutput, error) {
	return h.usecase.ListSubjects(ctx)
}

func (h CLIHandler) ListNodes(ctx context.Context) ([]dto.NodeOutput, error) {
	return h.usecase.ListNodes(ctx)
}

func (h CLIHandler) ListCauses(ctx context.Context, subject string) ([]dto.CauseOutput, error) {
	return h.usecase.ListCauses(ctx, subject)
}

func (h CLIHandler) Classify(ctx context.Context, label string) (dto.ClassifyOutput, error) {
	return h.usecase.Classify(ctx, label)
}
