package in

import (
	"context"

	"gakuplan/internal/modules/catalog/dto"
)

type Usecase interface {
	ListSubjects(ctx context.Context) ([]dto.SubjectOutput, error)
	ListNodes(ctx context.Context) ([]dto.NodeOutput, error)
	ListCauses(ctx context.Context, subject string) ([]dto.CauseOutput, error)
	Classify(ctx context.Context, label string) (dto.ClassifyOutput, error)
}
