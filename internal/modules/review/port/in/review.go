package in

import (
	"context"

	"gakuplan/internal/modules/review/dto"
)

// Usecase closes a score-review cycle and lists past cycles.
type Usecase interface {
	ResetToRetry(ctx context.Context) (dto.CycleOutput, error)
	History(ctx context.Context) ([]dto.CycleOutput, error)
	Reindex(ctx context.Context) error
}
