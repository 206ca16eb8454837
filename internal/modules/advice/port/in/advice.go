package in

import (
	"context"

	"gakuplan/internal/modules/advice/dto"
)

// Usecase evaluates the recommendation rules against the stored session.
type Usecase interface {
	Advise(ctx context.Context) (dto.AdviceOutput, error)
}
