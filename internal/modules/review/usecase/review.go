package usecase

import (
	"context"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
	"gakuplan/internal/modules/review/dto"
	"gakuplan/internal/modules/review/service"
)

type Interactor struct {
	svc *service.ReviewService
}

func NewInteractor(svc *service.ReviewService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) ResetToRetry(ctx context.Context) (dto.CycleOutput, error) {
	entry, err := i.svc.ResetToRetry(ctx)
	if err != nil {
		return dto.CycleOutput{}, err
	}
	return toCycle(0, entry), nil
}

func (i *Interactor) History(ctx context.Context) ([]dto.CycleOutput, error) {
	entries := i.svc.History(ctx)
	out := make([]dto.CycleOutput, 0, len(entries))
	for idx, entry := range entries {
		out = append(out, toCycle(idx, entry))
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) error {
	return i.svc.Reindex(ctx)
}

func toCycle(index int, entry profiledomain.HistoryItem) dto.CycleOutput {
	out := dto.CycleOutput{
		Index:     index,
		At:        entry.At,
		Target:    entry.Target,
		PrevScore: entry.PrevScore,
		Subject:   string(entry.Subject),
		Label:     entry.Label,
		ExamType:  entry.ExamType,
	}
	for _, sol := range entry.Solutions {
		out.Solutions = append(out.Solutions, dto.SolutionOutput{
			Node:   string(sol.Node),
			Title:  catalogdomain.NodeTitle(sol.Node),
			Reason: sol.Reason,
		})
	}
	return out
}
