package usecase

import (
	"context"

	"gakuplan/internal/modules/advice/dto"
	"gakuplan/internal/modules/advice/service"
	catalogdomain "gakuplan/internal/modules/catalog/domain"
)

type Interactor struct {
	svc *service.AdviceService
}

func NewInteractor(svc *service.AdviceService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) Advise(ctx context.Context) (dto.AdviceOutput, error) {
	cur, tier, solutions := i.svc.Advise(ctx)
	tables := i.svc.Tables()

	out := dto.AdviceOutput{
		Subject:   string(cur.Subject),
		Target:    cur.Target,
		Score:     cur.Score,
		ExamLabel: cur.ExamLabel,
		Tier:      string(tier),
	}
	for _, sol := range solutions {
		item := dto.SolutionOutput{
			Node:   string(sol.Node),
			Title:  catalogdomain.NodeTitle(sol.Node),
			Reason: sol.Reason,
		}
		if link, ok := tables.Link(sol.Node); ok {
			item.URL = link.URL
			item.Image = link.Image
		}
		out.Solutions = append(out.Solutions, item)
	}
	return out, nil
}
