package usecase

import (
	"context"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
	"gakuplan/internal/modules/strategy/dto"
	"gakuplan/internal/modules/strategy/service"
)

type Interactor struct {
	svc *service.StrategyService
}

func NewInteractor(svc *service.StrategyService) *Interactor {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) (dto.PlanOutput, error) {
	return toPlan(i.svc.List(ctx)), nil
}

func (i *Interactor) Promote(ctx context.Context, solutionIndex int) (dto.PlanOutput, error) {
	items, err := i.svc.Promote(ctx, solutionIndex)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toPlan(items), nil
}

func (i *Interactor) ToggleMonth(ctx context.Context, itemIndex, month int) (dto.PlanOutput, error) {
	items, err := i.svc.ToggleMonth(ctx, itemIndex, month)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toPlan(items), nil
}

func (i *Interactor) SetWeekly(ctx context.Context, itemIndex int, weekly bool) (dto.PlanOutput, error) {
	items, err := i.svc.SetWeekly(ctx, itemIndex, weekly)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toPlan(items), nil
}

func (i *Interactor) Remove(ctx context.Context, itemIndex int) (dto.PlanOutput, error) {
	items, err := i.svc.Remove(ctx, itemIndex)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toPlan(items), nil
}

func (i *Interactor) Clear(ctx context.Context) (dto.PlanOutput, error) {
	items, err := i.svc.Clear(ctx)
	if err != nil {
		return dto.PlanOutput{}, err
	}
	return toPlan(items), nil
}

func toPlan(items []profiledomain.StrategyItem) dto.PlanOutput {
	var out dto.PlanOutput
	for idx, item := range items {
		entry := dto.ItemOutput{
			Index:   idx,
			Node:    string(item.Node),
			Title:   catalogdomain.NodeTitle(item.Node),
			Reason:  item.Reason,
			Subject: string(item.Subject),
			At:      item.At,
			Weekly:  item.Weekly,
		}
		if item.Months != nil {
			entry.HasMonths = true
			entry.MonthsStart = item.Months.Start
			entry.MonthsEnd = item.Months.End
		}
		out.Items = append(out.Items, entry)
	}
	return out
}
