package usecase

import (
	"context"

	"gakuplan/internal/modules/catalog/domain"
	"gakuplan/internal/modules/catalog/dto"
	catalogin "gakuplan/internal/modules/catalog/port/in"
	"gakuplan/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListSubjects(_ context.Context) ([]dto.SubjectOutput, error) {
	subjects := i.svc.Subjects()
	out := make([]dto.SubjectOutput, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, dto.SubjectOutput{Name: string(s)})
	}
	return out, nil
}

func (i *Interactor) ListNodes(_ context.Context) ([]dto.NodeOutput, error) {
	nodes := i.svc.Nodes()
	tables := i.svc.Tables()
	out := make([]dto.NodeOutput, 0, len(nodes))
	for _, n := range nodes {
		item := dto.NodeOutput{Key: string(n), Title: domain.NodeTitle(n)}
		if link, ok := tables.Link(n); ok {
			item.URL = link.URL
			item.Image = link.Image
		}
		out = append(out, item)
	}
	return out, nil
}

func (i *Interactor) ListCauses(_ context.Context, subject string) ([]dto.CauseOutput, error) {
	causes := i.svc.CausesFor(domain.Subject(subject))
	out := make([]dto.CauseOutput, 0, len(causes))
	for _, c := range causes {
		out = append(out, dto.CauseOutput{Key: c.Key, Label: c.Label, Target: string(c.Target), Hint: c.Hint})
	}
	return out, nil
}

func (i *Interactor) Classify(_ context.Context, label string) (dto.ClassifyOutput, error) {
	tier, chain := i.svc.Classify(label)
	out := dto.ClassifyOutput{Label: label, Tier: string(tier)}
	for _, t := range chain {
		out.Chain = append(out.Chain, string(t))
	}
	return out, nil
}
