package usecase

import (
	"context"

	catalog "gakuplan/internal/modules/catalog/domain"
	"gakuplan/internal/modules/profile/dto"
	profilein "gakuplan/internal/modules/profile/port/in"
	"gakuplan/internal/modules/profile/service"
)

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Show(ctx context.Context) (dto.SessionOutput, error) {
	return dto.FromSession(i.svc.Load(ctx)), nil
}

func (i *Interactor) SetSubject(ctx context.Context, subject string) (dto.SessionOutput, error) {
	next, err := i.svc.SetSubject(ctx, catalog.Subject(subject))
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.FromSession(next), nil
}

func (i *Interactor) SetTarget(ctx context.Context, target int) (dto.SessionOutput, error) {
	return dto.FromSession(i.svc.SetTarget(ctx, target)), nil
}

func (i *Interactor) SetScore(ctx context.Context, score int) (dto.SessionOutput, error) {
	return dto.FromSession(i.svc.SetScore(ctx, score)), nil
}

func (i *Interactor) SetExamYear(ctx context.Context, year int) (dto.SessionOutput, error) {
	return dto.FromSession(i.svc.SetExamYear(ctx, year)), nil
}

func (i *Interactor) SetExamType(ctx context.Context, examType string) (dto.SessionOutput, error) {
	return dto.FromSession(i.svc.SetExamType(ctx, examType)), nil
}

func (i *Interactor) SetExamLabel(ctx context.Context, label string) (dto.SessionOutput, error) {
	return dto.FromSession(i.svc.SetExamLabel(ctx, label)), nil
}

func (i *Interactor) SetStudyStart(ctx context.Context, date string) (dto.SessionOutput, error) {
	next, err := i.svc.SetStudyStart(ctx, date)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.FromSession(next), nil
}

func (i *Interactor) SetWeeklyStart(ctx context.Context, date string) (dto.SessionOutput, error) {
	next, err := i.svc.SetWeeklyStart(ctx, date)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.FromSession(next), nil
}

func (i *Interactor) ToggleCause(ctx context.Context, key string, selected bool) (dto.SessionOutput, error) {
	next, err := i.svc.ToggleCause(ctx, key, selected)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.FromSession(next), nil
}

func (i *Interactor) SetMemo(ctx context.Context, memo string) (dto.SessionOutput, error) {
	return dto.FromSession(i.svc.SetMemo(ctx, memo)), nil
}

func (i *Interactor) SetPurpose(ctx context.Context, note string) (dto.SessionOutput, error) {
	return dto.FromSession(i.svc.SetPurpose(ctx, note)), nil
}

func (i *Interactor) AddGoal(ctx context.Context, title string) (dto.GoalOutput, error) {
	_, goal, err := i.svc.AddGoal(ctx, title)
	if err != nil {
		return dto.GoalOutput{}, err
	}
	return dto.GoalOutput{ID: goal.ID, Title: goal.Title, Progress: goal.Progress}, nil
}

func (i *Interactor) SetGoalProgress(ctx context.Context, goalID string, progress int) (dto.SessionOutput, error) {
	next, err := i.svc.SetGoalProgress(ctx, goalID, progress)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.FromSession(next), nil
}

func (i *Interactor) RemoveGoal(ctx context.Context, goalID string) (dto.SessionOutput, error) {
	return dto.FromSession(i.svc.RemoveGoal(ctx, goalID)), nil
}
