package in

import (
	"context"

	"gakuplan/internal/modules/profile/dto"
	profilein "gakuplan/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Show(ctx)
}

func (h CLIHandler) SetSubject(ctx context.Context, subject string) (dto.SessionOutput, error) {
	return h.usecase.SetSubject(ctx, subject)
}

func (h CLIHandler) SetTarget(ctx context.Context, target int) (dto.SessionOutput, error) {
	return h.usecase.SetTarget(ctx, target)
}

func (h CLIHandler) SetScore(ctx context.Context, score int) (dto.SessionOutput, error) {
	return h.usecase.SetScore(ctx, score)
}

func (h CLIHandler) SetExamYear(ctx context.Context, year int) (dto.SessionOutput, error) {
	return h.usecase.SetExamYear(ctx, year)
}

func (h CLIHandler) SetExamType(ctx context.Context, examType string) (dto.SessionOutput, error) {
	return h.usecase.SetExamType(ctx, examType)
}

func (h CLIHandler) SetExamLabel(ctx context.Context, label string) (dto.SessionOutput, error) {
	return h.usecase.SetExamLabel(ctx, label)
}

func (h CLIHandler) SetStudyStart(ctx context.Context, date string) (dto.SessionOutput, error) {
	return h.usecase.SetStudyStart(ctx, date)
}

func (h CLIHandler) SetWeeklyStart(ctx context.Context, date string) (dto.SessionOutput, error) {
	return h.usecase.SetWeeklyStart(ctx, date)
}

func (h CLIHandler) ToggleCause(ctx context.Context, key string, selected bool) (dto.SessionOutput, error) {
	return h.usecase.ToggleCause(ctx, key, selected)
}

func (h CLIHandler) SetMemo(ctx context.Context, memo string) (dto.SessionOutput, error) {
	return h.usecase.SetMemo(ctx, memo)
}

func (h CLIHandler) SetPurpose(ctx context.Context, note string) (dto.SessionOutput, error) {
	return h.usecase.SetPurpose(ctx, note)
}

func (h CLIHandler) AddGoal(ctx context.Context, title string) (dto.GoalOutput, error) {
	return h.usecase.AddGoal(ctx, title)
}

func (h CLIHandler) SetGoalProgress(ctx context.Context, goalID string, progress int) (dto.SessionOutput, error) {
	return h.usecase.SetGoalProgress(ctx, goalID, progress)
}

func (h CLIHandler) RemoveGoal(ctx context.Context, goalID string) (dto.SessionOutput, error) {
	return h.usecase.RemoveGoal(ctx, goalID)
}
