package in

import (
	"context"

	"gakuplan/internal/modules/profile/dto"
)

type Usecase interface {
	Show(ctx context.Context) (dto.SessionOutput, error)
	SetSubject(ctx context.Context, subject string) (dto.SessionOutput, error)
	SetTarget(ctx context.Context, target int) (dto.SessionOutput, error)
	SetScore(ctx context.Context, score int) (dto.SessionOutput, error)
	SetExamYear(ctx context.Context, year int) (dto.SessionOutput, error)
	SetExamType(ctx context.Context, examType string) (dto.SessionOutput, error)
	SetExamLabel(ctx context.Context, label string) (dto.SessionOutput, error)
	SetStudyStart(ctx context.Context, date string) (dto.SessionOutput, error)
	SetWeeklyStart(ctx context.Context, date string) (dto.SessionOutput, error)
	ToggleCause(ctx context.Context, key string, selected bool) (dto.SessionOutput, error)
	SetMemo(ctx context.Context, memo string) (dto.SessionOutput, error)
	SetPurpose(ctx context.Context, note string) (dto.SessionOutput, error)
	AddGoal(ctx context.Context, title string) (dto.GoalOutput, error)
	SetGoalProgress(ctx context.Context, goalID string, progress int) (dto.SessionOutput, error)
	RemoveGoal(ctx context.Context, goalID string) (dto.SessionOutput, error)
}
