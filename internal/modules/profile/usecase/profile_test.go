package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	profileout "gakuplan/internal/modules/profile/adapter/out"
	profilein "gakuplan/internal/modules/profile/port/in"
	"gakuplan/internal/modules/profile/service"
	"gakuplan/internal/modules/profile/usecase"
	apperrors "gakuplan/internal/platform/errors"
	"gakuplan/internal/platform/id"
	"gakuplan/internal/platform/isodate"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func newTestInteractor(t *testing.T) (profilein.Usecase, string) {
	t.Helper()
	dir := t.TempDir()
	clk := fixedClock{at: time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC)}
	store := profileout.NewFileSessionStore(filepath.Join(dir, "study-planner-v15.json"), clk)
	return usecase.NewInteractor(service.NewProfileService(id.RandomHex{}, store)), dir
}

func TestShowReturnsDefaultsOnFreshInstall(t *testing.T) {
	t.Parallel()
	uc, _ := newTestInteractor(t)
	out, err := uc.Show(context.Background())
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if out.Subject != "英語" || out.Target != 80 || out.Score != 0 {
		t.Fatalf("unexpected defaults: %+v", out)
	}
}

func TestSubjectSwitchClearsCausesAcrossProcesses(t *testing.T) {
	t.Parallel()
	uc, _ := newTestInteractor(t)
	ctx := context.Background()
	if _, err := uc.ToggleCause(ctx, "practice", true); err != nil {
		t.Fatalf("toggle cause: %v", err)
	}
	out, err := uc.SetSubject(ctx, "数学IA")
	if err != nil {
		t.Fatalf("set subject: %v", err)
	}
	if len(out.Causes) != 0 {
		t.Fatalf("causes should be cleared on subject switch: %+v", out.Causes)
	}
	// the math cause list accepts calc, but the english-only key reading
	// must now be rejected
	if _, err := uc.ToggleCause(ctx, "calc", true); err != nil {
		t.Fatalf("calc should be valid for math: %v", err)
	}
	if _, err := uc.ToggleCause(ctx, "reading", true); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for foreign cause key, got %v", err)
	}
}

func TestSetSubjectRejectsUnknownSubject(t *testing.T) {
	t.Parallel()
	uc, _ := newTestInteractor(t)
	if _, err := uc.SetSubject(context.Background(), "錬金術"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestExamFieldsComposeLabel(t *testing.T) {
	t.Parallel()
	uc, _ := newTestInteractor(t)
	ctx := context.Background()
	if _, err := uc.SetExamType(ctx, "模試"); err != nil {
		t.Fatalf("set exam type: %v", err)
	}
	out, err := uc.SetExamYear(ctx, 2024)
	if err != nil {
		t.Fatalf("set exam year: %v", err)
	}
	if out.ExamLabel != "2024 模試" {
		t.Fatalf("label not composed: %s", out.ExamLabel)
	}
}

func TestStudyStartValidationAndSync(t *testing.T) {
	t.Parallel()
	uc, _ := newTestInteractor(t)
	ctx := context.Background()
	if _, err := uc.SetStudyStart(ctx, "いつか"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid date error, got %v", err)
	}
	out, err := uc.SetStudyStart(ctx, "2026-03-02")
	if err != nil {
		t.Fatalf("set study start: %v", err)
	}
	if out.WeeklyStart != "2026-03-02" {
		t.Fatalf("weekly start should sync: %s", out.WeeklyStart)
	}
	if !isodate.Valid(out.WeeklyStart) {
		t.Fatalf("weekly start not a date: %s", out.WeeklyStart)
	}
}

func TestGoalCRUD(t *testing.T) {
	t.Parallel()
	uc, _ := newTestInteractor(t)
	ctx := context.Background()
	goal, err := uc.AddGoal(ctx, "共通テストで80点")
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if goal.ID == "" {
		t.Fatalf("goal id must be generated")
	}
	out, err := uc.SetGoalProgress(ctx, goal.ID, 150)
	if err != nil {
		t.Fatalf("set goal progress: %v", err)
	}
	if out.Goals[0].Progress != 100 {
		t.Fatalf("progress should clamp to 100: %d", out.Goals[0].Progress)
	}
	if _, err := uc.SetGoalProgress(ctx, "missing", 10); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	out, err = uc.RemoveGoal(ctx, goal.ID)
	if err != nil {
		t.Fatalf("remove goal: %v", err)
	}
	if len(out.Goals) != 0 {
		t.Fatalf("goal not removed: %+v", out.Goals)
	}
}
