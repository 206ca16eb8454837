package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profileadapter "gakuplan/internal/modules/profile/adapter/out"
	profiledomain "gakuplan/internal/modules/profile/domain"
	profileout "gakuplan/internal/modules/profile/port/out"
	"gakuplan/internal/modules/weekly/service"
	"gakuplan/internal/modules/weekly/usecase"
	apperrors "gakuplan/internal/platform/errors"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type fakeProjector struct {
	resets    int
	projected []profiledomain.WeekSnapshot
}

func (p *fakeProjector) Reset(context.Context) error {
	p.resets++
	p.projected = nil
	return nil
}

func (p *fakeProjector) Project(_ context.Context, snapshot profiledomain.WeekSnapshot) error {
	p.projected = append(p.projected, snapshot)
	return nil
}

func newTestInteractor(t *testing.T) (*usecase.Interactor, profileout.SessionStore, *fakeProjector) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	clk := fixedClock{at: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	store := profileadapter.NewFileSessionStore(path, clk)
	projector := &fakeProjector{}
	svc := service.NewWeeklyService(clk, store, projector)
	return usecase.NewInteractor(svc), store, projector
}

func seedWeeklySession(t *testing.T, store profileout.SessionStore) {
	t.Helper()
	s := profiledomain.Default("2026-02-25")
	s.Strategy = []profiledomain.StrategyItem{
		{Node: catalogdomain.NodeOverview, Subject: catalogdomain.SubjectEnglish, WeekCells: map[int]string{}},
		{Node: catalogdomain.NodePractice, Subject: catalogdomain.SubjectEnglish, Weekly: true, WeekCells: map[int]string{}},
	}
	if err := store.Save(context.Background(), s); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestGridShowsOnlyWeeklyRows(t *testing.T) {
	t.Parallel()

	interactor, store, _ := newTestInteractor(t)
	seedWeeklySession(t, store)

	grid, err := interactor.Grid(context.Background())
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if grid.WeekStart != "2026-02-25" {
		t.Fatalf("week start = %q", grid.WeekStart)
	}
	if len(grid.Dates) != 7 || grid.Dates[6] != "2026-03-03" {
		t.Fatalf("dates = %v", grid.Dates)
	}
	if len(grid.Labels) != 7 || grid.Labels[0] != "月" {
		t.Fatalf("labels = %v", grid.Labels)
	}
	if len(grid.Rows) != 1 || grid.Rows[0].Index != 1 || grid.Rows[0].Title != "問題演習" {
		t.Fatalf("rows = %+v", grid.Rows)
	}
}

func TestSetCellPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	interactor, store, _ := newTestInteractor(t)
	seedWeeklySession(t, store)

	grid, err := interactor.SetCell(ctx, 1, 3, "単語100")
	if err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if grid.Rows[0].Cells[3] != "単語100" {
		t.Fatalf("cells = %v", grid.Rows[0].Cells)
	}
	if got := store.Load(ctx).Strategy[1].WeekCells[3]; got != "単語100" {
		t.Fatalf("persisted cell = %q", got)
	}
}

func TestSaveSnapshotProjectsAndPersists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	interactor, store, projector := newTestInteractor(t)

	// nothing enrolled in the weekly plan yet
	if _, err := interactor.SaveSnapshot(ctx); !errors.Is(err, apperrors.ErrEmptyWeeklyPlan) {
		t.Fatalf("no weekly items: err = %v", err)
	}

	seedWeeklySession(t, store)
	if _, err := interactor.SetCell(ctx, 1, 0, "長文2題"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	snapshot, err := interactor.SaveSnapshot(ctx)
	if err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	if snapshot.WeekStart != "2026-02-25" || len(snapshot.Rows) != 1 {
		t.Fatalf("snapshot = %+v", snapshot)
	}
	if len(projector.projected) != 1 {
		t.Fatalf("projected %d snapshots", len(projector.projected))
	}
	if got := store.Load(ctx).WeekSnapshots; len(got) != 1 {
		t.Fatalf("persisted snapshots = %d", len(got))
	}
}

func TestRemoveSnapshotAndReindex(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	interactor, store, projector := newTestInteractor(t)
	seedWeeklySession(t, store)

	if _, err := interactor.SetCell(ctx, 1, 0, "A"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if _, err := interactor.SaveSnapshot(ctx); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	snapshots, err := interactor.RemoveSnapshot(ctx, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(snapshots) != 0 {
		t.Fatalf("snapshots = %+v", snapshots)
	}
	if _, err := interactor.RemoveSnapshot(ctx, 0); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("remove again: err = %v", err)
	}

	svc := service.NewWeeklyService(fixedClock{}, store, projector)
	if err := svc.Reindex(ctx); err != nil {
		t.Fatalf("reindex: %v", err)
	}
	if projector.resets != 1 || len(projector.projected) != 0 {
		t.Fatalf("reindex state: resets=%d projected=%d", projector.resets, len(projector.projected))
	}
}
