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
	"gakuplan/internal/modules/strategy/service"
	"gakuplan/internal/modules/strategy/usecase"
	apperrors "gakuplan/internal/platform/errors"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

func newTestInteractor(t *testing.T) (*usecase.Interactor, profileout.SessionStore) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	clk := fixedClock{at: time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC)}
	store := profileadapter.NewFileSessionStore(path, clk)
	svc := service.NewStrategyService(catalogdomain.DefaultTables(), clk, store)
	return usecase.NewInteractor(svc), store
}

func seedPracticeSession(t *testing.T, store profileout.SessionStore) {
	t.Helper()
	s := profiledomain.Default("2026-02-25")
	s.Score = 60
	s.Causes = map[string]bool{"practice": true}
	if err := store.Save(context.Background(), s); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestPromotePersistsCurrentRecommendation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	interactor, store := newTestInteractor(t)
	seedPracticeSession(t, store)

	plan, err := interactor.Promote(ctx, 0)
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if len(plan.Items) != 1 {
		t.Fatalf("plan length = %d", len(plan.Items))
	}
	item := plan.Items[0]
	if item.Node != "practice" || item.Title != "問題演習" || item.Subject != "英語" {
		t.Fatalf("unexpected item %+v", item)
	}

	// a fresh load must see the promoted step
	reloaded := store.Load(ctx)
	if len(reloaded.Strategy) != 1 {
		t.Fatalf("persisted plan length = %d", len(reloaded.Strategy))
	}
}

func TestPromoteDuplicateAndBadIndex(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	interactor, store := newTestInteractor(t)
	seedPracticeSession(t, store)

	if _, err := interactor.Promote(ctx, 0); err != nil {
		t.Fatalf("first promote: %v", err)
	}
	if _, err := interactor.Promote(ctx, 0); !errors.Is(err, apperrors.ErrDuplicateStrategy) {
		t.Fatalf("duplicate promote: err = %v", err)
	}
	if _, err := interactor.Promote(ctx, 9); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("bad index: err = %v", err)
	}
}

func TestToggleMonthSequenceThroughStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	interactor, store := newTestInteractor(t)
	seedPracticeSession(t, store)

	if _, err := interactor.Promote(ctx, 0); err != nil {
		t.Fatalf("promote: %v", err)
	}
	for _, month := range []int{5, 8} {
		if _, err := interactor.ToggleMonth(ctx, 0, month); err != nil {
			t.Fatalf("toggle %d: %v", month, err)
		}
	}
	plan, err := interactor.ToggleMonth(ctx, 0, 6)
	if err != nil {
		t.Fatalf("toggle 6: %v", err)
	}
	item := plan.Items[0]
	if !item.HasMonths || item.MonthsStart != 6 || item.MonthsEnd != 6 {
		t.Fatalf("range = [%d,%d] has=%v, want collapse to [6,6]", item.MonthsStart, item.MonthsEnd, item.HasMonths)
	}

	// range survives a reload
	reloaded := store.Load(ctx)
	months := reloaded.Strategy[0].Months
	if months == nil || months.Start != 6 || months.End != 6 {
		t.Fatalf("persisted range = %+v", months)
	}
}

func TestClearAndWeekly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	interactor, store := newTestInteractor(t)
	seedPracticeSession(t, store)

	if _, err := interactor.Promote(ctx, 0); err != nil {
		t.Fatalf("promote: %v", err)
	}
	plan, err := interactor.SetWeekly(ctx, 0, true)
	if err != nil {
		t.Fatalf("set weekly: %v", err)
	}
	if !plan.Items[0].Weekly {
		t.Fatal("weekly flag not set")
	}

	plan, err = interactor.Clear(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(plan.Items) != 0 {
		t.Fatalf("plan not cleared: %+v", plan.Items)
	}
	if got := store.Load(ctx).Strategy; len(got) != 0 {
		t.Fatalf("persisted plan not cleared: %+v", got)
	}
}
