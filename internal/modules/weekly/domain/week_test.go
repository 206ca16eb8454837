package domain

import (
	"errors"
	"reflect"
	"testing"
	"time"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
	apperrors "gakuplan/internal/platform/errors"
)

var snapAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func sessionWithWeeklyItem() profiledomain.Session {
	s := profiledomain.Default("2026-02-25")
	s.Strategy = []profiledomain.StrategyItem{{
		Node:      catalogdomain.NodePractice,
		Subject:   catalogdomain.SubjectEnglish,
		Weekly:    true,
		WeekCells: map[int]string{},
	}}
	return s
}

func TestWeekDatesConsecutive(t *testing.T) {
	t.Parallel()

	got := WeekDates("2026-02-26")
	want := []string{
		"2026-02-26", "2026-02-27", "2026-02-28", "2026-03-01",
		"2026-03-02", "2026-03-03", "2026-03-04",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("dates = %v", got)
	}
}

func TestDayLabelsFixedMondayFirst(t *testing.T) {
	t.Parallel()

	// columns are labeled by offset from the start, not by calendar weekday
	got := DayLabels()
	want := []string{"月", "火", "水", "木", "金", "土", "日"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v", got)
	}
}

func TestSetCellWritesAndClears(t *testing.T) {
	t.Parallel()

	s := sessionWithWeeklyItem()
	s, err := SetCell(s, 0, 0, "長文2題")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	s, err = SetCell(s, 0, 3, "単語100")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.Strategy[0].WeekCells; got[0] != "長文2題" || got[3] != "単語100" {
		t.Fatalf("cells = %v", got)
	}

	s, err = SetCell(s, 0, 0, "")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok := s.Strategy[0].WeekCells[0]; ok {
		t.Fatal("empty text must clear the cell")
	}

	if _, err := SetCell(s, 0, 7, "x"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("day 7: err = %v", err)
	}
	if _, err := SetCell(s, 4, 0, "x"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("bad item: err = %v", err)
	}
}

func TestBuildSnapshotCopiesCells(t *testing.T) {
	t.Parallel()

	s := sessionWithWeeklyItem()
	s.Strategy[0].WeekCells = map[int]string{0: "A", 3: "B"}

	s2, err := BuildSnapshot(s, snapAt)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(s2.WeekSnapshots) != 1 {
		t.Fatalf("snapshots = %d", len(s2.WeekSnapshots))
	}
	snap := s2.WeekSnapshots[0]
	if snap.WeekStart != "2026-02-25" || !snap.At.Equal(snapAt) {
		t.Fatalf("snapshot header = %+v", snap)
	}
	if len(snap.Rows) != 1 || snap.Rows[0].Title != "問題演習" || snap.Rows[0].Subject != "英語" {
		t.Fatalf("rows = %+v", snap.Rows)
	}

	// later cell edits must not reach into the frozen copy
	s3, err := SetCell(s2, 0, 0, "changed")
	if err != nil {
		t.Fatalf("set after snapshot: %v", err)
	}
	if s3.WeekSnapshots[0].Rows[0].Cells[0] != "A" {
		t.Fatal("snapshot cell mutated by later edit")
	}
}

func TestBuildSnapshotNewestFirst(t *testing.T) {
	t.Parallel()

	s := sessionWithWeeklyItem()
	s.Strategy[0].WeekCells = map[int]string{0: "A"}

	s, err := BuildSnapshot(s, snapAt)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	later := snapAt.Add(24 * time.Hour)
	s, err = BuildSnapshot(s, later)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !s.WeekSnapshots[0].At.Equal(later) {
		t.Fatalf("snapshots not newest-first: %v", s.WeekSnapshots[0].At)
	}
}

func TestBuildSnapshotKeepsCellLessWeeklyItems(t *testing.T) {
	t.Parallel()

	// a weekly item without cells still yields a row; only the weekly
	// flag decides what is captured
	s := sessionWithWeeklyItem()
	s2, err := BuildSnapshot(s, snapAt)
	if err != nil {
		t.Fatalf("no cells: %v", err)
	}
	if len(s2.WeekSnapshots) != 1 || len(s2.WeekSnapshots[0].Rows) != 1 {
		t.Fatalf("snapshots = %+v", s2.WeekSnapshots)
	}
	if cells := s2.WeekSnapshots[0].Rows[0].Cells; len(cells) != 0 {
		t.Fatalf("cells = %v, want empty", cells)
	}
}

func TestBuildSnapshotRejectsWeekWithoutWeeklyItems(t *testing.T) {
	t.Parallel()

	// cells on a non-weekly item do not count
	s := sessionWithWeeklyItem()
	s.Strategy[0].Weekly = false
	s.Strategy[0].WeekCells = map[int]string{0: "A"}
	if _, err := BuildSnapshot(s, snapAt); !errors.Is(err, apperrors.ErrEmptyWeeklyPlan) {
		t.Fatalf("non-weekly cells: err = %v", err)
	}
}

func TestRemoveSnapshot(t *testing.T) {
	t.Parallel()

	s := sessionWithWeeklyItem()
	s.Strategy[0].WeekCells = map[int]string{0: "A"}
	s, err := BuildSnapshot(s, snapAt)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	s2, err := RemoveSnapshot(s, 0)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(s2.WeekSnapshots) != 0 {
		t.Fatalf("snapshots = %+v", s2.WeekSnapshots)
	}
	if _, err := RemoveSnapshot(s2, 0); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("remove empty: err = %v", err)
	}
}
