package domain_test

import (
	"testing"
	"time"

	catalog "gakuplan/internal/modules/catalog/domain"
	"gakuplan/internal/modules/profile/domain"
)

func TestDefaultSession(t *testing.T) {
	t.Parallel()
	s := domain.Default("2026-02-25")
	if s.Subject != catalog.SubjectEnglish || s.Target != 80 || s.Score != 0 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
	if s.ExamLabel != "2025 共通テスト 本試験" {
		t.Fatalf("default exam label wrong: %s", s.ExamLabel)
	}
	if s.StudyStart != "2026-02-25" || s.WeeklyStart != "2026-02-25" {
		t.Fatalf("start dates not set to today: %+v", s)
	}
}

func TestWithSubjectClearsCauses(t *testing.T) {
	t.Parallel()
	s := domain.Default("2026-02-25").WithCause("practice", true)
	next := s.WithSubject(catalog.SubjectMathIA)
	if len(next.Causes) != 0 {
		t.Fatalf("subject switch must clear causes: %+v", next.Causes)
	}
	if !s.Causes["practice"] {
		t.Fatalf("original session mutated by WithSubject")
	}
}

func TestExamYearAndTypeRecomposeLabel(t *testing.T) {
	t.Parallel()
	s := domain.Default("2026-02-25").WithExamType("模試").WithExamYear(2024)
	if s.ExamLabel != "2024 模試" {
		t.Fatalf("label not recomposed: %s", s.ExamLabel)
	}
	s = s.WithExamLabel("東大オープン")
	if s.ExamLabel != "東大オープン" {
		t.Fatalf("free-text label overwrite failed: %s", s.ExamLabel)
	}
}

func TestScoreAndTargetClamp(t *testing.T) {
	t.Parallel()
	s := domain.Default("2026-02-25").WithScore(250).WithTarget(-5)
	if s.Score != 100 || s.Target != 0 {
		t.Fatalf("clamping failed: score=%d target=%d", s.Score, s.Target)
	}
}

func TestStudyStartSyncsWeeklyStart(t *testing.T) {
	t.Parallel()
	s := domain.Default("2026-02-25").WithStudyStart("2026-03-02")
	if s.WeeklyStart != "2026-03-02" {
		t.Fatalf("weekly start should follow study start: %s", s.WeeklyStart)
	}
	s = s.WithWeeklyStart("2026-03-09")
	if s.StudyStart != "2026-03-02" || s.WeeklyStart != "2026-03-09" {
		t.Fatalf("individual weekly adjustment broken: %+v", s)
	}
}

func TestGoalLifecycle(t *testing.T) {
	t.Parallel()
	s := domain.Default("2026-02-25").
		AddGoal(domain.Goal{ID: "g1", Title: "共通テストで80点"}).
		AddGoal(domain.Goal{ID: "g2", Title: "MARCH合格", Progress: 120})
	if len(s.Goals) != 2 || s.Goals[1].Progress != 100 {
		t.Fatalf("goal add/clamp failed: %+v", s.Goals)
	}
	s = s.WithGoalProgress("g1", 55).RemoveGoal("g2")
	if len(s.Goals) != 1 || s.Goals[0].Progress != 55 {
		t.Fatalf("goal progress/remove failed: %+v", s.Goals)
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()
	s := domain.Default("2026-02-25")
	s.Strategy = []domain.StrategyItem{{
		Node:      catalog.NodePractice,
		Subject:   catalog.SubjectEnglish,
		At:        time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC),
		Months:    &domain.MonthsRange{Start: 4, End: 7},
		WeekCells: map[int]string{0: "単語50"},
	}}
	clone := s.Clone()
	clone.Strategy[0].WeekCells[1] = "長文1題"
	clone.Strategy[0].Months.End = 12
	if _, leaked := s.Strategy[0].WeekCells[1]; leaked {
		t.Fatalf("week cells shared between clone and original")
	}
	if s.Strategy[0].Months.End != 7 {
		t.Fatalf("months range shared between clone and original")
	}
}
