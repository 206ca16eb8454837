package domain

import (
	"testing"
	"time"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
)

var resetAt = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func TestResetArchivesAndClears(t *testing.T) {
	t.Parallel()

	s := profiledomain.Default("2026-02-25")
	s.Score = 60
	s.Causes = map[string]bool{"practice": true}
	s.Memo = "単語帳を一周した"
	s.Strategy = []profiledomain.StrategyItem{{Node: catalogdomain.NodePractice, Subject: s.Subject}}

	solutions := []profiledomain.Solution{{Node: catalogdomain.NodePractice, Reason: "r"}}
	next := Reset(s, solutions, resetAt)

	if len(next.History) != 1 {
		t.Fatalf("history = %d entries", len(next.History))
	}
	entry := next.History[0]
	if entry.PrevScore != 60 || entry.Target != 80 || entry.Subject != catalogdomain.SubjectEnglish {
		t.Fatalf("entry = %+v", entry)
	}
	if entry.Label != "2025 共通テスト 本試験" || entry.ExamType != "共通テスト 本試験" {
		t.Fatalf("entry labels = %+v", entry)
	}
	if len(entry.Solutions) != 1 || entry.Solutions[0].Node != catalogdomain.NodePractice {
		t.Fatalf("entry solutions = %+v", entry.Solutions)
	}

	if next.Score != 0 || len(next.Causes) != 0 || next.Memo != "" {
		t.Fatalf("cycle state not reset: score=%d causes=%v memo=%q", next.Score, next.Causes, next.Memo)
	}
	if next.Target != 80 || len(next.Strategy) != 1 {
		t.Fatal("target and plan must carry over")
	}

	// original untouched
	if s.Score != 60 || len(s.History) != 0 {
		t.Fatal("original session mutated")
	}
}

func TestResetPrependsNewestFirst(t *testing.T) {
	t.Parallel()

	s := profiledomain.Default("2026-02-25")
	s.Score = 50
	s = Reset(s, nil, resetAt)
	s.Score = 70
	later := resetAt.Add(48 * time.Hour)
	s = Reset(s, nil, later)

	if len(s.History) != 2 {
		t.Fatalf("history = %d entries", len(s.History))
	}
	if s.History[0].PrevScore != 70 || !s.History[0].At.Equal(later) {
		t.Fatalf("newest entry = %+v", s.History[0])
	}
	if s.History[1].PrevScore != 50 {
		t.Fatalf("oldest entry = %+v", s.History[1])
	}
}

func TestResetTwiceIsStable(t *testing.T) {
	t.Parallel()

	s := profiledomain.Default("2026-02-25")
	s.Score = 60
	s.Causes = map[string]bool{"practice": true}

	once := Reset(s, nil, resetAt)
	twice := Reset(once, nil, resetAt.Add(time.Hour))

	if twice.Score != 0 || len(twice.Causes) != 0 || twice.Memo != "" {
		t.Fatal("second reset changed cycle state")
	}
	if len(twice.History) != 2 || twice.History[0].PrevScore != 0 {
		t.Fatalf("history after double reset = %+v", twice.History)
	}
}
