package domain

import (
	"strings"
	"testing"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
)

func baseSession() profiledomain.Session {
	s := profiledomain.Default("2026-02-25")
	s.Score = 60
	return s
}

func TestRecommendTargetReachedDominates(t *testing.T) {
	t.Parallel()

	s := baseSession()
	s.Score = 80
	s.Causes = map[string]bool{"practice": true, "format": true}

	got := Recommend(s, catalogdomain.DefaultTables())
	if len(got) != 1 {
		t.Fatalf("expected single solution, got %d", len(got))
	}
	if got[0].Node != catalogdomain.NodeDone {
		t.Fatalf("node = %q, want done", got[0].Node)
	}
	if got[0].Reason != "目標達成。振り返り→次目標へ。" {
		t.Fatalf("unexpected reason %q", got[0].Reason)
	}
}

func TestRecommendEnglishPracticeOnly(t *testing.T) {
	t.Parallel()

	s := baseSession()
	s.Causes = map[string]bool{"practice": true}

	got := Recommend(s, catalogdomain.DefaultTables())
	if len(got) != 2 {
		t.Fatalf("expected 2 solutions, got %d: %+v", len(got), got)
	}
	if got[0].Node != catalogdomain.NodePractice {
		t.Fatalf("first node = %q, want practice", got[0].Node)
	}
	if got[0].Reason != "演習不足：まずは標準帯の演習（例：標準単語 / 標準文法 / 熟語）。" {
		t.Fatalf("unexpected practice reason %q", got[0].Reason)
	}
	if got[1].Node != catalogdomain.NodePastExam {
		t.Fatalf("last node = %q, want past-exam", got[1].Node)
	}
	if !strings.HasPrefix(got[1].Reason, "2025 共通テスト 本試験 を想定。まず「標準過去問」で検証") {
		t.Fatalf("unexpected past-exam reason %q", got[1].Reason)
	}
}

func TestRecommendEnglishCauseOrderFixed(t *testing.T) {
	t.Parallel()

	s := baseSession()
	s.Causes = map[string]bool{"format": true, "unlearned": true, "practice": true}

	got := Recommend(s, catalogdomain.DefaultTables())
	want := []catalogdomain.NodeKey{
		catalogdomain.NodeOverview,
		catalogdomain.NodePractice,
		catalogdomain.NodeFormatDrill,
		catalogdomain.NodePastExam,
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d solutions, got %d", len(want), len(got))
	}
	for i, node := range want {
		if got[i].Node != node {
			t.Fatalf("solution %d node = %q, want %q", i, got[i].Node, node)
		}
	}
	if !strings.Contains(got[0].Reason, "基礎→標準の順に底上げ") {
		t.Fatalf("unexpected unlearned reason %q", got[0].Reason)
	}
}

func TestRecommendEnglishAdvancedChainNarration(t *testing.T) {
	t.Parallel()

	s := baseSession()
	s.ExamLabel = "2026 東大 英語"
	s.Causes = map[string]bool{}

	got := Recommend(s, catalogdomain.DefaultTables())
	if len(got) != 1 {
		t.Fatalf("expected past-exam only, got %d", len(got))
	}
	reason := got[0].Reason
	for _, part := range []string{
		"2026 東大 英語 を想定。",
		"まず「発展過去問」で検証",
		"→ 次に「応用過去問」で検証",
		"→ 次に「標準過去問」で検証",
	} {
		if !strings.Contains(reason, part) {
			t.Fatalf("reason %q missing %q", reason, part)
		}
	}
}

func TestRecommendEnglishEmptyLabelFallsBackToGoalLevel(t *testing.T) {
	t.Parallel()

	s := baseSession()
	s.ExamLabel = ""
	s.Causes = map[string]bool{}

	got := Recommend(s, catalogdomain.DefaultTables())
	if !strings.HasPrefix(got[0].Reason, "目標レベル を想定。") {
		t.Fatalf("unexpected reason %q", got[0].Reason)
	}
}

func TestRecommendGenericMath(t *testing.T) {
	t.Parallel()

	s := baseSession()
	s.Subject = catalogdomain.SubjectMathIA
	s.Causes = map[string]bool{"calc": true, "unlearned": true}

	got := Recommend(s, catalogdomain.DefaultTables())
	want := []struct {
		node   catalogdomain.NodeKey
		reason string
	}{
		{catalogdomain.NodeOverview, "未修/定義あいまい：教科書レベルの定義→例題で土台固め。"},
		{catalogdomain.NodePractice, "計算精度：途中式テンプレ/計算ルーチンの反復。"},
		{catalogdomain.NodePastExam, "過去問入口：標準レベルから開始。厳しい場合は 標準（安定後に引き上げ） にフォールバック。"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d solutions, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Node != w.node || got[i].Reason != w.reason {
			t.Fatalf("solution %d = %+v, want %+v", i, got[i], w)
		}
	}
}

func TestRecommendGenericFallbackHintPerTier(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label string
		hint  string
	}{
		{"2026 東大 本試験", "発展→応用→標準"},
		{"2026 MARCH 英語", "応用→標準"},
		{"2025 共通テスト 本試験", "標準（安定後に引き上げ）"},
	}
	for _, tc := range cases {
		s := baseSession()
		s.Subject = catalogdomain.SubjectModernJP
		s.ExamLabel = tc.label
		s.Causes = map[string]bool{}

		got := Recommend(s, catalogdomain.DefaultTables())
		last := got[len(got)-1]
		if last.Node != catalogdomain.NodePastExam {
			t.Fatalf("%s: last node = %q", tc.label, last.Node)
		}
		if !strings.Contains(last.Reason, tc.hint) {
			t.Fatalf("%s: reason %q missing hint %q", tc.label, last.Reason, tc.hint)
		}
	}
}

func TestRecommendGenericIgnoresUnknownCauseKeys(t *testing.T) {
	t.Parallel()

	s := baseSession()
	s.Subject = catalogdomain.SubjectChemistry
	s.Causes = map[string]bool{"experiment": true, "reading": true}

	got := Recommend(s, catalogdomain.DefaultTables())
	if len(got) != 2 {
		t.Fatalf("expected experiment + past-exam, got %d: %+v", len(got), got)
	}
	if got[0].Reason != "実験考察：出題パターン別の演習。" {
		t.Fatalf("unexpected reason %q", got[0].Reason)
	}
}
