package domain_test

import (
	"testing"

	"gakuplan/internal/modules/catalog/domain"
)

func TestCausesForFallsBackToCommonList(t *testing.T) {
	t.Parallel()
	causes := domain.CausesFor(domain.Subject("未知の教科"))
	if len(causes) != 3 {
		t.Fatalf("expected generic 3-cause list, got %d", len(causes))
	}
	if causes[0].Key != "unlearned" || causes[1].Key != "practice" || causes[2].Key != "format" {
		t.Fatalf("generic cause order wrong: %+v", causes)
	}
}

func TestCausesForEnglishDeclarationOrder(t *testing.T) {
	t.Parallel()
	causes := domain.CausesFor(domain.SubjectEnglish)
	if len(causes) != 9 {
		t.Fatalf("expected 9 english causes, got %d", len(causes))
	}
	if causes[0].Key != "unlearned" || causes[8].Key != "school" {
		t.Fatalf("english cause order wrong: first=%s last=%s", causes[0].Key, causes[8].Key)
	}
	if causes[8].Target != domain.NodePastExam {
		t.Fatalf("school cause should target past-exam, got %s", causes[8].Target)
	}
}

func TestTablesApplyOverrides(t *testing.T) {
	t.Parallel()
	base := domain.DefaultTables()
	overridden := base.Apply(domain.Overrides{
		Links: map[domain.NodeKey]domain.MaterialLink{
			domain.NodePractice: {Title: "問題演習", URL: "https://example.com/drills"},
		},
	})
	link, ok := overridden.Link(domain.NodePractice)
	if !ok || link.URL != "https://example.com/drills" {
		t.Fatalf("override not applied: %+v", link)
	}
	// base tables must stay untouched
	orig, _ := base.Link(domain.NodePractice)
	if orig.URL != "" {
		t.Fatalf("default tables mutated by Apply: %+v", orig)
	}
	if _, ok := overridden.Link(domain.NodeDone); ok {
		t.Fatalf("done node has no material link")
	}
}

func TestShortlistClampsToLadderLength(t *testing.T) {
	t.Parallel()
	tables := domain.DefaultTables()
	pick := tables.Shortlist(domain.TierFoundation, 3)
	if len(pick) != 3 || pick[0] != "基礎単語" {
		t.Fatalf("foundation shortlist wrong: %v", pick)
	}
	if got := tables.Shortlist(domain.TierFoundation, 99); len(got) != 3 {
		t.Fatalf("shortlist should clamp to ladder length, got %d", len(got))
	}
}

func TestNodeTitleFallsBackToKey(t *testing.T) {
	t.Parallel()
	if got := domain.NodeTitle(domain.NodePastExam); got != "過去問" {
		t.Fatalf("past-exam title wrong: %s", got)
	}
	if got := domain.NodeTitle(domain.NodeKey("mystery")); got != "mystery" {
		t.Fatalf("unknown node should fall back to key, got %s", got)
	}
}
