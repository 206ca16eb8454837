// Package domain holds the rule-based recommendation engine. Given the
// current session and the catalog tables it produces an ordered list of
// study-step solutions, each carrying a one-line reason the learner can
// read as-is.
package domain

import (
	"fmt"
	"strings"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
)

const reasonDone = "目標達成。振り返り→次目標へ。"

// Recommend derives the ordered solution list for the session. Reaching
// the target score dominates every other rule; below target, English
// gets the ladder-aware builder and every other subject the generic one.
func Recommend(s profiledomain.Session, tables catalogdomain.Tables) []profiledomain.Solution {
	if s.Score >= s.Target {
		return []profiledomain.Solution{{Node: catalogdomain.NodeDone, Reason: reasonDone}}
	}
	tier := tables.ClassifyTier(s.ExamLabel)
	if s.Subject == catalogdomain.SubjectEnglish {
		return englishSolutions(s, tables, tier)
	}
	return genericSolutions(s, tier)
}

func englishSolutions(s profiledomain.Session, tables catalogdomain.Tables, tier catalogdomain.Tier) []profiledomain.Solution {
	var out []profiledomain.Solution
	if s.Causes["unlearned"] {
		picks := tables.Shortlist(catalogdomain.TierFoundation, 3)
		out = append(out, profiledomain.Solution{
			Node:   catalogdomain.NodeOverview,
			Reason: "未修：基礎→標準の順に底上げ。例：" + strings.Join(picks, " / "),
		})
	}
	if s.Causes["practice"] {
		picks := strings.Join(tables.Shortlist(tier, 3), " / ")
		out = append(out, profiledomain.Solution{
			Node:   catalogdomain.NodePractice,
			Reason: fmt.Sprintf("演習不足：まずは%s帯の演習（例：%s）。", tier, picks),
		})
	}
	if s.Causes["format"] {
		out = append(out, profiledomain.Solution{
			Node:   catalogdomain.NodeFormatDrill,
			Reason: "形式最適化：共通(R/L)で時間配分_設問形式の馴化。",
		})
	}
	out = append(out, profiledomain.Solution{
		Node:   catalogdomain.NodePastExam,
		Reason: pastExamNarration(s.ExamLabel, tables, tier),
	})
	return out
}

// pastExamNarration walks the tier fallback chain and narrates each step
// with a two-item shortlist drawn from the English ladder.
func pastExamNarration(label string, tables catalogdomain.Tables, tier catalogdomain.Tier) string {
	target := label
	if target == "" {
		target = "目標レベル"
	}
	var clauses []string
	for i, t := range catalogdomain.FallbackChain(tier) {
		lead := "まず"
		if i > 0 {
			lead = "→ 次に"
		}
		picks := strings.Join(tables.Shortlist(t, 2), " / ")
		clauses = append(clauses, fmt.Sprintf("%s「%s過去問」で検証（推奨：%s）", lead, t, picks))
	}
	return fmt.Sprintf("%s を想定。%s。", target, strings.Join(clauses, " "))
}

var genericReasons = map[string]string{
	"unlearned":  "未修/定義あいまい：教科書レベルの定義→例題で土台固め。",
	"practice":   "演習不足：典型問題→入試形式の段階演習で手数を増やす。",
	"format":     "形式_時間配分：共通テスト/模試形式で最適化。",
	"calc":       "計算精度：途中式テンプレ/計算ルーチンの反復。",
	"method":     "典型解法：例題→類題ドリルでパターン化。",
	"vocab":      "語彙_用語：頻出語彙と用語の整理。",
	"logic":      "要旨把握：段落要約→設問根拠トレーニング。",
	"formula":    "公式_定義：体系整理→例題適用。",
	"experiment": "実験考察：出題パターン別の演習。",
}

func genericSolutions(s profiledomain.Session, tier catalogdomain.Tier) []profiledomain.Solution {
	var out []profiledomain.Solution
	for _, cause := range catalogdomain.CausesFor(s.Subject) {
		if !s.Causes[cause.Key] {
			continue
		}
		reason, ok := genericReasons[cause.Key]
		if !ok {
			continue
		}
		out = append(out, profiledomain.Solution{Node: cause.Target, Reason: reason})
	}
	out = append(out, profiledomain.Solution{
		Node:   catalogdomain.NodePastExam,
		Reason: fmt.Sprintf("過去問入口：%sレベルから開始。厳しい場合は %s にフォールバック。", tier, fallbackHint(tier)),
	})
	return out
}

func fallbackHint(tier catalogdomain.Tier) string {
	switch tier {
	case catalogdomain.TierAdvanced:
		return "発展→応用→標準"
	case catalogdomain.TierApplied:
		return "応用→標準"
	default:
		return "標準（安定後に引き上げ）"
	}
}
