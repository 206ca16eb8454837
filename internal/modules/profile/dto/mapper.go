package dto

import (
	catalog "gakuplan/internal/modules/catalog/domain"
	"gakuplan/internal/modules/profile/domain"
)

// FromSession flattens the aggregate for presentation. Node titles are
// resolved here so views never need the catalog tables.
func FromSession(s domain.Session) SessionOutput {
	out := SessionOutput{
		Subject:     string(s.Subject),
		Target:      s.Target,
		Score:       s.Score,
		ExamType:    s.ExamType,
		ExamYear:    s.ExamYear,
		ExamLabel:   s.ExamLabel,
		StudyStart:  s.StudyStart,
		WeeklyStart: s.WeeklyStart,
		PurposeNote: s.PurposeNote,
		Memo:        s.Memo,
		Causes:      s.Causes,
	}
	for _, g := range s.Goals {
		out.Goals = append(out.Goals, GoalOutput{ID: g.ID, Title: g.Title, Progress: g.Progress})
	}
	for _, item := range s.Strategy {
		out.Strategy = append(out.Strategy, FromStrategyItem(item))
	}
	for _, snap := range s.WeekSnapshots {
		out.WeekSnapshots = append(out.WeekSnapshots, FromSnapshot(snap))
	}
	for _, h := range s.History {
		out.History = append(out.History, FromHistoryItem(h))
	}
	return out
}

func FromStrategyItem(item domain.StrategyItem) StrategyItemOutput {
	out := StrategyItemOutput{
		Node:      string(item.Node),
		Title:     catalog.NodeTitle(item.Node),
		Reason:    item.Reason,
		Subject:   string(item.Subject),
		At:        item.At,
		Weekly:    item.Weekly,
		WeekCells: item.WeekCells,
	}
	if item.Months != nil {
		out.HasMonths = true
		out.MonthsStart = item.Months.Start
		out.MonthsEnd = item.Months.End
	}
	return out
}

func FromSnapshot(snap domain.WeekSnapshot) SnapshotOutput {
	out := SnapshotOutput{At: snap.At, WeekStart: snap.WeekStart}
	for _, row := range snap.Rows {
		out.Rows = append(out.Rows, SnapshotRowOutput{Subject: row.Subject, Title: row.Title, Cells: row.Cells})
	}
	return out
}

func FromHistoryItem(h domain.HistoryItem) HistoryOutput {
	out := HistoryOutput{
		At:        h.At,
		Target:    h.Target,
		PrevScore: h.PrevScore,
		Subject:   string(h.Subject),
		Label:     h.Label,
		ExamType:  h.ExamType,
	}
	for _, sol := range h.Solutions {
		out.Solutions = append(out.Solutions, FromSolution(sol))
	}
	return out
}

func FromSolution(sol domain.Solution) SolutionOutput {
	return SolutionOutput{Node: string(sol.Node), Title: catalog.NodeTitle(sol.Node), Reason: sol.Reason}
}
