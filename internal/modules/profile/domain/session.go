package domain

import (
	"fmt"
	"time"

	catalog "gakuplan/internal/modules/catalog/domain"
)

const SchemaVersion = 15

// Solution is one recommended action: an action node plus a generated
// human-readable justification. Solutions are transient except where they
// are copied into a HistoryItem or promoted into a StrategyItem.
type Solution struct {
	Node   catalog.NodeKey `json:"node"`
	Reason string          `json:"reason"`
}

// MonthsRange is an inclusive 1..12 month span. The scheduling grid always
// fills a single contiguous range, never a sparse month set.
type MonthsRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r MonthsRange) Contains(month int) bool {
	return month >= r.Start && month <= r.End
}

// StrategyItem is a solution promoted into the long-term plan.
type StrategyItem struct {
	Node      catalog.NodeKey `json:"node"`
	Reason    string          `json:"reason"`
	At        time.Time       `json:"at"`
	Subject   catalog.Subject `json:"subject"`
	Months    *MonthsRange    `json:"months_range,omitempty"`
	Weekly    bool            `json:"weekly"`
	WeekCells map[int]string  `json:"week_cells,omitempty"`
}

// SnapshotRow is one strategy item's week as captured at save time.
type SnapshotRow struct {
	Subject string         `json:"subject"`
	Title   string         `json:"title"`
	Cells   map[int]string `json:"cells"`
}

// WeekSnapshot is an immutable, dated copy of one week's plan.
type WeekSnapshot struct {
	At        time.Time     `json:"at"`
	WeekStart string        `json:"week_start"`
	Rows      []SnapshotRow `json:"rows"`
}

// HistoryItem records one completed score-review cycle, including the
// solutions that were active when the cycle was reset.
type HistoryItem struct {
	At        time.Time       `json:"at"`
	Target    int             `json:"target"`
	PrevScore int             `json:"prev_score"`
	Solutions []Solution      `json:"solutions"`
	Subject   catalog.Subject `json:"subject"`
	Label     string          `json:"label,omitempty"`
	ExamType  string          `json:"exam_type,omitempty"`
}

type Goal struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Progress int    `json:"progress"`
}

// Session is the root aggregate. All mutations are value-semantic: each
// With* method returns a fresh copy so no caller ever observes a
// partially-updated session.
type Session struct {
	PurposeNote   string          `json:"purpose_note"`
	Goals         []Goal          `json:"goals"`
	Subject       catalog.Subject `json:"subject"`
	Target        int             `json:"target"`
	Score         int             `json:"score"`
	ExamType      string          `json:"exam_type,omitempty"`
	ExamYear      int             `json:"exam_year,omitempty"`
	ExamLabel     string          `json:"exam_label,omitempty"`
	StudyStart    string          `json:"study_start,omitempty"`
	Causes        map[string]bool `json:"causes"`
	Memo          string          `json:"memo"`
	Strategy      []StrategyItem  `json:"strategy"`
	WeekSnapshots []WeekSnapshot  `json:"week_snapshots"`
	WeeklyStart   string          `json:"weekly_start,omitempty"`
	History       []HistoryItem   `json:"history"`
}

// Default is the session a fresh (or unreadable) installation starts from.
func Default(today string) Session {
	return Session{
		Subject:       catalog.SubjectEnglish,
		Target:        80,
		Score:         0,
		ExamType:      "共通テスト 本試験",
		ExamYear:      2025,
		ExamLabel:     "2025 共通テスト 本試験",
		StudyStart:    today,
		WeeklyStart:   today,
		Causes:        map[string]bool{},
		Goals:         []Goal{},
		Strategy:      []StrategyItem{},
		WeekSnapshots: []WeekSnapshot{},
		History:       []HistoryItem{},
	}
}

// Clone deep-copies the aggregate. Slice and map fields are duplicated so
// that a mutation on the copy can never leak into the original.
func (s Session) Clone() Session {
	next := s
	next.Causes = copyBoolMap(s.Causes)
	next.Goals = append([]Goal(nil), s.Goals...)
	next.Strategy = make([]StrategyItem, len(s.Strategy))
	for i, item := range s.Strategy {
		next.Strategy[i] = item.clone()
	}
	next.WeekSnapshots = make([]WeekSnapshot, len(s.WeekSnapshots))
	for i, snap := range s.WeekSnapshots {
		next.WeekSnapshots[i] = snap.clone()
	}
	next.History = make([]HistoryItem, len(s.History))
	for i, h := range s.History {
		next.History[i] = h
		next.History[i].Solutions = append([]Solution(nil), h.Solutions...)
	}
	return next
}

func (i StrategyItem) clone() StrategyItem {
	next := i
	if i.Months != nil {
		months := *i.Months
		next.Months = &months
	}
	next.WeekCells = copyCells(i.WeekCells)
	return next
}

func (w WeekSnapshot) clone() WeekSnapshot {
	next := w
	next.Rows = make([]SnapshotRow, len(w.Rows))
	for i, row := range w.Rows {
		next.Rows[i] = row
		next.Rows[i].Cells = copyCells(row.Cells)
	}
	return next
}

func copyBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyCells(m map[int]string) map[int]string {
	out := make(map[int]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// WithSubject switches the subject and clears the selected causes, since
// cause keys are subject-specific.
func (s Session) WithSubject(subject catalog.Subject) Session {
	next := s.Clone()
	next.Subject = subject
	next.Causes = map[string]bool{}
	return next
}

func (s Session) WithTarget(target int) Session {
	next := s.Clone()
	next.Target = clampScore(target)
	return next
}

func (s Session) WithScore(score int) Session {
	next := s.Clone()
	next.Score = clampScore(score)
	return next
}

// WithExamYear recomposes the exam label from year and type, mirroring the
// planner's label composition.
func (s Session) WithExamYear(year int) Session {
	next := s.Clone()
	next.ExamYear = year
	next.ExamLabel = composeLabel(year, next.ExamType)
	return next
}

func (s Session) WithExamType(examType string) Session {
	next := s.Clone()
	next.ExamType = examType
	next.ExamLabel = composeLabel(next.ExamYear, examType)
	return next
}

func composeLabel(year int, examType string) string {
	if year == 0 {
		return examType
	}
	return fmt.Sprintf("%d %s", year, examType)
}

func (s Session) WithExamLabel(label string) Session {
	next := s.Clone()
	next.ExamLabel = label
	return next
}

// WithStudyStart also moves the weekly start; the two stay in sync until
// the weekly start is adjusted individually.
func (s Session) WithStudyStart(date string) Session {
	next := s.Clone()
	next.StudyStart = date
	next.WeeklyStart = date
	return next
}

func (s Session) WithWeeklyStart(date string) Session {
	next := s.Clone()
	next.WeeklyStart = date
	return next
}

func (s Session) WithCause(key string, selected bool) Session {
	next := s.Clone()
	next.Causes[key] = selected
	return next
}

func (s Session) WithMemo(memo string) Session {
	next := s.Clone()
	next.Memo = memo
	return next
}

func (s Session) WithPurpose(note string) Session {
	next := s.Clone()
	next.PurposeNote = note
	return next
}

func (s Session) AddGoal(goal Goal) Session {
	next := s.Clone()
	goal.Progress = clampScore(goal.Progress)
	next.Goals = append(next.Goals, goal)
	return next
}

func (s Session) WithGoalProgress(id string, progress int) Session {
	next := s.Clone()
	for i, g := range next.Goals {
		if g.ID == id {
			next.Goals[i].Progress = clampScore(progress)
		}
	}
	return next
}

func (s Session) RemoveGoal(id string) Session {
	next := s.Clone()
	goals := next.Goals[:0]
	for _, g := range next.Goals {
		if g.ID != id {
			goals = append(goals, g)
		}
	}
	next.Goals = goals
	return next
}
