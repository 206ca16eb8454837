package dto

import "time"

type GoalOutput struct {
	ID       string
	Title    string
	Progress int
}

type StrategyItemOutput struct {
	Node        string
	Title       string
	Reason      string
	Subject     string
	At          time.Time
	HasMonths   bool
	MonthsStart int
	MonthsEnd   int
	Weekly      bool
	WeekCells   map[int]string
}

type SnapshotRowOutput struct {
	Subject string
	Title   string
	Cells   map[int]string
}

type SnapshotOutput struct {
	At        time.Time
	WeekStart string
	Rows      []SnapshotRowOutput
}

type SolutionOutput struct {
	Node   string
	Title  string
	Reason string
}

type HistoryOutput struct {
	At        time.Time
	Target    int
	PrevScore int
	Subject   string
	Label     string
	ExamType  string
	Solutions []SolutionOutput
}

type SessionOutput struct {
	Subject       string
	Target        int
	Score         int
	ExamType      string
	ExamYear      int
	ExamLabel     string
	StudyStart    string
	WeeklyStart   string
	PurposeNote   string
	Memo          string
	Causes        map[string]bool
	Goals         []GoalOutput
	Strategy      []StrategyItemOutput
	WeekSnapshots []SnapshotOutput
	History       []HistoryOutput
}
