package dto

import "time"

type GridRowOutput struct {
	Index   int
	Node    string
	Title   string
	Subject string
	Cells   map[int]string
}

type GridOutput struct {
	WeekStart string
	Dates     []string
	Labels    []string
	Rows      []GridRowOutput
}

type SnapshotRowOutput struct {
	Subject string
	Title   string
	Cells   map[int]string
}

type SnapshotOutput struct {
	Index     int
	At        time.Time
	WeekStart string
	Rows      []SnapshotRowOutput
}
