package dto

import "time"

type SolutionOutput struct {
	Node   string
	Title  string
	Reason string
}

type CycleOutput struct {
	Index     int
	At        time.Time
	Target    int
	PrevScore int
	Subject   string
	Label     string
	ExamType  string
	Solutions []SolutionOutput
}
