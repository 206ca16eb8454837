package dto

import "time"

type ItemOutput struct {
	Index       int
	Node        string
	Title       string
	Reason      string
	Subject     string
	At          time.Time
	HasMonths   bool
	MonthsStart int
	MonthsEnd   int
	Weekly      bool
}

type PlanOutput struct {
	Items []ItemOutput
}
