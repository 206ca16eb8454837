package dto

type SolutionOutput struct {
	Node   string
	Title  string
	Reason string
	URL    string
	Image  string
}

type AdviceOutput struct {
	Subject   string
	Target    int
	Score     int
	ExamLabel string
	Tier      string
	Solutions []SolutionOutput
}
