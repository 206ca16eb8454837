package dto

type SubjectOutput struct {
	Name string
}

type NodeOutput struct {
	Key   string
	Title string
	URL   string
	Image string
}

type CauseOutput struct {
	Key    string
	Label  string
	Target string
	Hint   string
}

type ClassifyOutput struct {
	Label string
	Tier  string
	Chain []string
}
