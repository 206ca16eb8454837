// Package domain implements the score-review cycle: archiving the current
// attempt into history and resetting the session for the next try.
package domain

import (
	"time"

	profiledomain "gakuplan/internal/modules/profile/domain"
)

// Reset archives the current attempt and prepares the next one. The
// history entry keeps the solutions that were on screen at reset time;
// the new cycle starts with a zero score, no causes and a blank memo.
// Target, strategy plan and week snapshots carry over untouched.
func Reset(s profiledomain.Session, solutions []profiledomain.Solution, at time.Time) profiledomain.Session {
	entry := profiledomain.HistoryItem{
		At:        at,
		Target:    s.Target,
		PrevScore: s.Score,
		Solutions: append([]profiledomain.Solution(nil), solutions...),
		Subject:   s.Subject,
		Label:     s.ExamLabel,
		ExamType:  s.ExamType,
	}
	next := s.Clone()
	next.History = append([]profiledomain.HistoryItem{entry}, next.History...)
	next.Score = 0
	next.Causes = map[string]bool{}
	next.Memo = ""
	return next
}
