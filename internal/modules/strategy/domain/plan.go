// Package domain implements the long-term strategy plan: promoting
// solutions into the plan, the click-to-extend month range machine, and
// weekly enrollment.
package domain

import (
	"fmt"
	"time"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
	apperrors "gakuplan/internal/platform/errors"
)

// Promote appends a solution to the plan, stamped with the promotion time
// and the subject it was generated for. A step is identified by its
// subject+node pair; promoting the same pair twice is rejected.
func Promote(s profiledomain.Session, sol profiledomain.Solution, at time.Time) (profiledomain.Session, error) {
	for _, item := range s.Strategy {
		if item.Subject == s.Subject && item.Node == sol.Node {
			return profiledomain.Session{}, fmt.Errorf("promote %s/%s: %w", s.Subject, sol.Node, apperrors.ErrDuplicateStrategy)
		}
	}
	next := s.Clone()
	next.Strategy = append(next.Strategy, profiledomain.StrategyItem{
		Node:      sol.Node,
		Reason:    sol.Reason,
		At:        at,
		Subject:   s.Subject,
		WeekCells: map[int]string{},
	})
	return next, nil
}

// ToggleMonth advances the month range machine for one plan item:
//
//	no range yet        -> the clicked month becomes a single-month range
//	click before start  -> the range extends left to the clicked month
//	click after end     -> the range extends right to the clicked month
//	click inside        -> the range collapses back to the clicked month
func ToggleMonth(s profiledomain.Session, index, month int) (profiledomain.Session, error) {
	if month < 1 || month > 12 {
		return profiledomain.Session{}, fmt.Errorf("month %d out of range: %w", month, apperrors.ErrInvalidInput)
	}
	if err := checkIndex(s, index); err != nil {
		return profiledomain.Session{}, err
	}
	next := s.Clone()
	item := &next.Strategy[index]
	switch cur := item.Months; {
	case cur == nil:
		item.Months = &profiledomain.MonthsRange{Start: month, End: month}
	case month < cur.Start:
		item.Months = &profiledomain.MonthsRange{Start: month, End: cur.End}
	case month > cur.End:
		item.Months = &profiledomain.MonthsRange{Start: cur.Start, End: month}
	default:
		item.Months = &profiledomain.MonthsRange{Start: month, End: month}
	}
	return next, nil
}

// SetWeekly flips a plan item's weekly-grid enrollment.
func SetWeekly(s profiledomain.Session, index int, weekly bool) (profiledomain.Session, error) {
	if err := checkIndex(s, index); err != nil {
		return profiledomain.Session{}, err
	}
	next := s.Clone()
	next.Strategy[index].Weekly = weekly
	return next, nil
}

// Remove drops one item from the plan.
func Remove(s profiledomain.Session, index int) (profiledomain.Session, error) {
	if err := checkIndex(s, index); err != nil {
		return profiledomain.Session{}, err
	}
	next := s.Clone()
	next.Strategy = append(next.Strategy[:index], next.Strategy[index+1:]...)
	return next, nil
}

// Clear empties the plan. Week snapshots are kept: they are history, not
// plan state.
func Clear(s profiledomain.Session) profiledomain.Session {
	next := s.Clone()
	next.Strategy = []profiledomain.StrategyItem{}
	return next
}

// ItemTitle resolves the display title for a plan item's node.
func ItemTitle(item profiledomain.StrategyItem) string {
	return catalogdomain.NodeTitle(item.Node)
}

func checkIndex(s profiledomain.Session, index int) error {
	if index < 0 || index >= len(s.Strategy) {
		return fmt.Errorf("strategy item %d: %w", index, apperrors.ErrNotFound)
	}
	return nil
}
