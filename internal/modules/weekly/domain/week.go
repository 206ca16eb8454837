// Package domain implements the seven-day planning grid and its dated
// snapshots. The grid itself lives on the session's strategy items;
// snapshots are immutable copies taken at save time.
package domain

import (
	"fmt"
	"time"

	catalogdomain "gakuplan/internal/modules/catalog/domain"
	profiledomain "gakuplan/internal/modules/profile/domain"
	apperrors "gakuplan/internal/platform/errors"
	"gakuplan/internal/platform/isodate"
)

// DaysPerWeek is the grid width. Cells are addressed 0..6 from the
// configured week start.
const DaysPerWeek = 7

var jpWeekdays = [7]string{"月", "火", "水", "木", "金", "土", "日"}

// WeekDates lists the seven consecutive dates starting at the weekly
// start date.
func WeekDates(start string) []string {
	dates := make([]string, DaysPerWeek)
	for i := range dates {
		dates[i] = isodate.AddDays(start, i)
	}
	return dates
}

// DayLabels returns the Japanese label for each grid column. Columns are
// labeled 月 through 日 by offset from the start, regardless of the start
// date's actual weekday.
func DayLabels() []string {
	labels := make([]string, DaysPerWeek)
	for i := range labels {
		labels[i] = jpWeekdays[i%7]
	}
	return labels
}

// SetCell writes one grid cell on a plan item. An empty text clears the
// cell.
func SetCell(s profiledomain.Session, itemIndex, day int, text string) (profiledomain.Session, error) {
	if day < 0 || day >= DaysPerWeek {
		return profiledomain.Session{}, fmt.Errorf("day %d out of range: %w", day, apperrors.ErrInvalidInput)
	}
	if itemIndex < 0 || itemIndex >= len(s.Strategy) {
		return profiledomain.Session{}, fmt.Errorf("strategy item %d: %w", itemIndex, apperrors.ErrNotFound)
	}
	next := s.Clone()
	item := &next.Strategy[itemIndex]
	if item.WeekCells == nil {
		item.WeekCells = map[int]string{}
	}
	if text == "" {
		delete(item.WeekCells, day)
	} else {
		item.WeekCells[day] = text
	}
	return next, nil
}

// BuildSnapshot freezes the current week into a dated snapshot, newest
// first. Every weekly-enrolled item is captured, filled cells or not; a
// week with no weekly items at all is an error rather than an empty
// snapshot.
func BuildSnapshot(s profiledomain.Session, at time.Time) (profiledomain.Session, error) {
	var rows []profiledomain.SnapshotRow
	for _, item := range s.Strategy {
		if !item.Weekly {
			continue
		}
		cells := make(map[int]string, len(item.WeekCells))
		for day, text := range item.WeekCells {
			cells[day] = text
		}
		rows = append(rows, profiledomain.SnapshotRow{
			Subject: string(item.Subject),
			Title:   catalogdomain.NodeTitle(item.Node),
			Cells:   cells,
		})
	}
	if len(rows) == 0 {
		return profiledomain.Session{}, apperrors.ErrEmptyWeeklyPlan
	}
	next := s.Clone()
	snapshot := profiledomain.WeekSnapshot{At: at, WeekStart: next.WeeklyStart, Rows: rows}
	next.WeekSnapshots = append([]profiledomain.WeekSnapshot{snapshot}, next.WeekSnapshots...)
	return next, nil
}

// RemoveSnapshot deletes one saved snapshot.
func RemoveSnapshot(s profiledomain.Session, index int) (profiledomain.Session, error) {
	if index < 0 || index >= len(s.WeekSnapshots) {
		return profiledomain.Session{}, fmt.Errorf("snapshot %d: %w", index, apperrors.ErrNotFound)
	}
	next := s.Clone()
	next.WeekSnapshots = append(next.WeekSnapshots[:index], next.WeekSnapshots[index+1:]...)
	return next, nil
}
