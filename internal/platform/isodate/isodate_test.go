package isodate_test

import (
	"testing"
	"time"

	"gakuplan/internal/platform/isodate"
)

func TestFormatAndAddDays(t *testing.T) {
	t.Parallel()
	d := isodate.Format(time.Date(2026, 2, 25, 13, 30, 0, 0, time.UTC))
	if d != "2026-02-25" {
		t.Fatalf("unexpected format: %s", d)
	}
	if got := isodate.AddDays("2026-02-25", 6); got != "2026-03-03" {
		t.Fatalf("add days across month boundary: %s", got)
	}
	if got := isodate.AddDays("2026-02-25", 0); got != "2026-02-25" {
		t.Fatalf("zero shift should be identity: %s", got)
	}
}

func TestAddDaysKeepsUnparseableInput(t *testing.T) {
	t.Parallel()
	if got := isodate.AddDays("not-a-date", 3); got != "not-a-date" {
		t.Fatalf("expected passthrough, got %s", got)
	}
	if isodate.Valid("not-a-date") {
		t.Fatalf("invalid date should not validate")
	}
	if !isodate.Valid("2026-01-01") {
		t.Fatalf("valid date should validate")
	}
}
