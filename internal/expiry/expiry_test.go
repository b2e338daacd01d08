package expiry

import (
	"errors"
	"testing"
	"time"
)

var today = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)

func date(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestClassify_ThresholdBoundaries(t *testing.T) {
	tests := []struct {
		name string
		days int
		want Urgency
	}{
		{"ten days overdue", -10, UrgencyCritical},
		{"expired yesterday", -1, UrgencyCritical},
		{"expires today", 0, UrgencyCritical},
		{"last critical day", 2, UrgencyCritical},
		{"first urgent day", 3, UrgencyUrgent},
		{"last urgent day", 5, UrgencyUrgent},
		{"first warning day", 6, UrgencyWarning},
		{"last warning day", 10, UrgencyWarning},
		{"first soon day", 11, UrgencySoon},
		{"last soon day", 15, UrgencySoon},
		{"first month day", 16, UrgencyMonth},
		{"last month day", 30, UrgencyMonth},
		{"first sixmonths day", 31, UrgencySixMonths},
		{"last sixmonths day", 180, UrgencySixMonths},
		{"first year day", 181, UrgencyYear},
		{"last year day", 365, UrgencyYear},
		{"first safe day", 366, UrgencySafe},
		{"far future", 1000, UrgencySafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expiry := today.AddDate(0, 0, tt.days)
			if got := Classify(expiry, today); got != tt.want {
				t.Errorf("Classify(today%+dd) = %q, want %q", tt.days, got, tt.want)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	expiry := date("2024-06-25")
	first := Classify(expiry, today)
	for i := 0; i < 100; i++ {
		if got := Classify(expiry, today); got != first {
			t.Fatalf("Classify flapped: got %q then %q", first, got)
		}
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	// 2024-06-12 is two days out regardless of the clock on either side.
	lateToday := time.Date(2024, time.June, 10, 23, 45, 0, 0, time.Local)
	earlyExpiry := time.Date(2024, time.June, 12, 0, 1, 0, 0, time.Local)
	if got := Classify(earlyExpiry, lateToday); got != UrgencyCritical {
		t.Errorf("expected critical across time-of-day, got %q", got)
	}
}

func TestClassifyDate_InvalidInput(t *testing.T) {
	for _, bad := range []string{"", "tomorrow", "2024-13-01", "2024-1-05", "06/10/2024", "2024-06-10T00:00:00Z"} {
		if _, err := ClassifyDate(bad, today); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ClassifyDate(%q) error = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestParseDate_Valid(t *testing.T) {
	got, err := ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.February || got.Day() != 29 {
		t.Errorf("parsed %v, want 2024-02-29", got)
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		expiry string
		want   int
	}{
		{"2024-06-10", 0},
		{"2024-06-11", 1},
		{"2024-06-05", -5},
		{"2025-06-10", 365},
		{"2026-01-01", 570},
	}
	for _, tt := range tests {
		if got := DaysUntil(date(tt.expiry), today); got != tt.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", tt.expiry, got, tt.want)
		}
	}
}

func TestUrgencyTables_Exhaustive(t *testing.T) {
	for _, u := range urgencyOrder {
		if u.Label() == "" {
			t.Errorf("urgency %q has empty label", u)
		}
		if u.Icon() == "" {
			t.Errorf("urgency %q has empty icon", u)
		}
		if u.Color() == "" {
			t.Errorf("urgency %q has empty color", u)
		}
		if u.BorderColor() == "" {
			t.Errorf("urgency %q has empty border color", u)
		}
	}
}

func TestUrgencyTables_UnknownValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown urgency value")
		}
	}()
	Urgency("eternal").Label()
}

func TestUrgencyLabels(t *testing.T) {
	if got := UrgencyCritical.Label(); got != "Expiring within 2 days" {
		t.Errorf("critical label = %q", got)
	}
	if got := UrgencySafe.Label(); got != "Beyond 1 year" {
		t.Errorf("safe label = %q", got)
	}
}
