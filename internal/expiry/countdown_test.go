package expiry

import (
	"errors"
	"testing"
	"time"
)

func TestCountdown_Breakdown(t *testing.T) {
	expiry := date("2024-06-12")
	// Deadline is 2024-06-12 23:59:59.999 local.
	now := time.Date(2024, time.June, 10, 12, 30, 15, 0, time.Local)

	got := Countdown(expiry, now)
	if got.IsExpired {
		t.Fatal("expected not expired")
	}
	// 2 days 11:29:44.999 remain; floor to whole seconds.
	want := CountdownResult{Days: 2, Hours: 11, Minutes: 29, Seconds: 44}
	if got != want {
		t.Errorf("Countdown = %+v, want %+v", got, want)
	}
}

func TestCountdown_LastSecondTransition(t *testing.T) {
	expiry := date("2024-06-12")
	deadline := time.Date(2024, time.June, 12, 23, 59, 59, 999_000_000, time.Local)

	tests := []struct {
		name string
		now  time.Time
		want CountdownResult
	}{
		{
			"one second left",
			deadline.Add(-time.Second),
			CountdownResult{Seconds: 1},
		},
		{
			"under a second left floors to zero but is not expired",
			deadline.Add(-200 * time.Millisecond),
			CountdownResult{},
		},
		{
			"exactly at the deadline is still valid",
			deadline,
			CountdownResult{},
		},
		{
			"first instant past the deadline is expired",
			deadline.Add(time.Millisecond),
			CountdownResult{IsExpired: true},
		},
		{
			"long expired",
			deadline.Add(48 * time.Hour),
			CountdownResult{IsExpired: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Countdown(expiry, tt.now); got != tt.want {
				t.Errorf("Countdown = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCountdown_ValidThroughWholeExpiryDay(t *testing.T) {
	expiry := date("2024-06-12")
	morningOf := time.Date(2024, time.June, 12, 8, 0, 0, 0, time.Local)

	got := Countdown(expiry, morningOf)
	if got.IsExpired {
		t.Fatal("product must stay valid through its expiry date")
	}
	if got.Days != 0 || got.Hours != 15 || got.Minutes != 59 || got.Seconds != 59 {
		t.Errorf("Countdown = %+v, want 0d 15h 59m 59s", got)
	}
}

func TestCountdown_FieldRanges(t *testing.T) {
	expiry := date("2025-01-01")
	now := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)

	for i := 0; i < 500; i++ {
		got := Countdown(expiry, now.Add(time.Duration(i)*97*time.Minute))
		if got.IsExpired {
			continue
		}
		if got.Hours < 0 || got.Hours >= 24 {
			t.Fatalf("hours out of range: %+v", got)
		}
		if got.Minutes < 0 || got.Minutes >= 60 {
			t.Fatalf("minutes out of range: %+v", got)
		}
		if got.Seconds < 0 || got.Seconds >= 60 {
			t.Fatalf("seconds out of range: %+v", got)
		}
		if got.Days < 0 {
			t.Fatalf("negative days: %+v", got)
		}
	}
}

func TestCountdownDate_InvalidInput(t *testing.T) {
	if _, err := CountdownDate("not-a-date", time.Now()); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}
}
