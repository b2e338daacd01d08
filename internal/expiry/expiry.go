// Package expiry holds the pure date logic behind the product timeline:
// classifying an expiry date into an urgency bucket, computing a live
// countdown, and grouping products by urgency. Nothing here performs I/O or
// keeps state; every function is safe to call from any goroutine.
package expiry

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the only calendar date format accepted or produced anywhere
// in the service.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when an expiry date string is not a valid
// YYYY-MM-DD calendar date. Callers validate before classifying; the core
// never silently defaults a malformed date into a bucket.
var ErrInvalidDate = errors.New("invalid expiry date, want YYYY-MM-DD")

// Urgency is how soon a product expires, from most to least urgent.
type Urgency string

const (
	UrgencyCritical  Urgency = "critical"  // ≤2 days (includes already expired)
	UrgencyUrgent    Urgency = "urgent"    // ≤5 days
	UrgencyWarning   Urgency = "warning"   // ≤10 days
	UrgencySoon      Urgency = "soon"      // ≤15 days
	UrgencyMonth     Urgency = "month"     // ≤30 days
	UrgencySixMonths Urgency = "sixmonths" // ≤180 days
	UrgencyYear      Urgency = "year"      // ≤365 days
	UrgencySafe      Urgency = "safe"      // >365 days
)

// urgencyOrder lists every urgency from most to least urgent. The timeline
// grouper emits buckets in this order.
var urgencyOrder = [...]Urgency{
	UrgencyCritical,
	UrgencyUrgent,
	UrgencyWarning,
	UrgencySoon,
	UrgencyMonth,
	UrgencySixMonths,
	UrgencyYear,
	UrgencySafe,
}

// ParseDate parses a strict YYYY-MM-DD calendar date in local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	// time.Parse accepts out-of-range-normalized forms only when the layout
	// allows; re-format to reject things like 2024-1-05.
	if t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DaysUntil returns the signed whole-day difference between today and the
// expiry date, positive when the expiry is in the future. Both arguments are
// normalized to their calendar date first, so time-of-day and DST shifts
// never influence the count.
func DaysUntil(expiry, today time.Time) int {
	return int(midnightUTC(expiry).Sub(midnightUTC(today)) / (24 * time.Hour))
}

// midnightUTC collapses an instant to its calendar date, rebuilt in UTC so
// day arithmetic is exact.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Classify maps an expiry date and a "today" reference to an urgency bucket.
// Thresholds are cumulative and evaluated in order, so d ≤ 2 catches every
// non-positive difference too: already-expired products classify as critical.
func Classify(expiry, today time.Time) Urgency {
	d := DaysUntil(expiry, today)
	switch {
	case d <= 2:
		return UrgencyCritical
	case d <= 5:
		return UrgencyUrgent
	case d <= 10:
		return UrgencyWarning
	case d <= 15:
		return UrgencySoon
	case d <= 30:
		return UrgencyMonth
	case d <= 180:
		return UrgencySixMonths
	case d <= 365:
		return UrgencyYear
	default:
		return UrgencySafe
	}
}

// ClassifyDate is Classify over a raw YYYY-MM-DD string.
func ClassifyDate(expiryDate string, today time.Time) (Urgency, error) {
	e, err := ParseDate(expiryDate)
	if err != nil {
		return "", err
	}
	return Classify(e, today), nil
}

// Label returns the timeline section heading for an urgency.
func (u Urgency) Label() string {
	switch u {
	case UrgencyCritical:
		return "Expiring within 2 days"
	case UrgencyUrgent:
		return "Expiring within 5 days"
	case UrgencyWarning:
		return "Expiring within 10 days"
	case UrgencySoon:
		return "Expiring within 15 days"
	case UrgencyMonth:
		return "Expiring within 1 month"
	case UrgencySixMonths:
		return "Expiring within 6 months"
	case UrgencyYear:
		return "Expiring within 1 year"
	case UrgencySafe:
		return "Beyond 1 year"
	}
	panic("expiry: unknown urgency " + string(u))
}

// Icon returns the display glyph for an urgency.
func (u Urgency) Icon() string {
	switch u {
	case UrgencyCritical:
		return "🔴"
	case UrgencyUrgent:
		return "🟠"
	case UrgencyWarning:
		return "🟡"
	case UrgencySoon:
		return "🟢"
	case UrgencyMonth:
		return "🔵"
	case UrgencySixMonths, UrgencyYear, UrgencySafe:
		return "⚪"
	}
	panic("expiry: unknown urgency " + string(u))
}

// Color returns the badge style token for an urgency.
func (u Urgency) Color() string {
	switch u {
	case UrgencyCritical:
		return "bg-expiry-critical text-white"
	case UrgencyUrgent:
		return "bg-expiry-urgent text-white"
	case UrgencyWarning:
		return "bg-expiry-warning text-foreground"
	case UrgencySoon:
		return "bg-expiry-soon text-white"
	case UrgencyMonth:
		return "bg-expiry-month text-white"
	case UrgencySixMonths:
		return "bg-expiry-safe/50 text-foreground"
	case UrgencyYear:
		return "bg-expiry-safe/30 text-foreground"
	case UrgencySafe:
		return "bg-expiry-safe/20 text-foreground"
	}
	panic("expiry: unknown urgency " + string(u))
}

// BorderColor returns the card border-accent token for an urgency.
func (u Urgency) BorderColor() string {
	switch u {
	case UrgencyCritical:
		return "border-l-expiry-critical"
	case UrgencyUrgent:
		return "border-l-expiry-urgent"
	case UrgencyWarning:
		return "border-l-expiry-warning"
	case UrgencySoon:
		return "border-l-expiry-soon"
	case UrgencyMonth:
		return "border-l-expiry-month"
	case UrgencySixMonths:
		return "border-l-expiry-safe/50"
	case UrgencyYear:
		return "border-l-expiry-safe/30"
	case UrgencySafe:
		return "border-l-expiry-safe/20"
	}
	panic("expiry: unknown urgency " + string(u))
}
