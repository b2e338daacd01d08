package expiry

import "time"

// CountdownResult is a point-in-time breakdown of the remaining shelf life of
// a product. Fields are all zero once IsExpired is true.
type CountdownResult struct {
	Days      int  `json:"days"`
	Hours     int  `json:"hours"`
	Minutes   int  `json:"minutes"`
	Seconds   int  `json:"seconds"`
	IsExpired bool `json:"is_expired"`
}

// Countdown computes the time left until the end of the expiry day. A product
// stays valid through its entire expiry date; the deadline is 23:59:59.999
// local time, and only instants strictly after it count as expired.
//
// The function holds no state. Callers that want a live ticking display
// invoke it once per second against the real clock, so there is no drift to
// accumulate and nothing to cancel.
func Countdown(expiry, now time.Time) CountdownResult {
	y, m, d := expiry.Date()
	deadline := time.Date(y, m, d, 23, 59, 59, 999_000_000, expiry.Location())

	if now.After(deadline) {
		return CountdownResult{IsExpired: true}
	}

	totalSeconds := int(deadline.Sub(now) / time.Second)
	return CountdownResult{
		Days:    totalSeconds / 86400,
		Hours:   (totalSeconds % 86400) / 3600,
		Minutes: (totalSeconds % 3600) / 60,
		Seconds: totalSeconds % 60,
	}
}

// CountdownDate is Countdown over a raw YYYY-MM-DD string.
func CountdownDate(expiryDate string, now time.Time) (CountdownResult, error) {
	e, err := ParseDate(expiryDate)
	if err != nil {
		return CountdownResult{}, err
	}
	return Countdown(e, now), nil
}
