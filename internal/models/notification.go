package models

import "time"

// Notification is an expiry reminder produced by the reminder worker.
// NotifiedFor is the calendar day (YYYY-MM-DD) the reminder covers; together
// with ProductID it dedupes repeat runs within the same day.
type Notification struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProductID   string    `json:"product_id"`
	Urgency     string    `json:"urgency"`
	Message     string    `json:"message"`
	NotifiedFor string    `json:"notified_for"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}
