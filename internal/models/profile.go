package models

import "time"

// Profile holds per-user reminder preferences. One profile exists per user,
// created alongside the account.
type Profile struct {
	ID                       string    `json:"id"`
	UserID                   string    `json:"user_id"`
	DisplayName              string    `json:"display_name,omitempty"`
	NotificationDaysBefore   int       `json:"notification_days_before"`
	PushNotificationsEnabled bool      `json:"push_notifications_enabled"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}
