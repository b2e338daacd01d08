package models

// Category groups products under a user-chosen name and emoji icon.
// Default categories are seeded at registration and cannot be deleted.
type Category struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	IsDefault bool   `json:"is_default"`
	CreatedAt string `json:"created_at,omitempty"`
}
