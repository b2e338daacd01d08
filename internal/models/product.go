package models

// Product represents a tracked household product with an expiry date.
// ExpiryDate is always a calendar date in YYYY-MM-DD form; it carries no
// time-of-day or timezone component.
type Product struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CategoryID *string   `json:"category_id,omitempty"`
	Name       string    `json:"name"`
	ExpiryDate string    `json:"expiry_date"`
	Quantity   int       `json:"quantity"`
	Notes      string    `json:"notes,omitempty"`
	ImageURL   string    `json:"image_url,omitempty"`
	CreatedAt  string    `json:"created_at,omitempty"`
	UpdatedAt  string    `json:"updated_at,omitempty"`
	Category   *Category `json:"category,omitempty"`
}
