package handlers

import (
	"github.com/rogerio-castellano/expiry-tracker/internal/expiry"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

type ProductRequest struct {
	Name       string  `json:"name"`
	ExpiryDate string  `json:"expiry_date"`
	Quantity   int     `json:"quantity"`
	CategoryID *string `json:"category_id,omitempty"`
	Notes      string  `json:"notes,omitempty"`
	ImageURL   string  `json:"image_url,omitempty"`
}

type ProductResponse struct {
	Id              string           `json:"id"`
	Name            string           `json:"name"`
	ExpiryDate      string           `json:"expiry_date"`
	Quantity        int              `json:"quantity"`
	CategoryID      *string          `json:"category_id,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	ImageURL        string           `json:"image_url,omitempty"`
	Category        *models.Category `json:"category,omitempty"`
	Urgency         expiry.Urgency   `json:"urgency"`
	UrgencyLabel    string           `json:"urgency_label"`
	DaysUntilExpiry int              `json:"days_until_expiry"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta,omitempty"`
}

type TimelineGroupResponse struct {
	Urgency     expiry.Urgency    `json:"urgency"`
	Label       string            `json:"label"`
	Icon        string            `json:"icon"`
	Color       string            `json:"color"`
	BorderColor string            `json:"border_color"`
	Products    []ProductResponse `json:"products"`
}

type CategoryRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type ProfileRequest struct {
	DisplayName              string `json:"display_name"`
	NotificationDaysBefore   int    `json:"notification_days_before"`
	PushNotificationsEnabled bool   `json:"push_notifications_enabled"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ScanRequest struct {
	// Image is a base64 data URL of the packaging photo.
	Image string `json:"image"`
}

type ScanResult struct {
	ExpiryDate *string `json:"expiry_date"`
	Message    string  `json:"message,omitempty"`
}
