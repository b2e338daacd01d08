package repo

import "github.com/rogerio-castellano/expiry-tracker/internal/models"

// NotificationRepository defines the interface for reminder notifications.
type NotificationRepository interface {
	// Create inserts a notification unless one already exists for the same
	// product and day; a duplicate returns ErrDuplicatedValueUnique.
	Create(notification models.Notification) (models.Notification, error)
	GetAllByUser(userID string) ([]models.Notification, error)
	MarkRead(id, userID string) error
}
