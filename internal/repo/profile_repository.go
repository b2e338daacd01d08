package repo

import "github.com/rogerio-castellano/expiry-tracker/internal/models"

// ProfileRepository defines the interface for profile data operations.
type ProfileRepository interface {
	Create(profile models.Profile) (models.Profile, error)
	GetByUserID(userID string) (models.Profile, error)
	Update(profile models.Profile) (models.Profile, error)
	// GetPushEnabled lists every profile with push notifications switched on.
	// The reminder worker iterates these each cycle.
	GetPushEnabled() ([]models.Profile, error)
}
