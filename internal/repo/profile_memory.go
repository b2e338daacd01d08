package repo

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

// InMemoryProfileRepository is an in-memory implementation of
// ProfileRepository used by the handler test suite and reminder tests.
type InMemoryProfileRepository struct {
	mu       sync.Mutex
	profiles []models.Profile
}

func NewInMemoryProfileRepository() *InMemoryProfileRepository {
	return &InMemoryProfileRepository{profiles: []models.Profile{}}
}

func (r *InMemoryProfileRepository) Create(profile models.Profile) (models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	r.profiles = append(r.profiles, profile)
	return profile, nil
}

func (r *InMemoryProfileRepository) GetByUserID(userID string) (models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return models.Profile{}, ErrProfileNotFound
}

func (r *InMemoryProfileRepository) Update(profile models.Profile) (models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.profiles {
		if p.UserID == profile.UserID {
			profile.ID = p.ID
			profile.CreatedAt = p.CreatedAt
			profile.UpdatedAt = time.Now()
			r.profiles[i] = profile
			return profile, nil
		}
	}
	return models.Profile{}, ErrProfileNotFound
}

func (r *InMemoryProfileRepository) GetPushEnabled() ([]models.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Profile
	for _, p := range r.profiles {
		if p.PushNotificationsEnabled {
			out = append(out, p)
		}
	}
	return out, nil
}

// Clear removes every stored profile. Test helper.
func (r *InMemoryProfileRepository) Clear() {
	r.mu.Lock()
	r.profiles = []models.Profile{}
	r.mu.Unlock()
}
