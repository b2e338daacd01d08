package repo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

// InMemoryNotificationRepository is an in-memory implementation of
// NotificationRepository used by the handler test suite and reminder tests.
type InMemoryNotificationRepository struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func NewInMemoryNotificationRepository() *InMemoryNotificationRepository {
	return &InMemoryNotificationRepository{notifications: []models.Notification{}}
}

func (r *InMemoryNotificationRepository) Create(notification models.Notification) (models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ProductID == notification.ProductID && n.NotifiedFor == notification.NotifiedFor {
			return models.Notification{}, ErrDuplicatedValueUnique
		}
	}
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	notification.CreatedAt = time.Now()
	r.notifications = append(r.notifications, notification)
	return notification, nil
}

func (r *InMemoryNotificationRepository) GetAllByUser(userID string) ([]models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryNotificationRepository) MarkRead(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, n := range r.notifications {
		if n.ID == id && n.UserID == userID {
			r.notifications[i].Read = true
			return nil
		}
	}
	return ErrNotificationNotFound
}

// Clear removes every stored notification. Test helper.
func (r *InMemoryNotificationRepository) Clear() {
	r.mu.Lock()
	r.notifications = []models.Notification{}
	r.mu.Unlock()
}
