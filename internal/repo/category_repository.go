package repo

import "github.com/rogerio-castellano/expiry-tracker/internal/models"

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	Create(category models.Category) (models.Category, error)
	GetAllByUser(userID string) ([]models.Category, error)
	GetByID(id string) (models.Category, error)
	Delete(id string) error
}
