package repo

import "github.com/rogerio-castellano/expiry-tracker/internal/models"

// ProductRepository defines the interface for product data operations.
// Reads are always scoped to an owning user; the core timeline logic never
// filters by user itself.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAllByUser(userID string) ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id string) error
	Filter(filter ProductFilter) ([]models.Product, int, error)
}
