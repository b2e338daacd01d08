package repo

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

// InMemoryCategoryRepository is an in-memory implementation of
// CategoryRepository used by the handler test suite.
type InMemoryCategoryRepository struct {
	mu         sync.Mutex
	categories []models.Category
}

func NewInMemoryCategoryRepository() *InMemoryCategoryRepository {
	return &InMemoryCategoryRepository{categories: []models.Category{}}
}

func (r *InMemoryCategoryRepository) Create(category models.Category) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.UserID == category.UserID && c.Name == category.Name {
			return models.Category{}, ErrDuplicatedValueUnique
		}
	}
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	r.categories = append(r.categories, category)
	return category, nil
}

func (r *InMemoryCategoryRepository) GetAllByUser(userID string) ([]models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Category
	for _, c := range r.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsDefault != out[j].IsDefault {
			return out[i].IsDefault
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *InMemoryCategoryRepository) GetByID(id string) (models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, ErrCategoryNotFound
}

func (r *InMemoryCategoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

// Clear removes every stored category. Test helper.
func (r *InMemoryCategoryRepository) Clear() {
	r.mu.Lock()
	r.categories = []models.Category{}
	r.mu.Unlock()
}
