package repo

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/expiry-tracker/internal/expiry"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository used by the handler test suite.
type InMemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product
}

func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{products: []models.Product{}}
}

func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	r.products = append(r.products, product)
	return product, nil
}

func (r *InMemoryProductRepository) GetAllByUser(userID string) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Product
	for _, p := range r.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ExpiryDate < out[j].ExpiryDate })
	return out, nil
}

func (r *InMemoryProductRepository) GetByID(id string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Filter(filter ProductFilter) ([]models.Product, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Product
	for _, p := range r.products {
		if p.UserID != filter.UserID {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.CategoryID != "" && (p.CategoryID == nil || *p.CategoryID != filter.CategoryID) {
			continue
		}
		if filter.ExpiringWithinDays != nil {
			e, err := expiry.ParseDate(p.ExpiryDate)
			if err != nil {
				return nil, 0, err
			}
			if expiry.DaysUntil(e, time.Now()) > *filter.ExpiringWithinDays {
				continue
			}
		}
		matched = append(matched, p)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ExpiryDate < matched[j].ExpiryDate })

	total := len(matched)
	if filter.Offset != nil && *filter.Offset > 0 {
		if *filter.Offset >= len(matched) {
			matched = nil
		} else {
			matched = matched[*filter.Offset:]
		}
	}
	if filter.Limit != nil && *filter.Limit > 0 && *filter.Limit < len(matched) {
		matched = matched[:*filter.Limit]
	}
	return matched, total, nil
}

// Clear removes every stored product. Test helper.
func (r *InMemoryProductRepository) Clear() {
	r.mu.Lock()
	r.products = []models.Product{}
	r.mu.Unlock()
}
