package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/expiry-tracker/internal/expiry"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
	"github.com/rogerio-castellano/expiry-tracker/internal/repo"
)

// toProductResponse enriches a stored product with its urgency classification.
// The caller supplies today so that every product in one response is classified
// against the same instant.
func toProductResponse(p models.Product, today time.Time) ProductResponse {
	resp := ProductResponse{
		Id:         p.ID,
		Name:       p.Name,
		ExpiryDate: p.ExpiryDate,
		Quantity:   p.Quantity,
		CategoryID: p.CategoryID,
		Notes:      p.Notes,
		ImageURL:   p.ImageURL,
		Category:   p.Category,
	}
	if u, err := expiry.ClassifyDate(p.ExpiryDate, today); err == nil {
		resp.Urgency = u
		resp.UrgencyLabel = u.Label()
		if e, err := expiry.ParseDate(p.ExpiryDate); err == nil {
			resp.DaysUntilExpiry = expiry.DaysUntil(e, today)
		}
	}
	return resp
}

func toProductResponses(products []models.Product, today time.Time) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p, today))
	}
	return out
}

// ownedProduct loads a product and checks it belongs to the caller. A product
// owned by someone else is reported as not found so ids cannot be probed.
func ownedProduct(r *http.Request) (models.Product, string, int, error) {
	userID, err := currentUserID(r)
	if err != nil {
		return models.Product{}, "", http.StatusUnauthorized, errors.New("invalid token")
	}

	id := chi.URLParam(r, "id")
	p, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return models.Product{}, "", http.StatusNotFound, errors.New("product not found")
		}
		return models.Product{}, "", http.StatusInternalServerError, errors.New("failed to retrieve product")
	}
	if p.UserID != userID {
		return models.Product{}, "", http.StatusNotFound, errors.New("product not found")
	}
	return p, userID, http.StatusOK, nil
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "product data"
// @Success 201 {object} ProductResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 422 {array} ProductValidationError
// @Security BearerAuth
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		if err := writeJSON(w, http.StatusUnprocessableEntity, validationErrors); err != nil {
			log.Printf("Failed to write JSON response: %v", err)
		}
		return
	}

	if req.CategoryID != nil {
		c, err := categoryRepo.GetByID(*req.CategoryID)
		if err != nil || c.UserID != userID {
			http.Error(w, "category not found", http.StatusUnprocessableEntity)
			return
		}
	}

	product, err := productRepo.Create(models.Product{
		UserID:     userID,
		Name:       req.Name,
		ExpiryDate: req.ExpiryDate,
		Quantity:   req.Quantity,
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		http.Error(w, "failed to create product", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusCreated, toProductResponse(product, time.Now())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetProductsHandler godoc
// @Summary List all products of the authenticated user
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Security BearerAuth
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	products, err := productRepo.GetAllByUser(userID)
	if err != nil {
		http.Error(w, "failed to retrieve products", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, toProductResponses(products, time.Now())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// FilterProductsHandler godoc
// @Summary Search products by name, category or expiry window
// @Tags products
// @Produce json
// @Param name query string false "name substring, case-insensitive"
// @Param category_id query string false "category id"
// @Param expiring_within_days query int false "only products expiring within N days"
// @Param offset query int false "pagination offset"
// @Param limit query int false "pagination limit"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Security BearerAuth
// @Router /products/search [get]
func FilterProductsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	q := r.URL.Query()
	filter := repo.ProductFilter{
		UserID:     userID,
		Name:       q.Get("name"),
		CategoryID: q.Get("category_id"),
	}

	intParam := func(name string) (*int, error) {
		raw := q.Get(name)
		if raw == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return nil, errors.New(name + " must be a non-negative integer")
		}
		return &n, nil
	}

	if filter.ExpiringWithinDays, err = intParam("expiring_within_days"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if filter.Offset, err = intParam("offset"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if filter.Limit, err = intParam("limit"); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, totalCount, err := productRepo.Filter(filter)
	if err != nil {
		http.Error(w, "failed to search products", http.StatusInternalServerError)
		return
	}

	result := ProductsSearchResult{
		Data: toProductResponses(products, time.Now()),
		Meta: Meta{TotalCount: totalCount},
	}
	if err := writeJSON(w, http.StatusOK, result); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetProductByIDHandler godoc
// @Summary Get a single product by id
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Security BearerAuth
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	p, _, status, err := ownedProduct(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	if err := writeJSON(w, http.StatusOK, toProductResponse(p, time.Now())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateProductHandler godoc
// @Summary Update an existing product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "product id"
// @Param product body ProductRequest true "product data"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 422 {array} ProductValidationError
// @Security BearerAuth
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	existing, userID, status, err := ownedProduct(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		if err := writeJSON(w, http.StatusUnprocessableEntity, validationErrors); err != nil {
			log.Printf("Failed to write JSON response: %v", err)
		}
		return
	}

	if req.CategoryID != nil {
		c, err := categoryRepo.GetByID(*req.CategoryID)
		if err != nil || c.UserID != userID {
			http.Error(w, "category not found", http.StatusUnprocessableEntity)
			return
		}
	}

	existing.Name = req.Name
	existing.ExpiryDate = req.ExpiryDate
	existing.Quantity = req.Quantity
	existing.CategoryID = req.CategoryID
	existing.Notes = req.Notes
	existing.ImageURL = req.ImageURL

	updated, err := productRepo.Update(existing)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
		} else {
			http.Error(w, "failed to update product", http.StatusInternalServerError)
		}
		return
	}

	if err := writeJSON(w, http.StatusOK, toProductResponse(updated, time.Now())); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags products
// @Param id path string true "product id"
// @Success 204 {string} string "No content"
// @Failure 404 {string} string "Not found"
// @Security BearerAuth
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	p, _, status, err := ownedProduct(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	if err := productRepo.Delete(p.ID); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
		} else {
			http.Error(w, "failed to delete product", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetProductCountdownHandler godoc
// @Summary Time remaining until the end of a product's expiry day
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} expiry.CountdownResult
// @Failure 404 {string} string "Not found"
// @Security BearerAuth
// @Router /products/{id}/countdown [get]
func GetProductCountdownHandler(w http.ResponseWriter, r *http.Request) {
	p, _, status, err := ownedProduct(r)
	if err != nil {
		http.Error(w, err.Error(), status)
		return
	}

	countdown, err := expiry.CountdownDate(p.ExpiryDate, time.Now())
	if err != nil {
		http.Error(w, "product has an invalid expiry date", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, countdown); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
