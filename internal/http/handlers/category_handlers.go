package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/expiry-tracker/internal/models"
	"github.com/rogerio-castellano/expiry-tracker/internal/repo"
)

// CreateCategoryHandler godoc
// @Summary Create a custom category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body CategoryRequest true "category data"
// @Success 201 {object} models.Category
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Duplicate name"
// @Failure 422 {array} ProductValidationError
// @Security BearerAuth
// @Router /categories [post]
func CreateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	var req CategoryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateCategory(req); len(validationErrors) > 0 {
		if err := writeJSON(w, http.StatusUnprocessableEntity, validationErrors); err != nil {
			log.Printf("Failed to write JSON response: %v", err)
		}
		return
	}

	category, err := categoryRepo.Create(models.Category{
		UserID: userID,
		Name:   req.Name,
		Icon:   req.Icon,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "category name already exists", http.StatusConflict)
		} else {
			http.Error(w, "failed to create category", http.StatusInternalServerError)
		}
		return
	}

	if err := writeJSON(w, http.StatusCreated, category); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// GetCategoriesHandler godoc
// @Summary List the user's categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Security BearerAuth
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	categories, err := categoryRepo.GetAllByUser(userID)
	if err != nil {
		http.Error(w, "failed to retrieve categories", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, categories); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// DeleteCategoryHandler godoc
// @Summary Delete a custom category
// @Description Default categories cannot be deleted. Products referencing the
// @Description deleted category keep existing with their category cleared.
// @Tags categories
// @Param id path string true "category id"
// @Success 204 {string} string "No content"
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Default category"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	category, err := categoryRepo.GetByID(id)
	if err != nil || category.UserID != userID {
		http.Error(w, "category not found", http.StatusNotFound)
		return
	}

	if category.IsDefault {
		http.Error(w, "default categories cannot be deleted", http.StatusConflict)
		return
	}

	if err := categoryRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrCategoryNotFound) {
			http.Error(w, "category not found", http.StatusNotFound)
		} else {
			http.Error(w, "failed to delete category", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
