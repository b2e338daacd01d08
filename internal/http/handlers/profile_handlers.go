package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/rogerio-castellano/expiry-tracker/internal/repo"
)

// GetProfileHandler godoc
// @Summary Get the caller's profile and reminder preferences
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 404 {string} string "Not found"
// @Security BearerAuth
// @Router /profile [get]
func GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	profile, err := profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
		} else {
			http.Error(w, "failed to retrieve profile", http.StatusInternalServerError)
		}
		return
	}

	if err := writeJSON(w, http.StatusOK, profile); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// UpdateProfileHandler godoc
// @Summary Update display name and reminder preferences
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body ProfileRequest true "profile data"
// @Success 200 {object} models.Profile
// @Failure 400 {string} string "Invalid input"
// @Failure 422 {array} ProductValidationError
// @Security BearerAuth
// @Router /profile [put]
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	var req ProfileRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProfile(req); len(validationErrors) > 0 {
		if err := writeJSON(w, http.StatusUnprocessableEntity, validationErrors); err != nil {
			log.Printf("Failed to write JSON response: %v", err)
		}
		return
	}

	profile, err := profileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrProfileNotFound) {
			http.Error(w, "profile not found", http.StatusNotFound)
		} else {
			http.Error(w, "failed to retrieve profile", http.StatusInternalServerError)
		}
		return
	}

	profile.DisplayName = req.DisplayName
	profile.NotificationDaysBefore = req.NotificationDaysBefore
	profile.PushNotificationsEnabled = req.PushNotificationsEnabled

	updated, err := profileRepo.Update(profile)
	if err != nil {
		http.Error(w, "failed to update profile", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, updated); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
