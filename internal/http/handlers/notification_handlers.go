package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/expiry-tracker/internal/repo"
)

// GetNotificationsHandler godoc
// @Summary List the caller's expiry reminders, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Security BearerAuth
// @Router /notifications [get]
func GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	notifications, err := notificationRepo.GetAllByUser(userID)
	if err != nil {
		http.Error(w, "failed to retrieve notifications", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, notifications); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// MarkNotificationReadHandler godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Param id path string true "notification id"
// @Success 204 {string} string "No content"
// @Failure 404 {string} string "Not found"
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "id")
	if err := notificationRepo.MarkRead(id, userID); err != nil {
		if errors.Is(err, repo.ErrNotificationNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
		} else {
			http.Error(w, "failed to mark notification as read", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
