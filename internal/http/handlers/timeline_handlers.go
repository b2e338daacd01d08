package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/rogerio-castellano/expiry-tracker/internal/expiry"
)

// GetTimelineHandler godoc
// @Summary Products grouped into urgency buckets, most urgent first
// @Tags timeline
// @Produce json
// @Success 200 {array} TimelineGroupResponse
// @Security BearerAuth
// @Router /timeline [get]
func GetTimelineHandler(w http.ResponseWriter, r *http.Request) {
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

	now := time.Now()
	groups, err := expiry.GroupByExpiry(products, now)
	if err != nil {
		log.Printf("timeline grouping failed for user %s: %v", userID, err)
		http.Error(w, "failed to build timeline", http.StatusInternalServerError)
		return
	}

	out := make([]TimelineGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, TimelineGroupResponse{
			Urgency:     g.Urgency,
			Label:       g.Label,
			Icon:        g.Icon,
			Color:       g.Urgency.Color(),
			BorderColor: g.Urgency.BorderColor(),
			Products:    toProductResponses(g.Products, now),
		})
	}

	if err := writeJSON(w, http.StatusOK, out); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
