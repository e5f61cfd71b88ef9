package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Geraxi/tenant-rork-sub001/models"
	"github.com/Geraxi/tenant-rork-sub001/services"
)

// FeedController serves the swipe deck for both roles
type FeedController struct {
	Properties *services.PropertyService
	Profiles   *services.UserProfileService
}

// NewFeedController creates a new FeedController instance
func NewFeedController(properties *services.PropertyService, profiles *services.UserProfileService) *FeedController {
	return &FeedController{Properties: properties, Profiles: profiles}
}

// GetFeed returns swipe cards for a user: property cards for tenants,
// tenant cards for landlords.
func (fc *FeedController) GetFeed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := query.Get("userId")
	role := query.Get("role")
	if userID == "" || role == "" {
		http.Error(w, "userId and role are required", http.StatusBadRequest)
		return
	}

	var (
		cards []models.SwipeCard
		err   error
	)
	switch role {
	case models.RoleTenant:
		filters := services.PropertyFilters{City: query.Get("city")}
		if v := query.Get("maxPrice"); v != "" {
			parsed, parseErr := strconv.Atoi(v)
			if parseErr != nil {
				http.Error(w, "maxPrice must be a number", http.StatusBadRequest)
				return
			}
			filters.MaxPrice = parsed
		}
		if v := query.Get("bedrooms"); v != "" {
			parsed, parseErr := strconv.Atoi(v)
			if parseErr != nil {
				http.Error(w, "bedrooms must be a number", http.StatusBadRequest)
				return
			}
			filters.Bedrooms = parsed
		}
		cards, err = fc.Properties.DiscoverProperties(r.Context(), userID, filters)
	case models.RoleLandlord:
		cards, err = fc.Profiles.DiscoverTenants(r.Context(), userID)
	default:
		http.Error(w, "role must be tenant or landlord", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to build feed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"cards": cards,
	})
}
