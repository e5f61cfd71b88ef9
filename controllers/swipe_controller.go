package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Geraxi/tenant-rork-sub001/services"
)

// SwipeController handles HTTP requests for like operations
type SwipeController struct {
	Matching *services.MatchingService
}

// NewSwipeController creates a new SwipeController instance
func NewSwipeController(matching *services.MatchingService) *SwipeController {
	return &SwipeController{Matching: matching}
}

// LikeProperty handles a tenant swiping right on a property
func (sc *SwipeController) LikeProperty(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TenantID   string `json:"tenantId"`
		PropertyID string `json:"propertyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.TenantID == "" || req.PropertyID == "" {
		http.Error(w, "tenantId and propertyId are required", http.StatusBadRequest)
		return
	}

	result := sc.Matching.LikeProperty(r.Context(), req.TenantID, req.PropertyID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// LikeTenant handles a landlord swiping right on a tenant for a property
func (sc *SwipeController) LikeTenant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LandlordID string `json:"landlordId"`
		TenantID   string `json:"tenantId"`
		PropertyID string `json:"propertyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.LandlordID == "" || req.TenantID == "" || req.PropertyID == "" {
		http.Error(w, "landlordId, tenantId and propertyId are required", http.StatusBadRequest)
		return
	}

	result := sc.Matching.LikeTenant(r.Context(), req.LandlordID, req.TenantID, req.PropertyID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
