package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Geraxi/tenant-rork-sub001/models"
	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
)

// PropertyController handles HTTP requests for property listings
type PropertyController struct {
	Properties *services.PropertyService
}

// NewPropertyController creates a new PropertyController instance
func NewPropertyController(properties *services.PropertyService) *PropertyController {
	return &PropertyController{Properties: properties}
}

// AddProperty handles creating a listing
func (pc *PropertyController) AddProperty(w http.ResponseWriter, r *http.Request) {
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := pc.Properties.AddProperty(r.Context(), property)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to create property: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetProperty handles fetching a listing by id
func (pc *PropertyController) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]

	property, err := pc.Properties.GetProperty(r.Context(), propertyID)
	if err != nil {
		http.Error(w, "Property not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(property)
}

// UpdateProperty handles overwriting a listing
func (pc *PropertyController) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]

	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	property.PropertyID = propertyID

	updated, err := pc.Properties.UpdateProperty(r.Context(), property)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to update property: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(updated)
}

// DeleteProperty handles removing a listing
func (pc *PropertyController) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]

	if err := pc.Properties.DeleteProperty(r.Context(), propertyID); err != nil {
		http.Error(w, fmt.Sprintf("Failed to delete property: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Property deleted successfully"})
}

// GetPropertiesByOwner handles listing a landlord's properties
func (pc *PropertyController) GetPropertiesByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("ownerId")
	if ownerID == "" {
		http.Error(w, "ownerId is required", http.StatusBadRequest)
		return
	}

	properties, err := pc.Properties.PropertiesByOwner(r.Context(), ownerID)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to fetch properties: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"properties": properties,
	})
}
