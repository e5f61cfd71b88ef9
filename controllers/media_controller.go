package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Geraxi/tenant-rork-sub001/services"
)

// MediaController handles HTTP requests for photo upload/read URLs
type MediaController struct {
	Media *services.MediaService
}

// NewMediaController creates a new MediaController instance
func NewMediaController(media *services.MediaService) *MediaController {
	return &MediaController{Media: media}
}

// GenerateUploadURL hands out a presigned PUT URL for a photo
func (mc *MediaController) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
		Prefix   string `json:"prefix"` // profile-photos or property-photos
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.FileName == "" || req.FileType == "" {
		http.Error(w, "fileName and fileType are required", http.StatusBadRequest)
		return
	}
	if req.Prefix != "profile-photos" && req.Prefix != "property-photos" {
		http.Error(w, "prefix must be profile-photos or property-photos", http.StatusBadRequest)
		return
	}

	url, key, err := mc.Media.GenerateUploadURL(r.Context(), req.Prefix, req.FileName, req.FileType)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to generate upload URL: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// GenerateReadURL hands out a presigned GET URL for a stored photo
func (mc *MediaController) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key is required", http.StatusBadRequest)
		return
	}

	url, err := mc.Media.GenerateReadURL(r.Context(), key)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to generate read URL: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
