package routes

import (
	"github.com/Geraxi/tenant-rork-sub001/controllers"
	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up photo upload routes under /api/media
func RegisterMediaRoutes(r *mux.Router, media *services.MediaService) {
	controller := controllers.NewMediaController(media)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()
	mediaRouter.HandleFunc("/upload-url", controller.GenerateUploadURL).Methods("POST")
	mediaRouter.HandleFunc("/read-url", controller.GenerateReadURL).Methods("GET")
}
