package routes

import (
	"github.com/Geraxi/tenant-rork-sub001/controllers"
	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up the swipe deck route under /api/feed
func RegisterFeedRoutes(r *mux.Router, properties *services.PropertyService, profiles *services.UserProfileService) {
	controller := controllers.NewFeedController(properties, profiles)

	r.HandleFunc("/api/feed", controller.GetFeed).Methods("GET")
}
