package routes

import (
	"github.com/Geraxi/tenant-rork-sub001/controllers"
	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterSwipeRoutes sets up routes for like operations under /api/swipe
func RegisterSwipeRoutes(r *mux.Router, matching *services.MatchingService) {
	controller := controllers.NewSwipeController(matching)

	swipeRouter := r.PathPrefix("/api/swipe").Subrouter()
	swipeRouter.HandleFunc("/property", controller.LikeProperty).Methods("POST")
	swipeRouter.HandleFunc("/tenant", controller.LikeTenant).Methods("POST")
}
