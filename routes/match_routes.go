package routes

import (
	"github.com/Geraxi/tenant-rork-sub001/controllers"
	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match queries under /api/matches
func RegisterMatchRoutes(r *mux.Router, queries *services.MatchQueryService, matching *services.MatchingService) {
	controller := controllers.NewMatchController(queries, matching)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()
	matchRouter.HandleFunc("", controller.GetMatches).Methods("GET")
	matchRouter.HandleFunc("/{matchId}", controller.GetMatchDetails).Methods("GET")
	matchRouter.HandleFunc("/{matchId}/reject", controller.RejectMatch).Methods("POST")
}
