package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
)

// MatchController handles HTTP requests for match queries and rejection
type MatchController struct {
	Queries  *services.MatchQueryService
	Matching *services.MatchingService
}

// NewMatchController creates a new MatchController instance
func NewMatchController(queries *services.MatchQueryService, matching *services.MatchingService) *MatchController {
	return &MatchController{Queries: queries, Matching: matching}
}

// GetMatches handles fetching a user's active matches
func (mc *MatchController) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	role := r.URL.Query().Get("role")
	if userID == "" || role == "" {
		http.Error(w, "userId and role are required", http.StatusBadRequest)
		return
	}

	matches := mc.Queries.GetMatches(r.Context(), userID, role)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"matches": matches,
	})
}

// GetMatchDetails handles fetching a match joined with its entities
func (mc *MatchController) GetMatchDetails(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	detail := mc.Queries.GetMatchDetails(r.Context(), matchID)
	if detail == nil {
		http.Error(w, "Match not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(detail)
}

// RejectMatch handles rejecting a match
func (mc *MatchController) RejectMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	ok := mc.Matching.RejectMatch(r.Context(), matchID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"success": ok})
}
