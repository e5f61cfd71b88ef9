package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Geraxi/tenant-rork-sub001/models"
	"github.com/Geraxi/tenant-rork-sub001/routes"
	"github.com/Geraxi/tenant-rork-sub001/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatchTestRouter(t *testing.T) (*mux.Router, *services.MemoryActorStore, *services.MemoryPropertyStore, *services.MemoryMatchStore) {
	t.Helper()
	actors := services.NewMemoryActorStore()
	properties := services.NewMemoryPropertyStore()
	matches := services.NewMemoryMatchStore()
	entities := services.NewEntityStore(actors, properties)

	queries := &services.MatchQueryService{Entities: entities, Matches: matches}
	matching := &services.MatchingService{
		Entities: entities,
		Likes:    services.NewMemoryLikeLedger(),
		Matches:  matches,
	}

	r := mux.NewRouter()
	routes.RegisterMatchRoutes(r, queries, matching)
	return r, actors, properties, matches
}

func TestGetMatchesEndpoint(t *testing.T) {
	router, _, _, matches := newMatchTestRouter(t)
	ctx := context.Background()

	require.NoError(t, matches.InsertMatch(ctx, models.Match{
		MatchID: "m-1", TenantID: "tenant-1", LandlordID: "landlord-1",
		PropertyID: "prop-1", Status: models.MatchStatusActive, CreatedAt: "2025-03-01T10:00:00Z",
	}))
	require.NoError(t, matches.InsertMatch(ctx, models.Match{
		MatchID: "m-2", TenantID: "tenant-1", LandlordID: "landlord-2",
		PropertyID: "prop-2", Status: models.MatchStatusRejected, CreatedAt: "2025-03-02T10:00:00Z",
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/matches?userId=tenant-1&role=tenant", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Matches []models.Match `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Matches, 1)
	assert.Equal(t, "m-1", body.Matches[0].MatchID)
}

func TestGetMatchesEndpoint_RequiresParams(t *testing.T) {
	router, _, _, _ := newMatchTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/matches?userId=tenant-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMatchDetailsEndpoint(t *testing.T) {
	router, actors, properties, matches := newMatchTestRouter(t)
	ctx := context.Background()

	require.NoError(t, actors.PutActor(ctx, models.UserProfile{UserID: "tenant-1", Role: models.RoleTenant, Name: "Giulia"}))
	require.NoError(t, actors.PutActor(ctx, models.UserProfile{UserID: "landlord-1", Role: models.RoleLandlord, Name: "Marco"}))
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-1", OwnerID: "landlord-1", Title: "Trilocale"}))
	require.NoError(t, matches.InsertMatch(ctx, models.Match{
		MatchID: "m-1", TenantID: "tenant-1", LandlordID: "landlord-1",
		PropertyID: "prop-1", Status: models.MatchStatusActive, CreatedAt: "2025-03-01T10:00:00Z",
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/matches/m-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var detail models.MatchDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "Giulia", detail.Tenant.Name)
	assert.Equal(t, "Trilocale", detail.Property.Title)
}

func TestGetMatchDetailsEndpoint_NotFound(t *testing.T) {
	router, _, _, _ := newMatchTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/matches/m-missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRejectMatchEndpoint(t *testing.T) {
	router, _, _, matches := newMatchTestRouter(t)
	ctx := context.Background()

	require.NoError(t, matches.InsertMatch(ctx, models.Match{
		MatchID: "m-1", TenantID: "tenant-1", LandlordID: "landlord-1",
		PropertyID: "prop-1", Status: models.MatchStatusActive, CreatedAt: "2025-03-01T10:00:00Z",
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/matches/m-1/reject", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body["success"])

	req = httptest.NewRequest(http.MethodPost, "/api/matches/m-missing/reject", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body["success"])
}
