package services

import (
	"context"
	"testing"

	"github.com/Geraxi/tenant-rork-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatchQueryService(t *testing.T) (*MatchQueryService, *MemoryActorStore, *MemoryPropertyStore, *MemoryMatchStore) {
	t.Helper()
	actors := NewMemoryActorStore()
	properties := NewMemoryPropertyStore()
	matches := NewMemoryMatchStore()

	qs := &MatchQueryService{
		Entities: NewEntityStore(actors, properties),
		Matches:  matches,
	}
	return qs, actors, properties, matches
}

func seedMatch(t *testing.T, matches *MemoryMatchStore, matchID, tenantID, landlordID, propertyID, status, createdAt string) {
	t.Helper()
	err := matches.InsertMatch(context.Background(), models.Match{
		MatchID:    matchID,
		TenantID:   tenantID,
		LandlordID: landlordID,
		PropertyID: propertyID,
		Status:     status,
		CreatedAt:  createdAt,
	})
	require.NoError(t, err)
}

func TestGetMatches_FiltersByRoleAndStatus(t *testing.T) {
	qs, _, _, matches := newTestMatchQueryService(t)
	ctx := context.Background()

	seedMatch(t, matches, "m-1", "tenant-1", "landlord-1", "prop-1", models.MatchStatusActive, "2025-03-01T10:00:00Z")
	seedMatch(t, matches, "m-2", "tenant-1", "landlord-2", "prop-2", models.MatchStatusRejected, "2025-03-02T10:00:00Z")
	seedMatch(t, matches, "m-3", "tenant-2", "landlord-1", "prop-3", models.MatchStatusActive, "2025-03-03T10:00:00Z")

	asTenant := qs.GetMatches(ctx, "tenant-1", models.RoleTenant)
	require.Len(t, asTenant, 1)
	assert.Equal(t, "m-1", asTenant[0].MatchID)

	asLandlord := qs.GetMatches(ctx, "landlord-1", models.RoleLandlord)
	require.Len(t, asLandlord, 2)
}

func TestGetMatches_NewestFirst(t *testing.T) {
	qs, _, _, matches := newTestMatchQueryService(t)
	ctx := context.Background()

	seedMatch(t, matches, "m-old", "tenant-1", "landlord-1", "prop-1", models.MatchStatusActive, "2025-01-15T09:00:00Z")
	seedMatch(t, matches, "m-new", "tenant-1", "landlord-2", "prop-2", models.MatchStatusActive, "2025-06-20T18:30:00Z")
	seedMatch(t, matches, "m-mid", "tenant-1", "landlord-3", "prop-3", models.MatchStatusActive, "2025-04-01T12:00:00Z")

	result := qs.GetMatches(ctx, "tenant-1", models.RoleTenant)
	require.Len(t, result, 3)
	assert.Equal(t, "m-new", result[0].MatchID)
	assert.Equal(t, "m-mid", result[1].MatchID)
	assert.Equal(t, "m-old", result[2].MatchID)
}

func TestGetMatches_UnknownRoleReturnsEmpty(t *testing.T) {
	qs, _, _, matches := newTestMatchQueryService(t)
	ctx := context.Background()
	seedMatch(t, matches, "m-1", "tenant-1", "landlord-1", "prop-1", models.MatchStatusActive, "2025-03-01T10:00:00Z")

	result := qs.GetMatches(ctx, "tenant-1", "admin")
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestGetMatchDetails_JoinsAllEntities(t *testing.T) {
	qs, actors, properties, matches := newTestMatchQueryService(t)
	ctx := context.Background()

	require.NoError(t, actors.PutActor(ctx, models.UserProfile{UserID: "tenant-1", Role: models.RoleTenant, Name: "Giulia"}))
	require.NoError(t, actors.PutActor(ctx, models.UserProfile{UserID: "landlord-1", Role: models.RoleLandlord, Name: "Marco"}))
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-1", OwnerID: "landlord-1", Title: "Trilocale"}))
	seedMatch(t, matches, "m-1", "tenant-1", "landlord-1", "prop-1", models.MatchStatusActive, "2025-03-01T10:00:00Z")

	detail := qs.GetMatchDetails(ctx, "m-1")
	require.NotNil(t, detail)
	assert.Equal(t, "m-1", detail.Match.MatchID)
	assert.Equal(t, "Giulia", detail.Tenant.Name)
	assert.Equal(t, "Marco", detail.Landlord.Name)
	assert.Equal(t, "Trilocale", detail.Property.Title)
}

func TestGetMatchDetails_NilWhenMatchMissing(t *testing.T) {
	qs, _, _, _ := newTestMatchQueryService(t)

	assert.Nil(t, qs.GetMatchDetails(context.Background(), "no-such-match"))
}

func TestGetMatchDetails_NilWhenEntityMissing(t *testing.T) {
	qs, actors, properties, matches := newTestMatchQueryService(t)
	ctx := context.Background()

	// tenant profile intentionally absent
	require.NoError(t, actors.PutActor(ctx, models.UserProfile{UserID: "landlord-1", Role: models.RoleLandlord}))
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-1", OwnerID: "landlord-1"}))
	seedMatch(t, matches, "m-1", "tenant-1", "landlord-1", "prop-1", models.MatchStatusActive, "2025-03-01T10:00:00Z")

	assert.Nil(t, qs.GetMatchDetails(ctx, "m-1"))
}
