package services

import (
	"context"
	"testing"

	"github.com/Geraxi/tenant-rork-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPropertyService(t *testing.T) (*PropertyService, *MemoryPropertyStore, *MemoryLikeLedger) {
	t.Helper()
	properties := NewMemoryPropertyStore()
	likes := NewMemoryLikeLedger()
	// nil cache client: feed runs uncached
	ps := &PropertyService{Properties: properties, Likes: likes, Matches: NewMemoryMatchStore(), Cache: &CacheService{}}
	return ps, properties, likes
}

func TestAddProperty_RequiresOwner(t *testing.T) {
	ps, _, _ := newTestPropertyService(t)

	_, err := ps.AddProperty(context.Background(), models.Property{Title: "Monolocale"})
	assert.Error(t, err)
}

func TestAddProperty_AssignsIDAndAvailability(t *testing.T) {
	ps, _, _ := newTestPropertyService(t)

	created, err := ps.AddProperty(context.Background(), models.Property{
		OwnerID: "landlord-1",
		Title:   "Monolocale Navigli",
		City:    "Milano",
		Price:   750,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.PropertyID)
	assert.True(t, created.Available)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestUpdateProperty_OwnerImmutable(t *testing.T) {
	ps, properties, _ := newTestPropertyService(t)
	ctx := context.Background()
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-1", OwnerID: "landlord-1", Title: "Vecchio titolo"}))

	_, err := ps.UpdateProperty(ctx, models.Property{PropertyID: "prop-1", OwnerID: "landlord-2", Title: "Nuovo"})
	assert.Error(t, err)

	updated, err := ps.UpdateProperty(ctx, models.Property{PropertyID: "prop-1", Title: "Nuovo titolo", Price: 800})
	require.NoError(t, err)
	assert.Equal(t, "landlord-1", updated.OwnerID)
	assert.Equal(t, "Nuovo titolo", updated.Title)
}

func TestDiscoverProperties_ExcludesLikedAndUnavailable(t *testing.T) {
	ps, properties, likes := newTestPropertyService(t)
	ctx := context.Background()

	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-liked", OwnerID: "landlord-1", City: "Milano", Price: 700, Available: true}))
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-taken", OwnerID: "landlord-1", City: "Milano", Price: 800, Available: false}))
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-open", OwnerID: "landlord-2", City: "Milano", Price: 900, Available: true}))

	_, err := likes.RecordLike(ctx, "tenant-1", "prop-liked", models.LikeTypeProperty)
	require.NoError(t, err)

	cards, err := ps.DiscoverProperties(ctx, "tenant-1", PropertyFilters{})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, models.CardKindProperty, cards[0].Kind)
	require.NotNil(t, cards[0].Property)
	assert.Equal(t, "prop-open", cards[0].Property.PropertyID)
	assert.Nil(t, cards[0].Tenant)
}

// The like that closes a match goes straight to match creation without
// a ledger entry, so the feed must also exclude matched properties.
func TestDiscoverProperties_ExcludesMatchedProperties(t *testing.T) {
	actors := NewMemoryActorStore()
	properties := NewMemoryPropertyStore()
	likes := NewMemoryLikeLedger()
	matches := NewMemoryMatchStore()
	ctx := context.Background()

	matching := &MatchingService{
		Entities: NewEntityStore(actors, properties),
		Likes:    likes,
		Matches:  matches,
	}
	ps := &PropertyService{Properties: properties, Likes: likes, Matches: matches, Cache: &CacheService{}}

	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-1", OwnerID: "landlord-1", City: "Milano", Price: 900, Available: true}))
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-2", OwnerID: "landlord-2", City: "Milano", Price: 800, Available: true}))

	// landlord swipes first, the tenant's like closes the match
	require.True(t, matching.LikeTenant(ctx, "landlord-1", "tenant-1", "prop-1").Success)
	result := matching.LikeProperty(ctx, "tenant-1", "prop-1")
	require.NotNil(t, result.Match)

	cards, err := ps.DiscoverProperties(ctx, "tenant-1", PropertyFilters{})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "prop-2", cards[0].Property.PropertyID)
}

func TestDiscoverProperties_AppliesFilters(t *testing.T) {
	ps, properties, _ := newTestPropertyService(t)
	ctx := context.Background()

	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-mi", OwnerID: "l1", City: "Milano", Price: 900, Bedrooms: 2, Available: true}))
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-rm", OwnerID: "l2", City: "Roma", Price: 700, Bedrooms: 2, Available: true}))
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-caro", OwnerID: "l3", City: "Milano", Price: 2500, Bedrooms: 3, Available: true}))
	require.NoError(t, properties.PutProperty(ctx, models.Property{PropertyID: "prop-piccolo", OwnerID: "l4", City: "Milano", Price: 600, Bedrooms: 1, Available: true}))

	cards, err := ps.DiscoverProperties(ctx, "tenant-1", PropertyFilters{City: "Milano", MaxPrice: 1000, Bedrooms: 2})
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "prop-mi", cards[0].Property.PropertyID)
}
