package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Geraxi/tenant-rork-sub001/models"

	"github.com/google/uuid"
)

const feedCachePrefix = "feed:properties:"
const feedCacheTTL = 60 * time.Second

// PropertyService handles listing CRUD and the tenant-side swipe deck
type PropertyService struct {
	Properties PropertyStore
	Likes      LikeLedger
	Matches    MatchStore
	Cache      *CacheService
}

// PropertyFilters narrows the tenant discover feed
type PropertyFilters struct {
	City     string
	MaxPrice int
	Bedrooms int
}

// AddProperty stores a new listing under the owning landlord
func (ps *PropertyService) AddProperty(ctx context.Context, property models.Property) (*models.Property, error) {
	if property.OwnerID == "" {
		return nil, errors.New("ownerId is required")
	}
	if property.PropertyID == "" {
		property.PropertyID = uuid.NewString()
	}
	property.Available = true
	property.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ps.Properties.PutProperty(ctx, property); err != nil {
		return nil, err
	}

	ps.Cache.InvalidatePrefix(ctx, feedCachePrefix)
	log.Printf("✅ Property created: %s (owner %s)", property.PropertyID, property.OwnerID)
	return &property, nil
}

// GetProperty retrieves a listing by id
func (ps *PropertyService) GetProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	property, err := ps.Properties.FindProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, errors.New("property not found")
	}
	return property, nil
}

// UpdateProperty overwrites a listing. Ownership cannot change.
func (ps *PropertyService) UpdateProperty(ctx context.Context, property models.Property) (*models.Property, error) {
	existing, err := ps.Properties.FindProperty(ctx, property.PropertyID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("property not found")
	}
	if property.OwnerID != "" && property.OwnerID != existing.OwnerID {
		return nil, fmt.Errorf("ownerId cannot be changed")
	}

	property.OwnerID = existing.OwnerID
	property.CreatedAt = existing.CreatedAt
	if err := ps.Properties.PutProperty(ctx, property); err != nil {
		return nil, err
	}

	ps.Cache.InvalidatePrefix(ctx, feedCachePrefix)
	return &property, nil
}

// DeleteProperty removes a listing
func (ps *PropertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	if err := ps.Properties.DeleteProperty(ctx, propertyID); err != nil {
		return err
	}
	ps.Cache.InvalidatePrefix(ctx, feedCachePrefix)
	return nil
}

// PropertiesByOwner lists a landlord's properties
func (ps *PropertyService) PropertiesByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	return ps.Properties.PropertiesByOwner(ctx, ownerID)
}

// DiscoverProperties builds the tenant's swipe deck: available listings
// the tenant has not liked or matched with yet, as tagged property
// cards. Responses are cached per tenant and filter set with a short
// TTL.
func (ps *PropertyService) DiscoverProperties(ctx context.Context, tenantID string, filters PropertyFilters) ([]models.SwipeCard, error) {
	cacheKey := fmt.Sprintf("%s%s:%s:%d:%d", feedCachePrefix, tenantID, filters.City, filters.MaxPrice, filters.Bedrooms)

	if cached := ps.Cache.Get(ctx, cacheKey); cached != "" {
		var cards []models.SwipeCard
		if err := json.Unmarshal([]byte(cached), &cards); err == nil {
			log.Printf("✅ Feed cache hit for %s", tenantID)
			return cards, nil
		}
		log.Printf("⚠️ Dropping unreadable feed cache entry for %s", tenantID)
	}

	likes, err := ps.Likes.LikesByLiker(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenant likes: %w", err)
	}
	excluded := make(map[string]struct{}, len(likes))
	for _, like := range likes {
		if like.Type == models.LikeTypeProperty {
			excluded[like.LikedID] = struct{}{}
		}
	}

	// The reciprocal like that closes a match is never written to the
	// ledger, so matched properties have to be excluded via the match set.
	matches, err := ps.Matches.MatchesByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenant matches: %w", err)
	}
	for _, match := range matches {
		excluded[match.PropertyID] = struct{}{}
	}

	properties, err := ps.Properties.ScanProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	cards := make([]models.SwipeCard, 0, len(properties))
	for i := range properties {
		property := properties[i]
		if !property.Available {
			continue
		}
		if _, skip := excluded[property.PropertyID]; skip {
			continue
		}
		if filters.City != "" && property.City != filters.City {
			continue
		}
		if filters.MaxPrice > 0 && property.Price > filters.MaxPrice {
			continue
		}
		if filters.Bedrooms > 0 && property.Bedrooms < filters.Bedrooms {
			continue
		}
		cards = append(cards, models.SwipeCard{Kind: models.CardKindProperty, Property: &property})
	}

	if payload, err := json.Marshal(cards); err == nil {
		ps.Cache.Set(ctx, cacheKey, string(payload), feedCacheTTL)
	}
	return cards, nil
}
