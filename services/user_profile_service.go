package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Geraxi/tenant-rork-sub001/models"

	"github.com/google/uuid"
)

// UserProfileService handles tenant and landlord profile CRUD plus the
// landlord-side swipe deck.
type UserProfileService struct {
	Actors  ActorStore
	Likes   LikeLedger
	Matches MatchStore
}

// AddUserProfile stores a new profile. The role is fixed at creation.
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.Role != models.RoleTenant && profile.Role != models.RoleLandlord {
		return nil, fmt.Errorf("invalid role %q", profile.Role)
	}
	if profile.UserID == "" {
		profile.UserID = uuid.NewString()
	}
	profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ups.Actors.PutActor(ctx, profile); err != nil {
		return nil, err
	}
	log.Printf("✅ Profile created: %s (%s)", profile.UserID, profile.Role)
	return &profile, nil
}

// GetUserProfile retrieves a profile by user id
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := ups.Actors.FindActor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.New("profile not found")
	}
	return profile, nil
}

// UpdateUserProfile overwrites an existing profile. The role cannot change.
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	existing, err := ups.Actors.FindActor(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("profile not found")
	}
	if profile.Role != "" && profile.Role != existing.Role {
		return nil, fmt.Errorf("role cannot be changed from %s to %s", existing.Role, profile.Role)
	}

	profile.Role = existing.Role
	profile.CreatedAt = existing.CreatedAt
	if err := ups.Actors.PutActor(ctx, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// DeleteUserProfile removes a profile
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	return ups.Actors.DeleteActor(ctx, userID)
}

// DiscoverTenants builds the landlord's swipe deck: tenant profiles the
// landlord has not swiped on or matched with yet, as tagged tenant cards.
func (ups *UserProfileService) DiscoverTenants(ctx context.Context, landlordID string) ([]models.SwipeCard, error) {
	likes, err := ups.Likes.LikesByLiker(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch landlord likes: %w", err)
	}

	seen := map[string]struct{}{landlordID: {}}
	for _, like := range likes {
		if like.Type == models.LikeTypeTenant {
			seen[like.LikedID] = struct{}{}
		}
	}

	// The reciprocal like that closes a match is never written to the
	// ledger, so matched tenants have to be excluded via the match set.
	matches, err := ups.Matches.MatchesByLandlord(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch landlord matches: %w", err)
	}
	for _, match := range matches {
		seen[match.TenantID] = struct{}{}
	}

	tenants, err := ups.Actors.ScanActors(ctx, models.RoleTenant)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tenant profiles: %w", err)
	}

	cards := make([]models.SwipeCard, 0, len(tenants))
	for i := range tenants {
		tenant := tenants[i]
		if _, excluded := seen[tenant.UserID]; excluded {
			continue
		}
		cards = append(cards, models.SwipeCard{Kind: models.CardKindTenant, Tenant: &tenant})
	}
	return cards, nil
}
