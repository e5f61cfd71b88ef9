package services

import (
	"context"
	"log"
	"sort"

	"github.com/Geraxi/tenant-rork-sub001/models"
)

// MatchQueryService exposes read-side projections over the match set
type MatchQueryService struct {
	Entities EntityStore
	Matches  MatchStore
}

// GetMatches returns a user's active matches in the given role, most
// recent first. Never fails from the caller's perspective: lookup
// errors and unknown roles come back as an empty slice.
func (qs *MatchQueryService) GetMatches(ctx context.Context, userID, role string) []models.Match {
	var (
		matches []models.Match
		err     error
	)

	switch role {
	case models.RoleTenant:
		matches, err = qs.Matches.MatchesByTenant(ctx, userID)
	case models.RoleLandlord:
		matches, err = qs.Matches.MatchesByLandlord(ctx, userID)
	default:
		log.Printf("⚠️ Unknown role %q for user %s", role, userID)
		return []models.Match{}
	}
	if err != nil {
		log.Printf("❌ Failed to fetch matches for %s: %v", userID, err)
		return []models.Match{}
	}

	active := make([]models.Match, 0, len(matches))
	for _, match := range matches {
		if match.Status == models.MatchStatusActive {
			active = append(active, match)
		}
	}

	// RFC3339 strings sort like timestamps
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt > active[j].CreatedAt
	})
	return active
}

// GetMatchDetails joins a match with its tenant, landlord and property.
// Returns nil when the match or any referenced entity is missing.
func (qs *MatchQueryService) GetMatchDetails(ctx context.Context, matchID string) *models.MatchDetail {
	match, err := qs.Matches.GetMatch(ctx, matchID)
	if err != nil {
		log.Printf("❌ Failed to fetch match %s: %v", matchID, err)
		return nil
	}
	if match == nil {
		return nil
	}

	tenant, err := qs.Entities.FindActor(ctx, match.TenantID)
	if err != nil || tenant == nil {
		return nil
	}
	landlord, err := qs.Entities.FindActor(ctx, match.LandlordID)
	if err != nil || landlord == nil {
		return nil
	}
	property, err := qs.Entities.FindProperty(ctx, match.PropertyID)
	if err != nil || property == nil {
		return nil
	}

	return &models.MatchDetail{
		Match:    *match,
		Tenant:   *tenant,
		Landlord: *landlord,
		Property: *property,
	}
}
