package services

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Geraxi/tenant-rork-sub001/models"

	"github.com/google/uuid"
)

// SwipeResult is the outcome of a like operation. Failures never
// surface as errors to callers; they come back as Success=false.
type SwipeResult struct {
	Success bool          `json:"success"`
	Match   *models.Match `json:"match,omitempty"`
}

// MatchingService converts one-directional likes into matches when
// mutual interest exists. It owns all mutation of the like ledger and
// the match set.
type MatchingService struct {
	Entities EntityStore
	Likes    LikeLedger
	Matches  MatchStore

	// OnMatch, when set, is invoked after a match is durably stored
	// (used to push realtime events). Best-effort.
	OnMatch func(models.Match)

	locks tripleLocks
}

// LikeProperty records a tenant's interest in a property and creates a
// match if the owning landlord has already liked the tenant.
func (ms *MatchingService) LikeProperty(ctx context.Context, tenantID, propertyID string) SwipeResult {
	property, err := ms.Entities.FindProperty(ctx, propertyID)
	if err != nil {
		log.Printf("❌ Failed to resolve property %s: %v", propertyID, err)
		return SwipeResult{Success: false}
	}
	if property == nil {
		log.Printf("⚠️ Property %s not found", propertyID)
		return SwipeResult{Success: false}
	}
	landlordID := property.OwnerID

	unlock := ms.locks.lock(tripleKey(tenantID, landlordID, propertyID))
	defer unlock()

	hasReciprocal, err := ms.Likes.HasLike(ctx, landlordID, tenantID, models.LikeTypeTenant)
	if err != nil {
		log.Printf("❌ Failed to check reciprocal like for %s/%s: %v", landlordID, tenantID, err)
		return SwipeResult{Success: false}
	}

	if hasReciprocal {
		match, err := ms.createMatch(ctx, tenantID, landlordID, propertyID)
		if err != nil {
			return SwipeResult{Success: false}
		}
		return SwipeResult{Success: true, Match: match}
	}

	if _, err := ms.Likes.RecordLike(ctx, tenantID, propertyID, models.LikeTypeProperty); err != nil {
		return SwipeResult{Success: false}
	}
	return SwipeResult{Success: true}
}

// LikeTenant records a landlord's interest in a tenant for one of their
// properties and creates a match if the tenant already liked that
// property. The property must exist and belong to the landlord.
func (ms *MatchingService) LikeTenant(ctx context.Context, landlordID, tenantID, propertyID string) SwipeResult {
	property, err := ms.Entities.FindProperty(ctx, propertyID)
	if err != nil {
		log.Printf("❌ Failed to resolve property %s: %v", propertyID, err)
		return SwipeResult{Success: false}
	}
	if property == nil || property.OwnerID != landlordID {
		log.Printf("⚠️ Property %s not found or not owned by %s", propertyID, landlordID)
		return SwipeResult{Success: false}
	}

	unlock := ms.locks.lock(tripleKey(tenantID, landlordID, propertyID))
	defer unlock()

	hasReciprocal, err := ms.Likes.HasLike(ctx, tenantID, propertyID, models.LikeTypeProperty)
	if err != nil {
		log.Printf("❌ Failed to check reciprocal like for %s/%s: %v", tenantID, propertyID, err)
		return SwipeResult{Success: false}
	}

	if hasReciprocal {
		match, err := ms.createMatch(ctx, tenantID, landlordID, propertyID)
		if err != nil {
			return SwipeResult{Success: false}
		}
		return SwipeResult{Success: true, Match: match}
	}

	if _, err := ms.Likes.RecordLike(ctx, landlordID, tenantID, models.LikeTypeTenant); err != nil {
		return SwipeResult{Success: false}
	}
	return SwipeResult{Success: true}
}

// createMatch always creates a fresh active match. It does not check
// for an existing match on the same triple, so a retried reciprocal
// like can produce a second match record.
func (ms *MatchingService) createMatch(ctx context.Context, tenantID, landlordID, propertyID string) (*models.Match, error) {
	match := models.Match{
		MatchID:    uuid.NewString(),
		TenantID:   tenantID,
		LandlordID: landlordID,
		PropertyID: propertyID,
		Status:     models.MatchStatusActive,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := ms.Matches.InsertMatch(ctx, match); err != nil {
		log.Printf("❌ Failed to create match: %v", err)
		return nil, err
	}

	log.Printf("🎉 Match created: tenant %s ❤️ landlord %s (property %s)", tenantID, landlordID, propertyID)

	if ms.OnMatch != nil {
		ms.OnMatch(match)
	}
	return &match, nil
}

// RejectMatch sets the match status to rejected. Returns false and
// leaves state unchanged when the match id does not exist.
func (ms *MatchingService) RejectMatch(ctx context.Context, matchID string) bool {
	match, err := ms.Matches.GetMatch(ctx, matchID)
	if err != nil {
		log.Printf("❌ Failed to fetch match %s: %v", matchID, err)
		return false
	}
	if match == nil {
		log.Printf("⚠️ Match %s not found", matchID)
		return false
	}

	if err := ms.Matches.UpdateMatchStatus(ctx, matchID, models.MatchStatusRejected); err != nil {
		log.Printf("❌ Failed to reject match %s: %v", matchID, err)
		return false
	}
	return true
}

func tripleKey(tenantID, landlordID, propertyID string) string {
	return strings.Join([]string{tenantID, landlordID, propertyID}, "|")
}

// tripleLocks serializes check-then-act per (tenant, landlord,
// property) triple. Without it two concurrent reciprocal likes can both
// observe "no like yet" and either miss the match or create two.
type tripleLocks struct {
	mu      sync.Mutex
	entries map[string]*tripleLockEntry
}

type tripleLockEntry struct {
	mu   sync.Mutex
	refs int
}

func (tl *tripleLocks) lock(key string) (unlock func()) {
	tl.mu.Lock()
	if tl.entries == nil {
		tl.entries = make(map[string]*tripleLockEntry)
	}
	entry, ok := tl.entries[key]
	if !ok {
		entry = &tripleLockEntry{}
		tl.entries[key] = entry
	}
	entry.refs++
	tl.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()
		tl.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(tl.entries, key)
		}
		tl.mu.Unlock()
	}
}
