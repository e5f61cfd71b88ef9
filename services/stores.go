package services

import (
	"context"

	"github.com/Geraxi/tenant-rork-sub001/models"
)

// Store interfaces. All mutation of likes and matches goes through the
// MatchingService; everything else only reads them.

// ActorStore persists tenant and landlord profiles
type ActorStore interface {
	FindActor(ctx context.Context, userID string) (*models.UserProfile, error)
	PutActor(ctx context.Context, profile models.UserProfile) error
	DeleteActor(ctx context.Context, userID string) error
	ScanActors(ctx context.Context, role string) ([]models.UserProfile, error)
}

// PropertyStore persists property listings
type PropertyStore interface {
	FindProperty(ctx context.Context, propertyID string) (*models.Property, error)
	PutProperty(ctx context.Context, property models.Property) error
	DeleteProperty(ctx context.Context, propertyID string) error
	PropertiesByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
	ScanProperties(ctx context.Context) ([]models.Property, error)
}

// LikeLedger is the append-only record of like events
type LikeLedger interface {
	RecordLike(ctx context.Context, likerID, likedID, likeType string) (*models.Like, error)
	HasLike(ctx context.Context, likerID, likedID, likeType string) (bool, error)
	LikesByLiker(ctx context.Context, likerID string) ([]models.Like, error)
}

// MatchStore persists matches
type MatchStore interface {
	InsertMatch(ctx context.Context, match models.Match) error
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
	MatchesByTenant(ctx context.Context, tenantID string) ([]models.Match, error)
	MatchesByLandlord(ctx context.Context, landlordID string) ([]models.Match, error)
	UpdateMatchStatus(ctx context.Context, matchID, status string) error
}

// MessageStore persists chat messages scoped by match
type MessageStore interface {
	AppendMessage(ctx context.Context, message models.Message) error
	MessagesByMatch(ctx context.Context, matchID string, limit int) ([]models.Message, error)
	MarkMessagesRead(ctx context.Context, matchID, readerID string) error
}

// EntityStore is the read-only lookup facade the matching subsystem
// consumes. A missing entity is (nil, nil); errors mean the underlying
// store call failed.
type EntityStore interface {
	FindActor(ctx context.Context, userID string) (*models.UserProfile, error)
	FindProperty(ctx context.Context, propertyID string) (*models.Property, error)
}

type entityStore struct {
	actors     ActorStore
	properties PropertyStore
}

// NewEntityStore combines actor and property lookups into the read-only
// view handed to MatchingService and MatchQueryService.
func NewEntityStore(actors ActorStore, properties PropertyStore) EntityStore {
	return &entityStore{actors: actors, properties: properties}
}

func (es *entityStore) FindActor(ctx context.Context, userID string) (*models.UserProfile, error) {
	return es.actors.FindActor(ctx, userID)
}

func (es *entityStore) FindProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	return es.properties.FindProperty(ctx, propertyID)
}
