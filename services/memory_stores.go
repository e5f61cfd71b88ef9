package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Geraxi/tenant-rork-sub001/models"

	"github.com/google/uuid"
)

// In-memory implementations of the store interfaces, used for local
// development (STORAGE_BACKEND=memory) and unit tests.

// MemoryActorStore keeps profiles in a map
type MemoryActorStore struct {
	mu     sync.RWMutex
	actors map[string]models.UserProfile
}

func NewMemoryActorStore() *MemoryActorStore {
	return &MemoryActorStore{actors: make(map[string]models.UserProfile)}
}

func (s *MemoryActorStore) FindActor(ctx context.Context, userID string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if profile, ok := s.actors[userID]; ok {
		return &profile, nil
	}
	return nil, nil
}

func (s *MemoryActorStore) PutActor(ctx context.Context, profile models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actors[profile.UserID] = profile
	return nil
}

func (s *MemoryActorStore) DeleteActor(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.actors, userID)
	return nil
}

func (s *MemoryActorStore) ScanActors(ctx context.Context, role string) ([]models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var profiles []models.UserProfile
	for _, profile := range s.actors {
		if role == "" || profile.Role == role {
			profiles = append(profiles, profile)
		}
	}
	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].UserID < profiles[j].UserID
	})
	return profiles, nil
}

// MemoryPropertyStore keeps listings in a map
type MemoryPropertyStore struct {
	mu         sync.RWMutex
	properties map[string]models.Property
}

func NewMemoryPropertyStore() *MemoryPropertyStore {
	return &MemoryPropertyStore{properties: make(map[string]models.Property)}
}

func (s *MemoryPropertyStore) FindProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if property, ok := s.properties[propertyID]; ok {
		return &property, nil
	}
	return nil, nil
}

func (s *MemoryPropertyStore) PutProperty(ctx context.Context, property models.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[property.PropertyID] = property
	return nil
}

func (s *MemoryPropertyStore) DeleteProperty(ctx context.Context, propertyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.properties, propertyID)
	return nil
}

func (s *MemoryPropertyStore) PropertiesByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var properties []models.Property
	for _, property := range s.properties {
		if property.OwnerID == ownerID {
			properties = append(properties, property)
		}
	}
	sort.SliceStable(properties, func(i, j int) bool {
		return properties[i].PropertyID < properties[j].PropertyID
	})
	return properties, nil
}

func (s *MemoryPropertyStore) ScanProperties(ctx context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	properties := make([]models.Property, 0, len(s.properties))
	for _, property := range s.properties {
		properties = append(properties, property)
	}
	sort.SliceStable(properties, func(i, j int) bool {
		return properties[i].PropertyID < properties[j].PropertyID
	})
	return properties, nil
}

// MemoryLikeLedger appends likes to a slice, like the reference mock arrays
type MemoryLikeLedger struct {
	mu    sync.RWMutex
	likes []models.Like
}

func NewMemoryLikeLedger() *MemoryLikeLedger {
	return &MemoryLikeLedger{}
}

func (s *MemoryLikeLedger) RecordLike(ctx context.Context, likerID, likedID, likeType string) (*models.Like, error) {
	like := models.Like{
		LikeID:    uuid.NewString(),
		LikerID:   likerID,
		LikedID:   likedID,
		Type:      likeType,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.likes = append(s.likes, like)
	return &like, nil
}

func (s *MemoryLikeLedger) HasLike(ctx context.Context, likerID, likedID, likeType string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, like := range s.likes {
		if like.LikerID == likerID && like.LikedID == likedID && like.Type == likeType {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryLikeLedger) LikesByLiker(ctx context.Context, likerID string) ([]models.Like, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var likes []models.Like
	for _, like := range s.likes {
		if like.LikerID == likerID {
			likes = append(likes, like)
		}
	}
	return likes, nil
}

// MemoryMatchStore keeps matches in a map
type MemoryMatchStore struct {
	mu      sync.RWMutex
	matches map[string]models.Match
}

func NewMemoryMatchStore() *MemoryMatchStore {
	return &MemoryMatchStore{matches: make(map[string]models.Match)}
}

func (s *MemoryMatchStore) InsertMatch(ctx context.Context, match models.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.MatchID] = match
	return nil
}

func (s *MemoryMatchStore) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if match, ok := s.matches[matchID]; ok {
		return &match, nil
	}
	return nil, nil
}

func (s *MemoryMatchStore) MatchesByTenant(ctx context.Context, tenantID string) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []models.Match
	for _, match := range s.matches {
		if match.TenantID == tenantID {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

func (s *MemoryMatchStore) MatchesByLandlord(ctx context.Context, landlordID string) ([]models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []models.Match
	for _, match := range s.matches {
		if match.LandlordID == landlordID {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

func (s *MemoryMatchStore) UpdateMatchStatus(ctx context.Context, matchID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	match, ok := s.matches[matchID]
	if !ok {
		return nil
	}
	match.Status = status
	s.matches[matchID] = match
	return nil
}

// MemoryMessageStore keeps chat messages in a per-match slice
type MemoryMessageStore struct {
	mu       sync.RWMutex
	messages map[string][]models.Message
}

func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{messages: make(map[string][]models.Message)}
}

func (s *MemoryMessageStore) AppendMessage(ctx context.Context, message models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[message.MatchID] = append(s.messages[message.MatchID], message)
	return nil
}

func (s *MemoryMessageStore) MessagesByMatch(ctx context.Context, matchID string, limit int) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := make([]models.Message, len(s.messages[matchID]))
	copy(messages, s.messages[matchID])

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt > messages[j].CreatedAt
	})
	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}

func (s *MemoryMessageStore) MarkMessagesRead(ctx context.Context, matchID, readerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := s.messages[matchID]
	for i, msg := range messages {
		if msg.SenderID != readerID {
			messages[i].IsUnread = false
		}
	}
	return nil
}
