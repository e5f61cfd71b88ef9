package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/Geraxi/tenant-rork-sub001/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DynamoDB-backed implementations of the store interfaces.

const queryLimit = 500

// DynamoActorStore persists profiles in the Users table
type DynamoActorStore struct {
	Dynamo *DynamoService
}

func (s *DynamoActorStore) FindActor(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

func (s *DynamoActorStore) PutActor(ctx context.Context, profile models.UserProfile) error {
	return s.Dynamo.PutItem(ctx, models.UsersTable, profile)
}

func (s *DynamoActorStore) DeleteActor(ctx context.Context, userID string) error {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	return s.Dynamo.DeleteItem(ctx, models.UsersTable, key)
}

func (s *DynamoActorStore) ScanActors(ctx context.Context, role string) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := s.Dynamo.ScanWithFilter(ctx, models.UsersTable, func(item map[string]types.AttributeValue) bool {
		if role == "" {
			return true
		}
		if attr, ok := item["role"].(*types.AttributeValueMemberS); ok {
			return attr.Value == role
		}
		return false
	}, nil, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}
	return profiles, nil
}

// DynamoPropertyStore persists listings in the Properties table
type DynamoPropertyStore struct {
	Dynamo *DynamoService
}

func (s *DynamoPropertyStore) FindProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	key := map[string]types.AttributeValue{
		"propertyId": &types.AttributeValueMemberS{Value: propertyID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.PropertiesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var property models.Property
	if err := attributevalue.UnmarshalMap(item, &property); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property: %w", err)
	}
	return &property, nil
}

func (s *DynamoPropertyStore) PutProperty(ctx context.Context, property models.Property) error {
	return s.Dynamo.PutItem(ctx, models.PropertiesTable, property)
}

func (s *DynamoPropertyStore) DeleteProperty(ctx context.Context, propertyID string) error {
	key := map[string]types.AttributeValue{
		"propertyId": &types.AttributeValueMemberS{Value: propertyID},
	}
	return s.Dynamo.DeleteItem(ctx, models.PropertiesTable, key)
}

func (s *DynamoPropertyStore) PropertiesByOwner(ctx context.Context, ownerID string) ([]models.Property, error) {
	keyCondition := "ownerId = :owner"
	expressionValues := map[string]types.AttributeValue{
		":owner": &types.AttributeValueMemberS{Value: ownerID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.PropertiesTable, models.OwnerIDIndex, keyCondition, expressionValues, nil, queryLimit)
	if err != nil {
		return nil, err
	}

	var properties []models.Property
	if err := attributevalue.UnmarshalListOfMaps(items, &properties); err != nil {
		return nil, fmt.Errorf("failed to unmarshal properties: %w", err)
	}
	return properties, nil
}

func (s *DynamoPropertyStore) ScanProperties(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := s.Dynamo.ScanWithFilter(ctx, models.PropertiesTable, nil, nil, &properties); err != nil {
		return nil, fmt.Errorf("failed to scan properties: %w", err)
	}
	return properties, nil
}

// DynamoLikeLedger appends like events to the Likes table
type DynamoLikeLedger struct {
	Dynamo *DynamoService
}

// RecordLike appends a new Like with a fresh id and current timestamp.
// Duplicates for the same (liker, liked, type) tuple are not collapsed.
func (s *DynamoLikeLedger) RecordLike(ctx context.Context, likerID, likedID, likeType string) (*models.Like, error) {
	like := models.Like{
		LikeID:    uuid.NewString(),
		LikerID:   likerID,
		LikedID:   likedID,
		Type:      likeType,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.LikesTable, like); err != nil {
		log.Printf("❌ Failed to record like: %v", err)
		return nil, err
	}

	log.Printf("✅ Like recorded: %s -> %s (%s)", likerID, likedID, likeType)
	return &like, nil
}

// HasLike reports whether a like with exactly these fields exists
func (s *DynamoLikeLedger) HasLike(ctx context.Context, likerID, likedID, likeType string) (bool, error) {
	likes, err := s.LikesByLiker(ctx, likerID)
	if err != nil {
		return false, err
	}

	for _, like := range likes {
		if like.LikedID == likedID && like.Type == likeType {
			return true, nil
		}
	}
	return false, nil
}

func (s *DynamoLikeLedger) LikesByLiker(ctx context.Context, likerID string) ([]models.Like, error) {
	keyCondition := "likerId = :liker"
	expressionValues := map[string]types.AttributeValue{
		":liker": &types.AttributeValueMemberS{Value: likerID},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.LikesTable, models.LikerIDIndex, keyCondition, expressionValues, nil, queryLimit)
	if err != nil {
		return nil, err
	}

	var likes []models.Like
	if err := attributevalue.UnmarshalListOfMaps(items, &likes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal likes: %w", err)
	}
	return likes, nil
}

// DynamoMatchStore persists matches in the Matches table
type DynamoMatchStore struct {
	Dynamo *DynamoService
}

func (s *DynamoMatchStore) InsertMatch(ctx context.Context, match models.Match) error {
	return s.Dynamo.PutItem(ctx, models.MatchesTable, match)
}

func (s *DynamoMatchStore) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &match, nil
}

func (s *DynamoMatchStore) MatchesByTenant(ctx context.Context, tenantID string) ([]models.Match, error) {
	return s.matchesByIndex(ctx, models.TenantIDIndex, "tenantId", tenantID)
}

func (s *DynamoMatchStore) MatchesByLandlord(ctx context.Context, landlordID string) ([]models.Match, error) {
	return s.matchesByIndex(ctx, models.LandlordIDIndex, "landlordId", landlordID)
}

func (s *DynamoMatchStore) matchesByIndex(ctx context.Context, indexName, field, value string) ([]models.Match, error) {
	keyCondition := fmt.Sprintf("%s = :v", field)
	expressionValues := map[string]types.AttributeValue{
		":v": &types.AttributeValueMemberS{Value: value},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, indexName, keyCondition, expressionValues, nil, queryLimit)
	if err != nil {
		return nil, err
	}

	var matches []models.Match
	if err := attributevalue.UnmarshalListOfMaps(items, &matches); err != nil {
		return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
	}
	return matches, nil
}

func (s *DynamoMatchStore) UpdateMatchStatus(ctx context.Context, matchID, status string) error {
	updateExpression := "SET #status = :status"
	key := map[string]types.AttributeValue{
		"matchId": &types.AttributeValueMemberS{Value: matchID},
	}

	_, err := s.Dynamo.UpdateItem(ctx, models.MatchesTable, updateExpression, key,
		map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: status},
		},
		map[string]string{"#status": "status"},
	)
	return err
}

// DynamoMessageStore persists chat messages in the Messages table
type DynamoMessageStore struct {
	Dynamo *DynamoService
}

func (s *DynamoMessageStore) AppendMessage(ctx context.Context, message models.Message) error {
	return s.Dynamo.PutItem(ctx, models.MessagesTable, message)
}

// MessagesByMatch fetches messages for a match, newest first
func (s *DynamoMessageStore) MessagesByMatch(ctx context.Context, matchID string, limit int) ([]models.Message, error) {
	keyCondition := "#matchId = :matchId"
	expressionValues := map[string]types.AttributeValue{
		":matchId": &types.AttributeValueMemberS{Value: matchID},
	}
	expressionNames := map[string]string{
		"#matchId": "matchId",
	}

	items, err := s.Dynamo.QueryItems(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, int32(limit))
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt > messages[j].CreatedAt
	})
	return messages, nil
}

// MarkMessagesRead flags messages sent to readerID in this match as read
func (s *DynamoMessageStore) MarkMessagesRead(ctx context.Context, matchID, readerID string) error {
	messages, err := s.MessagesByMatch(ctx, matchID, queryLimit)
	if err != nil {
		return err
	}

	for _, msg := range messages {
		if msg.SenderID == readerID || !msg.IsUnread {
			continue
		}

		updateExpression := "SET isUnread = :unread"
		key := map[string]types.AttributeValue{
			"matchId":   &types.AttributeValueMemberS{Value: msg.MatchID},
			"createdAt": &types.AttributeValueMemberS{Value: msg.CreatedAt},
		}
		_, err := s.Dynamo.UpdateItem(ctx, models.MessagesTable, updateExpression, key,
			map[string]types.AttributeValue{
				":unread": &types.AttributeValueMemberBOOL{Value: false},
			}, nil,
		)
		if err != nil {
			log.Printf("⚠️ Failed to mark message %s as read: %v", msg.MessageID, err)
		}
	}
	return nil
}
