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

// messageTimeFormat pins the fractional-second width so timestamps stay
// lexicographically sortable and two messages in the same second get
// distinct (matchId, createdAt) keys.
const messageTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// ChatService handles messaging between the two sides of a match
type ChatService struct {
	Messages MessageStore
	Matches  MatchStore

	// OnMessage, when set, is invoked after a message is stored
	// (used to push realtime events). Best-effort.
	OnMessage func(models.Message)
}

// SendMessage stores a new message on an active match. The sender must
// be one of the match's two parties.
func (cs *ChatService) SendMessage(ctx context.Context, matchID, senderID, content string) (*models.Message, error) {
	if content == "" {
		return nil, errors.New("message content is empty")
	}

	match, err := cs.Matches.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match: %w", err)
	}
	if match == nil {
		return nil, errors.New("match not found")
	}
	if match.Status != models.MatchStatusActive {
		return nil, fmt.Errorf("match %s is %s", matchID, match.Status)
	}
	if senderID != match.TenantID && senderID != match.LandlordID {
		return nil, errors.New("sender is not part of this match")
	}

	message := models.Message{
		MessageID: uuid.NewString(),
		MatchID:   matchID,
		SenderID:  senderID,
		Content:   content,
		IsUnread:  true,
		CreatedAt: time.Now().UTC().Format(messageTimeFormat),
	}

	if err := cs.Messages.AppendMessage(ctx, message); err != nil {
		log.Printf("❌ Failed to store message: %v", err)
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	log.Printf("📩 Message stored for match %s", matchID)
	if cs.OnMessage != nil {
		cs.OnMessage(message)
	}
	return &message, nil
}

// GetMessages fetches messages for a match, newest first
func (cs *ChatService) GetMessages(ctx context.Context, matchID string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	messages, err := cs.Messages.MessagesByMatch(ctx, matchID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}
	return messages, nil
}

// MarkMessagesRead marks messages received by readerID as read
func (cs *ChatService) MarkMessagesRead(ctx context.Context, matchID, readerID string) error {
	return cs.Messages.MarkMessagesRead(ctx, matchID, readerID)
}
