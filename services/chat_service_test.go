package services

import (
	"context"
	"testing"

	"github.com/Geraxi/tenant-rork-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChatService(t *testing.T) (*ChatService, *MemoryMatchStore, *MemoryMessageStore) {
	t.Helper()
	matches := NewMemoryMatchStore()
	messages := NewMemoryMessageStore()
	return &ChatService{Messages: messages, Matches: matches}, matches, messages
}

func seedActiveMatch(t *testing.T, matches *MemoryMatchStore, matchID string) {
	t.Helper()
	err := matches.InsertMatch(context.Background(), models.Match{
		MatchID:    matchID,
		TenantID:   "tenant-1",
		LandlordID: "landlord-1",
		PropertyID: "prop-1",
		Status:     models.MatchStatusActive,
		CreatedAt:  "2025-03-01T10:00:00Z",
	})
	require.NoError(t, err)
}

func TestSendMessage_StoresAndNotifies(t *testing.T) {
	cs, matches, _ := newTestChatService(t)
	ctx := context.Background()
	seedActiveMatch(t, matches, "m-1")

	var notified []models.Message
	cs.OnMessage = func(m models.Message) { notified = append(notified, m) }

	sent, err := cs.SendMessage(ctx, "m-1", "tenant-1", "Ciao, l'appartamento è ancora disponibile?")
	require.NoError(t, err)
	assert.NotEmpty(t, sent.MessageID)
	assert.True(t, sent.IsUnread)
	require.Len(t, notified, 1)
	assert.Equal(t, sent.MessageID, notified[0].MessageID)
}

func TestSendMessage_RejectsOutsiders(t *testing.T) {
	cs, matches, _ := newTestChatService(t)
	ctx := context.Background()
	seedActiveMatch(t, matches, "m-1")

	_, err := cs.SendMessage(ctx, "m-1", "stranger-9", "Ciao")
	assert.Error(t, err)
}

func TestSendMessage_RequiresActiveMatch(t *testing.T) {
	cs, matches, _ := newTestChatService(t)
	ctx := context.Background()

	_, err := cs.SendMessage(ctx, "m-missing", "tenant-1", "Ciao")
	assert.Error(t, err)

	seedActiveMatch(t, matches, "m-1")
	require.NoError(t, matches.UpdateMatchStatus(ctx, "m-1", models.MatchStatusRejected))

	_, err = cs.SendMessage(ctx, "m-1", "tenant-1", "Ciao")
	assert.Error(t, err)
}

// createdAt doubles as the storage sort key, so messages sent within
// the same second must still get distinct, ordered timestamps.
func TestSendMessage_SameSecondMessagesKeepDistinctTimestamps(t *testing.T) {
	cs, matches, _ := newTestChatService(t)
	ctx := context.Background()
	seedActiveMatch(t, matches, "m-1")

	first, err := cs.SendMessage(ctx, "m-1", "tenant-1", "Ciao")
	require.NoError(t, err)
	second, err := cs.SendMessage(ctx, "m-1", "tenant-1", "Ci sei?")
	require.NoError(t, err)

	assert.NotEqual(t, first.CreatedAt, second.CreatedAt)
	assert.Less(t, first.CreatedAt, second.CreatedAt)
}

func TestGetMessages_NewestFirstWithLimit(t *testing.T) {
	cs, matches, messages := newTestChatService(t)
	ctx := context.Background()
	seedActiveMatch(t, matches, "m-1")

	for i, createdAt := range []string{"2025-03-01T10:00:00Z", "2025-03-01T10:05:00Z", "2025-03-01T10:10:00Z"} {
		require.NoError(t, messages.AppendMessage(ctx, models.Message{
			MessageID: string(rune('a' + i)),
			MatchID:   "m-1",
			SenderID:  "tenant-1",
			Content:   "msg",
			CreatedAt: createdAt,
		}))
	}

	got, err := cs.GetMessages(ctx, "m-1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-03-01T10:10:00Z", got[0].CreatedAt)
	assert.Equal(t, "2025-03-01T10:05:00Z", got[1].CreatedAt)
}

func TestMarkMessagesRead_OnlyOtherSidesMessages(t *testing.T) {
	cs, matches, messages := newTestChatService(t)
	ctx := context.Background()
	seedActiveMatch(t, matches, "m-1")

	_, err := cs.SendMessage(ctx, "m-1", "tenant-1", "Ciao")
	require.NoError(t, err)
	_, err = cs.SendMessage(ctx, "m-1", "landlord-1", "Buongiorno")
	require.NoError(t, err)

	require.NoError(t, cs.MarkMessagesRead(ctx, "m-1", "landlord-1"))

	got, err := messages.MessagesByMatch(ctx, "m-1", 0)
	require.NoError(t, err)
	for _, msg := range got {
		if msg.SenderID == "tenant-1" {
			assert.False(t, msg.IsUnread)
		} else {
			assert.True(t, msg.IsUnread)
		}
	}
}
