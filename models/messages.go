package models

// Message is a chat message scoped to a match
type Message struct {
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	MatchID   string `dynamodbav:"matchId" json:"matchId"` // Partition Key
	SenderID  string `dynamodbav:"senderId" json:"senderId"`
	Content   string `dynamodbav:"content" json:"content"`
	IsUnread  bool   `dynamodbav:"isUnread" json:"isUnread"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"` // Sort Key
}

// MessagesTable is the DynamoDB table name for match messages
const MessagesTable = "Messages"
