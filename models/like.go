package models

// Like records a one-directional expression of interest.
// Type decides what LikedID refers to: a property id (LikeTypeProperty)
// or a tenant user id (LikeTypeTenant).
type Like struct {
	LikeID    string `dynamodbav:"likeId" json:"likeId"` // Partition Key
	LikerID   string `dynamodbav:"likerId" json:"likerId"`
	LikedID   string `dynamodbav:"likedId" json:"likedId"`
	Type      string `dynamodbav:"type" json:"type"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// LikesTable is the DynamoDB table name for the like ledger
const LikesTable = "Likes"

// LikerIDIndex is the GSI used for reciprocity and feed-exclusion lookups
const LikerIDIndex = "likerId-index"
