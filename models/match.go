package models

// Match pairs a tenant and a landlord over a specific property.
// Invariant: the property's ownerId always equals LandlordID.
type Match struct {
	MatchID    string `dynamodbav:"matchId" json:"matchId"` // Partition Key
	TenantID   string `dynamodbav:"tenantId" json:"tenantId"`
	LandlordID string `dynamodbav:"landlordId" json:"landlordId"`
	PropertyID string `dynamodbav:"propertyId" json:"propertyId"`
	Status     string `dynamodbav:"status" json:"status"` // active, expired, rejected
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// GSIs used to list a user's matches by role
const (
	TenantIDIndex   = "tenantId-index"
	LandlordIDIndex = "landlordId-index"
)
