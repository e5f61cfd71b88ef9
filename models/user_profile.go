package models

// UserProfile defines the structure for tenant and landlord profiles
type UserProfile struct {
	UserID          string   `dynamodbav:"userId" json:"userId"` // Partition Key
	Role            string   `dynamodbav:"role" json:"role"`     // tenant or landlord
	Name            string   `dynamodbav:"name,omitempty" json:"name,omitempty"`
	EmailID         string   `dynamodbav:"emailId,omitempty" json:"emailId,omitempty"`
	PhoneNumber     string   `dynamodbav:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Bio             string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	City            string   `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Occupation      string   `dynamodbav:"occupation,omitempty" json:"occupation,omitempty"`
	MonthlyBudget   int      `dynamodbav:"monthlyBudget,omitempty" json:"monthlyBudget,omitempty"` // tenants only
	HasPets         bool     `dynamodbav:"hasPets,omitempty" json:"hasPets,omitempty"`
	Smoker          bool     `dynamodbav:"smoker,omitempty" json:"smoker,omitempty"`
	Photos          []string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	LookingForCity  string   `dynamodbav:"lookingForCity,omitempty" json:"lookingForCity,omitempty"`
	Verified        bool     `dynamodbav:"verified,omitempty" json:"verified,omitempty"`
	CreatedAt       string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "Users"
