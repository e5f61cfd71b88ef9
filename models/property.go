package models

// Property defines a rental listing owned by exactly one landlord
type Property struct {
	PropertyID  string   `dynamodbav:"propertyId" json:"propertyId"` // Partition Key
	OwnerID     string   `dynamodbav:"ownerId" json:"ownerId"`       // Indexed via GSI
	Title       string   `dynamodbav:"title,omitempty" json:"title,omitempty"`
	Description string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	City        string   `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Address     string   `dynamodbav:"address,omitempty" json:"address,omitempty"`
	Price       int      `dynamodbav:"price,omitempty" json:"price,omitempty"` // monthly rent
	AreaSqm     int      `dynamodbav:"areaSqm,omitempty" json:"areaSqm,omitempty"`
	Bedrooms    int      `dynamodbav:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   int      `dynamodbav:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Furnished   bool     `dynamodbav:"furnished,omitempty" json:"furnished,omitempty"`
	PetsAllowed bool     `dynamodbav:"petsAllowed,omitempty" json:"petsAllowed,omitempty"`
	Photos      []string `dynamodbav:"photos,omitempty" json:"photos,omitempty"`
	Available   bool     `dynamodbav:"available" json:"available"`
	CreatedAt   string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// PropertiesTable is the DynamoDB table name for property listings
const PropertiesTable = "Properties"

// OwnerIDIndex is the GSI used to list a landlord's properties
const OwnerIDIndex = "ownerId-index"
