package models

// SwipeCard is the tagged variant handed to the swipe deck: either a
// property (tenant feed) or a tenant profile (landlord feed). Exactly
// one of Property/Tenant is set, matching Kind.
type SwipeCard struct {
	Kind     string       `json:"kind"` // CardKindProperty or CardKindTenant
	Property *Property    `json:"property,omitempty"`
	Tenant   *UserProfile `json:"tenant,omitempty"`
}
