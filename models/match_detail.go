package models

// MatchDetail joins a Match with its three referenced entities
type MatchDetail struct {
	Match    Match       `json:"match"`
	Tenant   UserProfile `json:"tenant"`
	Landlord UserProfile `json:"landlord"`
	Property Property    `json:"property"`
}
