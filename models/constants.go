package models

// Like target kinds
const (
	LikeTypeProperty = "property"
	LikeTypeTenant   = "tenant"
)

// Actor roles
const (
	RoleTenant   = "tenant"
	RoleLandlord = "landlord"
)

// Match statuses
const (
	MatchStatusActive   = "active"
	MatchStatusExpired  = "expired"
	MatchStatusRejected = "rejected"
)

// Swipe card kinds for the discover feed
const (
	CardKindProperty = "property"
	CardKindTenant   = "tenant"
)
