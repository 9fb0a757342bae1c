package model

import "time"

// FranchiseInquiry is a lead record submitted from the public franchise form
// or the startup-session signup. Public submissions carry defaulted
// qualifying fields; the admin updates status and response only.
type FranchiseInquiry struct {
	ID             uint64     `json:"id"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Email          string     `json:"email"`
	Region         string     `json:"region"`
	AgeGroup       string     `json:"ageGroup"`
	StoreOwnership string     `json:"storeOwnership"`
	Budget         string     `json:"budget,omitempty"`
	BrandAwareness StringList `json:"brandAwareness"`
	AvailableTime  string     `json:"availableTime"`
	Content        string     `json:"content"`
	Status         string     `json:"status"`
	Response       *string    `json:"response,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Defaults applied to public submissions; the short public form only asks for
// contact fields and a message.
const (
	DefaultAgeGroup      = "30-40"
	DefaultOwnership     = OwnershipNone
	DefaultAvailableTime = "morning"
	DefaultRegion        = "UNDECIDED"
)
