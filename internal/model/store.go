package model

import "time"

// Store is a franchise or company-operated location. CLOSED stores are kept
// for the admin panel but never appear in public listings.
type Store struct {
	ID                uint64     `json:"id"`
	Name              string     `json:"name"`
	Region            string     `json:"region"`
	Address           string     `json:"address"`
	AdditionalAddress string     `json:"additionalAddress,omitempty"`
	Phone             string     `json:"phone"`
	OperatingStatus   string     `json:"operatingStatus"`
	StoreType         string     `json:"storeType"`
	Options           StringList `json:"options"`
	Images            StringList `json:"images"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
