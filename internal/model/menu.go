package model

import "time"

// Category groups menu items. Names are unique; a category cannot be deleted
// while menus still reference it.
type Category struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	MenuCount int       `json:"menuCount"` // populated on admin listings
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Menu is a sellable item on the brand menu. DiscountPrice, when set, must be
// strictly below Price; the rule is enforced at validation time and asserted
// again before every write.
type Menu struct {
	ID            uint64     `json:"id"`
	CategoryID    uint64     `json:"categoryId"`
	CategoryName  string     `json:"categoryName,omitempty"` // joined on listings
	Name          string     `json:"name"`
	Price         int64      `json:"price"`
	DiscountPrice *int64     `json:"discountPrice,omitempty"`
	MarketingTags StringList `json:"marketingTags"`
	TempOptions   StringList `json:"temperatureOptions"`
	Description   string     `json:"description"`
	ImageURL      *string    `json:"imageUrl,omitempty"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// PublicMenu is the sanitized public view of a menu with flags computed from
// tag membership and status.
type PublicMenu struct {
	Menu
	IsPopular   bool `json:"isPopular"`
	IsNew       bool `json:"isNew"`
	IsAvailable bool `json:"isAvailable"`
}

// PublicView derives the marketing flags the public menus page displays.
func (m Menu) PublicView() PublicMenu {
	return PublicMenu{
		Menu:        m,
		IsPopular:   m.MarketingTags.Contains(TagBest),
		IsNew:       m.MarketingTags.Contains(TagNew),
		IsAvailable: m.Status == StatusActive,
	}
}
