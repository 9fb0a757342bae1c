package model

// Enumerations shared across entities. Values match what the admin panel and
// the public site exchange over JSON; they are stored verbatim in the DB.

// ContentStatus flags whether a record is shown on the public site.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Marketing tags applied to menu items for display emphasis.
const (
	TagNew   = "NEW"
	TagBest  = "BEST"
	TagEvent = "EVENT"
)

// Temperature options for a menu item.
const (
	TempHot  = "HOT"
	TempCold = "COLD"
)

// New-menu poster status, derived from the current date vs. the date range.
const (
	PosterWaiting = "WAITING"
	PosterActive  = "ACTIVE"
	PosterExpired = "EXPIRED"
)

// Store regions.
var StoreRegions = []string{
	"SEOUL", "GYEONGGI", "INCHEON", "BUSAN", "DAEGU", "GWANGJU", "DAEJEON", "ULSAN",
}

// Store operating status.
const (
	StoreOpen      = "OPEN"
	StoreClosed    = "CLOSED"
	StorePreparing = "PREPARING"
	StoreVacation  = "VACATION"
)

// Store type.
const (
	StoreDirect    = "DIRECT"
	StoreFranchise = "FRANCHISE"
)

// Store options.
var StoreOptions = []string{
	"PARKING", "WIFI", "PET_FRIENDLY", "DRIVE_THROUGH", "DELIVERY", "OUTDOOR_SEATING",
}

// Event types.
var EventTypes = []string{"PROMOTION", "NEW_MENU", "NOTICE"}

// FAQ categories.
var FAQCategories = []string{"STORE", "MENU", "STARTUP", "SMART_ORDER"}

// Franchise inquiry status.
const (
	InquiryPending   = "PENDING"
	InquiryCompleted = "COMPLETED"
)

// Store ownership answers on the inquiry form.
const (
	OwnershipNone  = "NONE"
	OwnershipOwned = "OWNED"
)

// Startup-session locations.
var SessionLocations = []string{
	"HEADQUARTERS", "SEOUL_OFFICE", "MUGYO_BRANCH", "YEOUIDO_BRANCH",
}

// Startup-session status.
const (
	SessionWaiting   = "WAITING"
	SessionAccepting = "ACCEPTING"
	SessionClosed    = "CLOSED"
)

// OneOf reports whether v is a member of the allowed set.
func OneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
