package property

import "time"

// Property is a real-estate listing surfaced to the voice assistant and
// the browser search UI.
type Property struct {
	ID          string        `json:"id" db:"id"`
	Title       string        `json:"title" db:"title"`
	Description string        `json:"description,omitempty" db:"description"`
	Type        PropertyType  `json:"type" db:"type"`
	Status      ListingStatus `json:"status" db:"status"`

	City  string `json:"city" db:"city"`
	State string `json:"state" db:"state"`

	// Price is in whole currency units (listing prices, not billing).
	Price int64 `json:"price" db:"price"`

	Bedrooms  int     `json:"bedrooms" db:"bedrooms"`
	Bathrooms float64 `json:"bathrooms" db:"bathrooms"`
	AreaSqft  int     `json:"area_sqft" db:"area_sqft"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type PropertyType string

const (
	TypeHouse     PropertyType = "house"
	TypeApartment PropertyType = "apartment"
	TypeCondo     PropertyType = "condo"
	TypeTownhouse PropertyType = "townhouse"
	TypeLand      PropertyType = "land"
)

type ListingStatus string

const (
	StatusForSale ListingStatus = "for_sale"
	StatusForRent ListingStatus = "for_rent"
	StatusSold    ListingStatus = "sold"
)

// SearchFilter narrows a listing search. Zero values mean "no filter".
type SearchFilter struct {
	City        string
	State       string
	Type        PropertyType
	Status      ListingStatus
	MinPrice    int64
	MaxPrice    int64
	MinBedrooms int

	// Query is a free-text match over title and description.
	Query string

	Limit  int
	Offset int
}
