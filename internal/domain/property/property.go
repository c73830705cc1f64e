package property

import (
	"fmt"
	"time"
)

type TransactionType string

const (
	TransactionSale TransactionType = "sale"
	TransactionRent TransactionType = "rent"
)

var TransactionTypes = []TransactionType{TransactionSale, TransactionRent}

func ParseTransactionType(s string) (TransactionType, error) {
	for _, t := range TransactionTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown transaction type %q", s)
}

type Category string

const (
	CategoryApartment  Category = "apartment"
	CategoryHouse      Category = "house"
	CategoryVilla      Category = "villa"
	CategoryStudio     Category = "studio"
	CategoryOffice     Category = "office"
	CategoryCommercial Category = "commercial"
	CategoryLand       Category = "land"
)

var Categories = []Category{
	CategoryApartment,
	CategoryHouse,
	CategoryVilla,
	CategoryStudio,
	CategoryOffice,
	CategoryCommercial,
	CategoryLand,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type AgentType string

const (
	AgentAgency     AgentType = "agency"
	AgentIndividual AgentType = "individual"
)

type Agent struct {
	ID           string    `json:"id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Type         AgentType `json:"type" validate:"oneof=agency individual"`
	Email        string    `json:"email" validate:"omitempty,email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	Rating       float64   `json:"rating" validate:"gte=0,lte=5"`
	ReviewsCount int       `json:"reviews_count" validate:"gte=0"`
	Verified     bool      `json:"verified"`
}

type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type Location struct {
	Address     string      `json:"address"`
	City        string      `json:"city" validate:"required"`
	Region      string      `json:"region"`
	PostalCode  string      `json:"postal_code"`
	Coordinates Coordinates `json:"coordinates"`
}

// Features holds the physical characteristics of a property. Nil optional
// fields are unknown and are not displayed.
type Features struct {
	Surface     float64 `json:"surface" validate:"gt=0"`
	Rooms       int     `json:"rooms" validate:"gte=0"`
	Bedrooms    int     `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int     `json:"bathrooms" validate:"gte=0"`
	Floor       *int    `json:"floor,omitempty"`
	TotalFloors *int    `json:"total_floors,omitempty"`
	YearBuilt   *int    `json:"year_built,omitempty"`
	Parking     *bool   `json:"parking,omitempty"`
	Garden      *bool   `json:"garden,omitempty"`
	Balcony     *bool   `json:"balcony,omitempty"`
	Elevator    *bool   `json:"elevator,omitempty"`
	EnergyClass string  `json:"energy_class,omitempty" validate:"energyclass"`
}

type Property struct {
	ID          string          `json:"id" validate:"required"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Price       float64         `json:"price" validate:"gt=0"`
	Type        TransactionType `json:"type" validate:"oneof=sale rent"`
	Category    Category        `json:"category" validate:"oneof=apartment house villa studio office commercial land"`
	Location    Location        `json:"location"`
	Features    Features        `json:"features"`
	Images      []string        `json:"images"`
	Agent       Agent           `json:"agent"`
	IsPremium   bool            `json:"is_premium"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Views       int             `json:"views" validate:"gte=0"`
	Favorites   int             `json:"favorites" validate:"gte=0"`
}

// Thumbnail returns the first image, or the placeholder when there is none.
func (p *Property) Thumbnail() string {
	if len(p.Images) == 0 {
		return PlaceholderImage
	}
	return p.Images[0]
}

func (p Property) clone() Property {
	if p.Images != nil {
		images := make([]string, len(p.Images))
		copy(images, p.Images)
		p.Images = images
	}
	return p
}
