package property

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed catalog_seed.yaml
var defaultSeed []byte

type seedDocument struct {
	Agents     []seedAgent    `yaml:"agents"`
	Properties []seedProperty `yaml:"properties"`
}

type seedAgent struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Type         string  `yaml:"type"`
	Email        string  `yaml:"email"`
	Phone        string  `yaml:"phone"`
	Company      string  `yaml:"company"`
	Avatar       string  `yaml:"avatar"`
	Rating       float64 `yaml:"rating"`
	ReviewsCount int     `yaml:"reviews_count"`
	Verified     bool    `yaml:"verified"`
}

type seedProperty struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Type        string  `yaml:"type"`
	Category    string  `yaml:"category"`
	Location    struct {
		Address    string  `yaml:"address"`
		City       string  `yaml:"city"`
		Region     string  `yaml:"region"`
		PostalCode string  `yaml:"postal_code"`
		Lat        float64 `yaml:"lat"`
		Lng        float64 `yaml:"lng"`
	} `yaml:"location"`
	Features struct {
		Surface     float64 `yaml:"surface"`
		Rooms       int     `yaml:"rooms"`
		Bedrooms    int     `yaml:"bedrooms"`
		Bathrooms   int     `yaml:"bathrooms"`
		Floor       *int    `yaml:"floor"`
		TotalFloors *int    `yaml:"total_floors"`
		YearBuilt   *int    `yaml:"year_built"`
		Parking     *bool   `yaml:"parking"`
		Garden      *bool   `yaml:"garden"`
		Balcony     *bool   `yaml:"balcony"`
		Elevator    *bool   `yaml:"elevator"`
		EnergyClass string  `yaml:"energy_class"`
	} `yaml:"features"`
	Images    []string `yaml:"images"`
	Agent     string   `yaml:"agent"`
	Premium   bool     `yaml:"premium"`
	Available bool     `yaml:"available"`
	CreatedAt string   `yaml:"created_at"`
	UpdatedAt string   `yaml:"updated_at"`
	Views     int      `yaml:"views"`
	Favorites int      `yaml:"favorites"`
}

// DefaultCatalog decodes the built-in reference catalog.
func DefaultCatalog() ([]Property, error) {
	return ParseCatalog(defaultSeed)
}

// ParseCatalog decodes a YAML catalog document. Properties reference agents
// by id; timestamps are either dates (2006-01-02) or RFC 3339.
func ParseCatalog(data []byte) ([]Property, error) {
	var doc seedDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	agents := make(map[string]Agent, len(doc.Agents))
	for _, a := range doc.Agents {
		if _, dup := agents[a.ID]; dup {
			return nil, fmt.Errorf("agent %q: duplicate id", a.ID)
		}
		agents[a.ID] = Agent{
			ID:           a.ID,
			Name:         a.Name,
			Type:         AgentType(a.Type),
			Email:        a.Email,
			Phone:        a.Phone,
			Company:      a.Company,
			Avatar:       a.Avatar,
			Rating:       a.Rating,
			ReviewsCount: a.ReviewsCount,
			Verified:     a.Verified,
		}
	}

	out := make([]Property, 0, len(doc.Properties))
	for _, sp := range doc.Properties {
		agent, ok := agents[sp.Agent]
		if !ok {
			return nil, fmt.Errorf("property %q: unknown agent %q", sp.ID, sp.Agent)
		}
		createdAt, err := parseSeedTime(sp.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("property %q: created_at: %w", sp.ID, err)
		}
		updatedAt, err := parseSeedTime(sp.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("property %q: updated_at: %w", sp.ID, err)
		}

		images := sp.Images
		if images == nil {
			images = []string{}
		}

		out = append(out, Property{
			ID:          sp.ID,
			Title:       sp.Title,
			Description: sp.Description,
			Price:       sp.Price,
			Type:        TransactionType(sp.Type),
			Category:    Category(sp.Category),
			Location: Location{
				Address:     sp.Location.Address,
				City:        sp.Location.City,
				Region:      sp.Location.Region,
				PostalCode:  sp.Location.PostalCode,
				Coordinates: Coordinates{Lat: sp.Location.Lat, Lng: sp.Location.Lng},
			},
			Features: Features{
				Surface:     sp.Features.Surface,
				Rooms:       sp.Features.Rooms,
				Bedrooms:    sp.Features.Bedrooms,
				Bathrooms:   sp.Features.Bathrooms,
				Floor:       sp.Features.Floor,
				TotalFloors: sp.Features.TotalFloors,
				YearBuilt:   sp.Features.YearBuilt,
				Parking:     sp.Features.Parking,
				Garden:      sp.Features.Garden,
				Balcony:     sp.Features.Balcony,
				Elevator:    sp.Features.Elevator,
				EnergyClass: sp.Features.EnergyClass,
			},
			Images:      images,
			Agent:       agent,
			IsPremium:   sp.Premium,
			IsAvailable: sp.Available,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
			Views:       sp.Views,
			Favorites:   sp.Favorites,
		})
	}

	return out, nil
}

func parseSeedTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
