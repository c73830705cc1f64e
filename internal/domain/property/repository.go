package property

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Repository persists the catalog snapshot. The service never writes to it;
// the seed command replaces the snapshot and the API loads it at startup.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

type agentModel struct {
	ID           string  `gorm:"column:id;primaryKey"`
	Name         string  `gorm:"column:name;not null"`
	Type         string  `gorm:"column:type;not null"`
	Email        string  `gorm:"column:email"`
	Phone        string  `gorm:"column:phone"`
	Company      string  `gorm:"column:company"`
	Avatar       string  `gorm:"column:avatar"`
	Rating       float64 `gorm:"column:rating"`
	ReviewsCount int     `gorm:"column:reviews_count"`
	Verified     bool    `gorm:"column:verified"`
}

func (agentModel) TableName() string { return "agents" }

// propertyModel flattens a property into one row. ListedAt and ModifiedAt
// are carried from the source record, not maintained by gorm.
type propertyModel struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Position    int       `gorm:"column:position;not null;index"`
	Title       string    `gorm:"column:title;not null"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price;not null"`
	Type        string    `gorm:"column:type;not null;index"`
	Category    string    `gorm:"column:category;not null;index"`
	Address     string    `gorm:"column:address"`
	City        string    `gorm:"column:city;index"`
	Region      string    `gorm:"column:region"`
	PostalCode  string    `gorm:"column:postal_code"`
	Lat         float64   `gorm:"column:lat"`
	Lng         float64   `gorm:"column:lng"`
	Surface     float64   `gorm:"column:surface"`
	Rooms       int       `gorm:"column:rooms"`
	Bedrooms    int       `gorm:"column:bedrooms"`
	Bathrooms   int       `gorm:"column:bathrooms"`
	Floor       *int      `gorm:"column:floor"`
	TotalFloors *int      `gorm:"column:total_floors"`
	YearBuilt   *int      `gorm:"column:year_built"`
	Parking     *bool     `gorm:"column:parking"`
	Garden      *bool     `gorm:"column:garden"`
	Balcony     *bool     `gorm:"column:balcony"`
	Elevator    *bool     `gorm:"column:elevator"`
	EnergyClass string    `gorm:"column:energy_class"`
	Images      []string  `gorm:"column:images;serializer:json"`
	AgentID     string    `gorm:"column:agent_id;not null;index"`
	IsPremium   bool      `gorm:"column:is_premium"`
	IsAvailable bool      `gorm:"column:is_available"`
	ListedAt    time.Time `gorm:"column:listed_at"`
	ModifiedAt  time.Time `gorm:"column:modified_at"`
	Views       int       `gorm:"column:views"`
	Favorites   int       `gorm:"column:favorites"`
}

func (propertyModel) TableName() string { return "properties" }

func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(&agentModel{}, &propertyModel{})
}

// LoadCatalog reads the snapshot back in insertion order.
func (r *Repository) LoadCatalog(ctx context.Context) ([]Property, error) {
	var agents []agentModel
	if err := r.db.WithContext(ctx).Find(&agents).Error; err != nil {
		return nil, fmt.Errorf("load agents: %w", err)
	}
	byID := make(map[string]Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = toDomainAgent(a)
	}

	var rows []propertyModel
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}

	out := make([]Property, 0, len(rows))
	for _, row := range rows {
		agent, ok := byID[row.AgentID]
		if !ok {
			return nil, fmt.Errorf("%w: property %q references unknown agent %q", ErrInvalidCatalog, row.ID, row.AgentID)
		}
		out = append(out, toDomainProperty(row, agent))
	}
	return out, nil
}

// ReplaceCatalog swaps the stored snapshot for properties in one transaction.
func (r *Repository) ReplaceCatalog(ctx context.Context, properties []Property) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&propertyModel{}).Error; err != nil {
			return fmt.Errorf("clear properties: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&agentModel{}).Error; err != nil {
			return fmt.Errorf("clear agents: %w", err)
		}

		seen := map[string]bool{}
		for i := range properties {
			p := &properties[i]
			if !seen[p.Agent.ID] {
				seen[p.Agent.ID] = true
				agent := toAgentModel(p.Agent)
				if err := tx.Create(&agent).Error; err != nil {
					return fmt.Errorf("insert agent %q: %w", p.Agent.ID, err)
				}
			}

			row := toPropertyModel(p, i)
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("insert property %q: %w", p.ID, err)
			}
		}
		return nil
	})
}

func toDomainAgent(m agentModel) Agent {
	return Agent{
		ID:           m.ID,
		Name:         m.Name,
		Type:         AgentType(m.Type),
		Email:        m.Email,
		Phone:        m.Phone,
		Company:      m.Company,
		Avatar:       m.Avatar,
		Rating:       m.Rating,
		ReviewsCount: m.ReviewsCount,
		Verified:     m.Verified,
	}
}

func toAgentModel(a Agent) agentModel {
	return agentModel{
		ID:           a.ID,
		Name:         a.Name,
		Type:         string(a.Type),
		Email:        a.Email,
		Phone:        a.Phone,
		Company:      a.Company,
		Avatar:       a.Avatar,
		Rating:       a.Rating,
		ReviewsCount: a.ReviewsCount,
		Verified:     a.Verified,
	}
}

func toDomainProperty(m propertyModel, agent Agent) Property {
	images := m.Images
	if images == nil {
		images = []string{}
	}
	return Property{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Type:        TransactionType(m.Type),
		Category:    Category(m.Category),
		Location: Location{
			Address:     m.Address,
			City:        m.City,
			Region:      m.Region,
			PostalCode:  m.PostalCode,
			Coordinates: Coordinates{Lat: m.Lat, Lng: m.Lng},
		},
		Features: Features{
			Surface:     m.Surface,
			Rooms:       m.Rooms,
			Bedrooms:    m.Bedrooms,
			Bathrooms:   m.Bathrooms,
			Floor:       m.Floor,
			TotalFloors: m.TotalFloors,
			YearBuilt:   m.YearBuilt,
			Parking:     m.Parking,
			Garden:      m.Garden,
			Balcony:     m.Balcony,
			Elevator:    m.Elevator,
			EnergyClass: m.EnergyClass,
		},
		Images:      images,
		Agent:       agent,
		IsPremium:   m.IsPremium,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.ListedAt.UTC(),
		UpdatedAt:   m.ModifiedAt.UTC(),
		Views:       m.Views,
		Favorites:   m.Favorites,
	}
}

func toPropertyModel(p *Property, position int) propertyModel {
	return propertyModel{
		ID:          p.ID,
		Position:    position,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Type:        string(p.Type),
		Category:    string(p.Category),
		Address:     p.Location.Address,
		City:        p.Location.City,
		Region:      p.Location.Region,
		PostalCode:  p.Location.PostalCode,
		Lat:         p.Location.Coordinates.Lat,
		Lng:         p.Location.Coordinates.Lng,
		Surface:     p.Features.Surface,
		Rooms:       p.Features.Rooms,
		Bedrooms:    p.Features.Bedrooms,
		Bathrooms:   p.Features.Bathrooms,
		Floor:       p.Features.Floor,
		TotalFloors: p.Features.TotalFloors,
		YearBuilt:   p.Features.YearBuilt,
		Parking:     p.Features.Parking,
		Garden:      p.Features.Garden,
		Balcony:     p.Features.Balcony,
		Elevator:    p.Features.Elevator,
		EnergyClass: p.Features.EnergyClass,
		Images:      p.Images,
		AgentID:     p.Agent.ID,
		IsPremium:   p.IsPremium,
		IsAvailable: p.IsAvailable,
		ListedAt:    p.CreatedAt,
		ModifiedAt:  p.UpdatedAt,
		Views:       p.Views,
		Favorites:   p.Favorites,
	}
}
