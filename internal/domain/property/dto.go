package property

import "time"

// PropertyResponse is a property plus the display fields clients render.
type PropertyResponse struct {
	Property
	Thumbnail        string `json:"thumbnail"`
	Slug             string `json:"slug"`
	PriceLabel       string `json:"price_label"`
	SurfaceLabel     string `json:"surface_label"`
	TypeLabel        string `json:"type_label"`
	CategoryLabel    string `json:"category_label"`
	AgentTypeLabel   string `json:"agent_type_label"`
	ShortDescription string `json:"short_description"`
}

const shortDescriptionLength = 120

func NewPropertyResponse(p Property) PropertyResponse {
	return PropertyResponse{
		Property:         p,
		Thumbnail:        p.Thumbnail(),
		Slug:             Slug(p.Title),
		PriceLabel:       FormatPrice(p.Price),
		SurfaceLabel:     FormatSurface(p.Features.Surface),
		TypeLabel:        TransactionLabel(p.Type),
		CategoryLabel:    CategoryLabel(p.Category),
		AgentTypeLabel:   AgentTypeLabel(p.Agent.Type),
		ShortDescription: Truncate(p.Description, shortDescriptionLength),
	}
}

func NewPropertyResponses(properties []Property) []PropertyResponse {
	out := make([]PropertyResponse, len(properties))
	for i, p := range properties {
		out[i] = NewPropertyResponse(p)
	}
	return out
}

type AgentResponse struct {
	Agent
	TypeLabel     string `json:"type_label"`
	ListingsCount int    `json:"listings_count"`
}

type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ---------- LISTING DRAFTS ----------

// DraftRequest is the payload of the listing creation wizard.
type DraftRequest struct {
	Title           string   `json:"title" validate:"required,max=120"`
	Description     string   `json:"description" validate:"required"`
	Category        string   `json:"category" validate:"required,oneof=apartment house villa studio office commercial land"`
	TransactionType string   `json:"transaction_type" validate:"required,oneof=sale rent"`
	Price           float64  `json:"price" validate:"gt=0"`
	Surface         float64  `json:"surface" validate:"gt=0"`
	Rooms           int      `json:"rooms" validate:"gte=0"`
	Bedrooms        int      `json:"bedrooms" validate:"gte=0,ltefield=Rooms"`
	Bathrooms       int      `json:"bathrooms" validate:"gte=0"`
	Address         string   `json:"address" validate:"required"`
	City            string   `json:"city" validate:"required"`
	PostalCode      string   `json:"postal_code" validate:"required,numeric,len=5"`
	Features        []string `json:"features" validate:"max=16,unique,dive,required"`
	Images          []string `json:"images" validate:"max=20,dive,required"`
}

const DraftStatusReceived = "received"

// DraftReceipt acknowledges a submitted draft. Drafts are not added to the
// catalog.
type DraftReceipt struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	Title      string    `json:"title"`
	ReceivedAt time.Time `json:"received_at"`
}
