package property

import (
	"math"
	"strconv"
	"strings"
)

// SearchFilters is the criteria of a catalog query. A nil field imposes no
// constraint; a non-nil zero is a real constraint (PriceMin = 0 is valid).
type SearchFilters struct {
	Type       *TransactionType
	Category   *Category
	PriceMin   *float64
	PriceMax   *float64
	SurfaceMin *float64
	SurfaceMax *float64
	Rooms      *int
	Bedrooms   *int
	Location   *string
}

// Ptr returns a pointer to v, for building filters inline.
func Ptr[T any](v T) *T {
	return &v
}

// Matches reports whether p satisfies every present constraint.
func (f SearchFilters) Matches(p *Property) bool {
	if f.Type != nil && p.Type != *f.Type {
		return false
	}
	if f.Category != nil && p.Category != *f.Category {
		return false
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	if f.SurfaceMin != nil && p.Features.Surface < *f.SurfaceMin {
		return false
	}
	if f.SurfaceMax != nil && p.Features.Surface > *f.SurfaceMax {
		return false
	}
	if f.Rooms != nil && p.Features.Rooms < *f.Rooms {
		return false
	}
	if f.Bedrooms != nil && p.Features.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.Location != nil {
		term := strings.ToLower(*f.Location)
		if !containsFold(term, p.Location.City, p.Location.Region, p.Location.Address) {
			return false
		}
	}
	return true
}

// Params encodes the present constraints using the query parameter names.
// Absent fields are left out, so {} and {priceMin: 0} differ.
func (f SearchFilters) Params() map[string]string {
	params := map[string]string{}
	if f.Type != nil {
		params[ParamType] = string(*f.Type)
	}
	if f.Category != nil {
		params[ParamCategory] = string(*f.Category)
	}
	putFloat(params, ParamPriceMin, f.PriceMin)
	putFloat(params, ParamPriceMax, f.PriceMax)
	putFloat(params, ParamSurfaceMin, f.SurfaceMin)
	putFloat(params, ParamSurfaceMax, f.SurfaceMax)
	putInt(params, ParamRooms, f.Rooms)
	putInt(params, ParamBedrooms, f.Bedrooms)
	if f.Location != nil {
		params[ParamLocation] = *f.Location
	}
	return params
}

const (
	ParamType       = "type"
	ParamCategory   = "category"
	ParamPriceMin   = "priceMin"
	ParamPriceMax   = "priceMax"
	ParamSurfaceMin = "surfaceMin"
	ParamSurfaceMax = "surfaceMax"
	ParamRooms      = "rooms"
	ParamBedrooms   = "bedrooms"
	ParamLocation   = "location"
)

// ParseFilters maps query parameters onto criteria. Missing or empty
// parameters stay absent; malformed ones are reported per parameter.
func ParseFilters(get func(string) string) (SearchFilters, map[string]string) {
	var f SearchFilters
	errs := map[string]string{}

	if v := strings.TrimSpace(get(ParamType)); v != "" {
		t, err := ParseTransactionType(v)
		if err != nil {
			errs[ParamType] = "must be one of: sale, rent"
		} else {
			f.Type = Ptr(t)
		}
	}
	if v := strings.TrimSpace(get(ParamCategory)); v != "" {
		c, err := ParseCategory(v)
		if err != nil {
			errs[ParamCategory] = "unknown category"
		} else {
			f.Category = Ptr(c)
		}
	}

	f.PriceMin = parseFloatParam(get, ParamPriceMin, errs)
	f.PriceMax = parseFloatParam(get, ParamPriceMax, errs)
	f.SurfaceMin = parseFloatParam(get, ParamSurfaceMin, errs)
	f.SurfaceMax = parseFloatParam(get, ParamSurfaceMax, errs)
	f.Rooms = parseIntParam(get, ParamRooms, errs)
	f.Bedrooms = parseIntParam(get, ParamBedrooms, errs)

	if v := strings.TrimSpace(get(ParamLocation)); v != "" {
		f.Location = Ptr(v)
	}

	if len(errs) == 0 {
		return f, nil
	}
	return f, errs
}

func parseFloatParam(get func(string) string, name string, errs map[string]string) *float64 {
	raw := strings.TrimSpace(get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		errs[name] = "must be a non-negative number"
		return nil
	}
	return &v
}

func parseIntParam(get func(string) string, name string, errs map[string]string) *int {
	raw := strings.TrimSpace(get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		errs[name] = "must be a non-negative integer"
		return nil
	}
	return &v
}

func putFloat(params map[string]string, name string, v *float64) {
	if v != nil {
		params[name] = strconv.FormatFloat(*v, 'f', -1, 64)
	}
}

func putInt(params map[string]string, name string, v *int) {
	if v != nil {
		params[name] = strconv.Itoa(*v)
	}
}

// containsFold reports whether any field contains the already lower-cased term.
func containsFold(term string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
