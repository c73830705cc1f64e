package property

import "strings"

// FeaturedLimit caps the featured selection.
const FeaturedLimit = 6

// Evaluate returns the properties matching every present criterion, ranked
// with PremiumFirst. The catalog is not modified.
func Evaluate(catalog []Property, f SearchFilters) []Property {
	out := make([]Property, 0, len(catalog))
	for i := range catalog {
		if f.Matches(&catalog[i]) {
			out = append(out, catalog[i])
		}
	}
	PremiumFirst.Sort(out)
	return out
}

// Featured returns up to FeaturedLimit premium properties, most viewed first.
func Featured(catalog []Property) []Property {
	out := make([]Property, 0, FeaturedLimit)
	for i := range catalog {
		if catalog[i].IsPremium {
			out = append(out, catalog[i])
		}
	}
	MostViewed.Sort(out)
	if len(out) > FeaturedLimit {
		out = out[:FeaturedLimit]
	}
	return out
}

// Search matches the query against title, description, city and address,
// case-insensitively, keeping catalog order. A blank query matches nothing.
//
// The field set differs from the location criterion of Evaluate (which
// checks city, region and address); both are kept as they are.
func Search(catalog []Property, query string) []Property {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []Property{}
	}

	out := make([]Property, 0)
	for i := range catalog {
		p := &catalog[i]
		if containsFold(term, p.Title, p.Description, p.Location.City, p.Location.Address) {
			out = append(out, *p)
		}
	}
	return out
}
