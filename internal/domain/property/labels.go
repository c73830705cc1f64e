package property

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PlaceholderImage stands in for a property without photos.
const PlaceholderImage = "/api/placeholder/400/300"

var categoryLabels = map[Category]string{
	CategoryApartment:  "Appartement",
	CategoryHouse:      "Maison",
	CategoryVilla:      "Villa",
	CategoryStudio:     "Studio",
	CategoryOffice:     "Bureau",
	CategoryCommercial: "Commercial",
	CategoryLand:       "Terrain",
}

var transactionLabels = map[TransactionType]string{
	TransactionSale: "Vente",
	TransactionRent: "Location",
}

var agentTypeLabels = map[AgentType]string{
	AgentAgency:     "Agence",
	AgentIndividual: "Particulier",
}

// Unknown values fall back to the raw value.
func CategoryLabel(c Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func TransactionLabel(t TransactionType) string {
	if l, ok := transactionLabels[t]; ok {
		return l
	}
	return string(t)
}

func AgentTypeLabel(t AgentType) string {
	if l, ok := agentTypeLabels[t]; ok {
		return l
	}
	return string(t)
}

// FormatPrice renders a whole-euro amount in French notation: thousands
// grouped by a narrow no-break space, then a no-break space and the sign.
func FormatPrice(price float64) string {
	grouped := humanize.Comma(int64(math.Round(price)))
	return strings.ReplaceAll(grouped, ",", "\u202f") + "\u00a0€"
}

func FormatSurface(surface float64) string {
	return humanize.Ftoa(surface) + " m²"
}

var slugFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug lower-cases, strips accents and joins alphanumeric runs with dashes.
func Slug(text string) string {
	folded, _, err := transform.String(slugFold, strings.ToLower(text))
	if err != nil {
		folded = strings.ToLower(text)
	}

	var b strings.Builder
	dash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// Truncate cuts text to at most maxLength runes and appends "...".
func Truncate(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	r := []rune(text)
	return strings.TrimSpace(string(r[:maxLength])) + "..."
}
