package property

import "slices"

// Ranking compares two properties; a negative result sorts a before b.
// Sort is always stable, so equal properties keep their catalog order.
type Ranking func(a, b *Property) int

var (
	// PremiumFirst is the default listing order: premium before regular,
	// then most recently updated first.
	PremiumFirst Ranking = premiumThenRecent

	// MostViewed orders by view count, highest first.
	MostViewed Ranking = mostViewed
)

func (r Ranking) Sort(properties []Property) {
	slices.SortStableFunc(properties, func(a, b Property) int {
		return r(&a, &b)
	})
}

func premiumThenRecent(a, b *Property) int {
	if a.IsPremium != b.IsPremium {
		if a.IsPremium {
			return -1
		}
		return 1
	}
	return b.UpdatedAt.Compare(a.UpdatedAt)
}

func mostViewed(a, b *Property) int {
	switch {
	case a.Views > b.Views:
		return -1
	case a.Views < b.Views:
		return 1
	default:
		return 0
	}
}
