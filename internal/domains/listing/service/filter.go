package service

import (
	"salama/internal/domains/listing/model"
)

// FilterCriteria narrows the public catalogue. Zero values (and the
// neighborhood sentinel) mean "no constraint" for their field.
type FilterCriteria struct {
	Neighborhood string
	MinPrice     *float64
	MaxPrice     *float64
	MinGuests    *int
}

// Filter applies the criteria conjunctively and preserves the input order.
// It never mutates the input slice.
func Filter(listings []model.Listing, criteria FilterCriteria) []model.Listing {
	filtered := make([]model.Listing, 0, len(listings))

	for _, listing := range listings {
		if !matches(listing, criteria) {
			continue
		}

		filtered = append(filtered, listing)
	}

	return filtered
}

func matches(listing model.Listing, criteria FilterCriteria) bool {
	if criteria.Neighborhood != "" && criteria.Neighborhood != model.NeighborhoodAll &&
		listing.Neighborhood != criteria.Neighborhood {
		return false
	}

	if criteria.MinPrice != nil && listing.PricePerNight < *criteria.MinPrice {
		return false
	}

	if criteria.MaxPrice != nil && listing.PricePerNight > *criteria.MaxPrice {
		return false
	}

	if criteria.MinGuests != nil && listing.MaxGuests < *criteria.MinGuests {
		return false
	}

	return true
}
