package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salama/internal/domains/listing/model"
	"salama/internal/domains/listing/service"
)

func TestFilter(t *testing.T) {
	catalogue := []model.Listing{
		{ID: "a", Neighborhood: "Gombe", PricePerNight: 80, MaxGuests: 4},
		{ID: "b", Neighborhood: "Limete", PricePerNight: 40, MaxGuests: 2},
		{ID: "c", Neighborhood: "Gombe", PricePerNight: 120, MaxGuests: 6},
		{ID: "d", Neighborhood: "Ngaliema", PricePerNight: 55, MaxGuests: 3},
	}

	tests := []struct {
		name     string
		criteria service.FilterCriteria
		wantIDs  []string
	}{
		{
			name:     "no criteria returns everything",
			criteria: service.FilterCriteria{},
			wantIDs:  []string{"a", "b", "c", "d"},
		},
		{
			name:     "neighborhood sentinel returns everything",
			criteria: service.FilterCriteria{Neighborhood: model.NeighborhoodAll},
			wantIDs:  []string{"a", "b", "c", "d"},
		},
		{
			name:     "neighborhood match",
			criteria: service.FilterCriteria{Neighborhood: "Gombe"},
			wantIDs:  []string{"a", "c"},
		},
		{
			name:     "minimum price",
			criteria: service.FilterCriteria{MinPrice: floatPtr(60)},
			wantIDs:  []string{"a", "c"},
		},
		{
			name:     "maximum price",
			criteria: service.FilterCriteria{MaxPrice: floatPtr(60)},
			wantIDs:  []string{"b", "d"},
		},
		{
			name:     "price bound is inclusive",
			criteria: service.FilterCriteria{MinPrice: floatPtr(80), MaxPrice: floatPtr(80)},
			wantIDs:  []string{"a"},
		},
		{
			name:     "minimum guests",
			criteria: service.FilterCriteria{MinGuests: intPtr(4)},
			wantIDs:  []string{"a", "c"},
		},
		{
			name: "criteria combine conjunctively",
			criteria: service.FilterCriteria{
				Neighborhood: "Gombe",
				MaxPrice:     floatPtr(100),
				MinGuests:    intPtr(3),
			},
			wantIDs: []string{"a"},
		},
		{
			name: "no match",
			criteria: service.FilterCriteria{
				Neighborhood: "Limete",
				MinGuests:    intPtr(5),
			},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := service.Filter(catalogue, tt.criteria)

			gotIDs := make([]string, 0, len(filtered))
			for _, listing := range filtered {
				gotIDs = append(gotIDs, listing.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	catalogue := []model.Listing{
		{ID: "a", Neighborhood: "Gombe", PricePerNight: 80, MaxGuests: 4},
		{ID: "b", Neighborhood: "Limete", PricePerNight: 40, MaxGuests: 2},
	}

	service.Filter(catalogue, service.FilterCriteria{Neighborhood: "Limete"})

	assert.Equal(t, "a", catalogue[0].ID)
	assert.Equal(t, "b", catalogue[1].ID)
}

func floatPtr(f float64) *float64 {
	return &f
}

func intPtr(i int) *int {
	return &i
}
