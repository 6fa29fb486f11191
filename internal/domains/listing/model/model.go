package model

import (
	"salama/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "listings"
	EntityName = "listing"

	FieldID            = "id"
	FieldTitle         = "title"
	FieldNeighborhood  = "neighborhood"
	FieldDescription   = "description"
	FieldPricePerNight = "price_per_night"
	FieldPricePerWeek  = "price_per_week"
	FieldMaxGuests     = "max_guests"
	FieldAmenities     = "amenities"
	FieldPhotos        = "photos"
	FieldVideos        = "videos"
	FieldIsActive      = "is_active"
	FieldIsVerified    = "is_verified"
	FieldInternalNotes = "internal_notes"
)

// NeighborhoodAll is the sentinel the public filter uses for "no
// neighborhood constraint".
const NeighborhoodAll = "Tous"

// Neighborhoods enumerates the 24 communes of Kinshasa.
var Neighborhoods = []string{
	"Bandalungwa", "Barumbu", "Bumbu", "Gombe", "Kalamu", "Kasa-Vubu",
	"Kimbanseke", "Kinshasa", "Kintambo", "Kisenso", "Lemba", "Limete",
	"Lingwala", "Makala", "Maluku", "Masina", "Matete", "Mont-Ngafula",
	"Ndjili", "Ngaba", "Ngaliema", "Ngiri-Ngiri", "Nsele", "Selembao",
}

// Amenities enumerates the amenity tags a listing may carry.
var Amenities = []string{
	"Wi-Fi", "AC", "Generator", "Water", "Security", "Parking", "Kitchen", "TV",
}

type Listing struct {
	ID            string         `db:"id"`
	Title         string         `db:"title"`
	Neighborhood  string         `db:"neighborhood"`
	Description   string         `db:"description"`
	PricePerNight float64        `db:"price_per_night"`
	PricePerWeek  float64        `db:"price_per_week"`
	MaxGuests     int            `db:"max_guests"`
	Amenities     pq.StringArray `db:"amenities"`
	Photos        pq.StringArray `db:"photos"`
	Videos        pq.StringArray `db:"videos"`
	IsActive      bool           `db:"is_active"`
	IsVerified    bool           `db:"is_verified"`
	InternalNotes *string        `db:"internal_notes"`
	model.Metadata
}
