package dto

import (
	"mime/multipart"

	"salama/internal/domains/listing/model"
	"salama/shared"
	gDto "salama/shared/dto"
	gModel "salama/shared/model"
	"salama/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateListingRequest struct {
	Title         string   `json:"title"           validate:"required"`
	Neighborhood  string   `json:"neighborhood"    validate:"required"`
	Description   string   `json:"description"     validate:"omitempty"`
	PricePerNight float64  `json:"price_per_night" validate:"gte=0"`
	PricePerWeek  float64  `json:"price_per_week"  validate:"gte=0"`
	MaxGuests     int      `json:"max_guests"      validate:"required,gte=1"`
	Amenities     []string `json:"amenities"       validate:"omitempty"`
	Photos        []string `json:"photos"          validate:"omitempty,dive,url"`
	Videos        []string `json:"videos"          validate:"omitempty,dive,url"`
	IsActive      *bool    `json:"is_active,omitempty"`
	IsVerified    *bool    `json:"is_verified,omitempty"`
	InternalNotes *string  `json:"internal_notes,omitempty"`
}

func (r *CreateListingRequest) ToModel(username string) model.Listing {
	// New listings default to publicly visible and unverified.
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	isVerified := false
	if r.IsVerified != nil {
		isVerified = *r.IsVerified
	}

	return model.Listing{
		ID:            uuid.NewString(),
		Title:         r.Title,
		Neighborhood:  r.Neighborhood,
		Description:   r.Description,
		PricePerNight: r.PricePerNight,
		PricePerWeek:  r.PricePerWeek,
		MaxGuests:     r.MaxGuests,
		Amenities:     pq.StringArray(r.Amenities),
		Photos:        pq.StringArray(r.Photos),
		Videos:        pq.StringArray(r.Videos),
		IsActive:      isActive,
		IsVerified:    isVerified,
		InternalNotes: r.InternalNotes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateListingRequest struct {
	Title         *string         `db:"title"           json:"title,omitempty"`
	Neighborhood  *string         `db:"neighborhood"    json:"neighborhood,omitempty"`
	Description   *string         `db:"description"     json:"description,omitempty"`
	PricePerNight *float64        `db:"price_per_night" json:"price_per_night,omitempty" validate:"omitempty,gte=0"`
	PricePerWeek  *float64        `db:"price_per_week"  json:"price_per_week,omitempty"  validate:"omitempty,gte=0"`
	MaxGuests     *int            `db:"max_guests"      json:"max_guests,omitempty"      validate:"omitempty,gte=1"`
	Amenities     *pq.StringArray `db:"amenities"       json:"amenities,omitempty"`
	Photos        *pq.StringArray `db:"photos"          json:"photos,omitempty"`
	Videos        *pq.StringArray `db:"videos"          json:"videos,omitempty"`
	IsActive      *bool           `db:"is_active"       json:"is_active,omitempty"`
	IsVerified    *bool           `db:"is_verified"     json:"is_verified,omitempty"`
	InternalNotes *string         `db:"internal_notes"  json:"internal_notes,omitempty"`
}

// ListingResponse is the public shape of a listing. Internal notes are
// deliberately absent; they never leave the admin surface.
type ListingResponse struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Neighborhood  string   `json:"neighborhood"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"price_per_night"`
	PricePerWeek  float64  `json:"price_per_week"`
	MaxGuests     int      `json:"max_guests"`
	Amenities     []string `json:"amenities"`
	Photos        []string `json:"photos"`
	Videos        []string `json:"videos"`
	IsVerified    bool     `json:"is_verified"`
}

func (r *ListingResponse) FromModel(mod model.Listing) {
	r.ID = mod.ID
	r.Title = mod.Title
	r.Neighborhood = mod.Neighborhood
	r.Description = mod.Description
	r.PricePerNight = mod.PricePerNight
	r.PricePerWeek = mod.PricePerWeek
	r.MaxGuests = mod.MaxGuests
	r.Amenities = mod.Amenities
	r.Photos = mod.Photos
	r.Videos = mod.Videos
	r.IsVerified = mod.IsVerified
}

type GetListingsResponse struct {
	Listings []ListingResponse `json:"listings"`
	Total    int               `json:"total"`
}

func (r *GetListingsResponse) FromModels(models []model.Listing) {
	r.Listings = make([]ListingResponse, len(models))
	for i, mod := range models {
		r.Listings[i].FromModel(mod)
	}

	r.Total = len(models)
}

// AdminListingResponse carries everything the public shape does plus the
// operator-only fields.
type AdminListingResponse struct {
	ListingResponse
	IsActive      bool    `json:"is_active"`
	InternalNotes *string `json:"internal_notes,omitempty"`
	gDto.Metadata
}

func (r *AdminListingResponse) FromModel(mod model.Listing) {
	r.ListingResponse.FromModel(mod)
	r.IsActive = mod.IsActive
	r.InternalNotes = mod.InternalNotes
	r.Metadata.FromModel(mod.Metadata)
}

type GetAdminListingsResponse struct {
	Listings  []AdminListingResponse `json:"listings"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetAdminListingsResponse) FromModels(models []model.Listing, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Listings = make([]AdminListingResponse, len(models))
	for i, mod := range models {
		r.Listings[i].FromModel(mod)
	}
}

type CreateListingResponse struct {
	ID string `json:"id"`
}

// StatsResponse backs the admin dashboard counters.
type StatsResponse struct {
	TotalListings    int `json:"total_listings"`
	ActiveListings   int `json:"active_listings"`
	VerifiedListings int `json:"verified_listings"`
}

type UploadMediaRequest struct {
	File     *multipart.FileHeader `json:"file" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp video/mp4 video/quicktime,maxfilesize=10"`
	FileData multipart.File        `json:"-"`
}

type MediaUploadResponse struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}
