package dto

// SubmitBookingRequest is a guest's transient reservation inquiry. It is
// never persisted; its only durable trace is the notifications it triggers.
// PurposeOfStay is collected for the form but not forwarded downstream.
type SubmitBookingRequest struct {
	GuestName      string `json:"guestName"      validate:"required"`
	GuestEmail     string `json:"guestEmail"     validate:"required,email"`
	GuestPhone     string `json:"guestPhone"     validate:"required"`
	GuestWhatsapp  string `json:"guestWhatsapp"  validate:"omitempty"`
	ListingID      string `json:"listingId"      validate:"required"`
	CheckInDate    string `json:"checkInDate"    validate:"required"`
	CheckOutDate   string `json:"checkOutDate"   validate:"required"`
	NumberOfGuests int    `json:"numberOfGuests" validate:"required,gte=1,lte=8"`
	PurposeOfStay  string `json:"purposeOfStay"  validate:"omitempty"`
}

type SubmitBookingResponse struct {
	Success       bool     `json:"success"`
	WhatsappURL   string   `json:"whatsappUrl"`
	Nights        int      `json:"nights"`
	TotalPrice    float64  `json:"totalPrice"`
	PricePerNight float64  `json:"pricePerNight"`
	GuestEmailID  string   `json:"guestEmailId,omitempty"`
	AdminEmailIDs []string `json:"adminEmailIds,omitempty"`
}
