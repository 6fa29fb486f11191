package dto

// BookingNotificationRequest is the payload the notification endpoint and the
// booking flow hand to dispatch. Field names follow the client wire format.
type BookingNotificationRequest struct {
	GuestName      string  `json:"guestName"      validate:"required"`
	GuestEmail     string  `json:"guestEmail"     validate:"required,email"`
	GuestPhone     string  `json:"guestPhone"     validate:"omitempty"`
	GuestWhatsapp  string  `json:"guestWhatsapp"  validate:"omitempty"`
	ListingTitle   string  `json:"listingTitle"   validate:"required"`
	ListingID      string  `json:"listingId"      validate:"omitempty"`
	CheckInDate    string  `json:"checkInDate"    validate:"required"`
	CheckOutDate   string  `json:"checkOutDate"   validate:"required"`
	NumberOfGuests int     `json:"numberOfGuests" validate:"omitempty,gte=1"`
	TotalPrice     float64 `json:"totalPrice"     validate:"omitempty,gte=0"`
	Nights         int     `json:"nights"         validate:"omitempty,gte=0"`
	PricePerNight  float64 `json:"pricePerNight"  validate:"omitempty,gte=0"`
}

// DispatchResult carries the provider IDs of the emails that went out. On a
// partial failure it holds the IDs sent before the failing one.
type DispatchResult struct {
	GuestEmailID  string   `json:"guestEmailId,omitempty"`
	AdminEmailIDs []string `json:"adminEmailIds,omitempty"`
}

// NotificationResponse is the raw acknowledgment envelope of the
// notification endpoint.
type NotificationResponse struct {
	Success       bool     `json:"success"`
	AdminEmailIDs []string `json:"adminEmailIds,omitempty"`
	GuestEmailID  string   `json:"guestEmailId,omitempty"`
	Message       string   `json:"message,omitempty"`
	Error         string   `json:"error,omitempty"`
}
