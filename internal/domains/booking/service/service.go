package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"salama/config"
	"salama/infras/otel"
	"salama/internal/domains/booking/model/dto"
	listingModel "salama/internal/domains/listing/model"
	listingRepo "salama/internal/domains/listing/repository"
	notificationDto "salama/internal/domains/notification/model/dto"
	notificationService "salama/internal/domains/notification/service"
	"salama/shared"
	"salama/shared/constant"
	"salama/shared/failure"
	"salama/shared/whatsapp"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.SubmitBookingResponse, error)
}

type serviceImpl struct {
	listings listingRepo.Listing
	notifier notificationService.Notification
	cfg      *config.Config
	otel     otel.Otel
}

func New(listings listingRepo.Listing, notifier notificationService.Notification, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		listings: listings,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
	}
}

// Submit validates the inquiry, recomputes the stay price from the stored
// nightly rate, dispatches the notification emails and hands back the
// WhatsApp deep link the client opens for immediate contact. Nothing is
// persisted; a resubmission sends a second, independent set of emails.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	listing, err := s.listings.Get(ctx, shared.FilterByID(req.ListingID, listingModel.FieldID, listingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get listing")

		return res, fmt.Errorf("failed to get listing: %w", err)
	}

	if listing.ID == "" || !listing.IsActive {
		return res, failure.NotFound("listing not found")
	}

	nights := Nights(req.CheckInDate, req.CheckOutDate)
	if nights < 1 {
		return res, failure.BadRequestFromString("check-out date must be after check-in date")
	}

	// Price is always recomputed from the stored rate; client-supplied
	// amounts are never trusted.
	total := Total(nights, listing.PricePerNight)

	result, err := s.notifier.Dispatch(ctx, notificationDto.BookingNotificationRequest{
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		GuestWhatsapp:  req.GuestWhatsapp,
		ListingTitle:   listing.Title,
		ListingID:      listing.ID,
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     total,
		Nights:         nights,
		PricePerNight:  listing.PricePerNight,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to dispatch booking notifications")

		if failure.GetCode(err) != http.StatusInternalServerError {
			return res, err
		}

		return res, failure.BadGateway("failed to send booking notifications")
	}

	scope.AddEvent("Booking notifications dispatched")

	return dto.SubmitBookingResponse{
		Success:       true,
		WhatsappURL:   s.buildWhatsAppLink(listing, req, total),
		Nights:        nights,
		TotalPrice:    total,
		PricePerNight: listing.PricePerNight,
		GuestEmailID:  result.GuestEmailID,
		AdminEmailIDs: result.AdminEmailIDs,
	}, nil
}

func (s *serviceImpl) buildWhatsAppLink(listing listingModel.Listing, req dto.SubmitBookingRequest, total float64) string {
	message := fmt.Sprintf(`Bonjour! Je viens de soumettre une demande de réservation via le site.

Logement: %s
Dates: %s → %s
Personnes: %d
Total: $%s

J'attends votre confirmation. Merci!`,
		listing.Title, req.CheckInDate, req.CheckOutDate, req.NumberOfGuests,
		strconv.FormatFloat(total, 'f', -1, 64))

	return whatsapp.Link(s.cfg.Booking.AdminWhatsApp, message)
}
