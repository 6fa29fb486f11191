package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salama/config"
	"salama/infras/otel/mocks"
	"salama/internal/domains/booking/model/dto"
	"salama/internal/domains/booking/service"
	listingMocks "salama/internal/domains/listing/mocks"
	listingModel "salama/internal/domains/listing/model"
	notificationDto "salama/internal/domains/notification/model/dto"
	notificationMocks "salama/internal/domains/notification/mocks"
	"salama/shared/failure"
)

func TestBookingService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockListings := listingMocks.NewMockListing(ctrl)
	mockNotifier := notificationMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.AdminWhatsApp = "+1 (346) 801-2310"

	svc := service.New(mockListings, mockNotifier, cfg, mockOtel)

	activeListing := listingModel.Listing{
		ID:            "listing-id-123",
		Title:         "Appartement moderne à Gombe",
		Neighborhood:  "Gombe",
		PricePerNight: 60,
		MaxGuests:     4,
		IsActive:      true,
	}

	validReq := dto.SubmitBookingRequest{
		GuestName:      "Jean Dupont",
		GuestEmail:     "jean@example.com",
		GuestPhone:     "+243 812 345 678",
		GuestWhatsapp:  "+243812345678",
		ListingID:      "listing-id-123",
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-04",
		NumberOfGuests: 2,
		PurposeOfStay:  "Voyage d'affaires",
	}

	t.Run("successful submission recomputes price and builds whatsapp link", func(t *testing.T) {
		mockListings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeListing, nil)

		mockNotifier.EXPECT().
			Dispatch(gomock.Any(), notificationDto.BookingNotificationRequest{
				GuestName:      "Jean Dupont",
				GuestEmail:     "jean@example.com",
				GuestPhone:     "+243 812 345 678",
				GuestWhatsapp:  "+243812345678",
				ListingTitle:   "Appartement moderne à Gombe",
				ListingID:      "listing-id-123",
				CheckInDate:    "2025-06-01",
				CheckOutDate:   "2025-06-04",
				NumberOfGuests: 2,
				TotalPrice:     180,
				Nights:         3,
				PricePerNight:  60,
			}).
			Return(notificationDto.DispatchResult{
				GuestEmailID:  "guest-email-id",
				AdminEmailIDs: []string{"admin-email-id"},
			}, nil)

		res, err := svc.Submit(context.Background(), validReq)

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, float64(180), res.TotalPrice)
		assert.Equal(t, float64(60), res.PricePerNight)
		assert.Equal(t, "guest-email-id", res.GuestEmailID)
		assert.Equal(t, []string{"admin-email-id"}, res.AdminEmailIDs)
		assert.Contains(t, res.WhatsappURL, "https://wa.me/13468012310?text=")
		assert.Contains(t, res.WhatsappURL, "180")
		assert.NotContains(t, res.WhatsappURL, "+243")
	})

	t.Run("listing lookup error", func(t *testing.T) {
		mockListings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(listingModel.Listing{}, errors.New("db down"))

		_, err := svc.Submit(context.Background(), validReq)

		assert.Error(t, err)
	})

	t.Run("unknown listing", func(t *testing.T) {
		mockListings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(listingModel.Listing{}, nil)

		_, err := svc.Submit(context.Background(), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("inactive listing is indistinguishable from absent", func(t *testing.T) {
		inactive := activeListing
		inactive.IsActive = false

		mockListings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(inactive, nil)

		_, err := svc.Submit(context.Background(), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("check-out on check-in day blocks dispatch", func(t *testing.T) {
		mockListings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeListing, nil)

		req := validReq
		req.CheckOutDate = req.CheckInDate

		_, err := svc.Submit(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("malformed dates block dispatch", func(t *testing.T) {
		mockListings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeListing, nil)

		req := validReq
		req.CheckInDate = "01/06/2025"

		_, err := svc.Submit(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unexpected dispatch failure maps to bad gateway", func(t *testing.T) {
		mockListings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeListing, nil)

		mockNotifier.EXPECT().
			Dispatch(gomock.Any(), gomock.Any()).
			Return(notificationDto.DispatchResult{}, errors.New("smtp timeout"))

		_, err := svc.Submit(context.Background(), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})

	t.Run("coded dispatch failure passes through", func(t *testing.T) {
		mockListings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeListing, nil)

		mockNotifier.EXPECT().
			Dispatch(gomock.Any(), gomock.Any()).
			Return(notificationDto.DispatchResult{}, failure.BadRequestFromString("Missing required fields"))

		_, err := svc.Submit(context.Background(), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
