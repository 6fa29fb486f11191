package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"salama/config"
	"salama/infras/mailer"
	mailerMocks "salama/infras/mailer/mocks"
	"salama/infras/otel/mocks"
	"salama/internal/domains/notification/model/dto"
	"salama/internal/domains/notification/service"
	"salama/shared/failure"
)

func newConfig(admins ...string) *config.Config {
	cfg := &config.Config{}
	cfg.App.SiteURL = "https://salama.example.com"
	cfg.Booking.AdminEmails = admins
	cfg.Booking.AdminWhatsApp = "+13468012310"
	cfg.Booking.SendDelaySeconds = 0

	return cfg
}

func validRequest() dto.BookingNotificationRequest {
	return dto.BookingNotificationRequest{
		GuestName:      "Jean Dupont",
		GuestEmail:     "jean@example.com",
		GuestPhone:     "+243812345678",
		GuestWhatsapp:  "+243812345678",
		ListingTitle:   "Appartement moderne à Gombe",
		ListingID:      "listing-id-123",
		CheckInDate:    "2025-06-01",
		CheckOutDate:   "2025-06-04",
		NumberOfGuests: 2,
		TotalPrice:     180,
		Nights:         3,
		PricePerNight:  60,
	}
}

func TestNotificationService_Dispatch(t *testing.T) {
	t.Run("guest confirmation goes out before admin alerts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		mockOtel := mocks.NewOtel()

		svc := service.New(newConfig("admin1@example.com", "admin2@example.com"), mockMailer, mockOtel)

		guestSend := mockMailer.EXPECT().
			Send(gomock.Any(), emailTo("jean@example.com")).
			Return("guest-email-id", nil)

		firstAdmin := mockMailer.EXPECT().
			Send(gomock.Any(), emailTo("admin1@example.com")).
			Return("admin-email-id-1", nil).
			After(guestSend)

		mockMailer.EXPECT().
			Send(gomock.Any(), emailTo("admin2@example.com")).
			Return("admin-email-id-2", nil).
			After(firstAdmin)

		res, err := svc.Dispatch(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "guest-email-id", res.GuestEmailID)
		assert.Equal(t, []string{"admin-email-id-1", "admin-email-id-2"}, res.AdminEmailIDs)
	})

	t.Run("missing field blocks every send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		mockOtel := mocks.NewOtel()

		svc := service.New(newConfig("admin1@example.com"), mockMailer, mockOtel)

		req := validRequest()
		req.GuestEmail = ""

		_, err := svc.Dispatch(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, "Missing required fields", err.Error())
	})

	t.Run("guest send failure stops before admin alerts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		mockOtel := mocks.NewOtel()

		svc := service.New(newConfig("admin1@example.com"), mockMailer, mockOtel)

		mockMailer.EXPECT().
			Send(gomock.Any(), emailTo("jean@example.com")).
			Return("", errors.New("provider down"))

		res, err := svc.Dispatch(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Empty(t, res.GuestEmailID)
		assert.Empty(t, res.AdminEmailIDs)
	})

	t.Run("admin send failure keeps the ids already issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		mockOtel := mocks.NewOtel()

		svc := service.New(newConfig("admin1@example.com", "admin2@example.com"), mockMailer, mockOtel)

		gomock.InOrder(
			mockMailer.EXPECT().
				Send(gomock.Any(), emailTo("jean@example.com")).
				Return("guest-email-id", nil),
			mockMailer.EXPECT().
				Send(gomock.Any(), emailTo("admin1@example.com")).
				Return("admin-email-id-1", nil),
			mockMailer.EXPECT().
				Send(gomock.Any(), emailTo("admin2@example.com")).
				Return("", errors.New("provider down")),
		)

		res, err := svc.Dispatch(context.Background(), validRequest())

		assert.Error(t, err)
		assert.Equal(t, "guest-email-id", res.GuestEmailID)
		assert.Equal(t, []string{"admin-email-id-1"}, res.AdminEmailIDs)
	})

	t.Run("admin alert carries guest reply-to and listing subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		mockOtel := mocks.NewOtel()

		svc := service.New(newConfig("admin1@example.com"), mockMailer, mockOtel)

		var adminEmail mailer.Email

		gomock.InOrder(
			mockMailer.EXPECT().
				Send(gomock.Any(), gomock.Any()).
				Return("guest-email-id", nil),
			mockMailer.EXPECT().
				Send(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, email mailer.Email) (string, error) {
					adminEmail = email

					return "admin-email-id-1", nil
				}),
		)

		_, err := svc.Dispatch(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "jean@example.com", adminEmail.ReplyTo)
		assert.Contains(t, adminEmail.Subject, "Appartement moderne à Gombe")
		assert.Contains(t, adminEmail.HTML, "Jean Dupont")
		assert.Contains(t, adminEmail.HTML, "3 nuits")
		assert.Contains(t, adminEmail.HTML, "180")
	})

	t.Run("no configured admins still confirms the guest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockMailer := mailerMocks.NewMockMailer(ctrl)
		mockOtel := mocks.NewOtel()

		svc := service.New(newConfig(), mockMailer, mockOtel)

		mockMailer.EXPECT().
			Send(gomock.Any(), emailTo("jean@example.com")).
			Return("guest-email-id", nil)

		res, err := svc.Dispatch(context.Background(), validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "guest-email-id", res.GuestEmailID)
		assert.Empty(t, res.AdminEmailIDs)
	})
}

// emailTo matches any email addressed to the given recipient.
func emailTo(recipient string) gomock.Matcher {
	return emailToMatcher{recipient: recipient}
}

type emailToMatcher struct {
	recipient string
}

func (m emailToMatcher) Matches(x any) bool {
	email, ok := x.(mailer.Email)
	if !ok {
		return false
	}

	return len(email.To) == 1 && email.To[0] == m.recipient
}

func (m emailToMatcher) String() string {
	return "email addressed to " + m.recipient
}
