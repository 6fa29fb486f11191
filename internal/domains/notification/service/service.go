package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"salama/config"
	"salama/infras/mailer"
	"salama/infras/otel"
	"salama/internal/domains/notification/model/dto"
	"salama/shared/constant"
	"salama/shared/failure"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Dispatch(ctx context.Context, req dto.BookingNotificationRequest) (dto.DispatchResult, error)
}

type serviceImpl struct {
	cfg    *config.Config
	mailer mailer.Mailer
	otel   otel.Otel
}

func New(cfg *config.Config, mailer mailer.Mailer, otel otel.Otel) Notification {
	return &serviceImpl{
		cfg:    cfg,
		mailer: mailer,
		otel:   otel,
	}
}

// Dispatch sends the guest confirmation first, then one alert per configured
// admin address. Sends are sequential with a throttle delay between admin
// sends. There is no retry and no rollback: on failure the result carries the
// IDs of the emails that already went out.
func (s *serviceImpl) Dispatch(ctx context.Context, req dto.BookingNotificationRequest) (res dto.DispatchResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dispatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.GuestName == "" || req.GuestEmail == "" || req.ListingTitle == "" ||
		req.CheckInDate == "" || req.CheckOutDate == "" {
		return res, failure.BadRequestFromString("Missing required fields")
	}

	siteURL := s.cfg.App.SiteURL
	supportNumber := s.cfg.Booking.AdminWhatsApp

	guestHTML, err := renderGuestEmail(req, siteURL, supportNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to render guest email")

		return res, err
	}

	res.GuestEmailID, err = s.mailer.Send(ctx, mailer.Email{
		To:      []string{req.GuestEmail},
		Subject: "Confirmation de votre demande - Salama",
		HTML:    guestHTML,
	})
	if err != nil {
		log.Error().Err(err).Str("guestEmail", req.GuestEmail).Msg("failed to send guest confirmation")

		return res, fmt.Errorf("failed to send guest confirmation: %w", err)
	}

	adminHTML, err := renderAdminEmail(req, siteURL, supportNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to render admin email")

		return res, err
	}

	for i, admin := range s.cfg.Booking.AdminEmails {
		// Throttle between admin sends to stay under the provider rate limit.
		if i > 0 {
			time.Sleep(time.Duration(s.cfg.Booking.SendDelaySeconds) * time.Second)
		}

		id, err := s.mailer.Send(ctx, mailer.Email{
			To:      []string{admin},
			Subject: "🏠 Nouvelle demande Salama - " + req.ListingTitle,
			HTML:    adminHTML,
			ReplyTo: req.GuestEmail,
		})
		if err != nil {
			log.Error().Err(err).Str("adminEmail", admin).Msg("failed to send admin alert")

			return res, fmt.Errorf("failed to send admin alert: %w", err)
		}

		res.AdminEmailIDs = append(res.AdminEmailIDs, id)
	}

	scope.AddEvent("Booking notifications dispatched")

	return res, nil
}
