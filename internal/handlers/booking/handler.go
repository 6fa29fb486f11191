package booking

import (
	"encoding/json"
	"net/http"

	"salama/infras/otel"
	bookingDto "salama/internal/domains/booking/model/dto"
	bookingService "salama/internal/domains/booking/service"
	notificationDto "salama/internal/domains/notification/model/dto"
	notificationService "salama/internal/domains/notification/service"
	"salama/shared/constant"
	"salama/shared/failure"
	"salama/shared/validator"
	"salama/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	booking  bookingService.Booking
	notifier notificationService.Notification
	otel     otel.Otel
}

func New(booking bookingService.Booking, notifier notificationService.Notification, otel otel.Otel) Handler {
	return Handler{
		booking:  booking,
		notifier: notifier,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", handler.SubmitBooking)
		r.Post("/notifications", handler.SendNotifications)
	})
}

// SubmitBooking handles a guest booking inquiry.
// @Summary Submit a booking inquiry
// @Description Validate the inquiry, send the notification emails and return the WhatsApp deep link.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body bookingDto.SubmitBookingRequest true "Booking Request"
// @Success 200 {object} response.Data[bookingDto.SubmitBookingResponse] "Booking submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := bookingDto.SubmitBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.booking.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking submitted successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SendNotifications is the raw notification endpoint. Its envelope predates
// the response helpers and is kept verbatim for client compatibility, so it
// writes JSON directly instead of going through response.WithJSON.
// @Summary Send booking notification emails
// @Description Send the guest confirmation and admin alert emails for a booking.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body notificationDto.BookingNotificationRequest true "Notification Request"
// @Success 200 {object} notificationDto.NotificationResponse "Emails sent successfully"
// @Failure 400 {object} notificationDto.NotificationResponse
// @Failure 500 {object} notificationDto.NotificationResponse
// @Router /v1/bookings/notifications [post]
func (handler *Handler) SendNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendNotifications")
	defer scope.End()

	req := notificationDto.BookingNotificationRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		writeNotificationResponse(w, http.StatusBadRequest, notificationDto.NotificationResponse{
			Success: false,
			Error:   "Invalid request body",
		})

		return
	}

	result, err := handler.notifier.Dispatch(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to dispatch booking notifications")

		status := http.StatusInternalServerError
		if failure.GetCode(err) == http.StatusBadRequest {
			status = http.StatusBadRequest
		}

		writeNotificationResponse(w, status, notificationDto.NotificationResponse{
			Success:       false,
			AdminEmailIDs: result.AdminEmailIDs,
			GuestEmailID:  result.GuestEmailID,
			Error:         err.Error(),
		})

		return
	}

	scope.AddEvent("Booking notifications sent successfully")

	writeNotificationResponse(w, http.StatusOK, notificationDto.NotificationResponse{
		Success:       true,
		AdminEmailIDs: result.AdminEmailIDs,
		GuestEmailID:  result.GuestEmailID,
		Message:       "Emails sent successfully",
	})
}

func writeNotificationResponse(w http.ResponseWriter, status int, res notificationDto.NotificationResponse) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error().Err(err).Msg("failed to encode notification response")
	}
}
