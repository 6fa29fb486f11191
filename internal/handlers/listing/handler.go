package listing

import (
	"net/http"
	"strconv"

	"salama/infras/otel"
	"salama/internal/domains/listing/model"
	"salama/internal/domains/listing/model/dto"
	"salama/internal/domains/listing/service"
	"salama/shared"
	"salama/shared/constant"
	gDto "salama/shared/dto"
	"salama/shared/validator"
	"salama/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	requestParamNeighborhood = "neighborhood"
	requestParamMinPrice     = "min_price"
	requestParamMaxPrice     = "max_price"
	requestParamMinGuests    = "min_guests"
)

type Handler struct {
	service service.Listing
	otel    otel.Otel
}

func New(service service.Listing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/listings", func(r chi.Router) {
		r.Get("/", handler.GetListings)
		r.Get("/{id}", handler.GetListingByID)
	})

	r.Route("/admin/listings", func(r chi.Router) {
		r.Get("/", handler.GetAdminListings)
		r.Get("/stats", handler.GetStats)
		r.Post("/", handler.CreateListing)
		r.Get("/{id}", handler.GetAdminListingByID)
		r.Patch("/{id}", handler.UpdateListing)
		r.Delete("/{id}", handler.DeleteListing)
		r.Post("/{id}/media", handler.UploadMedia)
	})
}

// GetListings retrieves the public catalogue of active listings.
// @Summary Get active listings
// @Description Retrieve active listings, optionally narrowed by neighborhood, price range and occupancy.
// @Tags Listing
// @Accept json
// @Produce json
// @Param neighborhood query string false "Neighborhood (\"Tous\" = all)"
// @Param min_price query number false "Minimum nightly price"
// @Param max_price query number false "Maximum nightly price"
// @Param min_guests query integer false "Minimum guest capacity"
// @Success 200 {object} response.Data[dto.GetListingsResponse] "List of active listings"
// @Failure 500 {object} response.Error
// @Router /v1/listings [get]
func (handler *Handler) GetListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListings")
	defer scope.End()

	criteria := service.FilterCriteria{
		Neighborhood: r.URL.Query().Get(requestParamNeighborhood),
	}

	if raw := r.URL.Query().Get(requestParamMinPrice); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MinPrice = &v
		}
	}

	if raw := r.URL.Query().Get(requestParamMaxPrice); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			criteria.MaxPrice = &v
		}
	}

	if raw := r.URL.Query().Get(requestParamMinGuests); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			criteria.MinGuests = &v
		}
	}

	listings, err := handler.service.GetActive(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listings retrieved successfully")

	response.WithJSON(w, http.StatusOK, listings)
}

// GetListingByID retrieves an active listing by its ID.
// @Summary Get a listing by ID
// @Description Retrieve a single active listing.
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.ListingResponse] "Listing details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id} [get]
func (handler *Handler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	listing, err := handler.service.GetPublic(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listing by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing retrieved successfully")

	response.WithJSON(w, http.StatusOK, listing)
}

// GetAdminListings retrieves all listings including inactive ones.
// @Summary Get all listings
// @Description Retrieve all listings with optional filtering and pagination.
// @Tags Listing
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param neighborhood query string false "Filter by neighborhood"
// @Param is_active query boolean false "Filter by active status"
// @Param is_verified query boolean false "Filter by verified status"
// @Success 200 {object} response.Data[dto.GetAdminListingsResponse] "List of listings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/listings [get]
// @Security BearerAuth
func (handler *Handler) GetAdminListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdminListings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filters := []any{
		gDto.Filter{
			Field:    model.FieldNeighborhood,
			Operator: gDto.FilterOperatorEq,
			Value:    r.URL.Query().Get(model.FieldNeighborhood),
			Table:    model.TableName,
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	if verified := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsVerified)); verified != nil {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldIsVerified,
			Operator: gDto.FilterOperatorEq,
			Value:    *verified,
			Table:    model.TableName,
		})
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}

	listings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listings retrieved successfully")

	response.WithJSON(w, http.StatusOK, listings)
}

// GetStats retrieves the dashboard counters.
// @Summary Get listing stats
// @Description Retrieve total, active and verified listing counts.
// @Tags Listing
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.StatsResponse] "Listing stats"
// @Failure 500 {object} response.Error
// @Router /v1/admin/listings/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listing stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// GetAdminListingByID retrieves a listing with operator-only fields.
// @Summary Get a listing by ID (admin)
// @Description Retrieve a single listing including internal notes and metadata.
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.AdminListingResponse] "Listing details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/listings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAdminListingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdminListingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	listing, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listing by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing retrieved successfully")

	response.WithJSON(w, http.StatusOK, listing)
}

// CreateListing handles the creation of a new listing.
// @Summary Create a new listing
// @Description Create a new listing with the provided details.
// @Tags Listing
// @Accept json
// @Produce json
// @Param request body dto.CreateListingRequest true "Create Listing Request"
// @Success 201 {object} response.Data[dto.CreateListingResponse] "Listing created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/listings [post]
// @Security BearerAuth
func (handler *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateListing")
	defer scope.End()

	req := dto.CreateListingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create listing")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateListing updates an existing listing by its ID.
// @Summary Update a listing by ID
// @Description Partially update an existing listing.
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body dto.UpdateListingRequest true "Update Listing Request"
// @Success 200 {object} response.Message "Listing updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/listings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateListing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateListingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update listing")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing updated successfully")

	response.WithMessage(w, http.StatusOK, "Listing updated successfully")
}

// DeleteListing deletes a listing by its ID.
// @Summary Delete a listing by ID
// @Description Delete a listing permanently.
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Message "Listing deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/listings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteListing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete listing")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing deleted successfully")

	response.WithMessage(w, http.StatusOK, "Listing deleted successfully")
}

// UploadMedia uploads a photo or video for a listing.
// @Summary Upload listing media
// @Description Upload a media file for a listing; the returned URL is appended client-side via update.
// @Tags Listing
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Listing ID (or temp id for drafts)"
// @Param file formData file true "Media file"
// @Success 200 {object} response.Data[dto.MediaUploadResponse] "Media uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/listings/{id}/media [post]
// @Security BearerAuth
func (handler *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadMedia")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.UploadMediaRequest{}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.File = fileHeader
		req.FileData = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadMedia(ctx, id, req.FileData, req.File)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload listing media")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing media uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
