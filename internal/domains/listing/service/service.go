package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"slices"
	"strings"

	"salama/config"
	"salama/infras/otel"
	"salama/infras/s3"
	"salama/internal/domains/listing/model"
	"salama/internal/domains/listing/model/dto"
	"salama/internal/domains/listing/repository"
	"salama/shared"
	"salama/shared/cache"
	"salama/shared/constant"
	gDto "salama/shared/dto"
	"salama/shared/failure"
	"salama/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetListing     = "listing:get"
	cacheGetAllListing  = "listing:gets"
	cacheCountListing   = "listing:count"
	cacheActiveListings = "listing:active"
	cacheStatsListing   = "listing:stats"

	MediaKindPhoto = "photo"
	MediaKindVideo = "video"

	tempIDPrefix = "temp-"
)

type Listing interface {
	GetActive(ctx context.Context, criteria FilterCriteria) (dto.GetListingsResponse, error)
	GetPublic(ctx context.Context, id string) (dto.ListingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAdminListingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AdminListingResponse, error)
	Stats(ctx context.Context) (dto.StatsResponse, error)
	Create(ctx context.Context, req dto.CreateListingRequest) (dto.CreateListingResponse, error)
	Update(ctx context.Context, req dto.UpdateListingRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadMedia(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (dto.MediaUploadResponse, error)
}

type serviceImpl struct {
	repo  repository.Listing
	cfg   *config.Config
	cache cache.RedisCache
	s3    s3.S3
	otel  otel.Otel
}

func New(repo repository.Listing, cfg *config.Config, cache cache.RedisCache, s3 s3.S3, otel otel.Otel) Listing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		s3:    s3,
		otel:  otel,
	}
}

// GetActive serves the public catalogue. A storage failure degrades to an
// empty catalogue rather than an error so the browse page stays up while
// the database is unreachable.
func (s *serviceImpl) GetActive(ctx context.Context, criteria FilterCriteria) (res dto.GetListingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	listings, err := s.activeListings(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active listings, serving empty catalogue")

		res.FromModels(nil)

		return res, nil
	}

	res.FromModels(Filter(listings, criteria))

	return res, nil
}

func (s *serviceImpl) activeListings(ctx context.Context) (listings []model.Listing, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activeListings")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheActiveListings, &listings)
	if err == nil {
		log.Info().Str("cacheKey", cacheActiveListings).Msg("cache hit for active listings")

		return listings, nil
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.DefaultValueSortDir,
	}

	listings, err = s.repo.GetAll(ctx, params, activeFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to get active listings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheActiveListings, listings, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save active listings to cache")
		}
	}()

	return listings, nil
}

func (s *serviceImpl) GetPublic(ctx context.Context, id string) (res dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPublic")
	defer scope.End()
	defer scope.TraceIfError(err)

	listing, err := s.getListing(ctx, id)
	if err != nil {
		return res, err
	}

	// Deactivated listings are invisible to the public surface.
	if !listing.IsActive {
		return res, failure.NotFound("listing not found")
	}

	res.FromModel(listing)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAdminListingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllListing, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for listings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count listings")

		return res, fmt.Errorf("failed to count listings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get listings")

		return res, fmt.Errorf("failed to get listings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save listings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountListing, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for listing count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count listings")

		return res, fmt.Errorf("failed to count listings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save listing count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AdminListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetListing, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for listing")

		return res, nil
	}

	listing, err := s.getListing(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(listing)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save listing to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStatsListing, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheStatsListing).Msg("cache hit for listing stats")

		return res, nil
	}

	total, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count listings")

		return res, fmt.Errorf("failed to count listings: %w", err)
	}

	active, err := s.repo.Count(ctx, activeFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to count active listings")

		return res, fmt.Errorf("failed to count active listings: %w", err)
	}

	verified, err := s.repo.Count(ctx, boolFilter(model.FieldIsVerified))
	if err != nil {
		log.Error().Err(err).Msg("failed to count verified listings")

		return res, fmt.Errorf("failed to count verified listings: %w", err)
	}

	res = dto.StatsResponse{
		TotalListings:    total,
		ActiveListings:   active,
		VerifiedListings: verified,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStatsListing, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save listing stats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateListingRequest) (res dto.CreateListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateNeighborhood(req.Neighborhood); err != nil {
		return res, err
	}

	if err = validateAmenities(req.Amenities); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	listing := req.ToModel(user)

	if err = s.repo.Insert(ctx, listing); err != nil {
		log.Error().Err(err).Msg("failed to create listing")

		return res, fmt.Errorf("failed to create listing: %w", err)
	}

	s.invalidateListingCaches(ctx, listing.ID)

	return dto.CreateListingResponse{ID: listing.ID}, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateListingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateListingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	if req.Neighborhood != nil {
		if err = validateNeighborhood(*req.Neighborhood); err != nil {
			return err
		}
	}

	if req.Amenities != nil {
		if err = validateAmenities(*req.Amenities); err != nil {
			return err
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if listing exists")

		return fmt.Errorf("failed to check if listing exists: %w", err)
	}

	if !exist {
		log.Error().Msg("listing not found")

		return failure.NotFound("listing not found")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update listing")

		return fmt.Errorf("failed to update listing: %w", err)
	}

	s.invalidateListingCaches(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if listing exists")

		return fmt.Errorf("failed to check if listing exists: %w", err)
	}

	if !exist {
		log.Error().Msg("listing not found")

		return failure.NotFound("listing not found")
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete listing")

		return fmt.Errorf("failed to delete listing: %w", err)
	}

	s.invalidateListingCaches(ctx, id)

	return nil
}

// UploadMedia stores the file and returns its public URL. The listing record
// is left untouched; the client appends the URL via Update once it has
// assembled the final media set.
func (s *serviceImpl) UploadMedia(ctx context.Context, id string, file multipart.File, fileHeader *multipart.FileHeader) (res dto.MediaUploadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadMedia")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Drafts that have not been saved yet upload under a temp id.
	if !strings.HasPrefix(id, tempIDPrefix) {
		exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if listing exists")

			return res, fmt.Errorf("failed to check if listing exists: %w", err)
		}

		if !exist {
			log.Error().Msg("listing not found")

			return res, failure.NotFound("listing not found")
		}
	}

	fileName := fmt.Sprintf("%d_%s", timezone.Now().Unix(), fileHeader.Filename)
	directory := path.Join("listings", id)

	url, err := s.s3.UploadFile(ctx, constant.Empty, directory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload listing media")

		return res, fmt.Errorf("failed to upload listing media: %w", err)
	}

	kind := MediaKindPhoto
	if strings.HasPrefix(fileHeader.Header.Get(constant.RequestHeaderContentType), "video/") {
		kind = MediaKindVideo
	}

	return dto.MediaUploadResponse{URL: url, Kind: kind}, nil
}

func (s *serviceImpl) invalidateListingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetListing, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete listing from cache")
		}

		if err := s.cache.Delete(c, cacheActiveListings); err != nil {
			log.Error().Err(err).Msg("failed to delete active listings from cache")
		}

		if err := s.cache.Delete(c, cacheStatsListing); err != nil {
			log.Error().Err(err).Msg("failed to delete listing stats from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllListing)
		shared.InvalidateCaches(c, s.cache, cacheCountListing)
	}()
}

func (s *serviceImpl) getListing(ctx context.Context, id string) (listing model.Listing, err error) {
	listing, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get listing")

		return listing, fmt.Errorf("failed to get listing: %w", err)
	}

	if listing.ID == "" {
		return listing, failure.NotFound("listing not found")
	}

	return listing, nil
}

func validateNeighborhood(neighborhood string) error {
	if !slices.Contains(model.Neighborhoods, neighborhood) {
		return failure.BadRequestFromString("unknown neighborhood: " + neighborhood)
	}

	return nil
}

func validateAmenities(amenities []string) error {
	for _, amenity := range amenities {
		if !slices.Contains(model.Amenities, amenity) {
			return failure.BadRequestFromString("unknown amenity: " + amenity)
		}
	}

	return nil
}

func activeFilter() gDto.FilterGroup {
	return boolFilter(model.FieldIsActive)
}

func boolFilter(field string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}
}
