package service

import (
	"context"
	"fmt"
	"nomad/config"
	"nomad/infras/otel"
	"nomad/infras/s3"
	"nomad/internal/domains/accommodation/model"
	"nomad/internal/domains/accommodation/model/dto"
	"nomad/internal/domains/accommodation/repository"
	cityService "nomad/internal/domains/city/service"
	"nomad/shared"
	"nomad/shared/base64"
	"nomad/shared/cache"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAccommodation    = "accommodation:get"
	cacheGetAllAccommodation = "accommodation:gets"
	cacheCountAccommodation  = "accommodation:count"
)

var sortableColumns = []string{
	constant.FieldCreatedAt,
	model.FieldName,
}

type Accommodation interface {
	Create(ctx context.Context, req dto.CreateAccommodationRequest, userID string) (dto.CreateAccommodationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAccommodationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AccommodationResponse, error)
}

type serviceImpl struct {
	repo  repository.Accommodation
	city  cityService.City
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Accommodation, city cityService.City, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Accommodation {
	return &serviceImpl{
		repo:  repo,
		city:  city,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAccommodationRequest, userID string) (res dto.CreateAccommodationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.city.Exist(ctx, req.CityID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check city")

		return res, fmt.Errorf("failed to check city: %w", err)
	}

	if !exist {
		return res, failure.BadRequestFromString("unknown city") // nolint:wrapcheck
	}

	var imageURL *string

	if req.Image != constant.Empty {
		url, err := s.uploadImage(ctx, req.Image)
		if err != nil {
			return res, err
		}

		imageURL = &url
	}

	accommodation := req.ToModel(userID, imageURL)

	if err = s.repo.Insert(ctx, accommodation); err != nil {
		log.Error().Err(err).Msg("failed to create accommodation")

		if imageURL != nil {
			s.deleteObject(ctx, *imageURL)
		}

		return res, fmt.Errorf("failed to create accommodation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAccommodation)
		shared.InvalidateCaches(c, s.cache, cacheCountAccommodation)
	}()

	res.ID = accommodation.ID

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAccommodationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.AllowSort(constant.FieldCreatedAt, sortableColumns...)
	req.SortBy = model.TableName + "." + req.SortBy

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAccommodation, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for accommodations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count accommodations")

		return res, fmt.Errorf("failed to count accommodations: %w", err)
	}

	models, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodations")

		return res, fmt.Errorf("failed to get accommodations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAccommodation, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for accommodation count")

		return res, nil
	}

	res, err = s.repo.CountDetail(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count accommodations")

		return res, fmt.Errorf("failed to count accommodations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AccommodationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAccommodation, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for accommodation")

		return res, nil
	}

	accommodation, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return res, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if accommodation.ID == constant.Empty {
		return res, failure.NotFound("accommodation not found") // nolint:wrapcheck
	}

	res.FromModel(accommodation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, image string) (string, error) {
	data, err := base64.Decode(image)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString("image must be a base64 data URI") // nolint:wrapcheck
	}

	url, err := s.s3.Upload(ctx, s.cfg.External.S3.AccommodationDir, base64.GetContentType(image), data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload accommodation image")

		return constant.Empty, fmt.Errorf("failed to upload accommodation image: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) deleteObject(ctx context.Context, url string) {
	if err := s.s3.DeleteByURL(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to delete accommodation image")
	}
}
