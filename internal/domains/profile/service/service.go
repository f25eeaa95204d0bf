package service

import (
	"context"
	"fmt"
	"nomad/config"
	"nomad/infras/otel"
	"nomad/infras/s3"
	"nomad/internal/domains/profile/model"
	"nomad/internal/domains/profile/model/dto"
	"nomad/internal/domains/profile/repository"
	"nomad/shared"
	"nomad/shared/base64"
	"nomad/shared/cache"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetProfile = "profile:get"

type Profile interface {
	Get(ctx context.Context, userID string) (dto.ProfileResponse, error)
	Update(ctx context.Context, req dto.UpdateProfileRequest, userID string) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest, userID string) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo  repository.Profile
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Profile, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Profile {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func filterByUser(userID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Get(ctx context.Context, userID string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetProfile, userID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	profile, err := s.repo.GetDetail(ctx, filterByUser(userID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("profile not found") // nolint:wrapcheck
	}

	res.FromModel(profile)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save profile to cache")
		}
	}()

	return res, nil
}

// Update applies the provided fields. A manager_id has already been checked by the manager middleware.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProfileRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("nothing to update") // nolint:wrapcheck
	}

	if req.ManagerID != nil && *req.ManagerID == userID {
		return failure.BadRequestFromString("a user cannot be their own line manager") // nolint:wrapcheck
	}

	filter := filterByUser(userID)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if profile exists")

		return fmt.Errorf("failed to check if profile exists: %w", err)
	}

	if !exist {
		return failure.NotFound("profile not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.invalidate(ctx, userID)

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, userID string) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := filterByUser(userID)

	profile, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("profile not found") // nolint:wrapcheck
	}

	data, err := base64.Decode(req.Image)
	if err != nil {
		return res, failure.BadRequestFromString("image must be a base64 data URI") // nolint:wrapcheck
	}

	url, err := s.s3.Upload(ctx, s.cfg.External.S3.ProfileDir, base64.GetContentType(req.Image), data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload profile image")

		return res, fmt.Errorf("failed to upload profile image: %w", err)
	}

	update := struct {
		ImageURL string `db:"image_url"`
	}{ImageURL: url}

	if err = s.repo.Update(ctx, shared.TransformFields(update, userID), filter); err != nil {
		log.Error().Err(err).Msg("failed to save profile image")

		// the new object is orphaned; the old image stays referenced
		s.deleteObject(ctx, url)

		return res, fmt.Errorf("failed to save profile image: %w", err)
	}

	if profile.ImageURL != nil {
		s.deleteObject(ctx, *profile.ImageURL)
	}

	s.invalidate(ctx, userID)

	res.ImageURL = url

	return res, nil
}

func (s *serviceImpl) deleteObject(ctx context.Context, url string) {
	if err := s.s3.DeleteByURL(ctx, url); err != nil {
		log.Warn().Err(err).Str("url", url).Msg("failed to delete profile image")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, userID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProfile, userID)); err != nil {
			log.Error().Err(err).Msg("failed to delete profile from cache")
		}
	}()
}
