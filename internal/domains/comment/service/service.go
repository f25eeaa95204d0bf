package service

import (
	"context"
	"fmt"
	"nomad/config"
	"nomad/infras/otel"
	"nomad/internal/domains/comment/model"
	"nomad/internal/domains/comment/model/dto"
	"nomad/internal/domains/comment/repository"
	notificationService "nomad/internal/domains/notification/service"
	tripModel "nomad/internal/domains/triprequest/model"
	tripRepo "nomad/internal/domains/triprequest/repository"
	"nomad/shared"
	"nomad/shared/cache"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetComments = "comment:gets"

type Comment interface {
	Create(ctx context.Context, req dto.CreateCommentRequest, tripRequestID, userID string) (dto.CreateCommentResponse, error)
	GetAll(ctx context.Context, tripRequestID, userID string) (dto.GetCommentsResponse, error)
	Get(ctx context.Context, id, userID string) (dto.CommentResponse, error)
	Delete(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo         repository.Comment
	tripRepo     tripRepo.TripRequest
	notification notificationService.Notification
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Comment,
	tripRepo tripRepo.TripRequest,
	notification notificationService.Notification,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Comment {
	return &serviceImpl{
		repo:         repo,
		tripRepo:     tripRepo,
		notification: notification,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCommentRequest, tripRequestID, userID string) (res dto.CreateCommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.authorize(ctx, tripRequestID, userID); err != nil {
		return res, err
	}

	comment := req.ToModel(tripRequestID, userID)

	if err = s.repo.Insert(ctx, comment); err != nil {
		log.Error().Err(err).Msg("failed to create comment")

		return res, fmt.Errorf("failed to create comment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetComments, tripRequestID)); err != nil {
			log.Error().Err(err).Msg("failed to delete comments from cache")
		}
	}()

	if err := s.notification.AddComment(ctx, tripRequestID, userID); err != nil {
		log.Error().Err(err).Str("trip_request_id", tripRequestID).Msg("failed to send comment notification")
	}

	res.ID = comment.ID
	res.Comment = comment.Comment

	return res, nil
}

// GetAll returns the thread of a trip request, oldest update first.
func (s *serviceImpl) GetAll(ctx context.Context, tripRequestID, userID string) (res dto.GetCommentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.authorize(ctx, tripRequestID, userID); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetComments, tripRequestID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for comments")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldModifiedAt,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetThread(ctx, params, shared.FilterByID(tripRequestID, model.FieldTripRequestID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get comments")

		return res, fmt.Errorf("failed to get comments: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save comments to cache")
		}
	}()

	return res, nil
}

// Get returns a comment to a participant of its thread.
func (s *serviceImpl) Get(ctx context.Context, id, userID string) (res dto.CommentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	comment, err := s.repo.GetThreadItem(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get comment")

		return res, fmt.Errorf("failed to get comment: %w", err)
	}

	if comment.ID == constant.Empty {
		return res, failure.NotFound("comment not found") // nolint:wrapcheck
	}

	if err = s.authorize(ctx, comment.TripRequestID, userID); err != nil {
		return res, err
	}

	res.FromModel(comment)

	return res, nil
}

// Delete removes a comment. Only its author may do so.
func (s *serviceImpl) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	comment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get comment")

		return fmt.Errorf("failed to get comment: %w", err)
	}

	if comment.ID == constant.Empty {
		return failure.NotFound("comment not found") // nolint:wrapcheck
	}

	if comment.UserID != userID {
		return failure.Forbidden("only the author can delete a comment") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete comment")

		return fmt.Errorf("failed to delete comment: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetComments, comment.TripRequestID)); err != nil {
			log.Error().Err(err).Msg("failed to delete comments from cache")
		}
	}()

	return nil
}

// authorize lets the trip owner and the owner's line manager into the thread.
func (s *serviceImpl) authorize(ctx context.Context, tripRequestID, userID string) error {
	trip, err := s.tripRepo.GetDetail(ctx, shared.FilterByID(tripRequestID, tripModel.FieldID, tripModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip request")

		return fmt.Errorf("failed to get trip request: %w", err)
	}

	if trip.ID == constant.Empty {
		return failure.NotFound("trip request not found") // nolint:wrapcheck
	}

	if trip.UserID != userID && !trip.IsManagedBy(userID) {
		return failure.Forbidden("only the requester and their line manager can access this thread") // nolint:wrapcheck
	}

	return nil
}
