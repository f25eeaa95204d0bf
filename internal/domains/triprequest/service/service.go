package service

import (
	"context"
	"fmt"
	"nomad/infras/otel"
	accommodationModel "nomad/internal/domains/accommodation/model"
	accommodationRepo "nomad/internal/domains/accommodation/repository"
	cityService "nomad/internal/domains/city/service"
	notificationService "nomad/internal/domains/notification/service"
	profileModel "nomad/internal/domains/profile/model"
	profileRepo "nomad/internal/domains/profile/repository"
	"nomad/internal/domains/triprequest/model"
	"nomad/internal/domains/triprequest/model/dto"
	"nomad/internal/domains/triprequest/repository"
	"nomad/shared"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
	"nomad/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

var sortableColumns = []string{
	constant.FieldCreatedAt,
	constant.FieldModifiedAt,
	model.FieldDepartureDate,
	model.FieldReturnDate,
}

type TripRequest interface {
	Create(ctx context.Context, req dto.CreateTripRequest, userID string) (dto.CreateTripResponse, error)
	Get(ctx context.Context, id, userID string) (dto.TripRequestResponse, error)
	Mine(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetTripRequestsResponse, error)
	Reports(ctx context.Context, params gDto.QueryParams, managerID string) (dto.GetTripRequestsResponse, error)
	Update(ctx context.Context, req dto.UpdateTripRequest, id, userID string) error
	Approve(ctx context.Context, req dto.ReviewTripRequest, id, managerID string) error
	Reject(ctx context.Context, req dto.ReviewTripRequest, id, managerID string) error
}

type serviceImpl struct {
	repo              repository.TripRequest
	profileRepo       profileRepo.Profile
	accommodationRepo accommodationRepo.Accommodation
	city              cityService.City
	notification      notificationService.Notification
	otel              otel.Otel
}

func New(
	repo repository.TripRequest,
	profileRepo profileRepo.Profile,
	accommodationRepo accommodationRepo.Accommodation,
	city cityService.City,
	notification notificationService.Notification,
	otel otel.Otel,
) TripRequest {
	return &serviceImpl{
		repo:              repo,
		profileRepo:       profileRepo,
		accommodationRepo: accommodationRepo,
		city:              city,
		notification:      notification,
		otel:              otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTripRequest, userID string) (res dto.CreateTripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	trip, err := req.ToModel(userID)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date, expected yyyy-mm-dd") // nolint:wrapcheck
	}

	if err = s.validate(ctx, trip); err != nil {
		return res, err
	}

	profile, err := s.profileRepo.Get(ctx, shared.FilterByID(userID, profileModel.FieldUserID, profileModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get requester profile")

		return res, fmt.Errorf("failed to get requester profile: %w", err)
	}

	if !profile.HasManager() {
		return res, failure.BadRequestFromString("set your line manager on your profile before requesting a trip") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, trip); err != nil {
		log.Error().Err(err).Msg("failed to create trip request")

		return res, fmt.Errorf("failed to create trip request: %w", err)
	}

	if err := s.notification.NewTripRequest(ctx, trip.ID, userID); err != nil {
		log.Error().Err(err).Str("trip_request_id", trip.ID).Msg("failed to notify line manager of new trip request")
	}

	res.ID = trip.ID

	return res, nil
}

// Get returns a trip request to its owner or to the owner's line manager.
func (s *serviceImpl) Get(ctx context.Context, id, userID string) (res dto.TripRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	trip, err := s.getDetail(ctx, id)
	if err != nil {
		return res, err
	}

	if trip.UserID != userID && !trip.IsManagedBy(userID) {
		return res, failure.Forbidden("you are not allowed to view this trip request") // nolint:wrapcheck
	}

	res.FromModel(trip)

	return res, nil
}

func (s *serviceImpl) Mine(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetTripRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Mine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, params, gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})
}

// Reports lists the trip requests of the users whose line manager is managerID.
func (s *serviceImpl) Reports(ctx context.Context, params gDto.QueryParams, managerID string) (res dto.GetTripRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reports")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, params, gDto.Filter{
		Field:    model.FieldManagerID,
		Operator: gDto.FilterOperatorEq,
		Value:    managerID,
		Table:    model.ProfileTableName,
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTripRequest, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("nothing to update") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	trip, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip request")

		return fmt.Errorf("failed to get trip request: %w", err)
	}

	if trip.ID == constant.Empty {
		return failure.NotFound("trip request not found") // nolint:wrapcheck
	}

	if trip.UserID != userID {
		return failure.Forbidden("only the requester can edit a trip request") // nolint:wrapcheck
	}

	if !trip.IsPending() {
		return failure.BadRequestFromString("only pending trip requests can be edited") // nolint:wrapcheck
	}

	merged, err := req.Merge(trip)
	if err != nil {
		return failure.BadRequestFromString("invalid date, expected yyyy-mm-dd") // nolint:wrapcheck
	}

	if err = s.validate(ctx, merged); err != nil {
		return err
	}

	affected, err := s.repo.UpdateAffected(ctx, shared.TransformFields(req, userID), pending(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to update trip request")

		return fmt.Errorf("failed to update trip request: %w", err)
	}

	if affected == 0 {
		return failure.BadRequestFromString("only pending trip requests can be edited") // nolint:wrapcheck
	}

	if err := s.notification.EditedTrip(ctx, id, userID); err != nil {
		log.Error().Err(err).Str("trip_request_id", id).Msg("failed to notify line manager of edited trip request")
	}

	return nil
}

func (s *serviceImpl) Approve(ctx context.Context, req dto.ReviewTripRequest, id, managerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.review(ctx, id, managerID, constant.StatusIDApproved, req.Reason)
}

func (s *serviceImpl) Reject(ctx context.Context, req dto.ReviewTripRequest, id, managerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.review(ctx, id, managerID, constant.StatusIDRejected, req.Reason)
}

// review moves a pending trip request to statusID. Only the requester's line manager may do so.
func (s *serviceImpl) review(ctx context.Context, id, managerID string, statusID int, reason string) error {
	trip, err := s.getDetail(ctx, id)
	if err != nil {
		return err
	}

	if !trip.IsManagedBy(managerID) {
		return failure.Forbidden("only the requester's line manager can review this trip request") // nolint:wrapcheck
	}

	if !trip.IsPending() {
		return failure.BadRequestFromString("trip request has already been " + strings.ToLower(trip.Status)) // nolint:wrapcheck
	}

	update := shared.TransformFields(dto.StatusUpdate{StatusID: statusID}, managerID)

	affected, err := s.repo.UpdateAffected(ctx, update, pending(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to update trip request status")

		return fmt.Errorf("failed to update trip request status: %w", err)
	}

	// another reviewer got there between the read and the write
	if affected == 0 {
		return failure.BadRequestFromString("trip request has already been reviewed") // nolint:wrapcheck
	}

	if err := s.notification.ApprovedOrRejectedTrip(ctx, id, reason); err != nil {
		log.Error().Err(err).Str("trip_request_id", id).Msg("failed to notify requester of reviewed trip request")
	}

	return nil
}

// pending matches trip request id only while it is still awaiting review.
func pending(id string) gDto.FilterGroup {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldStatusID,
		ArgName:  "current_status_id",
		Operator: gDto.FilterOperatorEq,
		Value:    constant.StatusIDPending,
		Table:    model.TableName,
	})

	return filter
}

func (s *serviceImpl) list(ctx context.Context, params gDto.QueryParams, filter gDto.Filter) (res dto.GetTripRequestsResponse, err error) {
	params.AllowSort(constant.FieldCreatedAt, sortableColumns...)
	params.SortBy = model.TableName + "." + params.SortBy

	group := gDto.FilterGroup{Filters: []any{filter}}

	total, err := s.repo.CountDetail(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count trip requests")

		return res, fmt.Errorf("failed to count trip requests: %w", err)
	}

	models, err := s.repo.GetAllDetail(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip requests")

		return res, fmt.Errorf("failed to get trip requests: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) getDetail(ctx context.Context, id string) (model.TripRequestDetail, error) {
	trip, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip request")

		return trip, fmt.Errorf("failed to get trip request: %w", err)
	}

	if trip.ID == constant.Empty {
		return trip, failure.NotFound("trip request not found") // nolint:wrapcheck
	}

	return trip, nil
}

// validate checks the dates, the cities and the accommodation of a new or edited trip request.
func (s *serviceImpl) validate(ctx context.Context, trip model.TripRequest) error {
	if trip.DepartureDate.Before(timezone.Today()) {
		return failure.BadRequestFromString("departure date cannot be in the past") // nolint:wrapcheck
	}

	if trip.ReturnDate != nil && trip.ReturnDate.Before(trip.DepartureDate) {
		return failure.BadRequestFromString("return date cannot be before departure date") // nolint:wrapcheck
	}

	if trip.OriginID == trip.DestinationID {
		return failure.BadRequestFromString("origin and destination must differ") // nolint:wrapcheck
	}

	exist, err := s.city.Exist(ctx, trip.OriginID, trip.DestinationID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check cities")

		return fmt.Errorf("failed to check cities: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("unknown origin or destination city") // nolint:wrapcheck
	}

	if trip.AccommodationID == nil {
		return nil
	}

	exist, err = s.accommodationRepo.Exist(ctx, shared.FilterByID(*trip.AccommodationID, accommodationModel.FieldID, accommodationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check accommodation")

		return fmt.Errorf("failed to check accommodation: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString("unknown accommodation") // nolint:wrapcheck
	}

	return nil
}
