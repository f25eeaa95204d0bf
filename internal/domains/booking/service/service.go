package service

import (
	"context"
	"errors"
	"fmt"
	"nomad/config"
	"nomad/infras/otel"
	"nomad/internal/domains/booking/model"
	"nomad/internal/domains/booking/model/dto"
	"nomad/internal/domains/booking/repository"
	notificationService "nomad/internal/domains/notification/service"
	roomModel "nomad/internal/domains/room/model"
	roomRepo "nomad/internal/domains/room/repository"
	tripModel "nomad/internal/domains/triprequest/model"
	tripRepo "nomad/internal/domains/triprequest/repository"
	"nomad/shared"
	"nomad/shared/cache"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
	"nomad/shared/timezone"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const cacheGetBooking = "booking:get"

var sortableColumns = []string{
	constant.FieldCreatedAt,
	model.FieldCheckIn,
}

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (dto.CreateBookingResponse, error)
	Mine(ctx context.Context, req gDto.QueryParams, userID string) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id, userID string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id, userID string) error
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	tripRepo     tripRepo.TripRequest
	notification notificationService.Notification
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	tripRepo tripRepo.TripRequest,
	notification notificationService.Notification,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		tripRepo:     tripRepo,
		notification: notification,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest, userID string) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := req.ToModel(userID)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date, expected yyyy-mm-dd") // nolint:wrapcheck
	}

	if booking.CheckIn.Before(timezone.Today()) {
		return res, failure.BadRequestFromString("check-in date cannot be in the past") // nolint:wrapcheck
	}

	if !booking.CheckOut.After(booking.CheckIn) {
		return res, failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.IsAvailable {
		return res, failure.BadRequestFromString("room is not available") // nolint:wrapcheck
	}

	if req.TripRequestID != nil {
		if err = s.checkTrip(ctx, *req.TripRequestID, userID); err != nil {
			return res, err
		}
	}

	booked, err := s.repo.Exist(ctx, overlapping(room.ID, booking.CheckIn, booking.CheckOut))
	if err != nil {
		log.Error().Err(err).Msg("failed to check overlapping bookings")

		return res, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}

	if booked {
		return res, failure.Conflict("room is already booked for these dates") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		// the exclusion constraint catches a booking committed after the overlap check
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeExclusion {
			return res, failure.Conflict("room is already booked for these dates") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.notification.NewBooking(ctx, booking.ID, userID); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to notify travel admin of new booking")
	}

	res.ID = booking.ID

	return res, nil
}

func (s *serviceImpl) Mine(ctx context.Context, req gDto.QueryParams, userID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Mine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.AllowSort(constant.FieldCreatedAt, sortableColumns...)
	req.SortBy = model.TableName + "." + req.SortBy

	filter := shared.FilterByID(userID, model.FieldUserID, model.TableName)

	total, err := s.repo.CountDetail(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAllDetail(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// Get returns a booking to its booker or to the travel administrator owning the room.
func (s *serviceImpl) Get(ctx context.Context, id, userID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		booking, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return res, fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return res, failure.NotFound("booking not found") // nolint:wrapcheck
		}

		res.FromModel(booking)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save booking to cache")
			}
		}()
	}

	if res.BookerID != userID && res.TravelAdminID != userID {
		return dto.BookingResponse{}, failure.Forbidden("you are not allowed to view this booking") // nolint:wrapcheck
	}

	return res, nil
}

// Cancel deletes a booking. Only the booker may cancel.
func (s *serviceImpl) Cancel(ctx context.Context, id, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.UserID != userID {
		return failure.Forbidden("only the booker can cancel a booking") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}
	}()

	return nil
}

func (s *serviceImpl) checkTrip(ctx context.Context, tripRequestID, userID string) error {
	trip, err := s.tripRepo.Get(ctx, shared.FilterByID(tripRequestID, tripModel.FieldID, tripModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip request")

		return fmt.Errorf("failed to get trip request: %w", err)
	}

	if trip.ID == constant.Empty {
		return failure.NotFound("trip request not found") // nolint:wrapcheck
	}

	if trip.UserID != userID {
		return failure.Forbidden("a booking can only reference your own trip request") // nolint:wrapcheck
	}

	return nil
}

// overlapping matches the bookings of roomID whose stay intersects [checkIn, checkOut).
func overlapping(roomID string, checkIn, checkOut time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "new_check_out",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLess,
				Value:    checkOut,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "new_check_in",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreater,
				Value:    checkIn,
				Table:    model.TableName,
			},
		},
	}
}
