package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Notification=MockNotificationService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"nomad/infras/kafka"
	"nomad/infras/nats"
	"nomad/infras/otel"
	bookingModel "nomad/internal/domains/booking/model"
	bookingRepo "nomad/internal/domains/booking/repository"
	"nomad/internal/domains/notification/model"
	"nomad/internal/domains/notification/model/dto"
	"nomad/internal/domains/notification/repository"
	profileModel "nomad/internal/domains/profile/model"
	profileRepo "nomad/internal/domains/profile/repository"
	tripModel "nomad/internal/domains/triprequest/model"
	tripRepo "nomad/internal/domains/triprequest/repository"
	"nomad/shared"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	"nomad/shared/failure"
	"nomad/shared/logger"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	messageApproveReject = "your trip request has been %s"
	messageEditTrip      = "Trip request no %s has been edited"
	messageComment       = "The Trip request no %s has been commented on"
	messageTripRequest   = "%s %s has made an new travel request"
	messageBooking       = "%s %s has booked room %s"

	headerEvent = "event"
)

type Notification interface {
	ApprovedOrRejectedTrip(ctx context.Context, tripRequestID, reason string) error
	EditedTrip(ctx context.Context, tripRequestID, editorID string) error
	AddComment(ctx context.Context, tripRequestID, commenterID string) error
	NewTripRequest(ctx context.Context, tripRequestID, requesterID string) error
	NewBooking(ctx context.Context, bookingID, bookerID string) error
	MarkAsRead(ctx context.Context, userID string, ids []string) error
	View(ctx context.Context, params gDto.QueryParams, userID string) (dto.GetNotificationsResponse, error)
}

type serviceImpl struct {
	repo        repository.Notification
	tripRepo    tripRepo.TripRequest
	profileRepo profileRepo.Profile
	bookingRepo bookingRepo.Booking
	kafka       kafka.Client
	bus         nats.Bus
	otel        otel.Otel
}

func New(
	repo repository.Notification,
	tripRepo tripRepo.TripRequest,
	profileRepo profileRepo.Profile,
	bookingRepo bookingRepo.Booking,
	kafka kafka.Client,
	bus nats.Bus,
	otel otel.Otel,
) Notification {
	return &serviceImpl{
		repo:        repo,
		tripRepo:    tripRepo,
		profileRepo: profileRepo,
		bookingRepo: bookingRepo,
		kafka:       kafka,
		bus:         bus,
		otel:        otel,
	}
}

func filterByRecipient(userID string) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	}
}

func (s *serviceImpl) ApprovedOrRejectedTrip(ctx context.Context, tripRequestID, reason string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApprovedOrRejectedTrip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	trip, err := s.getTrip(ctx, tripRequestID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(messageApproveReject, strings.ToLower(tripModel.StatusName(trip.StatusID)))

	notification := dto.NewNotification(trip.UserID, message, trip.ModifiedBy)
	notification.TripRequestID = &trip.ID

	if err = s.save(ctx, notification); err != nil {
		return err
	}

	return s.emit(ctx, constant.EventApproveRejectNotification, trip.UserID, dto.ApproveRejectPayload{
		Message: message,
		Data: dto.TripUpdate{
			NotificationID: notification.ID,
			TripRequestID:  trip.ID,
			Reason:         reason,
			UpdatedAt:      trip.ModifiedAt,
		},
	})
}

func (s *serviceImpl) EditedTrip(ctx context.Context, tripRequestID, editorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EditedTrip")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	trip, err := s.getTrip(ctx, tripRequestID)
	if err != nil {
		return err
	}

	editor, err := s.getProfile(ctx, editorID)
	if err != nil {
		return err
	}

	if !editor.HasManager() {
		log.Warn().Str("user_id", editorID).Msg("editor has no line manager, edit notification skipped")

		return nil
	}

	message := fmt.Sprintf(messageEditTrip, trip.ID)

	notification := dto.NewNotification(*editor.ManagerID, message, editorID)
	notification.TripRequestID = &trip.ID

	if err = s.save(ctx, notification); err != nil {
		return err
	}

	return s.emit(ctx, constant.EventEditTripNotification, notification.UserID, dto.EditTripPayload{
		Message: message,
		Data: dto.TripUpdate{
			NotificationID: notification.ID,
			TripRequestID:  trip.ID,
			UpdatedAt:      trip.ModifiedAt,
		},
	})
}

// AddComment notifies the manager when the owner comments and the owner otherwise.
func (s *serviceImpl) AddComment(ctx context.Context, tripRequestID, commenterID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddComment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	trip, err := s.tripRepo.GetDetail(ctx, shared.FilterByID(tripRequestID, tripModel.FieldID, tripModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip request")

		return fmt.Errorf("failed to get trip request: %w", err)
	}

	if trip.ID == constant.Empty {
		return failure.NotFound("trip request not found") // nolint:wrapcheck
	}

	recipientID := trip.UserID

	if commenterID == trip.UserID {
		if trip.ManagerID == nil {
			log.Warn().Str("user_id", commenterID).Msg("trip owner has no line manager, comment notification skipped")

			return nil
		}

		recipientID = *trip.ManagerID
	}

	notification := dto.NewNotification(recipientID, fmt.Sprintf(messageComment, trip.ID), commenterID)
	notification.TripRequestID = &trip.ID

	if err = s.save(ctx, notification); err != nil {
		return err
	}

	return s.emit(ctx, constant.EventPostCommentNotification, recipientID, dto.CommentPayload{
		Data: dto.TripUpdate{
			NotificationID: notification.ID,
			TripRequestID:  trip.ID,
			UpdatedAt:      notification.ModifiedAt,
		},
	})
}

func (s *serviceImpl) NewTripRequest(ctx context.Context, tripRequestID, requesterID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NewTripRequest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	requester, err := s.getProfile(ctx, requesterID)
	if err != nil {
		return err
	}

	if !requester.HasManager() {
		log.Warn().Str("user_id", requesterID).Msg("requester has no line manager, trip request notification skipped")

		return nil
	}

	managerID := *requester.ManagerID

	notification := dto.NewNotification(managerID, fmt.Sprintf(messageTripRequest, requester.FirstName, requester.LastName), requesterID)
	notification.TripRequestID = &tripRequestID

	if err = s.save(ctx, notification); err != nil {
		return err
	}

	return s.emit(ctx, constant.EventTripRequestNotification, managerID, dto.TripRequestPayload{
		Data: dto.TripRequestData{
			ID:            notification.ID,
			UserID:        notification.UserID,
			TripRequestID: tripRequestID,
			Message:       notification.Message,
			IsRead:        notification.IsRead,
			CreatedAt:     notification.CreatedAt,
			ManagerID:     managerID,
		},
	})
}

// NewBooking notifies the travel administrator owning the booked room's accommodation.
func (s *serviceImpl) NewBooking(ctx context.Context, bookingID, bookerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NewBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookingRepo.GetDetail(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	booker, err := s.getProfile(ctx, bookerID)
	if err != nil {
		return err
	}

	message := fmt.Sprintf(messageBooking, booker.FirstName, booker.LastName, booking.RoomName)

	notification := dto.NewNotification(booking.TravelAdminID, message, bookerID)
	notification.BookingID = &booking.ID

	if err = s.save(ctx, notification); err != nil {
		return err
	}

	return s.emit(ctx, constant.EventBookingNotification, booking.TravelAdminID, dto.BookingPayload{
		Data: dto.BookingData{
			ID:            notification.ID,
			UserID:        notification.UserID,
			BookingID:     booking.ID,
			Message:       message,
			IsRead:        notification.IsRead,
			CreatedAt:     notification.CreatedAt,
			TravelAdminID: booking.TravelAdminID,
			BookerID:      bookerID,
		},
	})
}

// MarkAsRead flags every listed notification of userID as read in a single transaction.
func (s *serviceImpl) MarkAsRead(ctx context.Context, userID string, ids []string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAsRead")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unique := slices.Clone(ids)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	total, err := s.repo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			filterByRecipient(userID),
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    unique,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return fmt.Errorf("failed to count notifications: %w", err)
	}

	if total != len(unique) {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	update := shared.TransformFields(dto.MarkAsRead{IsRead: true}, userID)

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		for _, id := range unique {
			filter := gDto.FilterGroup{
				Filters: []any{
					filterByRecipient(userID),
					gDto.Filter{
						Field:    model.FieldID,
						Operator: gDto.FilterOperatorEq,
						Value:    id,
						Table:    model.TableName,
					},
				},
			}

			if err := s.repo.UpdateTx(ctx, tx, update, filter); err != nil {
				return fmt.Errorf("failed to mark notification %s as read: %w", id, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to mark notifications as read")

		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}

	return nil
}

// View lists the notifications of userID, newest first. An empty list means there is nothing new.
func (s *serviceImpl) View(ctx context.Context, params gDto.QueryParams, userID string) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".View")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.SortBy = constant.FieldCreatedAt
	params.SortDir = gDto.SortDirDesc

	filter := gDto.FilterGroup{Filters: []any{filterByRecipient(userID)}}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	if total == 0 {
		res.FromModels(nil, 0, params.Limit)

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) getTrip(ctx context.Context, tripRequestID string) (tripModel.TripRequest, error) {
	trip, err := s.tripRepo.Get(ctx, shared.FilterByID(tripRequestID, tripModel.FieldID, tripModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get trip request")

		return trip, fmt.Errorf("failed to get trip request: %w", err)
	}

	if trip.ID == constant.Empty {
		return trip, failure.NotFound("trip request not found") // nolint:wrapcheck
	}

	return trip, nil
}

func (s *serviceImpl) getProfile(ctx context.Context, userID string) (profileModel.ProfileDetail, error) {
	profile, err := s.profileRepo.GetDetail(ctx, shared.FilterByID(userID, profileModel.FieldUserID, profileModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return profile, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return profile, failure.NotFound("profile not found") // nolint:wrapcheck
	}

	return profile, nil
}

func (s *serviceImpl) save(ctx context.Context, notification model.Notification) error {
	if err := s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Msg("failed to save notification")

		return fmt.Errorf("failed to save notification: %w", err)
	}

	return nil
}

// emit publishes the event on the stream and pushes it to the recipient's live connections. One
// channel failing does not stop the other.
func (s *serviceImpl) emit(ctx context.Context, name, recipientID string, payload any) error {
	event := dto.Event{Name: name, UserID: recipientID, Payload: payload}

	var streamErr, pushErr error

	if err := s.kafka.SendMessages(ctx, "", kafka.Message{
		Key:     recipientID,
		Value:   event,
		Headers: map[string]string{headerEvent: name},
	}); err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("event", name).Str("recipient", recipientID).Msg("failed to publish notification event")

		streamErr = fmt.Errorf("failed to publish notification event: %w", err)
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("event", name).Msg("failed to marshal notification event")

		return errors.Join(streamErr, fmt.Errorf("failed to marshal notification event: %w", err))
	}

	if err = s.bus.Publish(ctx, s.bus.Subject(recipientID), data); err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("event", name).Str("recipient", recipientID).Msg("failed to push notification")

		pushErr = fmt.Errorf("failed to push notification: %w", err)
	}

	return errors.Join(streamErr, pushErr)
}
