package dto

import (
	"nomad/internal/domains/notification/model"
	"nomad/shared"
	"nomad/shared/constant"
	gModel "nomad/shared/model"
	"nomad/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// NewNotification builds an unread notification addressed to recipientID.
func NewNotification(recipientID, message, actor string) model.Notification {
	return model.Notification{
		ID:       uuid.NewString(),
		UserID:   recipientID,
		Message:  message,
		Metadata: gModel.NewMetadata(actor, timezone.Now()),
	}
}

type MarkAsReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// MarkAsRead is the update applied to every listed notification.
type MarkAsRead struct {
	IsRead bool `db:"is_read"`
}

type NotificationResponse struct {
	ID            string  `json:"id"`
	TripRequestID *string `json:"trip_request_id"`
	BookingID     *string `json:"booking_id"`
	Message       string  `json:"message"`
	IsRead        bool    `json:"is_read"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.TripRequestID = model.TripRequestID
	r.BookingID = model.BookingID
	r.Message = model.Message
	r.IsRead = model.IsRead
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(model.ModifiedAt, constant.DateFormat)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}

// Event is what goes on the event stream and to the recipient's live connections.
type Event struct {
	Name    string `json:"event"`
	UserID  string `json:"user_id"`
	Payload any    `json:"payload"`
}

type TripUpdate struct {
	NotificationID string    `json:"notification_id"`
	TripRequestID  string    `json:"trip_request_id"`
	Reason         string    `json:"reason,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ApproveRejectPayload struct {
	Message string     `json:"message"`
	Data    TripUpdate `json:"data"`
}

type EditTripPayload struct {
	Message string     `json:"message"`
	Data    TripUpdate `json:"data"`
}

type CommentPayload struct {
	Data TripUpdate `json:"data"`
}

type TripRequestData struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	TripRequestID string    `json:"trip_request_id"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
	ManagerID     string    `json:"manager_id"`
}

type TripRequestPayload struct {
	Data TripRequestData `json:"data"`
}

type BookingData struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	BookingID     string    `json:"booking_id"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
	TravelAdminID string    `json:"travel_admin_id"`
	BookerID      string    `json:"booker_id"`
}

type BookingPayload struct {
	Data BookingData `json:"data"`
}
