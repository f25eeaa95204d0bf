package model

import "nomad/shared/model"

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldTripRequestID = "trip_request_id"
	FieldBookingID     = "booking_id"
	FieldMessage       = "message"
	FieldIsRead        = "is_read"
)

// Notification is addressed to UserID and references the trip request or booking it is about.
type Notification struct {
	ID            string  `db:"id"`
	UserID        string  `db:"user_id"`
	TripRequestID *string `db:"trip_request_id"`
	BookingID     *string `db:"booking_id"`
	Message       string  `db:"message"`
	IsRead        bool    `db:"is_read"`
	model.Metadata
}
