package model

import (
	"nomad/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldUserID        = "user_id"
	FieldTripRequestID = "trip_request_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
)

type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	UserID        string    `db:"user_id"`
	TripRequestID *string   `db:"trip_request_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	model.Metadata
}

// BookingDetail carries the booked room and the travel administrator owning its accommodation.
type BookingDetail struct {
	Booking
	RoomName          string `db:"room_name"          table:"rooms"          column:"name"`
	AccommodationID   string `db:"accommodation_id"   table:"accommodations" column:"id"`
	AccommodationName string `db:"accommodation_name" table:"accommodations" column:"name"`
	TravelAdminID     string `db:"travel_admin_id"    table:"accommodations" column:"user_id"`
}

func (BookingDetail) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = bookings.room_id " +
		"JOIN accommodations ON accommodations.id = rooms.accommodation_id"
}
