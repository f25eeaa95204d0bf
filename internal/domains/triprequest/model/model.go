package model

import (
	"nomad/shared/constant"
	"nomad/shared/model"
	"time"
)

const (
	TableName  = "trip_requests"
	EntityName = "trip_request"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldStatusID        = "status_id"
	FieldOriginID        = "origin_id"
	FieldDestinationID   = "destination_id"
	FieldDepartureDate   = "departure_date"
	FieldReturnDate      = "return_date"
	FieldReason          = "reason"
	FieldAccommodationID = "accommodation_id"

	// FieldManagerID lives on the joined requester profile.
	FieldManagerID   = "manager_id"
	ProfileTableName = "user_profiles"
)

var statusNames = map[int]string{
	constant.StatusIDPending:  "Pending",
	constant.StatusIDApproved: "Approved",
	constant.StatusIDRejected: "Rejected",
}

type TripRequest struct {
	ID              string     `db:"id"`
	UserID          string     `db:"user_id"`
	StatusID        int        `db:"status_id"`
	OriginID        int        `db:"origin_id"`
	DestinationID   int        `db:"destination_id"`
	DepartureDate   time.Time  `db:"departure_date"`
	ReturnDate      *time.Time `db:"return_date"`
	Reason          string     `db:"reason"`
	AccommodationID *string    `db:"accommodation_id"`
	model.Metadata
}

func (t TripRequest) IsPending() bool {
	return t.StatusID == constant.StatusIDPending
}

func StatusName(statusID int) string {
	return statusNames[statusID]
}

// TripRequestDetail is a trip request with its status, cities, requester and the requester's line manager.
type TripRequestDetail struct {
	TripRequest
	Status      string  `db:"status"      table:"statuses"      column:"name"`
	Origin      string  `db:"origin"      table:"origins"       column:"city"`
	Destination string  `db:"destination" table:"destinations"  column:"city"`
	FirstName   string  `db:"first_name"  table:"users"`
	LastName    string  `db:"last_name"   table:"users"`
	ManagerID   *string `db:"manager_id"  table:"user_profiles"`
}

func (TripRequestDetail) GetJoinQuery() string {
	return "JOIN statuses ON statuses.id = trip_requests.status_id " +
		"JOIN cities AS origins ON origins.id = trip_requests.origin_id " +
		"JOIN cities AS destinations ON destinations.id = trip_requests.destination_id " +
		"JOIN users ON users.id = trip_requests.user_id " +
		"LEFT JOIN user_profiles ON user_profiles.user_id = trip_requests.user_id"
}

// IsManagedBy reports whether userID is the requester's line manager.
func (t TripRequestDetail) IsManagedBy(userID string) bool {
	return t.ManagerID != nil && *t.ManagerID == userID
}
