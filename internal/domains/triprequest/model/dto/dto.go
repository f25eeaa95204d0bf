package dto

import (
	"nomad/internal/domains/triprequest/model"
	"nomad/shared"
	"nomad/shared/constant"
	gDto "nomad/shared/dto"
	gModel "nomad/shared/model"
	"nomad/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateTripRequest struct {
	OriginID        int     `json:"origin_id"        validate:"required,gte=1"`
	DestinationID   int     `json:"destination_id"   validate:"required,gte=1,nefield=OriginID"`
	DepartureDate   string  `json:"departure_date"   validate:"required,datetime=2006-01-02,notpast"`
	ReturnDate      *string `json:"return_date"      validate:"omitempty,datetime=2006-01-02"`
	Reason          string  `json:"reason"           validate:"required,max=500"`
	AccommodationID *string `json:"accommodation_id" validate:"omitempty,uuid"`
}

func (r CreateTripRequest) ToModel(userID string) (model.TripRequest, error) {
	departure, returnDate, err := ParseDates(r.DepartureDate, r.ReturnDate)
	if err != nil {
		return model.TripRequest{}, err
	}

	return model.TripRequest{
		ID:              uuid.NewString(),
		UserID:          userID,
		StatusID:        constant.StatusIDPending,
		OriginID:        r.OriginID,
		DestinationID:   r.DestinationID,
		DepartureDate:   departure,
		ReturnDate:      returnDate,
		Reason:          r.Reason,
		AccommodationID: r.AccommodationID,
		Metadata:        gModel.NewMetadata(userID, timezone.Now()),
	}, nil
}

// ParseDates parses a departure date and an optional return date in the app timezone.
func ParseDates(departure string, returnDate *string) (time.Time, *time.Time, error) {
	dep, err := timezone.ParseDate(departure)
	if err != nil {
		return time.Time{}, nil, err //nolint:wrapcheck
	}

	if returnDate == nil {
		return dep, nil, nil
	}

	ret, err := timezone.ParseDate(*returnDate)
	if err != nil {
		return time.Time{}, nil, err //nolint:wrapcheck
	}

	return dep, &ret, nil
}

type CreateTripResponse struct {
	ID string `json:"id"`
}

// UpdateTripRequest holds the editable fields of a pending trip request. Dates are written as
// yyyy-mm-dd strings and cast by the database.
type UpdateTripRequest struct {
	OriginID        *int    `db:"origin_id"        json:"origin_id"        validate:"omitempty,gte=1"`
	DestinationID   *int    `db:"destination_id"   json:"destination_id"   validate:"omitempty,gte=1"`
	DepartureDate   *string `db:"departure_date"   json:"departure_date"   validate:"omitempty,datetime=2006-01-02"`
	ReturnDate      *string `db:"return_date"      json:"return_date"      validate:"omitempty,datetime=2006-01-02"`
	Reason          *string `db:"reason"           json:"reason"           validate:"omitempty,max=500"`
	AccommodationID *string `db:"accommodation_id" json:"accommodation_id" validate:"omitempty,uuid"`
}

func (r UpdateTripRequest) IsEmpty() bool {
	return r == UpdateTripRequest{}
}

// Merge overlays the request on the stored trip request, for validation before the update.
func (r UpdateTripRequest) Merge(trip model.TripRequest) (model.TripRequest, error) {
	merged := trip

	if r.OriginID != nil {
		merged.OriginID = *r.OriginID
	}

	if r.DestinationID != nil {
		merged.DestinationID = *r.DestinationID
	}

	departure := timezone.FormatDate(trip.DepartureDate)
	if r.DepartureDate != nil {
		departure = *r.DepartureDate
	}

	var returnDate *string
	if trip.ReturnDate != nil {
		formatted := timezone.FormatDate(*trip.ReturnDate)
		returnDate = &formatted
	}

	if r.ReturnDate != nil {
		returnDate = r.ReturnDate
	}

	dep, ret, err := ParseDates(departure, returnDate)
	if err != nil {
		return merged, err
	}

	merged.DepartureDate = dep
	merged.ReturnDate = ret

	return merged, nil
}

type ReviewTripRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// StatusUpdate is the column written when a trip request is approved or rejected.
type StatusUpdate struct {
	StatusID int `db:"status_id"`
}

type TripRequestResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	ManagerID       *string `json:"manager_id"`
	StatusID        int     `json:"status_id"`
	Status          string  `json:"status"`
	OriginID        int     `json:"origin_id"`
	Origin          string  `json:"origin"`
	DestinationID   int     `json:"destination_id"`
	Destination     string  `json:"destination"`
	DepartureDate   string  `json:"departure_date"`
	ReturnDate      *string `json:"return_date"`
	Reason          string  `json:"reason"`
	AccommodationID *string `json:"accommodation_id"`
	gDto.Metadata
}

func (r *TripRequestResponse) FromModel(model model.TripRequestDetail) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.ManagerID = model.ManagerID
	r.StatusID = model.StatusID
	r.Status = model.Status
	r.OriginID = model.OriginID
	r.Origin = model.Origin
	r.DestinationID = model.DestinationID
	r.Destination = model.Destination
	r.DepartureDate = timezone.FormatDate(model.DepartureDate)
	r.Reason = model.Reason
	r.AccommodationID = model.AccommodationID

	if model.ReturnDate != nil {
		returnDate := timezone.FormatDate(*model.ReturnDate)
		r.ReturnDate = &returnDate
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetTripRequestsResponse struct {
	TripRequests []TripRequestResponse `json:"trip_requests"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTripRequestsResponse) FromModels(models []model.TripRequestDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.TripRequests = make([]TripRequestResponse, len(models))
	for i, mod := range models {
		r.TripRequests[i].FromModel(mod)
	}
}
